// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation is an append-only sequence of turns. The whole sequence is
// sent to the remote model on every request, so nothing is ever pruned.
//
// Conversation also carries the "request outstanding" flag used by the
// orchestrator to reject a second send while one is pending.
type Conversation struct {
	ID        string
	CreatedAt time.Time

	mu    sync.RWMutex
	turns []Turn

	pending atomic.Bool
}

// NewConversation creates an empty conversation with a generated ID.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		turns:     make([]Turn, 0),
	}
}

// NewConversationFrom creates a conversation seeded with the given turns.
func NewConversationFrom(turns ...Turn) *Conversation {
	conv := NewConversation()
	conv.turns = append(conv.turns, turns...)
	return conv
}

// Append adds a new turn at the end and returns it.
func (c *Conversation) Append(role Role, content string) Turn {
	turn := NewTurn(role, content)
	c.mu.Lock()
	c.turns = append(c.turns, turn)
	c.mu.Unlock()
	return turn
}

// Turns returns a copy of the turns in order.
func (c *Conversation) Turns() []Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Len returns the number of turns.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.turns)
}

// IsEmpty returns true if no turns have been recorded.
func (c *Conversation) IsEmpty() bool {
	return c.Len() == 0
}

// Clear drops all turns and starts a fresh conversation ID.
func (c *Conversation) Clear() {
	c.mu.Lock()
	c.turns = make([]Turn, 0)
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.mu.Unlock()
}

// =============================================================================
// IN-FLIGHT FLAG
// =============================================================================

// Begin marks a request as outstanding. It returns false if one already is.
func (c *Conversation) Begin() bool {
	return c.pending.CompareAndSwap(false, true)
}

// End clears the outstanding-request flag.
func (c *Conversation) End() {
	c.pending.Store(false)
}

// Pending reports whether a request is outstanding.
func (c *Conversation) Pending() bool {
	return c.pending.Load()
}
