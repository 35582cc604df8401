// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Waiter controls how Wait presents a pending request.
type Waiter struct {
	// Out receives the spinner. Use stderr so stdout stays pipeable.
	Out io.Writer

	// Interactive enables the spinner. When false, Wait just runs work.
	Interactive bool
}

// doneMsg tells the wait program that work has returned.
type doneMsg struct{}

// waitModel shows a spinner until doneMsg arrives. Ctrl+C or Esc cancels
// the work's context; the program keeps running until work returns.
type waitModel struct {
	spinner   Spinner
	tick      tea.Cmd
	cancel    context.CancelFunc
	cancelled bool
	done      bool
}

func newWaitModel(message string, cancel context.CancelFunc) waitModel {
	s := NewSpinner(message)
	tick := s.Start()
	return waitModel{spinner: s, tick: tick, cancel: cancel}
}

func (m waitModel) Init() tea.Cmd {
	return m.tick
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		m.spinner.Stop()
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if !m.cancelled {
				m.cancelled = true
				m.cancel()
				m.spinner.SetMessage(m.spinner.Message() + " (cancelling)")
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View()
}

// Wait runs work while showing message with a spinner and returns its
// result. Ctrl+C cancels the context passed to work.
func Wait[T any](ctx context.Context, w Waiter, message string, work func(context.Context) T) T {
	if !w.Interactive || w.Out == nil {
		return work(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newWaitModel(message, cancel), tea.WithOutput(w.Out))

	var result T
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		result = work(ctx)
		p.Send(doneMsg{})
	}()

	// A program that fails to start still lets work finish.
	_, _ = p.Run()
	<-finished
	return result
}
