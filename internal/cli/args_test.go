// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgParserFlagsAndPositionals(t *testing.T) {
	p := NewArgParser([]string{"--width", "512", "--free", "a", "red", "cat", "-h=256"}, "free")

	assert.Equal(t, "512", p.Flag("width"))
	assert.Equal(t, "256", p.Flag("height", "h"))
	assert.True(t, p.BoolFlag("free"))
	assert.False(t, p.BoolFlag("all"))
	assert.Equal(t, "a red cat", p.Rest(0))
	assert.Equal(t, 3, p.PositionalCount())
	assert.Equal(t, "a", p.Subcommand())
}

func TestArgParserBoolFlagDoesNotSwallowValue(t *testing.T) {
	p := NewArgParser([]string{"--list-models", "flux"}, "list-models")
	assert.True(t, p.BoolFlag("list-models"))
	assert.Equal(t, "flux", p.Positional(0))
}

func TestArgParserDoubleDash(t *testing.T) {
	p := NewArgParser([]string{"--", "--not-a-flag", "x"})
	assert.Equal(t, "--not-a-flag x", p.Rest(0))
	assert.Empty(t, p.Flag("not-a-flag"))
	assert.False(t, p.BoolFlag("not-a-flag"))
}

func TestArgParserEqualsBool(t *testing.T) {
	p := NewArgParser([]string{"--free=false", "--all=yes"}, "free", "all")
	assert.False(t, p.BoolFlag("free"))
	assert.True(t, p.BoolFlag("all"))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"true", "YES", "y", "1", "on"} {
		b, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}
	for _, s := range []string{"false", "No", "n", "0", "off"} {
		b, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
