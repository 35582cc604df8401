// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ATOMIC WRITE
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	fs := afero.NewMemMapFs()

	require.NoError(t, AtomicWriteFile(fs, "/cfg/config.toml", []byte("a = 1\n"), 0600))

	data, err := afero.ReadFile(fs, "/cfg/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "a = 1\n", string(data))

	info, err := fs.Stat("/cfg/config.toml")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, AtomicWriteFile(fs, "/x/f", []byte("old"), 0644))
	require.NoError(t, AtomicWriteFile(fs, "/x/f", []byte("new"), 0644))

	data, err := afero.ReadFile(fs, "/x/f")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, AtomicWriteFile(fs, "/x/f", []byte("data"), 0644))

	entries, err := afero.ReadDir(fs, "/x")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f", entries[0].Name())
}

func TestAtomicWriteFile_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	assert.Error(t, AtomicWriteFile(fs, "/x/f", []byte("data"), 0644))
}

// =============================================================================
// STRINGS
// =============================================================================

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"привет мир", 7, "прив..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateRunes(tt.in, tt.max))
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "Text  ", PadRight("Text", 6))
	assert.Equal(t, "Текст ", PadRight("Текст", 6))
	assert.Equal(t, "toolong", PadRight("toolong", 3))
	assert.Equal(t, 4, StringWidth("日本"))
}

func TestTruncateWidth(t *testing.T) {
	assert.Equal(t, "short", TruncateWidth("short", 10))
	assert.Equal(t, "abcd...", TruncateWidth("abcdefghij", 7))
	assert.Equal(t, "", TruncateWidth("x", 0))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "second", FirstLine("\n  \n second \nthird"))
	assert.Equal(t, "", FirstLine(" \n "))
}
