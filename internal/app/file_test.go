package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/taskpad/internal/engine/document"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"trailing newline", "a\nb\n", "a\nb"},
		{"no trailing newline", "a\nb", "a\nb"},
		{"blank last line", "a\n\n", "a\n"},
		{"crlf", "a\r\nb\r\n", "a\r\nb"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".md")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	got, err := LoadFile(filepath.Join(t.TempDir(), "missing.md"))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestLoadFileDirectory(t *testing.T) {
	_, err := LoadFile(t.TempDir())
	assert.Error(t, err)
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	require.NoError(t, SaveFile(path, document.New("one\ntwo")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file is removed")

	text, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", text)
}

func TestSaveFileBadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "notes.md")
	assert.Error(t, SaveFile(path, document.New("x")))
}
