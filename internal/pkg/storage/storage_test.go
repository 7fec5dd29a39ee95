package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SaveExistsDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStorage(dir, "static")

	require.NoError(t, s.Save("profiles/a.png", strings.NewReader("png-bytes")))
	assert.True(t, s.Exists("profiles/a.png"))

	b, err := os.ReadFile(filepath.Join(dir, "profiles", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))

	require.NoError(t, s.Delete("profiles/a.png"))
	assert.False(t, s.Exists("profiles/a.png"))
}

func TestFileStorage_StaysInsideRoot(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStorage(filepath.Join(dir, "root"), "/static/")

	require.NoError(t, s.Save("../../escape.txt", strings.NewReader("x")))

	_, err := os.Stat(filepath.Join(dir, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
	assert.True(t, s.Exists("escape.txt"))
}

func TestFileStorage_URL(t *testing.T) {
	s := NewFileStorage(t.TempDir(), "/static/")

	assert.Equal(t, "/static/profiles/a.png", s.URL("profiles/a.png"))
	assert.Equal(t, "/static/a.png", s.URL("../a.png"))
}
