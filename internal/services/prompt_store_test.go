package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptStoreRender(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "greeting@v2.md"), []byte("Hello {{.Name}}!"), 0o644)
	require.NoError(t, err)

	store := NewPromptStore(dir)

	out, err := store.Render("greeting", "v2", map[string]string{"Name": "coach"})
	require.NoError(t, err)
	assert.Equal(t, "Hello coach!", out)
}

func TestPromptStoreMissingTemplate(t *testing.T) {
	store := NewPromptStore(t.TempDir())

	_, err := store.Render("nope", "v1", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope@v1")
}

func TestPromptStoreEditWithoutRestart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p@v1.md")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0o644))

	store := NewPromptStore(dir)

	out, err := store.Render("p", "v1", nil)
	require.NoError(t, err)
	assert.Equal(t, "one", out)

	require.NoError(t, os.WriteFile(path, []byte("two"), 0o644))

	out, err = store.Render("p", "v1", nil)
	require.NoError(t, err)
	assert.Equal(t, "two", out)
}
