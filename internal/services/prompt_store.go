package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// PromptStore serves named, versioned prompt templates from a directory of
// "<name>@<version>.md" files. Templates are parsed per render; the store
// holds no cache so prompt edits take effect without a restart.
type PromptStore struct {
	dir string
}

func NewPromptStore(dir string) *PromptStore {
	return &PromptStore{dir: dir}
}

func (s *PromptStore) Render(name, version string, data interface{}) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s@%s.md", name, version))

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("prompt %s@%s: %w", name, version, err)
	}

	tpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("prompt %s@%s: %w", name, version, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("prompt %s@%s: %w", name, version, err)
	}
	return buf.String(), nil
}
