package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_OrderedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reglas.yaml")
	content := []byte(`
rules:
  - category: Mascotas
    keywords: [VETERINARIA, PETSHOP]
  - category: Salud
    keywords: [FARMACIA, CLINICA]
`)
	require.NoError(t, os.WriteFile(path, content, 0600))

	rules, err := NewRuleStore(path).LoadRules()
	require.NoError(t, err)

	require.Len(t, rules, 2)
	assert.Equal(t, "Mascotas", rules[0].Category)
	assert.Equal(t, []string{"VETERINARIA", "PETSHOP"}, rules[0].Keywords)
	assert.Equal(t, "Salud", rules[1].Category)
}

func TestLoadRules_MissingFileIsNotAnError(t *testing.T) {
	s := NewRuleStore(filepath.Join(t.TempDir(), "no-such-file.yaml"))

	rules, err := s.LoadRules()
	assert.NoError(t, err)
	assert.Nil(t, rules)
}

func TestLoadRules_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reglas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [unclosed"), 0600))

	_, err := NewRuleStore(path).LoadRules()
	assert.Error(t, err)
}

func TestFindConfigFile_AbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reglas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: []"), 0600))

	s := NewRuleStore("")
	found, err := s.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = s.FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
