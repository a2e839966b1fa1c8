package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Scenario:      "",
		IndexCapacity: 101,
		Journal:       "./cases.db",
		Debug:         false,
		DebugLog:      "debug.log",
		Plain:         false,
	}, cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "detective.yaml"), []byte(`
scenario: manor.yaml
index_capacity: 13
debug: true
`), 0o644))

	cfg, err := Load(New(dir))
	require.NoError(t, err)
	assert.Equal(t, "manor.yaml", cfg.Scenario)
	assert.Equal(t, 13, cfg.IndexCapacity)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "./cases.db", cfg.Journal)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "detective.yaml"), []byte("journal: file.db\n"), 0o644))
	t.Setenv("DETECTIVE_JOURNAL", "env.db")
	t.Setenv("DETECTIVE_PLAIN", "true")

	cfg, err := Load(New(dir))
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Journal)
	assert.True(t, cfg.Plain)
}

func TestExplicitSetWins(t *testing.T) {
	t.Setenv("DETECTIVE_INDEX_CAPACITY", "7")
	v := New(t.TempDir())
	v.Set(KeyIndexCapacity, 31)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 31, cfg.IndexCapacity)
}

func TestRejectsNonPositiveCapacity(t *testing.T) {
	v := New(t.TempDir())
	v.Set(KeyIndexCapacity, 0)

	_, err := Load(v)
	assert.Error(t, err)
}

func TestMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "detective.yaml"), []byte("debug: [oops"), 0o644))

	_, err := Load(New(dir))
	assert.Error(t, err)
}
