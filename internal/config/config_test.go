package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsEmptyConfig(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasCredentials())
	assert.NotNil(t, cfg.Goals)
	assert.Empty(t, cfg.Goals)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path)

	cfg := &Config{
		Username:         "alice",
		AuthToken:        "tok-123",
		GoogleCalendarID: "primary",
		Goals: map[string]GoalConfig{
			"reading": {DisplayName: "Reading", HoursPerUnit: 0.5},
			"thesis":  {DisplayName: "Thesis", HoursPerUnit: 1},
		},
	}
	require.NoError(t, store.Save(cfg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.json")
	store := NewStore(path)

	require.NoError(t, store.Save(&Config{Username: "bob", AuthToken: "t"}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.True(t, loaded.HasCredentials())
}

func TestScheduledGoals_SortedBySlug(t *testing.T) {
	cfg := &Config{Goals: map[string]GoalConfig{
		"zz-writing": {DisplayName: "Writing", HoursPerUnit: 1},
		"aa-reading": {DisplayName: "Reading", HoursPerUnit: 0.5},
	}}

	goals := cfg.ScheduledGoals()
	require.Len(t, goals, 2)
	assert.Equal(t, "aa-reading", goals[0].Slug)
	assert.Equal(t, "zz-writing", goals[1].Slug)
	assert.Equal(t, 0.5, goals[0].HoursPerUnit)
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("BEELINE_CONFIG", "/tmp/custom.json")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.json", path)
}

func TestDefaultPath_HomeFallback(t *testing.T) {
	t.Setenv("BEELINE_CONFIG", "")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(".beeline", "config.json"))
}
