package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "wellness.yaml")
	// No indentation inside the backtick block to avoid YAML parsing errors
	content := `database:
  path: "/var/lib/wellness/atlas.db"
profiles_path: "/etc/wellness/profiles.ini"
location: "Europe/Berlin"
artifacts:
  dir: "out"
  s3:
    bucket: "wellness-reports"
    prefix: "/daily/"
    profile: "reports"
    region: "eu-central-1"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	settings, err := LoadSettings(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/wellness/atlas.db", settings.Database.Path)
	assert.Equal(t, "/etc/wellness/profiles.ini", settings.ProfilesPath)
	assert.Equal(t, "out", settings.Artifacts.Dir)
	assert.Equal(t, "reports", settings.Artifacts.S3.Profile)
	assert.Equal(t, "eu-central-1", settings.Artifacts.S3.Region)
	assert.Equal(t, "s3://wellness-reports/daily", settings.ArtifactsDestination())

	loc, err := settings.TimeLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadSettings_DefaultsAndEnvironment(t *testing.T) {
	// Given
	t.Setenv("WELLNESS_DATABASE_PATH", "/tmp/env.db")

	// When
	settings, err := LoadSettings("")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", settings.Database.Path)
	assert.Equal(t, "UTC", settings.Location)
	assert.Equal(t, "reports", settings.ArtifactsDestination())
}

func TestLoadSettings_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSettings(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("location: a: b: c"), 0o644))
		_, err := LoadSettings(path)
		assert.Error(t, err)
	})

	t.Run("unknown location", func(t *testing.T) {
		path := filepath.Join(dir, "loc.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`location: "Mars/Olympus"`), 0o644))
		_, err := LoadSettings(path)
		assert.ErrorContains(t, err, "invalid location")
	})
}
