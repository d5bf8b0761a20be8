// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero in-memory filesystem
// PURPOSE: Test install-root config defaults, overrides, and parse failures

package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-dev/stagehand/pkg/config"
	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/filesystem"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, []string{"lib", filepath.Join("lib", "ext"), filepath.Join("lib", "junit")}, cfg.LibDirs)
	assert.Equal(t, ".jar", cfg.ArchiveSuffix)
	assert.Equal(t, "main", cfg.EntryName)
	assert.Equal(t, "logging.toml", cfg.LogConfigName)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	cfg, err := config.Load(fsys, "/opt/app")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadEmptyRootUsesDefaults(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	cfg, err := config.Load(fsys, "")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	mem := afero.NewMemMapFs()
	content := `
lib_dirs = ["modules", "modules/extra"]
archive_suffix = ".zip"
entry = "app.server"
`
	require.NoError(t, afero.WriteFile(mem, "/opt/app/bin/stagehand.toml", []byte(content), 0644))
	fsys := filesystem.NewAferoFS(mem)

	cfg, err := config.Load(fsys, "/opt/app")

	require.NoError(t, err)
	assert.Equal(t, []string{"modules", "modules/extra"}, cfg.LibDirs)
	assert.Equal(t, ".zip", cfg.ArchiveSuffix)
	assert.Equal(t, "app.server", cfg.EntryName)
	// Omitted fields keep their defaults
	assert.Equal(t, "logging.toml", cfg.LogConfigName)
}

func TestLoadParseFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/opt/app/bin/stagehand.toml", []byte("lib_dirs = [unterminated"), 0644))
	fsys := filesystem.NewAferoFS(mem)

	cfg, err := config.Load(fsys, "/opt/app")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	// Defaults still usable so assembly can proceed
	assert.Equal(t, config.Default(), cfg)
}
