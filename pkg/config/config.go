// Package config loads the optional install-root configuration from
// bin/stagehand.toml.
//
// Everything has a default; a missing file is the common case. A present but
// unparsable file is reported to the caller so it can be surfaced as an
// initialization failure, with the defaults still returned for the rest of
// the bootstrap to proceed against.
package config

import (
	"io/fs"
	"path/filepath"

	stderrors "errors"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

var log = logging.GetLogger("config")

// FileName is the config file looked for under the install root's bin
// directory
const FileName = "stagehand.toml"

// Config holds install-root configuration for the bootstrapper.
type Config struct {
	// LibDirs are the subdirectories under the install root scanned for
	// archives, in scan order
	LibDirs []string `toml:"lib_dirs"`

	// ArchiveSuffix is the filename suffix identifying loadable archives
	ArchiveSuffix string `toml:"archive_suffix"`

	// EntryName is the entry-point name resolved at hand-off
	EntryName string `toml:"entry"`

	// LogConfigName is the filename under bin/ the logging-configuration
	// value defaults to
	LogConfigName string `toml:"log_config"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LibDirs:       []string{"lib", filepath.Join("lib", "ext"), filepath.Join("lib", "junit")},
		ArchiveSuffix: ".jar",
		EntryName:     "main",
		LogConfigName: "logging.toml",
	}
}

// Load reads bin/stagehand.toml under root. A missing file (or empty root)
// yields the defaults with no error. A file that cannot be read or parsed
// yields the defaults plus an error for the caller to record.
func Load(fsys types.FS, root string) (*Config, error) {
	cfg := Default()
	if root == "" {
		return cfg, nil
	}

	path := filepath.Join(root, "bin", FileName)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "could not read %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), errors.Wrapf(err, errors.ErrConfigParse, "could not parse %s", path)
	}

	// Partial files keep defaults for the fields they omit
	if len(cfg.LibDirs) == 0 {
		cfg.LibDirs = Default().LibDirs
	}
	if cfg.ArchiveSuffix == "" {
		cfg.ArchiveSuffix = Default().ArchiveSuffix
	}
	if cfg.EntryName == "" {
		cfg.EntryName = Default().EntryName
	}
	if cfg.LogConfigName == "" {
		cfg.LogConfigName = Default().LogConfigName
	}

	log.Debug().Str("path", path).Strs("libDirs", cfg.LibDirs).Msg("loaded config")
	return cfg, nil
}
