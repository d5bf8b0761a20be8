// Package export produces machine-readable views of an assembled module
// search path, for tooling that consumes it outside the process: a YAML
// snapshot, and an Eclipse-style .classpath XML document for IDE
// integration.
package export

import (
	"gopkg.in/yaml.v3"

	"github.com/stagehand-dev/stagehand/pkg/classpath"
	"github.com/stagehand-dev/stagehand/pkg/install"
)

// Snapshot is the serializable view of a completed assembly.
type Snapshot struct {
	InstallDir string    `yaml:"installDir"`
	SearchPath string    `yaml:"searchPath"`
	Locators   []Locator `yaml:"locators"`
	Skipped    []string  `yaml:"skippedDirs,omitempty"`
	Failures   []string  `yaml:"failures,omitempty"`
}

// Locator is one search-path entry in a Snapshot.
type Locator struct {
	URL  string `yaml:"url"`
	Path string `yaml:"path"`
}

// NewSnapshot builds a Snapshot from the discovered install root and the
// assembly result.
func NewSnapshot(dir install.Dir, asm *classpath.Assembly) Snapshot {
	s := Snapshot{
		InstallDir: dir.String(),
		SearchPath: asm.SearchPath,
	}
	for _, loc := range asm.Locators {
		s.Locators = append(s.Locators, Locator{URL: loc.URL, Path: loc.Path})
	}
	for _, diag := range asm.Diagnostics {
		s.Skipped = append(s.Skipped, diag.Dir)
	}
	for _, failure := range asm.Failures {
		s.Failures = append(s.Failures, failure.Error())
	}
	return s
}

// YAML renders the snapshot as a YAML document.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}
