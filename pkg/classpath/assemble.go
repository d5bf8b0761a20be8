// Package classpath builds and extends the module search path.
//
// The initial assembly runs exactly once at process start: it scans the
// standard lib subdirectories under the install root, converts each archive
// into a loadable locator, and accumulates the textual search-path string
// published back into the ambient environment for external tools. Failures
// during assembly are collected, not thrown: a single bad archive must not
// prevent the rest of the classpath from loading. Whether the collected
// failures are terminal is the bootstrapper's call, made at hand-off.
package classpath

import (
	"strings"

	"github.com/stagehand-dev/stagehand/pkg/config"
	"github.com/stagehand-dev/stagehand/pkg/environ"
	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/install"
	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/platform"
	"github.com/stagehand-dev/stagehand/pkg/scanner"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

var log = logging.GetLogger("classpath")

// Assembly is the outcome of the one-shot initial classpath construction.
type Assembly struct {
	// Locators holds the assembled loadable locators in scan order
	Locators []types.Locator

	// Segments are the path segments appended to the search-path string,
	// one per locator, same order
	Segments []string

	// SearchPath is the published ambient value: the original value plus
	// every appended segment
	SearchPath string

	// Failures are the per-path conversion errors collected during
	// assembly; non-empty means the bootstrapper must not hand off
	Failures []error

	// Diagnostics records lib subdirectories that could not be scanned
	// (non-fatal)
	Diagnostics []scanner.Diagnostic
}

// Assemble runs the initial classpath construction against the install root
// and publishes the resulting search-path value into env. It is called
// exactly once, before anything else runs; it never fails as a whole.
func Assemble(fsys types.FS, dir install.Dir, cfg *config.Config, p platform.Platform, env environ.Environment) *Assembly {
	initial := env.Get(environ.EnvModulePath)
	sep := p.ListSeparator()

	asm := &Assembly{}
	var appended strings.Builder

	for _, sub := range cfg.LibDirs {
		libDir := dir.Join(sub)
		result := scanner.Scan(fsys, libDir, cfg.ArchiveSuffix)
		asm.Diagnostics = append(asm.Diagnostics, result.Diagnostics...)

		for _, archive := range result.Archives {
			normalized := platform.NormalizeSharePath(archive, p)
			locator, err := NewLocator(normalized)
			if err != nil {
				asm.Failures = append(asm.Failures,
					errors.Wrapf(err, errors.ErrMalformedLocator, "error adding archive %s", archive))
				continue
			}
			asm.Locators = append(asm.Locators, locator)
			asm.Segments = append(asm.Segments, normalized)
			appended.WriteString(sep)
			appended.WriteString(normalized)
		}
	}

	// Publish so that later by-name discovery sees the full path
	asm.SearchPath = initial + appended.String()
	if err := env.Set(environ.EnvModulePath, asm.SearchPath); err != nil {
		asm.Failures = append(asm.Failures,
			errors.Wrap(err, errors.ErrInternal, "could not publish search path"))
	}

	log.Info().
		Int("locators", len(asm.Locators)).
		Int("failures", len(asm.Failures)).
		Str("root", dir.String()).
		Msg("classpath assembled")
	return asm
}
