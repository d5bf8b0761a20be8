// Package install discovers the installation root directory at process
// start.
//
// The discovery is one-shot and heuristic: a packaged launch carries exactly
// one ambient search-path entry (two on the mac family, where the runtime
// adds a second) pointing at a launcher archive nested two levels under the
// install root. Anything richer signals a developer launch, where the root
// comes from an explicit override or the working directory's parent.
package install

import (
	"path/filepath"
	"strings"

	"github.com/stagehand-dev/stagehand/pkg/environ"
	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/platform"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

var log = logging.GetLogger("install")

// Dir is the discovered installation directory. Discovery can fail without
// aborting the process, so absence is a distinguished state rather than an
// empty string: an unknown Dir propagates downstream as empty scan results,
// not as a crash.
type Dir struct {
	path  string
	known bool
}

// Unknown returns the distinguished "no usable directory" value.
func Unknown() Dir {
	return Dir{}
}

// At returns a known Dir rooted at path.
func At(path string) Dir {
	return Dir{path: path, known: true}
}

// Known reports whether discovery produced a usable directory.
func (d Dir) Known() bool {
	return d.known
}

// Path returns the directory path, or "" when unknown.
func (d Dir) Path() string {
	return d.path
}

// Join returns elem joined under the installation directory.
func (d Dir) Join(elem ...string) string {
	return filepath.Join(append([]string{d.path}, elem...)...)
}

// String renders the directory for diagnostics.
func (d Dir) String() string {
	if !d.known {
		return "<unknown>"
	}
	return d.path
}

// Locate discovers the installation root from the ambient module path.
//
// A launcher-archive entry two levels under the root (e.g.
// /opt/app/bin/app.jar) resolves to the root (/opt/app). Canonicalization
// failures are absorbed: the result is Unknown, never an error.
func Locate(env environ.Environment, fsys types.FS, p platform.Platform) Dir {
	tokens := tokenize(env.Get(environ.EnvModulePath), p.ListSeparator())

	if len(tokens) == 1 || (len(tokens) == 2 && p == platform.Darwin) {
		// Packaged launch: the sole entry is the launcher archive
		canonical, err := fsys.EvalSymlinks(tokens[0])
		if err != nil {
			log.Debug().Str("entry", tokens[0]).Err(err).
				Msg("could not canonicalize launcher entry")
			return Unknown()
		}
		root := filepath.Dir(filepath.Dir(canonical))
		log.Debug().Str("root", root).Msg("packaged launch detected")
		return At(root)
	}

	// Developer launch: explicit override wins, else the working
	// directory's parent
	if override := env.Get(environ.EnvHome); override != "" {
		return At(override)
	}

	cwd, err := env.Getwd()
	if err != nil {
		log.Debug().Err(err).Msg("could not determine working directory")
		return Unknown()
	}
	return At(filepath.Dir(cwd))
}

// tokenize splits a separator-joined path list, dropping empty entries
func tokenize(list, sep string) []string {
	var tokens []string
	for _, tok := range strings.Split(list, sep) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
