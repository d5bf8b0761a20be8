// Package scanner lists loadable archives in a single directory.
//
// Scanning is deliberately shallow (direct children only) and deterministic:
// results are sorted by full path so the load order of archives is
// reproducible across runs and platforms. Two archives defining overlapping
// names would otherwise resolve nondeterministically.
package scanner

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

var log = logging.GetLogger("scanner")

// DefaultSuffix is the archive suffix scanned for when none is configured
const DefaultSuffix = ".jar"

// Diagnostic records a directory that could not be scanned. Diagnostics are
// non-fatal: an unreadable directory degrades to "no results", never to a
// failed assembly.
type Diagnostic struct {
	Dir   string
	Cause error
}

// Result is the outcome of scanning one directory.
type Result struct {
	// Archives holds the full paths of matching direct children, sorted
	// ascending
	Archives []string

	// Diagnostics is non-empty when the directory was missing or unreadable
	Diagnostics []Diagnostic
}

// Scan lists the direct children of dir whose names end in suffix. Only
// regular files are included. A missing or unreadable directory yields an
// empty result carrying one diagnostic.
func Scan(fsys types.FS, dir string, suffix string) Result {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	info, err := fsys.Stat(dir)
	if err != nil || !info.IsDir() {
		log.Warn().Str("dir", dir).Err(err).Msg("could not access directory")
		return Result{Diagnostics: []Diagnostic{{Dir: dir, Cause: err}}}
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("could not list directory")
		return Result{Diagnostics: []Diagnostic{{Dir: dir, Cause: err}}}
	}

	var archives []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		archives = append(archives, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(archives)
	log.Debug().Str("dir", dir).Int("count", len(archives)).Msg("scanned directory")
	return Result{Archives: archives}
}
