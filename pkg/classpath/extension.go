package classpath

import (
	"strings"
	"sync"

	"github.com/stagehand-dev/stagehand/pkg/environ"
	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/loader"
	"github.com/stagehand-dev/stagehand/pkg/scanner"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

// Extension is the runtime path-extension API handed to the running
// application: it mutates the live loader (and, for AddPath, the published
// search-path string) after hand-off, independent of the one-shot initial
// assembly.
//
// The locator-add and search-path-append pair is guarded by one mutex so
// concurrent callers cannot interleave the two; the loader itself is also
// safe on its own.
type Extension struct {
	mu     sync.Mutex
	loader *loader.Loader
	env    environ.Environment
	fsys   types.FS
	sep    string
	suffix string
}

// NewExtension binds the runtime extension API to a loader and environment.
func NewExtension(l *loader.Loader, env environ.Environment, fsys types.FS, sep, suffix string) *Extension {
	if suffix == "" {
		suffix = scanner.DefaultSuffix
	}
	return &Extension{loader: l, env: env, fsys: fsys, sep: sep, suffix: suffix}
}

// AddLocator adds an already-built locator to the loader only. The ambient
// search-path string is not touched.
func (e *Extension) AddLocator(loc types.Locator) {
	e.loader.Add(loc)
}

// AddURL converts path to a locator and adds it to the loader only; the
// ambient search-path string is not touched. If path names a directory, its
// archive children are added too, in sorted order.
func (e *Extension) AddURL(path string) error {
	loc, err := NewLocator(path)
	if err != nil {
		return err
	}
	e.loader.Add(loc)

	for _, archive := range e.listArchives(path) {
		child, err := NewLocator(archive)
		if err != nil {
			return errors.Wrapf(err, errors.ErrMalformedLocator, "error adding archive %s", archive)
		}
		e.loader.Add(child)
	}
	return nil
}

// AddPath adds a directory or archive to both the loader and the ambient
// search-path string. Directory paths gain a trailing separator before
// locator construction; a directory's archive children are added and
// appended too, in sorted order.
func (e *Extension) AddPath(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	locatorPath := path
	if e.isDir(path) && !strings.HasSuffix(path, "/") {
		locatorPath = path + "/"
	}

	loc, err := NewLocator(locatorPath)
	if err != nil {
		return err
	}
	e.loader.Add(loc)

	segments := []string{path}
	for _, archive := range e.listArchives(path) {
		child, err := NewLocator(archive)
		if err != nil {
			return errors.Wrapf(err, errors.ErrMalformedLocator, "error adding archive %s", archive)
		}
		e.loader.Add(child)
		segments = append(segments, archive)
	}

	// Republish the ambient value with the new segments appended
	value := e.env.Get(environ.EnvModulePath)
	var sb strings.Builder
	sb.WriteString(value)
	for _, seg := range segments {
		sb.WriteString(e.sep)
		sb.WriteString(seg)
	}
	return e.env.Set(environ.EnvModulePath, sb.String())
}

// listArchives returns the sorted archive children of path when it is a
// directory, and nothing otherwise. Unlike the initial assembly, a
// non-directory here is ordinary (archives are addable too), so no
// diagnostic is surfaced.
func (e *Extension) listArchives(path string) []string {
	if !e.isDir(path) {
		return nil
	}
	return scanner.Scan(e.fsys, path, e.suffix).Archives
}

func (e *Extension) isDir(path string) bool {
	info, err := e.fsys.Stat(path)
	return err == nil && info.IsDir()
}
