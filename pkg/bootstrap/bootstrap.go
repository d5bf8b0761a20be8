// Package bootstrap orchestrates process startup: installation-root
// discovery, classpath assembly, loader construction, and the hand-off to
// the application entry point.
//
// Initialize replaces what would otherwise be hidden global init state with
// an explicit, exactly-once constructor invoked by the process entry point.
// It never fails as a whole; assembly problems are collected on the returned
// Context and become terminal only at hand-off.
package bootstrap

import (
	"fmt"

	"github.com/stagehand-dev/stagehand/pkg/classpath"
	"github.com/stagehand-dev/stagehand/pkg/config"
	"github.com/stagehand-dev/stagehand/pkg/environ"
	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/filesystem"
	"github.com/stagehand-dev/stagehand/pkg/install"
	"github.com/stagehand-dev/stagehand/pkg/loader"
	"github.com/stagehand-dev/stagehand/pkg/logging"
	"github.com/stagehand-dev/stagehand/pkg/platform"
	"github.com/stagehand-dev/stagehand/pkg/registry"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

var log = logging.GetLogger("bootstrap")

// Options configures Initialize. Zero values select the real process
// environment and filesystem.
type Options struct {
	// Env is the ambient environment; defaults to environ.System()
	Env environ.Environment

	// FS is the filesystem; defaults to filesystem.NewOS()
	FS types.FS

	// Entries overrides the loader's entry registry. Tests use this to
	// avoid process-wide registration state.
	Entries registry.Registry[types.EntryFactory]
}

// Context carries everything assembled during initialization. It is created
// exactly once, before any other code runs, and lives for the rest of the
// process.
type Context struct {
	dir      install.Dir
	cfg      *config.Config
	platform platform.Platform
	assembly *classpath.Assembly
	loader   *loader.Loader
	ext      *classpath.Extension
	env      environ.Environment
	failures []error
}

// Initialize runs the one-shot startup sequence: locate the install root,
// load its config, assemble the classpath, and build the loader. Call it
// once from the process entry point; it runs synchronously with no
// concurrent access possible.
func Initialize(opts Options) *Context {
	env := opts.Env
	if env == nil {
		env = environ.System()
	}
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	done := logging.LogOperationStart(log, "initialize")
	defer done()

	p := platform.Detect(env.OSName())
	dir := install.Locate(env, fsys, p)

	cfg, cfgErr := config.Load(fsys, dir.Path())

	asm := classpath.Assemble(fsys, dir, cfg, p, env)

	var l *loader.Loader
	if opts.Entries != nil {
		l = loader.NewWithEntries(asm.Locators, opts.Entries)
	} else {
		l = loader.New(asm.Locators)
	}

	ctx := &Context{
		dir:      dir,
		cfg:      cfg,
		platform: p,
		assembly: asm,
		loader:   l,
		ext:      classpath.NewExtension(l, env, fsys, p.ListSeparator(), cfg.ArchiveSuffix),
		env:      env,
	}
	if cfgErr != nil {
		ctx.failures = append(ctx.failures, cfgErr)
	}
	ctx.failures = append(ctx.failures, asm.Failures...)
	return ctx
}

// InstallDir returns the discovered installation directory.
func (c *Context) InstallDir() install.Dir {
	return c.dir
}

// Config returns the effective install-root configuration.
func (c *Context) Config() *config.Config {
	return c.cfg
}

// Loader returns the dynamic loader.
func (c *Context) Loader() *loader.Loader {
	return c.loader
}

// Extension returns the runtime path-extension API for the running
// application.
func (c *Context) Extension() *classpath.Extension {
	return c.ext
}

// Assembly returns the result of the initial classpath assembly.
func (c *Context) Assembly() *classpath.Assembly {
	return c.assembly
}

// Failures returns the initialization failures collected so far.
func (c *Context) Failures() []error {
	return c.failures
}

// HandOff transfers control to the application entry point with the original
// process arguments. It is the single top-level failure boundary: a
// non-empty failure list aborts before the entry point is ever resolved, and
// any failure during resolution, instantiation, or the application run
// itself comes back as an *AbortError. There are no retries.
func (c *Context) HandOff(args []string) error {
	if len(c.failures) > 0 {
		return &AbortError{Stage: StageInit, Failures: c.failures}
	}

	loader.SetActive(c.loader)

	// Point ambient logging at the conventional file unless the launch
	// already configured it
	if _, set := c.env.Lookup(environ.EnvLogConfig); !set {
		value := "file:" + c.dir.Join("bin", c.cfg.LogConfigName)
		if err := c.env.Set(environ.EnvLogConfig, value); err != nil {
			log.Warn().Err(err).Msg("could not set logging configuration")
		}
	}

	factory, err := c.loader.Resolve(c.cfg.EntryName)
	if err != nil {
		return c.runtimeAbort(errors.Wrapf(err, errors.ErrEntryResolve,
			"could not resolve entry point %q", c.cfg.EntryName))
	}

	entry, err := factory()
	if err != nil {
		return c.runtimeAbort(errors.Wrapf(err, errors.ErrEntryResolve,
			"could not instantiate entry point %q", c.cfg.EntryName))
	}

	log.Info().Str("entry", c.cfg.EntryName).Strs("args", args).Msg("handing off")
	if err := c.start(entry, args); err != nil {
		return c.runtimeAbort(errors.Wrap(err, errors.ErrEntryStart, "application failed"))
	}
	return nil
}

// start invokes the entry point, converting a panic in application code into
// an ordinary error so it hits the same failure boundary.
func (c *Context) start(entry types.Startable, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in entry point: %v", r)
		}
	}()
	return entry.Start(args)
}

func (c *Context) runtimeAbort(cause error) *AbortError {
	return &AbortError{Stage: StageRun, Cause: cause, InstallDir: c.dir.String()}
}
