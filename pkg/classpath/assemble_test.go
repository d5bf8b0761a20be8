// pkg/classpath/assemble_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: fake environment, afero in-memory filesystem
// PURPOSE: Test one-shot classpath assembly ordering, degradation, and
// search-path publication

package classpath_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-dev/stagehand/pkg/classpath"
	"github.com/stagehand-dev/stagehand/pkg/config"
	"github.com/stagehand-dev/stagehand/pkg/environ"
	"github.com/stagehand-dev/stagehand/pkg/filesystem"
	"github.com/stagehand-dev/stagehand/pkg/install"
	"github.com/stagehand-dev/stagehand/pkg/platform"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

func installTree(t *testing.T, files ...string) types.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0644))
	}
	return filesystem.NewAferoFS(mem)
}

func TestAssembleStandardTree(t *testing.T) {
	// 2 jars in lib, 1 in lib/ext, lib/junit missing entirely
	fsys := installTree(t,
		"/opt/app/lib/beta.jar",
		"/opt/app/lib/alpha.jar",
		"/opt/app/lib/ext/plugin.jar",
		"/opt/app/lib/readme.txt",
	)
	env := environ.NewFake("linux", "/opt/app/bin")
	env.Set(environ.EnvModulePath, "/opt/app/bin/app.jar")

	asm := classpath.Assemble(fsys, install.At("/opt/app"), config.Default(), platform.Other, env)

	require.Empty(t, asm.Failures)
	require.Len(t, asm.Locators, 3)
	assert.Equal(t, []string{
		"/opt/app/lib/alpha.jar",
		"/opt/app/lib/beta.jar",
		"/opt/app/lib/ext/plugin.jar",
	}, asm.Segments)

	// lib/junit missing produces a diagnostic, not a failure
	require.Len(t, asm.Diagnostics, 1)
	assert.Equal(t, "/opt/app/lib/junit", asm.Diagnostics[0].Dir)

	// Published value is the original plus one separator-joined segment per
	// locator, in the same order, no de-duplication
	want := "/opt/app/bin/app.jar:/opt/app/lib/alpha.jar:/opt/app/lib/beta.jar:/opt/app/lib/ext/plugin.jar"
	assert.Equal(t, want, asm.SearchPath)
	assert.Equal(t, want, env.Get(environ.EnvModulePath))
}

func TestAssembleUnknownRoot(t *testing.T) {
	fsys := installTree(t)
	env := environ.NewFake("linux", "/")

	asm := classpath.Assemble(fsys, install.Unknown(), config.Default(), platform.Other, env)

	// A missing root degrades to empty scans, never a crash
	assert.Empty(t, asm.Locators)
	assert.Empty(t, asm.Failures)
	assert.Len(t, asm.Diagnostics, 3)
}

func TestAssembleCollectsPerPathFailures(t *testing.T) {
	fsys := installTree(t,
		"/opt/app/lib/good.jar",
		"/opt/app/lib/bad\x00name.jar",
	)
	env := environ.NewFake("linux", "/opt/app/bin")

	asm := classpath.Assemble(fsys, install.At("/opt/app"), config.Default(), platform.Other, env)

	// The bad path is recorded, the rest of the classpath still loads
	require.Len(t, asm.Failures, 1)
	require.Len(t, asm.Locators, 1)
	assert.True(t, strings.HasSuffix(asm.Locators[0].Path, "good.jar"))
}

func TestAssembleCustomLibDirs(t *testing.T) {
	fsys := installTree(t,
		"/opt/app/modules/core.jar",
		"/opt/app/lib/ignored.jar",
	)
	env := environ.NewFake("linux", "/opt/app/bin")
	cfg := config.Default()
	cfg.LibDirs = []string{"modules"}

	asm := classpath.Assemble(fsys, install.At("/opt/app"), cfg, platform.Other, env)

	require.Len(t, asm.Locators, 1)
	assert.Equal(t, "/opt/app/modules/core.jar", asm.Locators[0].Path)
}

func TestAssembleOrderIsLibThenExt(t *testing.T) {
	// A jar name sorting before lib's must still come after every lib jar
	// because subdirectory order is fixed
	fsys := installTree(t,
		"/opt/app/lib/zz.jar",
		"/opt/app/lib/ext/aa.jar",
	)
	env := environ.NewFake("linux", "/opt/app/bin")

	asm := classpath.Assemble(fsys, install.At("/opt/app"), config.Default(), platform.Other, env)

	require.Len(t, asm.Segments, 2)
	assert.Equal(t, "/opt/app/lib/zz.jar", asm.Segments[0])
	assert.Equal(t, "/opt/app/lib/ext/aa.jar", asm.Segments[1])
}
