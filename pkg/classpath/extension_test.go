// pkg/classpath/extension_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: fake environment, afero in-memory filesystem
// PURPOSE: Test the runtime AddURL/AddPath extension operations

package classpath_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagehand-dev/stagehand/pkg/classpath"
	"github.com/stagehand-dev/stagehand/pkg/environ"
	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/filesystem"
	"github.com/stagehand-dev/stagehand/pkg/loader"
	"github.com/stagehand-dev/stagehand/pkg/registry"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

func newExtension(t *testing.T, files ...string) (*classpath.Extension, *loader.Loader, *environ.Fake) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0644))
	}
	fsys := filesystem.NewAferoFS(mem)
	l := loader.NewWithEntries(nil, registry.New[types.EntryFactory]())
	env := environ.NewFake("linux", "/opt/app/bin")
	env.Set(environ.EnvModulePath, "/initial")
	return classpath.NewExtension(l, env, fsys, ":", ".jar"), l, env
}

func TestAddURLArchive(t *testing.T) {
	ext, l, env := newExtension(t, "/plugins/extra.jar")

	require.NoError(t, ext.AddURL("/plugins/extra.jar"))

	require.Equal(t, 1, l.Count())
	assert.Equal(t, "file:///plugins/extra.jar", l.Locators()[0].URL)
	// AddURL never touches the ambient search path
	assert.Equal(t, "/initial", env.Get(environ.EnvModulePath))
}

func TestAddURLDirectoryAddsChildren(t *testing.T) {
	ext, l, env := newExtension(t,
		"/plugins/z.jar",
		"/plugins/a.jar",
		"/plugins/notes.txt",
	)

	require.NoError(t, ext.AddURL("/plugins"))

	got := l.Locators()
	require.Len(t, got, 3)
	assert.Equal(t, "/plugins", got[0].Path)
	assert.Equal(t, "/plugins/a.jar", got[1].Path)
	assert.Equal(t, "/plugins/z.jar", got[2].Path)
	assert.Equal(t, "/initial", env.Get(environ.EnvModulePath))
}

func TestAddURLMalformed(t *testing.T) {
	ext, l, _ := newExtension(t)

	err := ext.AddURL("")

	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedLocator))
	assert.Equal(t, 0, l.Count())
}

func TestAddPathDirectory(t *testing.T) {
	ext, l, env := newExtension(t,
		"/plugins/b.jar",
		"/plugins/a.jar",
	)

	require.NoError(t, ext.AddPath("/plugins"))

	got := l.Locators()
	// The directory itself plus each jar child
	require.Len(t, got, 3)
	assert.Equal(t, "/plugins/", got[0].Path, "directory locator gains a trailing separator")
	assert.Equal(t, "/plugins/a.jar", got[1].Path)
	assert.Equal(t, "/plugins/b.jar", got[2].Path)

	// Search path grows by 1 + number of jar children segments
	value := env.Get(environ.EnvModulePath)
	assert.Equal(t, "/initial:/plugins:/plugins/a.jar:/plugins/b.jar", value)
}

func TestAddPathArchive(t *testing.T) {
	ext, l, env := newExtension(t, "/plugins/solo.jar")

	require.NoError(t, ext.AddPath("/plugins/solo.jar"))

	require.Equal(t, 1, l.Count())
	assert.Equal(t, "/initial:/plugins/solo.jar", env.Get(environ.EnvModulePath))
}

func TestAddPathDirectoryWithTrailingSlash(t *testing.T) {
	ext, l, _ := newExtension(t, "/plugins/a.jar")

	require.NoError(t, ext.AddPath("/plugins/"))

	got := l.Locators()
	require.Len(t, got, 2)
	// No double separator appended
	assert.Equal(t, "/plugins/", got[0].Path)
}

func TestAddPathMalformed(t *testing.T) {
	ext, l, env := newExtension(t)

	err := ext.AddPath(string(rune(0)))

	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedLocator))
	assert.Equal(t, 0, l.Count())
	assert.Equal(t, "/initial", env.Get(environ.EnvModulePath))
}

func TestAddPathConcurrentCallers(t *testing.T) {
	files := make([]string, 0, 20)
	dirs := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		d := "/plugins/p" + string(rune('a'+i))
		dirs = append(dirs, d)
		files = append(files, d+"/one.jar")
	}
	ext, l, env := newExtension(t, files...)

	var wg sync.WaitGroup
	for _, d := range dirs {
		wg.Add(1)
		go func(dir string) {
			defer wg.Done()
			_ = ext.AddPath(dir)
		}(d)
	}
	wg.Wait()

	// Each call adds the directory and its one jar child
	assert.Equal(t, 40, l.Count())
	// Every locator-add has a matching search-path segment
	segments := strings.Split(env.Get(environ.EnvModulePath), ":")
	assert.Len(t, segments, 41) // initial value + 40 appended
}
