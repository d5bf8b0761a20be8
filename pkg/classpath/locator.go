package classpath

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/stagehand-dev/stagehand/pkg/errors"
	"github.com/stagehand-dev/stagehand/pkg/types"
)

// NewLocator converts a filesystem path into a loadable locator. The path
// should already carry any platform normalization; this only builds the file
// URL form. Directory paths keep their trailing separator in the URL so the
// loader can tell directories from archives.
func NewLocator(path string) (types.Locator, error) {
	if path == "" {
		return types.Locator{}, errors.New(errors.ErrMalformedLocator, "empty path")
	}
	if strings.ContainsRune(path, 0) {
		return types.Locator{}, errors.Newf(errors.ErrMalformedLocator, "path contains NUL byte: %q", path)
	}

	slash := filepath.ToSlash(path)
	if !strings.HasPrefix(slash, "/") {
		// Relative and drive-letter paths get rooted for the URL form
		slash = "/" + slash
	}

	u := url.URL{Scheme: "file", Path: slash}
	return types.Locator{URL: u.String(), Path: path}, nil
}
