package platform

import "strings"

// NormalizeSharePath protects UNC share paths from locator construction.
//
// Building a file URL collapses a doubled separator prefix, so a UNC path
// like \\host\share would come out the other side as \host\share. Doubling
// the prefix up front (to \\\\host\share) compensates. Paths already carrying
// three or more leading separators are left alone, as is everything on
// platforms without share paths.
func NormalizeSharePath(path string, p Platform) string {
	if !p.UsesSharePaths() {
		return path
	}
	if strings.HasPrefix(path, `\\`) && !strings.HasPrefix(path, `\\\`) {
		return `\\` + path
	}
	if strings.HasPrefix(path, "//") && !strings.HasPrefix(path, "///") {
		return "//" + path
	}
	return path
}
