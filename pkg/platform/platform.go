// Package platform models the operating-system traits stagehand branches on.
//
// Rather than sniffing runtime.GOOS at the point of use, callers detect a
// Platform value once and pass it down. That keeps the path-handling rules
// pure functions that tests can exercise for every OS family without
// environment mocking.
package platform

import (
	"runtime"
	"strings"
)

// Platform identifies the OS family stagehand cares about. Only two families
// change behavior: Windows (UNC share paths, ';' list separator) and Darwin
// (a second ambient search-path entry on packaged launches).
type Platform int

const (
	// Other covers every OS with no special-case behavior
	Other Platform = iota
	// Windows is the windows family
	Windows
	// Darwin is the mac family
	Darwin
)

// String returns the lowercase family name.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	default:
		return "other"
	}
}

// Detect maps an OS name to a Platform. It accepts Go's GOOS names and is
// lenient about legacy vendor strings ("Windows Server 2022", "Mac OS X").
func Detect(osName string) Platform {
	name := strings.ToLower(osName)
	switch {
	case strings.HasPrefix(name, "windows"):
		return Windows
	case name == "darwin" || strings.HasPrefix(name, "mac os"):
		return Darwin
	default:
		return Other
	}
}

// Current returns the Platform of the running process.
func Current() Platform {
	return Detect(runtime.GOOS)
}

// UsesSharePaths reports whether the platform supports UNC network share
// paths that need protecting during locator construction.
func (p Platform) UsesSharePaths() bool {
	return p == Windows
}

// ListSeparator returns the separator joining entries of the ambient
// search-path value on this platform.
func (p Platform) ListSeparator() string {
	if p == Windows {
		return ";"
	}
	return ":"
}
