// Package environ abstracts the ambient process environment stagehand reads
// and rewrites: the module search path, the install-root override, and the
// logging-configuration value.
//
// The indirection exists for the installation locator and classpath
// assembler, whose discovery rules depend entirely on environment state and
// would otherwise be untestable without mutating the real process.
package environ

import (
	"os"
	"runtime"
)

// Environment variable names
const (
	// EnvModulePath is the ambient search-path value: a separator-joined
	// list of entries, read once at start and appended to as locators are
	// added, for the benefit of external tools inspecting it.
	EnvModulePath = "STAGEHAND_MODULE_PATH"

	// EnvHome overrides installation-root discovery on unpackaged launches
	EnvHome = "STAGEHAND_HOME"

	// EnvLogConfig is the logging-configuration value; set only when unset
	EnvLogConfig = "STAGEHAND_LOG_CONFIG"
)

// Environment is the process-environment surface stagehand consumes.
type Environment interface {
	// Get returns the value for key, or "" when unset
	Get(key string) string

	// Lookup returns the value for key and whether it was set at all
	Lookup(key string) (string, bool)

	// Set publishes a value back into the ambient environment
	Set(key, value string) error

	// Getwd returns the current working directory
	Getwd() (string, error)

	// OSName returns the operating system name used for platform detection
	OSName() string
}

// system implements Environment over the os package
type system struct{}

// System returns the real process environment.
func System() Environment {
	return &system{}
}

func (s *system) Get(key string) string {
	return os.Getenv(key)
}

func (s *system) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (s *system) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (s *system) Getwd() (string, error) {
	return os.Getwd()
}

func (s *system) OSName() string {
	return runtime.GOOS
}
