package types

import "io/fs"

// FS abstracts the filesystem operations stagehand performs. The real
// implementation wraps the os package; tests substitute an afero-backed one.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// EvalSymlinks resolves a path to its canonical, symlink-free form.
	// Implementations without symlink support may return the cleaned
	// absolute path unchanged.
	EvalSymlinks(path string) (string, error)
}

// Startable is the contract an application entry point must satisfy. The
// bootstrapper resolves one by name through the dynamic loader and invokes
// Start with the original process arguments.
type Startable interface {
	Start(args []string) error
}

// EntryFactory produces a fresh Startable. Registered under a well-known
// name in the loader's entry registry, usually from an init function of the
// application package.
type EntryFactory func() (Startable, error)
