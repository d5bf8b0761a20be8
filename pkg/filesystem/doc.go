// Package filesystem provides filesystem implementations for stagehand.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and an afero-backed one for tests.
package filesystem
