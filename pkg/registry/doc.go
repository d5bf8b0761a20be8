// Package registry provides a generic, type-safe name registry used for
// entry-point registration. It supports automatic registration through
// init() functions of application packages.
//
// Registration is one-way: items are added and looked up, never removed,
// matching the append-only lifecycle of the loader that consumes it.
package registry
