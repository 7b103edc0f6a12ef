// Package fs abstracts the filesystem collaborator behind small interfaces.
//
// The package defines two key interfaces:
//
//   - [File]: an open file with read/write/sync capabilities
//   - [FileSystem]: filesystem operations (open, remove, mkdir, ...)
//
// # Implementations
//
//   - [Local]: production implementation using the standard os package
//   - [Faulty]: test utility that injects a failure at a chosen step and
//     records handle lifecycle, used to verify fail-fast and cleanup
//     behavior of the domain packages
//
// Production callers normally never touch this package; domain packages use
// [Default] unless a FileSystem is injected through their options.
//
// # Design Notes
//
// Operations here intentionally take no context.Context. Local filesystem
// calls are fast and non-interruptible at the syscall level; remote
// collaborators with meaningful cancellation live in the net domain and its
// subpackages.
package fs
