// Package types defines the core types shared across shld packages,
// including the filesystem interface used to keep the expander testable.
package types
