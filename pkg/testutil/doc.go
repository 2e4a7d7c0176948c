// Package testutil provides test helpers for shld, most notably an
// in-memory types.FS implementation with error injection.
package testutil
