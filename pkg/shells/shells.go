// Package shells knows which shells support the source/. builtin and how
// to read an interpreter out of a shebang line.
package shells

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/shld/pkg/errors"
)

// Default is the set of shells whose scripts shld will expand. All of them
// treat both `source` and `.` as the sourcing builtin.
func Default() []string {
	return []string{"sh", "bash", "dash", "ksh"}
}

// ParseShebang extracts the interpreter name from a shebang line.
// The interpreter is the basename of the last whitespace-separated token,
// so both "#!/bin/bash" and "#!/usr/bin/env bash" yield "bash".
// Returns false when the line is not a shebang.
func ParseShebang(line string) (string, bool) {
	if !strings.HasPrefix(line, "#!") {
		return "", false
	}
	fields := strings.Fields(line[2:])
	if len(fields) == 0 {
		return "", false
	}
	return filepath.Base(fields[len(fields)-1]), true
}

// CheckRoot validates the first line of a root script against the allowed
// shells. A missing shebang or an interpreter outside the allowed set is
// an UNSUPPORTED_SHELL error.
func CheckRoot(firstLine string, allowed []string) error {
	shell, ok := ParseShebang(firstLine)
	if !ok {
		return errors.New(errors.ErrUnsupportedShell,
			"script does not start with a shebang line").
			WithDetail("first_line", firstLine)
	}
	for _, name := range allowed {
		if shell == name {
			return nil
		}
	}
	return errors.Newf(errors.ErrUnsupportedShell,
		"detected shell %q is not a supported shell (supported: %s)",
		shell, strings.Join(allowed, ", ")).
		WithDetail("shell", shell)
}
