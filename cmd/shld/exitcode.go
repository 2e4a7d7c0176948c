package shld

import (
	"github.com/arthur-debert/shld/pkg/errors"
)

// Exit codes, one per failure class, so scripted callers can branch on
// what went wrong without parsing stderr.
const (
	ExitSuccess          = 0
	ExitGeneral          = 1
	ExitSourceNotFound   = 2
	ExitCyclicInclusion  = 3
	ExitMalformed        = 4
	ExitOutputExists     = 5
	ExitUnsupportedShell = 6
	ExitIgnoreMisuse     = 7
	ExitConfigError      = 8
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch errors.CodeOf(err) {
	case errors.ErrSourceNotFound:
		return ExitSourceNotFound
	case errors.ErrCyclicInclusion:
		return ExitCyclicInclusion
	case errors.ErrMalformedDirective:
		return ExitMalformed
	case errors.ErrOutputExists:
		return ExitOutputExists
	case errors.ErrUnsupportedShell:
		return ExitUnsupportedShell
	case errors.ErrIgnoreMisuse:
		return ExitIgnoreMisuse
	case errors.ErrConfigLoad, errors.ErrConfigParse:
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
