package expander

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/arthur-debert/shld/pkg/errors"
	"github.com/arthur-debert/shld/pkg/types"
)

// hasDirectivePrefix is the cheap pre-check applied to every line: the
// first whitespace-separated token is the literal `source` or `.`.
// Lines passing it are confirmed (or rejected) by parseDirective.
func hasDirectivePrefix(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && (fields[0] == "source" || fields[0] == ".")
}

// parseDirective confirms that a pre-checked line is a well-formed source
// directive and extracts its target path. The line must parse as a single
// POSIX simple command with exactly one argument, and the argument must be
// fully literal. Anything else is MALFORMED_DIRECTIVE: passing such a
// line through would leave a script that still sources at runtime.
func (e *Expander) parseDirective(file string, lineNo int, line string) (*types.Directive, error) {
	malformed := func(reason string) error {
		return errors.Newf(errors.ErrMalformedDirective,
			"malformed source directive at %s:%d: %s", file, lineNo, reason).
			WithDetail("file", file).
			WithDetail("line", lineNo).
			WithDetail("directive", strings.TrimSpace(line))
	}

	parsed, err := e.parser.Parse(strings.NewReader(line), file)
	if err != nil {
		return nil, malformed("not a valid shell command")
	}
	if len(parsed.Stmts) != 1 {
		return nil, malformed("expected a single source command")
	}

	stmt := parsed.Stmts[0]
	if stmt.Negated || stmt.Background || len(stmt.Redirs) > 0 {
		return nil, malformed("source command carries extra shell syntax")
	}

	call, ok := stmt.Cmd.(*syntax.CallExpr)
	if !ok || len(call.Assigns) > 0 {
		return nil, malformed("not a plain source command")
	}

	name := call.Args[0].Lit()
	if name != "source" && name != "." {
		return nil, malformed("not a source command")
	}

	switch {
	case len(call.Args) < 2:
		return nil, malformed("missing path argument")
	case len(call.Args) > 2:
		// Argument forwarding to sourced scripts is not supported.
		return nil, malformed("extra arguments after path")
	}

	target, ok := literalWord(call.Args[1])
	if !ok {
		return nil, malformed("path argument is not a literal")
	}
	if target == "" {
		return nil, malformed("empty path argument")
	}

	return &types.Directive{
		File:   file,
		Line:   lineNo,
		Target: target,
		Raw:    line,
	}, nil
}

// literalWord flattens a word into its string value, accepting only
// plain, single-quoted, and expansion-free double-quoted parts. Words
// containing variables, substitutions, or globs are not resolvable
// without evaluating the shell, which shld does not do.
func literalWord(w *syntax.Word) (string, bool) {
	var b strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(p.Value)
		case *syntax.SglQuoted:
			if p.Dollar {
				return "", false
			}
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			if p.Dollar {
				return "", false
			}
			for _, inner := range p.Parts {
				lit, ok := inner.(*syntax.Lit)
				if !ok {
					return "", false
				}
				b.WriteString(lit.Value)
			}
		default:
			return "", false
		}
	}
	return b.String(), true
}
