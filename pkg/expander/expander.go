package expander

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"mvdan.cc/sh/v3/syntax"

	"github.com/arthur-debert/shld/pkg/config"
	"github.com/arthur-debert/shld/pkg/errors"
	"github.com/arthur-debert/shld/pkg/logging"
	"github.com/arthur-debert/shld/pkg/shells"
	"github.com/arthur-debert/shld/pkg/types"
)

// markerState is the ignore-marker lookback state machine: seeing a
// marker line arms stateIgnoreNext for exactly one following line.
type markerState int

const (
	stateNormal markerState = iota
	stateIgnoreNext
)

// Expander flattens a script by recursively inlining its source
// directives. It only reads through the provided filesystem and never
// mutates input files.
type Expander struct {
	fs          types.FS
	cfg         config.Expand
	lowerMarker string
	parser      *syntax.Parser
	log         zerolog.Logger
}

// New creates an Expander. Zero-valued settings fall back to the
// built-in defaults.
func New(fs types.FS, cfg config.Expand) *Expander {
	if cfg.IgnoreMarker == "" {
		cfg.IgnoreMarker = config.Default().Expand.IgnoreMarker
	}
	if len(cfg.Shells) == 0 {
		cfg.Shells = shells.Default()
	}
	return &Expander{
		fs:          fs,
		cfg:         cfg,
		lowerMarker: strings.ToLower(cfg.IgnoreMarker),
		parser:      syntax.NewParser(syntax.Variant(syntax.LangPOSIX)),
		log:         logging.GetLogger("expander"),
	}
}

// Expand returns the fully flattened script rooted at path.
func (e *Expander) Expand(path string) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.ExpandTo(&buf, path); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExpandTo writes the fully flattened script rooted at path to w.
// On error the bytes already written to w are meaningless; callers that
// promise atomic output must buffer.
func (e *Expander) ExpandTo(w io.Writer, path string) error {
	return e.expandFile(w, path, &inclusionStack{}, nil)
}

// expandFile emits one file, splicing expanded targets in place of
// directive lines. origin is the directive that pulled this file in,
// nil for the root script.
func (e *Expander) expandFile(w io.Writer, path string, stack *inclusionStack, origin *types.Directive) error {
	canon := canonical(path)
	if stack.contains(canon) {
		return errors.Newf(errors.ErrCyclicInclusion,
			"cyclic inclusion detected: %s", stack.describe(canon)).
			WithDetail("chain", stack.snapshot(canon))
	}

	data, err := e.fs.ReadFile(path)
	if err != nil {
		if origin != nil {
			return errors.Wrapf(err, errors.ErrSourceNotFound,
				"cannot read sourced file %q (included from %s:%d)",
				origin.Target, origin.File, origin.Line).
				WithDetail("target", origin.Target).
				WithDetail("file", origin.File).
				WithDetail("line", origin.Line)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read script %s", path)
	}

	stack.push(canon)
	defer stack.pop()

	lines := splitLines(data)
	root := origin == nil

	if root && e.cfg.CheckShebang {
		var first string
		if len(lines) > 0 {
			first = trimEOL(lines[0])
		}
		if err := shells.CheckRoot(first, e.cfg.Shells); err != nil {
			return err
		}
	}

	state := stateNormal
	for i, raw := range lines {
		lineNo := i + 1
		line := trimEOL(raw)

		if state == stateIgnoreNext {
			state = stateNormal
			if hasDirectivePrefix(line) {
				// Protected directive: emitted verbatim, never parsed.
				if err := e.emit(w, raw); err != nil {
					return err
				}
				e.log.Debug().Str("file", path).Int("line", lineNo).
					Msg("ignore marker honored, directive left verbatim")
				continue
			}
			if e.cfg.Strict {
				return e.ignoreMisuse(path, lineNo-1)
			}
			// Lenient mode: the marker was ordinary content after all.
		}

		if e.isMarker(line) {
			state = stateIgnoreNext
			if err := e.emit(w, raw); err != nil {
				return err
			}
			continue
		}

		if hasDirectivePrefix(line) {
			dir, err := e.parseDirective(path, lineNo, line)
			if err != nil {
				return err
			}
			target := dir.Target
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(path), target)
			}
			e.log.Debug().Str("file", path).Int("line", lineNo).
				Str("target", dir.Target).Msg("expanding source directive")
			if err := e.expandFile(w, target, stack, dir); err != nil {
				return err
			}
			continue
		}

		if err := e.emit(w, raw); err != nil {
			return err
		}
	}

	if state == stateIgnoreNext && e.cfg.Strict {
		return e.ignoreMisuse(path, len(lines))
	}

	if !root && len(lines) > 0 && !hasNewline(lines[len(lines)-1]) {
		e.log.Warn().Str("file", path).
			Msg("included file does not end with a newline; the next line of the including file will join it")
	}

	return nil
}

// isMarker reports whether a line is an ignore-marker comment: the
// marker token as a case-insensitive prefix of the line after leading
// whitespace. A marker in the middle of a line does not count.
func (e *Expander) isMarker(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(strings.ToLower(trimmed), e.lowerMarker)
}

func (e *Expander) ignoreMisuse(path string, markerLine int) error {
	return errors.Newf(errors.ErrIgnoreMisuse,
		"%s marker at %s:%d is not followed by a source directive",
		e.cfg.IgnoreMarker, path, markerLine).
		WithDetail("file", path).
		WithDetail("line", markerLine)
}

func (e *Expander) emit(w io.Writer, raw []byte) error {
	if _, err := w.Write(raw); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write expanded output")
	}
	return nil
}

// canonical normalizes a path for cycle detection. Symlinks are not
// resolved: two spellings of the same file via links are treated as
// distinct, matching what the shell itself would source.
func canonical(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// inclusionStack is the ordered set of files currently being expanded
// on the active recursion path.
type inclusionStack struct {
	paths []string
}

func (s *inclusionStack) contains(p string) bool {
	for _, have := range s.paths {
		if have == p {
			return true
		}
	}
	return false
}

func (s *inclusionStack) push(p string) {
	s.paths = append(s.paths, p)
}

func (s *inclusionStack) pop() {
	s.paths = s.paths[:len(s.paths)-1]
}

// describe renders the inclusion chain ending at the offending path.
func (s *inclusionStack) describe(p string) string {
	return strings.Join(s.snapshot(p), " -> ")
}

func (s *inclusionStack) snapshot(p string) []string {
	chain := make([]string, 0, len(s.paths)+1)
	chain = append(chain, s.paths...)
	return append(chain, p)
}
