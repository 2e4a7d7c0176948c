// Package expander implements the core of shld: recursively inlining
// source/. directives into a single flattened script.
//
// Expansion is depth-first and synchronous. The output is the input's
// bytes with every non-ignored directive line replaced by the expanded
// content of its target; everything else passes through verbatim,
// including line endings. Any failure aborts the whole expansion, so the
// caller never sees a half-inlined script.
package expander
