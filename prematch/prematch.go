// Package prematch derives prematchers from regex patterns.
//
// A prematcher is a literal substring that must appear in a text (after
// lowercasing and dropping non-ASCII bytes) for the regex to have any
// chance of matching, similar to a Bloom filter: a prematcher hit says
// nothing, a prematcher miss rules the pattern out.
//
// Generation walks the pattern's syntax tree (regexp/syntax) and is
// deliberately minimal. Only two structural transformations are applied:
// peeling a single redundant capture group wrapping the whole pattern,
// and flattening one level of alternation. Anything else (classes,
// repetitions, anchors, boundaries) merely terminates the current literal
// run. Generation is best-effort: patterns with no derivable literal fail
// with a *GenerationError and need caller-supplied prematchers instead.
//
// Examples:
//
//	prematch.Generate(`\bfoo\b`)       // ["foo"]
//	prematch.Generate(`(aaa|bb)`)      // ["aaa", "bb"]
//	prematch.Generate(`Gemäß Richtlinie`) // ["gem richtlinie"]
//	prematch.Generate(`[0-9]+`)        // error: no literal to extract
package prematch

import (
	"fmt"
	"regexp/syntax"

	"github.com/Quantco/multiregex/internal/ascii"
)

// GenerationError indicates that no sound prematcher could be derived
// from a pattern. The caller must supply explicit prematchers for the
// pattern, or an empty set to bypass prematching for it.
type GenerationError struct {
	// Pattern is the regex source generation failed for.
	Pattern string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("cannot generate prematchers for %q; provide explicit prematchers or an empty set to disable prematching", e.Pattern)
}

// ValidationError indicates a prematcher violating the format contract:
// prematchers must be non-empty, all-lowercase, all-ASCII.
type ValidationError struct {
	// Prematcher is the offending token.
	Prematcher string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("prematcher %q must be non-empty, all-lowercase, all-ASCII", e.Prematcher)
}

// Validate checks the prematcher format contract. It returns a
// *ValidationError if p is empty, contains a byte outside the ASCII
// range, or contains an uppercase ASCII letter.
func Validate(p string) error {
	if p == "" || !ascii.IsLowerASCII(p) {
		return &ValidationError{Prematcher: p}
	}
	return nil
}

// Generate derives prematchers for the given regex source.
//
// The result is either a single terminal (the longest literal run at the
// top level of the pattern, lowercased and stripped of non-ASCII bytes),
// or, for a top-level alternation, one terminal per branch. Terminals of
// equal length tie-break on first appearance, so results are
// deterministic for a given pattern.
//
// Generate fails with a *GenerationError when no terminal can be
// extracted: for example a pattern that starts and ends with character
// classes and contains no literal, an alternation with an empty branch,
// or a nested alternation.
func Generate(expr string) ([]string, error) {
	re, err := syntax.Parse(expr, syntax.Perl)
	if err != nil {
		return nil, err
	}

	ast := peelGroup(re)

	// Simple case: a literal run at the top level.
	if t := longestTerminal(ast); t != "" {
		return []string{t}, nil
	}

	// Branch case: every branch of a top-level alternation must have its
	// own terminal; any branch without one makes the union unsound.
	// Nested alternations land here as a branch with no terminal and fail.
	if ast.Op == syntax.OpAlternate {
		out := make([]string, 0, len(ast.Sub))
		seen := make(map[string]struct{}, len(ast.Sub))
		for _, branch := range ast.Sub {
			t := longestTerminal(peelGroup(branch))
			if t == "" {
				return nil, &GenerationError{Pattern: expr}
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	return nil, &GenerationError{Pattern: expr}
}

// peelGroup unwraps a single capture group wrapping the whole AST.
// regexp/syntax folds inline flags into the nodes they affect, so a
// capture wrapper never carries flags of its own and is always safe to
// peel. Exactly one level is removed.
func peelGroup(re *syntax.Regexp) *syntax.Regexp {
	if re.Op == syntax.OpCapture && len(re.Sub) == 1 {
		return re.Sub[0]
	}
	return re
}

// longestTerminal returns the longest normalized literal run at the top
// level of the AST, or "" if there is none.
//
// The top level is the sub-expression list of an OpConcat root, or the
// root itself otherwise. Runs are maximal sequences of consecutive
// OpLiteral nodes; every other node terminates the current run. Runs are
// normalized (lowercase, non-ASCII dropped) before comparing lengths, so
// a run that normalizes to the empty string never wins.
func longestTerminal(re *syntax.Regexp) string {
	list := []*syntax.Regexp{re}
	if re.Op == syntax.OpConcat {
		list = re.Sub
	}

	best := ""
	run := make([]rune, 0, 16)
	flush := func() {
		if len(run) == 0 {
			return
		}
		t := ascii.ToLowerASCII(string(run))
		if len(t) > len(best) {
			best = t
		}
		run = run[:0]
	}

	for _, sub := range list {
		if sub.Op == syntax.OpLiteral {
			run = append(run, sub.Rune...)
			continue
		}
		flush()
	}
	flush()
	return best
}
