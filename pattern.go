package multiregex

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Pattern is a registered regex with its prematchers.
//
// A Pattern is created by the matcher at construction time and immutable
// afterwards, except for the profiling counters, which are maintained
// atomically when profiling is enabled.
type Pattern struct {
	expr        string
	index       int
	prematchers []string // sorted ascending; empty means always a candidate
	compiled    CompiledPattern

	// Profiling counters, updated via sync/atomic.
	attempts uint64
	misses   uint64
}

// PatternSpec describes one pattern for NewWithSpecs.
type PatternSpec struct {
	// Expr is the regex source.
	Expr string

	// Prematchers controls prematching for this pattern:
	//   - nil: derive prematchers automatically (prematch.Generate)
	//   - empty non-nil slice: disable prematching, the pattern is
	//     always a candidate
	//   - non-empty: use exactly these prematchers (still validated)
	Prematchers []string
}

// newPattern builds a Pattern with a defensive, sorted, deduplicated
// prematcher copy.
func newPattern(expr string, index int, prematchers []string, compiled CompiledPattern) *Pattern {
	pms := append([]string(nil), prematchers...)
	sort.Strings(pms)
	pms = dedupSorted(pms)
	return &Pattern{
		expr:        expr,
		index:       index,
		prematchers: pms,
		compiled:    compiled,
	}
}

func dedupSorted(ss []string) []string {
	out := ss[:0]
	for i, s := range ss {
		if i == 0 || s != ss[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// Expr returns the regex source the pattern was registered with.
func (p *Pattern) Expr() string {
	return p.expr
}

// Index returns the stable registration index of the pattern.
func (p *Pattern) Index() int {
	return p.index
}

// Prematchers returns a copy of the pattern's prematchers, sorted
// ascending. An empty result means prematching is disabled for this
// pattern.
func (p *Pattern) Prematchers() []string {
	return append([]string(nil), p.prematchers...)
}

// String returns a debug representation of the pattern.
func (p *Pattern) String() string {
	return fmt.Sprintf("pattern{%q, prematchers=%v}", p.expr, p.prematchers)
}

// run dispatches the selected engine operation.
func (p *Pattern) run(kind MatchKind, text string) (Match, bool) {
	switch kind {
	case KindMatch:
		return p.compiled.Match(text)
	case KindFullMatch:
		return p.compiled.FullMatch(text)
	default:
		return p.compiled.Search(text)
	}
}

// recordAttempt bumps the profiling counters for one engine attempt.
func (p *Pattern) recordAttempt(matched bool) {
	atomic.AddUint64(&p.attempts, 1)
	if !matched {
		atomic.AddUint64(&p.misses, 1)
	}
}
