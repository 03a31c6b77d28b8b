package multiregex

// MatchKind selects which engine operation Run uses per candidate.
type MatchKind int

const (
	// KindSearch finds a match anywhere in the text.
	KindSearch MatchKind = iota

	// KindMatch finds a match starting at the beginning of the text.
	KindMatch

	// KindFullMatch finds a match covering the whole text.
	KindFullMatch
)

// String returns the operation name.
func (k MatchKind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindFullMatch:
		return "fullmatch"
	default:
		return "search"
	}
}

// Result pairs a pattern with its engine match.
type Result struct {
	Pattern *Pattern
	Match   Match
}

// Search runs the engine's search operation over the candidates for
// text and returns the patterns that matched, in registration order.
func (m *Matcher) Search(text string) []Result {
	return m.Run(KindSearch, text, true)
}

// Match is like Search with the engine's match-from-start operation.
func (m *Matcher) Match(text string) []Result {
	return m.Run(KindMatch, text, true)
}

// FullMatch is like Search with the engine's full-match operation.
func (m *Matcher) FullMatch(text string) []Result {
	return m.Run(KindFullMatch, text, true)
}

// Run evaluates text against the registered patterns and returns the
// (pattern, match) pairs that matched, in registration order.
//
// With usePrematchers true only the resolved candidates are attempted;
// with false every pattern is run unconditionally, which is useful to
// cross-check prematcher soundness (both variants must return identical
// results for the same kind and text).
//
// When profiling is enabled, every attempted pattern counts one
// attempt, and every attempted pattern the engine then rejected counts
// one prematcher false positive.
func (m *Matcher) Run(kind MatchKind, text string, usePrematchers bool) []Result {
	candidates := m.patterns
	if usePrematchers {
		candidates = m.Candidates(text)
	}

	results := make([]Result, 0, len(candidates))
	for _, p := range candidates {
		match, ok := p.run(kind, text)
		if m.profiling {
			p.recordAttempt(ok)
		}
		if ok {
			results = append(results, Result{Pattern: p, Match: match})
		}
	}
	return results
}
