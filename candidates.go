package multiregex

import (
	"github.com/Quantco/multiregex/internal/sparse"
)

// candidateIndices resolves the candidate index set for text: the union
// of all pattern indices reported by the automaton scan, plus every
// pattern whose prematcher set is empty. The scan stops early once all
// patterns are candidates.
func (m *Matcher) candidateIndices(text string) *sparse.Set {
	set := sparse.NewSet(len(m.patterns))
	for _, i := range m.bypass {
		set.Insert(uint32(i))
	}
	if set.Len() == len(m.patterns) {
		return set
	}
	m.auto.Scan(text, func(_ string, patterns []int) bool {
		for _, p := range patterns {
			set.Insert(uint32(p))
		}
		return set.Len() < len(m.patterns)
	})
	return set
}

// Candidates returns the patterns that potentially match text, in
// registration order. The result is a superset of the patterns that
// actually match: a pattern is only absent when one of its prematchers
// proves it cannot match.
func (m *Matcher) Candidates(text string) []*Pattern {
	set := m.candidateIndices(text)
	out := make([]*Pattern, 0, set.Len())
	for _, p := range m.patterns {
		if set.Contains(uint32(p.index)) {
			out = append(out, p)
		}
	}
	return out
}

// CandidateSet returns the candidates for text as an unordered set.
func (m *Matcher) CandidateSet(text string) map[*Pattern]struct{} {
	set := m.candidateIndices(text)
	out := make(map[*Pattern]struct{}, set.Len())
	for _, idx := range set.Values() {
		out[m.patterns[idx]] = struct{}{}
	}
	return out
}
