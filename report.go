package multiregex

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
)

// PatternProfile summarizes prematcher effectiveness for one pattern: of
// Attempts engine runs the prematchers let through, FalsePositives were
// rejected by the real regex.
type PatternProfile struct {
	Pattern        *Pattern
	Attempts       uint64
	FalsePositives uint64
}

// Rate returns the false-positive rate FalsePositives/Attempts.
func (p PatternProfile) Rate() float64 {
	if p.Attempts == 0 {
		return 0
	}
	return float64(p.FalsePositives) / float64(p.Attempts)
}

// FalsePositiveReport returns the profiles of all patterns with at
// least one prematcher false positive, sorted by descending
// false-positive count; ties keep registration order. topN limits the
// result to the worst N patterns, topN <= 0 returns all.
//
// Fails with ErrProfilingDisabled unless the matcher was constructed
// with WithProfiling.
func (m *Matcher) FalsePositiveReport(topN int) ([]PatternProfile, error) {
	if !m.profiling {
		return nil, ErrProfilingDisabled
	}

	profiles := make([]PatternProfile, 0, len(m.patterns))
	for _, p := range m.patterns {
		misses := atomic.LoadUint64(&p.misses)
		if misses == 0 {
			continue
		}
		profiles = append(profiles, PatternProfile{
			Pattern:        p,
			Attempts:       atomic.LoadUint64(&p.attempts),
			FalsePositives: misses,
		})
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].FalsePositives > profiles[j].FalsePositives
	})
	if topN > 0 && topN < len(profiles) {
		profiles = profiles[:topN]
	}
	return profiles, nil
}

// FormatFalsePositiveReport renders FalsePositiveReport as a text
// table, worst patterns first.
func (m *Matcher) FormatFalsePositiveReport(topN int) (string, error) {
	profiles, err := m.FalsePositiveReport(topN)
	if err != nil {
		return "", err
	}

	lines := []string{
		"FP count | FP rate | Pattern / Prematchers",
		"---------+---------+----------------------",
	}
	if len(profiles) == 0 {
		lines = append(lines, "(No data)")
	}
	for _, p := range profiles {
		lines = append(lines, fmt.Sprintf("%8d |    %.2f | %s / %v",
			p.FalsePositives, p.Rate(), p.Pattern.Expr(), p.Pattern.Prematchers()))
	}
	return strings.Join(lines, "\n"), nil
}
