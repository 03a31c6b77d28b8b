package multiregex

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Regexp2Engine adapts github.com/dlclark/regexp2, for callers that need
// regex features beyond RE2 (backreferences, lookaround) or its richer
// match objects. Select it with WithEngine:
//
//	m, err := multiregex.NewWithSpecs(specs, multiregex.WithEngine(multiregex.Regexp2Engine{}))
//
// The adapter configures no match timeout, so regexp2's only query-time
// error source cannot occur; an unexpected engine error panics rather
// than being silently dropped, since dropping a match would break the
// prematching soundness guarantee.
type Regexp2Engine struct {
	// Options is passed through to regexp2.Compile.
	Options regexp2.RegexOptions
}

// Compile implements Engine.
func (e Regexp2Engine) Compile(expr string) (CompiledPattern, error) {
	search, err := regexp2.Compile(expr, e.Options)
	if err != nil {
		return nil, err
	}
	atStart, err := regexp2.Compile(`\A(?:`+expr+`)`, e.Options)
	if err != nil {
		return nil, err
	}
	full, err := regexp2.Compile(`\A(?:`+expr+`)\z`, e.Options)
	if err != nil {
		return nil, err
	}
	return &regexp2Pattern{search: search, atStart: atStart, full: full}, nil
}

type regexp2Pattern struct {
	search  *regexp2.Regexp
	atStart *regexp2.Regexp
	full    *regexp2.Regexp
}

func (p *regexp2Pattern) Search(text string) (Match, bool) {
	return regexp2Run(p.search, text)
}

func (p *regexp2Pattern) Match(text string) (Match, bool) {
	return regexp2Run(p.atStart, text)
}

func (p *regexp2Pattern) FullMatch(text string) (Match, bool) {
	return regexp2Run(p.full, text)
}

func regexp2Run(re *regexp2.Regexp, text string) (Match, bool) {
	m, err := re.FindStringMatch(text)
	if err != nil {
		panic(fmt.Sprintf("multiregex: regexp2 match failed for %q: %v", re.String(), err))
	}
	if m == nil {
		return nil, false
	}
	return &regexp2Match{m: m}, true
}

// regexp2Match adapts a regexp2 match object.
type regexp2Match struct {
	m *regexp2.Match
}

func (m *regexp2Match) Span() (int, int) {
	return m.m.Index, m.m.Index + m.m.Length
}

func (m *regexp2Match) Group(i int) (string, bool) {
	g := m.m.GroupByNumber(i)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

func (m *regexp2Match) Groups() []string {
	gs := m.m.Groups()
	if len(gs) <= 1 {
		return []string{}
	}
	groups := make([]string, 0, len(gs)-1)
	for _, g := range gs[1:] {
		if len(g.Captures) == 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, g.String())
	}
	return groups
}

func (m *regexp2Match) String() string {
	return m.m.String()
}
