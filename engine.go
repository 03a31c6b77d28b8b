package multiregex

import "regexp"

// Engine compiles regex sources for the matcher. The engine is
// an external collaborator: prematching only narrows the set of patterns
// the engine has to run, it never interprets regex semantics itself.
//
// In particular, prematching's own lowercasing does not implement
// case-insensitive regex semantics; case-insensitivity of the final
// match remains the engine's (or the pattern's) responsibility.
type Engine interface {
	// Compile compiles one regex source. Compilation errors abort
	// matcher construction.
	Compile(expr string) (CompiledPattern, error)
}

// CompiledPattern runs one compiled regex against a text. The three
// operations mirror the conventional search / match-from-start /
// full-match triple.
type CompiledPattern interface {
	// Search finds the leftmost match anywhere in text.
	Search(text string) (Match, bool)

	// Match finds a match starting at the beginning of text.
	Match(text string) (Match, bool)

	// FullMatch finds a match covering all of text.
	FullMatch(text string) (Match, bool)
}

// Match is a single engine match with span and capture-group access.
type Match interface {
	// Span returns the start and end byte offsets of the match.
	Span() (start, end int)

	// Group returns the text of capture group i (group 0 is the whole
	// match). The second result is false when the group did not
	// participate in the match or does not exist.
	Group(i int) (string, bool)

	// Groups returns the texts of capture groups 1..n, with "" for
	// groups that did not participate.
	Groups() []string

	// String returns the matched text.
	String() string
}

// StdEngine is the default Engine, backed by the standard library's
// regexp package. Match and FullMatch are implemented by compiling
// anchored variants (`\A(?:expr)` and `\A(?:expr)\z`) alongside the
// plain expression; the non-capturing wrapper keeps group numbering
// intact.
type StdEngine struct{}

// Compile implements Engine.
func (StdEngine) Compile(expr string) (CompiledPattern, error) {
	search, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	atStart, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, err
	}
	full, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, err
	}
	return &stdPattern{search: search, atStart: atStart, full: full}, nil
}

type stdPattern struct {
	search  *regexp.Regexp
	atStart *regexp.Regexp
	full    *regexp.Regexp
}

func (p *stdPattern) Search(text string) (Match, bool) {
	return stdRun(p.search, text)
}

func (p *stdPattern) Match(text string) (Match, bool) {
	return stdRun(p.atStart, text)
}

func (p *stdPattern) FullMatch(text string) (Match, bool) {
	return stdRun(p.full, text)
}

func stdRun(re *regexp.Regexp, text string) (Match, bool) {
	idx := re.FindStringSubmatchIndex(text)
	if idx == nil {
		return nil, false
	}
	return &stdMatch{text: text, idx: idx}, true
}

// stdMatch adapts a stdlib submatch index vector.
type stdMatch struct {
	text string
	idx  []int
}

func (m *stdMatch) Span() (int, int) {
	return m.idx[0], m.idx[1]
}

func (m *stdMatch) Group(i int) (string, bool) {
	if i < 0 || 2*i+1 >= len(m.idx) {
		return "", false
	}
	start, end := m.idx[2*i], m.idx[2*i+1]
	if start < 0 {
		return "", false
	}
	return m.text[start:end], true
}

func (m *stdMatch) Groups() []string {
	n := len(m.idx)/2 - 1
	groups := make([]string, n)
	for i := 1; i <= n; i++ {
		groups[i-1], _ = m.Group(i)
	}
	return groups
}

func (m *stdMatch) String() string {
	return m.text[m.idx[0]:m.idx[1]]
}
