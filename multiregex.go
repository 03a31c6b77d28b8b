// Package multiregex speeds up matching many regexes against a string
// with non-regex substring "prematchers", similar to Bloom filters.
//
// Each registered pattern carries a set of simple substrings that must
// appear in a text (case-insensitively, ignoring non-ASCII bytes) for
// the regex to have any chance of matching. All prematchers are compiled
// into a single Aho-Corasick automaton; one linear scan per input yields
// the reduced candidate set of regexes worth actually running. The hit
// is a necessary, not sufficient, condition: a candidate still has to be
// confirmed by the real regex engine, but a pattern that is ruled out is
// guaranteed not to match.
//
// Prematchers are generated automatically from the pattern source where
// possible (see the prematch package); patterns this fails for need a
// handcrafted prematcher set, or an explicit empty set to opt out of
// prematching.
//
// Basic usage:
//
//	m, err := multiregex.New([]string{
//	    `\bfoo\b`,
//	    `(aaa|bb) bar`,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range m.Search("some text with foo") {
//	    fmt.Println(r.Pattern.Expr(), r.Match.String())
//	}
//
// Per-pattern control and profiling:
//
//	m, err := multiregex.NewWithSpecs([]multiregex.PatternSpec{
//	    {Expr: `[0-9]+`, Prematchers: []string{}},           // never prematched
//	    {Expr: `Gemäß (Richtlinie|Verordnung)`},             // auto-generated
//	    {Expr: `complex.*stuff`, Prematchers: []string{"stuff"}}, // override
//	}, multiregex.WithProfiling())
//
// A matcher is immutable after construction. With profiling disabled it
// is safe for unsynchronized concurrent use; profiling counters are
// updated atomically, so concurrent queries remain safe either way.
package multiregex

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Quantco/multiregex/automaton"
	"github.com/Quantco/multiregex/prematch"
)

// Matcher filters a fixed set of regex patterns through their
// prematchers before running the real regex engine.
type Matcher struct {
	patterns  []*Pattern
	auto      *automaton.Automaton
	bypass    []int // indices of patterns with an empty prematcher set
	profiling bool
}

// config collects construction options.
type config struct {
	profiling bool
	engine    Engine
	logger    zerolog.Logger
}

// Option configures matcher construction.
type Option func(*config)

// WithProfiling enables prematcher false-positive accounting on Search,
// Match, FullMatch and Run. Retrieve the profile with
// FalsePositiveReport or FormatFalsePositiveReport.
func WithProfiling() Option {
	return func(c *config) { c.profiling = true }
}

// WithEngine selects the regex engine candidates are run through.
// The default is StdEngine.
func WithEngine(e Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithLogger sets a logger for construction-time diagnostics (generated
// prematchers per pattern, automaton size). The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New creates a Matcher with automatically generated prematchers for
// every pattern. It fails if any pattern has no derivable prematcher
// (use NewWithSpecs to override or bypass prematching per pattern), if
// any pattern does not compile, or if a construction invariant is
// violated. No partially built matcher is ever returned.
func New(exprs []string, opts ...Option) (*Matcher, error) {
	specs := make([]PatternSpec, len(exprs))
	for i, expr := range exprs {
		specs[i] = PatternSpec{Expr: expr}
	}
	return NewWithSpecs(specs, opts...)
}

// NewWithSpecs creates a Matcher with per-pattern prematcher control,
// see PatternSpec.
func NewWithSpecs(specs []PatternSpec, opts ...Option) (*Matcher, error) {
	cfg := config{engine: StdEngine{}, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Matcher{
		patterns:  make([]*Pattern, 0, len(specs)),
		profiling: cfg.profiling,
	}
	builder := automaton.NewBuilder()

	for i, spec := range specs {
		compiled, err := cfg.engine.Compile(spec.Expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %d %q: %w", i, spec.Expr, err)
		}

		prematchers := spec.Prematchers
		generated := false
		if prematchers == nil {
			prematchers, err = prematch.Generate(spec.Expr)
			if err != nil {
				return nil, err
			}
			generated = true
		}
		for _, pm := range prematchers {
			if err := prematch.Validate(pm); err != nil {
				return nil, &ConfigurationError{Err: fmt.Errorf("pattern %d %q: %w", i, spec.Expr, err)}
			}
		}

		p := newPattern(spec.Expr, i, prematchers, compiled)
		m.patterns = append(m.patterns, p)

		if len(p.prematchers) == 0 {
			m.bypass = append(m.bypass, i)
		}
		for _, pm := range p.prematchers {
			if err := builder.Insert(pm, i); err != nil {
				return nil, &AutomatonError{Err: err}
			}
		}

		cfg.logger.Debug().
			Str("pattern", spec.Expr).
			Strs("prematchers", p.prematchers).
			Bool("generated", generated).
			Msg("registered pattern")
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, &AutomatonError{Err: err}
	}
	m.auto = auto

	cfg.logger.Debug().
		Int("patterns", len(m.patterns)).
		Int("needles", auto.NeedleCount()).
		Int("nodes", auto.NodeCount()).
		Int("heap_bytes", auto.HeapBytes()).
		Msg("prematcher automaton built")

	return m, nil
}

// Patterns returns the registered patterns in registration order.
func (m *Matcher) Patterns() []*Pattern {
	return append([]*Pattern(nil), m.patterns...)
}

// Len returns the number of registered patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}
