package multiregex_test

import (
	"fmt"
	"log"

	"github.com/Quantco/multiregex"
)

func ExampleNew() {
	m, err := multiregex.New([]string{
		`\bfoo\b`,
		`(aaa|bb) bar`,
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range m.Search("growing aaa barnacles") {
		fmt.Printf("%s => %q\n", r.Pattern.Expr(), r.Match.String())
	}
	// Output: (aaa|bb) bar => "aaa bar"
}

func ExampleMatcher_Candidates() {
	m, err := multiregex.NewWithSpecs([]multiregex.PatternSpec{
		{Expr: `foo.*x`},
		{Expr: `barbar`},
		{Expr: `[0-9]+`, Prematchers: []string{}}, // prematching disabled
	})
	if err != nil {
		log.Fatal(err)
	}

	// Only patterns whose prematchers hit are candidates; patterns with
	// an empty prematcher set always are.
	for _, p := range m.Candidates("a foo b") {
		fmt.Println(p.Expr())
	}
	// Output:
	// foo.*x
	// [0-9]+
}

func ExamplePattern_Prematchers() {
	m, err := multiregex.New([]string{`Gemäß (Richtlinie|Verordnung)`})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(m.Patterns()[0].Prematchers())
	// Output: [gem ]
}

func ExampleMatcher_FormatFalsePositiveReport() {
	m, err := multiregex.NewWithSpecs([]multiregex.PatternSpec{
		{Expr: `(a|a)a`, Prematchers: []string{"a"}},
		{Expr: `aa`},
	}, multiregex.WithProfiling())
	if err != nil {
		log.Fatal(err)
	}

	for _, text := range []string{"a", "aa", "baa"} {
		m.Match(text)
	}

	report, err := m.FormatFalsePositiveReport(0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report)
	// Output:
	// FP count | FP rate | Pattern / Prematchers
	// ---------+---------+----------------------
	//        2 |    0.67 | (a|a)a / [a]
	//        1 |    0.50 | aa / [aa]
}
