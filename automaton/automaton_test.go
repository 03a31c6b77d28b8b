package automaton

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

type hit struct {
	needle   string
	patterns []int
}

// scanAll collects every hit of a scan.
func scanAll(a *Automaton, text string) []hit {
	var hits []hit
	a.Scan(text, func(needle string, patterns []int) bool {
		hits = append(hits, hit{needle, append([]int(nil), patterns...)})
		return true
	})
	return hits
}

func build(t *testing.T, needles map[string][]int) *Automaton {
	t.Helper()
	b := NewBuilder()
	for needle, patterns := range needles {
		for _, p := range patterns {
			if err := b.Insert(needle, p); err != nil {
				t.Fatalf("Insert(%q, %d): %v", needle, p, err)
			}
		}
	}
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return a
}

func TestScanBasic(t *testing.T) {
	a := build(t, map[string][]int{
		"foo": {0},
		"bar": {1, 2},
	})

	hits := scanAll(a, "a foo and a bar")
	want := []hit{
		{"foo", []int{0}},
		{"bar", []int{1, 2}},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("hits = %v, want %v", hits, want)
	}
}

func TestScanEveryOccurrence(t *testing.T) {
	a := build(t, map[string][]int{
		"a":  {0},
		"aa": {1},
	})

	// "aaa" contains "a" three times and "aa" twice; all must be
	// reported. At a shared end position the longer needle comes first,
	// its suffixes follow via the failure links.
	hits := scanAll(a, "aaa")
	want := []hit{
		{"a", []int{0}},
		{"aa", []int{1}},
		{"a", []int{0}},
		{"aa", []int{1}},
		{"a", []int{0}},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("hits = %v, want %v", hits, want)
	}
}

func TestScanOverlappingNeedles(t *testing.T) {
	// "b" is strictly inside "abc"; both must be reported at their
	// respective end positions.
	a := build(t, map[string][]int{
		"abc": {0},
		"b":   {1},
	})

	hits := scanAll(a, "xabcx")
	want := []hit{
		{"b", []int{1}},
		{"abc", []int{0}},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("hits = %v, want %v", hits, want)
	}
}

func TestScanSharedSuffixes(t *testing.T) {
	// "she" ends where "he" ends; failure-link output merging must
	// report both at the same position.
	a := build(t, map[string][]int{
		"she": {0},
		"he":  {1},
		"hers": {2},
	})

	hits := scanAll(a, "ushers")
	want := []hit{
		{"she", []int{0}},
		{"he", []int{1}},
		{"hers", []int{2}},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("hits = %v, want %v", hits, want)
	}
}

func TestScanNormalizesInput(t *testing.T) {
	a := build(t, map[string][]int{"ab": {0}})

	for _, text := range []string{"ab", "AB", "Ab", "aÄb", "ÄaÖbÜ"} {
		hits := scanAll(a, text)
		if len(hits) != 1 || hits[0].needle != "ab" {
			t.Errorf("Scan(%q) hits = %v, want one hit on %q", text, hits, "ab")
		}
	}

	if hits := scanAll(a, "a b"); len(hits) != 0 {
		t.Errorf("Scan(%q) hits = %v, want none", "a b", hits)
	}
}

func TestScanEarlyStop(t *testing.T) {
	a := build(t, map[string][]int{"a": {0}})

	calls := 0
	a.Scan("aaaa", func(string, []int) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("visit called %d times after returning false, want 1", calls)
	}
}

func TestScanDeterministic(t *testing.T) {
	needles := map[string][]int{
		"a": {3, 1}, "ab": {0}, "b": {2}, "abc": {4}, "bc": {5},
	}
	first := scanAll(build(t, needles), "abcabc")
	for i := 0; i < 5; i++ {
		again := scanAll(build(t, needles), "abcabc")
		if !reflect.DeepEqual(again, first) {
			t.Fatalf("scan %d differs: %v vs %v", i, again, first)
		}
	}
}

func TestPatternIndicesAscending(t *testing.T) {
	a := build(t, map[string][]int{"x": {5, 1, 3, 1, 0}})

	hits := scanAll(a, "x")
	if len(hits) != 1 {
		t.Fatalf("hits = %v, want one", hits)
	}
	got := hits[0].patterns
	if !sort.IntsAreSorted(got) || !reflect.DeepEqual(got, []int{0, 1, 3, 5}) {
		t.Errorf("patterns = %v, want [0 1 3 5]", got)
	}
}

func TestBuilderErrors(t *testing.T) {
	t.Run("empty needle", func(t *testing.T) {
		b := NewBuilder()
		checkBuildError(t, b.Insert("", 0))
	})

	t.Run("uppercase needle", func(t *testing.T) {
		b := NewBuilder()
		checkBuildError(t, b.Insert("Foo", 0))
	})

	t.Run("non-ascii needle", func(t *testing.T) {
		b := NewBuilder()
		checkBuildError(t, b.Insert("gemäß", 0))
	})

	t.Run("negative pattern", func(t *testing.T) {
		b := NewBuilder()
		checkBuildError(t, b.Insert("a", -1))
	})

	t.Run("insert after build", func(t *testing.T) {
		b := NewBuilder()
		if err := b.Insert("a", 0); err != nil {
			t.Fatal(err)
		}
		if _, err := b.Build(); err != nil {
			t.Fatal(err)
		}
		checkBuildError(t, b.Insert("b", 1))
	})

	t.Run("double build", func(t *testing.T) {
		b := NewBuilder()
		if _, err := b.Build(); err != nil {
			t.Fatal(err)
		}
		_, err := b.Build()
		checkBuildError(t, err)
	})
}

func TestEmptyAutomaton(t *testing.T) {
	a := build(t, nil)

	if hits := scanAll(a, "anything at all"); hits != nil {
		t.Errorf("empty automaton reported hits: %v", hits)
	}
	if a.NeedleCount() != 0 {
		t.Errorf("NeedleCount() = %d, want 0", a.NeedleCount())
	}
	if a.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1 (root only)", a.NodeCount())
	}
}

func TestIntrospection(t *testing.T) {
	a := build(t, map[string][]int{"ab": {0}, "ac": {1}})

	if a.NeedleCount() != 2 {
		t.Errorf("NeedleCount() = %d, want 2", a.NeedleCount())
	}
	// root + "a" + "b" + "c"
	if a.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", a.NodeCount())
	}
	if a.HeapBytes() <= 0 {
		t.Errorf("HeapBytes() = %d, want > 0", a.HeapBytes())
	}
}

func checkBuildError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Errorf("error type %T, want *BuildError", err)
	}
}
