// Package automaton provides a multi-needle substring automaton used to
// resolve regex candidate sets.
//
// The automaton is an Aho-Corasick trie with failure links, built once
// from the full mapping of prematcher needle -> pattern indices and
// immutable afterwards. A single scan over an input reports every
// occurrence of every needle in O(len(input) + matches).
//
// The node arena is a flat slice indexed by integer state id with a
// 256-way transition table per node. This keeps construction and
// traversal allocation-predictable and avoids ownership cycles of a
// pointer-built trie.
//
// Inputs are normalized before scanning: lowercased, with non-ASCII bytes
// dropped (the surviving bytes are concatenated, a dropped byte is not a
// separator). Needles are required to be in that normal form already.
package automaton

import (
	"fmt"
	"sort"

	"github.com/Quantco/multiregex/internal/ascii"
)

// BuildError indicates a misuse of the builder or a failure to finalize
// the automaton. For well-formed needle sets this never happens; callers
// treat it as an invariant violation, not a recoverable condition.
type BuildError struct {
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return "automaton build error: " + e.Message
}

// node is a state in the automaton arena.
type node struct {
	// trans[b] is the next state for input byte b, or -1 if absent.
	trans [256]int32

	// fail is the state for the longest proper suffix of the current
	// path that is also a path from the root.
	fail int32

	// out lists the needle ids ending at this state, including needles
	// reachable through failure links (merged during Build).
	out []int32
}

// needle is a registered substring with its associated pattern indices.
type needle struct {
	text     string
	patterns []int // ascending, unique
}

// Builder collects needle -> pattern-index associations and compiles
// them into an Automaton.
//
// Example:
//
//	b := automaton.NewBuilder()
//	b.Insert("foo", 0)
//	b.Insert("foo", 2)
//	b.Insert("bar", 1)
//	a, err := b.Build()
type Builder struct {
	needles map[string]map[int]struct{}
	built   bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{needles: make(map[string]map[int]struct{})}
}

// Insert associates a needle with a pattern index. Inserting the same
// association twice is a no-op; distinct patterns sharing a needle
// aggregate on it.
//
// The needle must be non-empty, all-lowercase, all-ASCII (scanning
// lowercases the input, so any other needle could never match), and the
// pattern index must be non-negative. Violations and inserting after
// Build return a *BuildError.
func (b *Builder) Insert(needle string, pattern int) error {
	if b.built {
		return &BuildError{Message: "insert after Build"}
	}
	if needle == "" {
		return &BuildError{Message: "empty needle"}
	}
	if !ascii.IsLowerASCII(needle) {
		return &BuildError{Message: fmt.Sprintf("needle %q is not lowercase ASCII", needle)}
	}
	if pattern < 0 {
		return &BuildError{Message: fmt.Sprintf("negative pattern index %d", pattern)}
	}
	set, ok := b.needles[needle]
	if !ok {
		set = make(map[int]struct{})
		b.needles[needle] = set
	}
	set[pattern] = struct{}{}
	return nil
}

// Build compiles the collected needles into an immutable Automaton.
// Needles are inserted into the trie in sorted order and pattern indices
// are stored ascending, so the automaton structure is fully determined
// by the needle set. Build may be called once; a second call returns a
// *BuildError.
func (b *Builder) Build() (*Automaton, error) {
	if b.built {
		return nil, &BuildError{Message: "Build called twice"}
	}
	b.built = true

	texts := make([]string, 0, len(b.needles))
	for text := range b.needles {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	a := &Automaton{nodes: make([]node, 1, 1+len(texts)*4)}
	initNode(&a.nodes[0])

	a.needles = make([]needle, 0, len(texts))
	for id, text := range texts {
		patterns := make([]int, 0, len(b.needles[text]))
		for p := range b.needles[text] {
			patterns = append(patterns, p)
		}
		sort.Ints(patterns)
		a.needles = append(a.needles, needle{text: text, patterns: patterns})
		a.insert(text, int32(id))
	}

	a.buildFailureLinks()
	return a, nil
}

// Automaton is the compiled multi-needle substring matcher. It is
// immutable and safe for concurrent scans.
type Automaton struct {
	nodes   []node
	needles []needle
}

func initNode(n *node) {
	for i := range n.trans {
		n.trans[i] = -1
	}
}

// insert adds one needle path to the trie.
func (a *Automaton) insert(text string, id int32) {
	state := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		next := a.nodes[state].trans[b]
		if next == -1 {
			next = int32(len(a.nodes))
			a.nodes[state].trans[b] = next
			a.nodes = append(a.nodes, node{})
			initNode(&a.nodes[next])
		}
		state = next
	}
	a.nodes[state].out = append(a.nodes[state].out, id)
}

// buildFailureLinks computes failure links breadth-first and merges the
// output sets of failure targets, so a state reports every needle ending
// at its position.
func (a *Automaton) buildFailureLinks() {
	queue := make([]int32, 0, len(a.nodes))
	for b := 0; b < 256; b++ {
		if s := a.nodes[0].trans[b]; s != -1 {
			a.nodes[s].fail = 0
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := 0; b < 256; b++ {
			s := a.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			queue = append(queue, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[b] == -1 {
				f = a.nodes[f].fail
			}
			if next := a.nodes[f].trans[b]; next != -1 {
				a.nodes[s].fail = next
			} else {
				a.nodes[s].fail = 0
			}

			a.nodes[s].out = append(a.nodes[s].out, a.nodes[a.nodes[s].fail].out...)
		}
	}
}

// Scan normalizes text (lowercase, non-ASCII bytes dropped) and walks it
// once, calling visit for every occurrence of every needle. The visit
// callback receives the needle and its associated pattern indices in
// ascending order; returning false stops the scan early.
//
// The patterns slice is shared automaton state and must not be modified
// or retained by the callback.
func (a *Automaton) Scan(text string, visit func(needle string, patterns []int) bool) {
	s := ascii.ToLowerASCII(text)
	state := int32(0)
	for i := 0; i < len(s); i++ {
		b := s[i]
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if next := a.nodes[state].trans[b]; next != -1 {
			state = next
		}
		for _, id := range a.nodes[state].out {
			n := &a.needles[id]
			if !visit(n.text, n.patterns) {
				return
			}
		}
	}
}

// NeedleCount returns the number of distinct needles.
func (a *Automaton) NeedleCount() int {
	return len(a.needles)
}

// NodeCount returns the number of states in the arena, including the root.
func (a *Automaton) NodeCount() int {
	return len(a.nodes)
}

// HeapBytes returns the approximate memory used by the automaton.
func (a *Automaton) HeapBytes() int {
	const nodeSize = 256*4 + 4 + 24 // trans + fail + out header
	total := len(a.nodes) * nodeSize
	for i := range a.nodes {
		total += len(a.nodes[i].out) * 4
	}
	for i := range a.needles {
		total += len(a.needles[i].text) + len(a.needles[i].patterns)*8
	}
	return total
}
