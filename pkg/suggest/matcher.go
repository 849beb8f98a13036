package suggest

import (
	"iter"

	"github.com/bastiangx/wordtrie/pkg/trie"
)

// Matcher walks a trie to correct and complete words. Results are produced
// lazily in alphabet order at every branching point; they are not ranked.
type Matcher struct {
	trie *trie.Trie
}

var _ ISuggester = (*Matcher)(nil)

// NewMatcher returns a Matcher reading t.
func NewMatcher(t *trie.Trie) *Matcher {
	return &Matcher{trie: t}
}

// walker carries the state shared by one traversal. out is a byte stack:
// every push at recursion entry is popped before the call returns.
type walker struct {
	alphabet *trie.Alphabet
	query    string
	budget   int
	out      []byte
}

// Correct yields every stored word with the query's length that differs
// from it in at most budget positions. Only substitutions count; a negative
// budget yields nothing.
func (m *Matcher) Correct(query string, budget int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for match := range m.Matches(query, budget) {
			if !yield(match.Word) {
				return
			}
		}
	}
}

// Matches is Correct with the substitution count and occurrence count of
// each hit.
func (m *Matcher) Matches(query string, budget int) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if budget < 0 {
			return
		}
		w := &walker{
			alphabet: m.trie.Alphabet(),
			query:    query,
			budget:   budget,
			out:      make([]byte, 0, len(query)),
		}
		w.correct(m.trie.Root(), 0, yield)
	}
}

// correct returns false once the consumer stops the iteration.
func (w *walker) correct(node *trie.Node, changes int, yield func(Match) bool) bool {
	if node == nil || changes > w.budget {
		return true
	}
	pos := len(w.out)
	if pos == len(w.query) {
		if !node.Terminal() {
			return true
		}
		return yield(Match{Word: string(w.out), Distance: changes, Count: node.Count()})
	}
	if node.ChildCount() == 0 {
		return true
	}

	// a query byte outside the alphabet matches no slot, so every
	// child at this position costs a substitution
	letter, ok := w.alphabet.Index(w.query[pos])
	if !ok {
		letter = -1
	}
	for i := 0; i < w.alphabet.Size(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		next := changes
		if i != letter {
			if changes >= w.budget {
				continue
			}
			next++
		}
		w.out = append(w.out, w.alphabet.Symbol(i))
		more := w.correct(child, next, yield)
		w.out = w.out[:len(w.out)-1]
		if !more {
			return false
		}
	}
	return true
}

// Complete yields every stored word that has prefix as a literal prefix,
// prefix itself included when stored. An empty prefix yields every word.
func (m *Matcher) Complete(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := m.trie.Lookup(prefix)
		if start == nil {
			return
		}
		w := &walker{
			alphabet: m.trie.Alphabet(),
			out:      append(make([]byte, 0, len(prefix)+8), prefix...),
		}
		w.complete(start, yield)
	}
}

func (w *walker) complete(node *trie.Node, yield func(string) bool) bool {
	if node.Terminal() && !yield(string(w.out)) {
		return false
	}
	if node.ChildCount() == 0 {
		return true
	}
	for i := 0; i < w.alphabet.Size(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		w.out = append(w.out, w.alphabet.Symbol(i))
		more := w.complete(child, yield)
		w.out = w.out[:len(w.out)-1]
		if !more {
			return false
		}
	}
	return true
}

// CorrectAll collects Correct into a slice. A limit of 0 means no limit.
func (m *Matcher) CorrectAll(query string, budget, limit int) []string {
	return collect(m.Correct(query, budget), limit)
}

// MatchesAll collects Matches into a slice. A limit of 0 means no limit.
func (m *Matcher) MatchesAll(query string, budget, limit int) []Match {
	return collect(m.Matches(query, budget), limit)
}

// CompleteAll collects Complete into a slice. A limit of 0 means no limit.
func (m *Matcher) CompleteAll(prefix string, limit int) []string {
	return collect(m.Complete(prefix), limit)
}

func collect[T any](seq iter.Seq[T], limit int) []T {
	res := make([]T, 0)
	for v := range seq {
		res = append(res, v)
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res
}
