// Package suggest is the query side of the trie: bounded substitution
// correction and prefix completion. It only reads the trie it is given.
package suggest

import "iter"

// Match is a stored word found by a correction walk.
type Match struct {
	Word string
	// Distance is the number of positions where Word differs from the query.
	Distance int
	// Count is how many times Word was inserted.
	Count int
}

// ISuggester is implemented by Matcher. Collaborators depend on it so they
// can be tested against a fake.
type ISuggester interface {
	// Correct yields stored words of the query's length within budget substitutions.
	Correct(query string, budget int) iter.Seq[string]

	// Matches is Correct with distance and count attached.
	Matches(query string, budget int) iter.Seq[Match]

	// Complete yields every stored word that starts with prefix.
	Complete(prefix string) iter.Seq[string]
}
