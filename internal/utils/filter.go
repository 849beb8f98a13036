package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrWordTooLong is returned for words longer than the configured bound.
	ErrWordTooLong = errors.New("word too long")
	// ErrWordInvalid is returned for words with symbols outside the alphabet.
	ErrWordInvalid = errors.New("word has symbols outside the alphabet")
)

// Alphabet is the part of trie.Alphabet the filter needs.
type Alphabet interface {
	Valid(word string) bool
}

// WordFilter prepares raw user input for the trie. It is shared by the
// command loop, the dictionary loader and the IPC server so all three accept
// exactly the same words.
type WordFilter struct {
	alphabet   Alphabet
	maxLen     int
	normalize  bool
	allowEmpty bool
}

// NewWordFilter creates a filter. maxLen <= 0 disables the length check.
func NewWordFilter(alphabet Alphabet, maxLen int, normalize bool) *WordFilter {
	return &WordFilter{
		alphabet:  alphabet,
		maxLen:    maxLen,
		normalize: normalize,
	}
}

// AllowEmpty returns a copy of f whose Clean accepts the empty word, which
// addresses the root.
func (f *WordFilter) AllowEmpty() *WordFilter {
	c := *f
	c.allowEmpty = true
	return &c
}

// Clean normalises raw when enabled and checks it against the alphabet and
// length bound. The returned word is safe to pass to the trie.
func (f *WordFilter) Clean(raw string) (string, error) {
	word := raw
	if f.normalize {
		normal, err := NormalizeWord(raw)
		if err != nil {
			return "", fmt.Errorf("normalize %q: %w", raw, err)
		}
		word = normal
	}
	if word == "" && !f.allowEmpty {
		return "", fmt.Errorf("empty word: %w", ErrWordInvalid)
	}
	if f.maxLen > 0 && len(word) > f.maxLen {
		return "", fmt.Errorf("%q is %d bytes, limit %d: %w", raw, len(word), f.maxLen, ErrWordTooLong)
	}
	if !f.alphabet.Valid(word) {
		return "", fmt.Errorf("%q: %w", raw, ErrWordInvalid)
	}
	return word, nil
}
