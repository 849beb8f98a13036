package trie

import (
	"errors"
	"fmt"
)

// DefaultSymbols is the lowercase ASCII alphabet used by New.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz"

// ErrInvalidSymbol is returned when a word contains a byte that is not part
// of the trie's alphabet.
var ErrInvalidSymbol = errors.New("symbol not in alphabet")

// Alphabet maps the bytes of a word to child slots. Symbol order defines
// the order in which traversals visit children.
type Alphabet struct {
	symbols string
	index   [256]int16
}

// DefaultAlphabet is shared by every trie built with New. It is never mutated.
var DefaultAlphabet = mustAlphabet(DefaultSymbols)

// NewAlphabet builds an alphabet from an ordered set of distinct ASCII symbols.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, errors.New("alphabet is empty")
	}
	a := &Alphabet{symbols: symbols}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		b := symbols[i]
		if b >= 0x80 {
			return nil, fmt.Errorf("alphabet symbol %q at %d is not ASCII", b, i)
		}
		if a.index[b] != -1 {
			return nil, fmt.Errorf("alphabet symbol %q repeated at %d", b, i)
		}
		a.index[b] = int16(i)
	}
	return a, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size is the number of child slots every node carries.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Index returns the child slot for b.
func (a *Alphabet) Index(b byte) (int, bool) {
	i := a.index[b]
	return int(i), i >= 0
}

// Symbol returns the byte stored at slot i.
func (a *Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// String returns the symbols in slot order.
func (a *Alphabet) String() string {
	return a.symbols
}

// Valid reports whether every byte of word belongs to the alphabet.
func (a *Alphabet) Valid(word string) bool {
	return a.check(word) == nil
}

func (a *Alphabet) check(word string) error {
	for i := 0; i < len(word); i++ {
		if a.index[word[i]] < 0 {
			return fmt.Errorf("%q at position %d of %q: %w", word[i], i, word, ErrInvalidSymbol)
		}
	}
	return nil
}
