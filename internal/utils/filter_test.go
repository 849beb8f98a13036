package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bastiangx/wordtrie/pkg/trie"
)

func TestNormalizeWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cat", "cat"},
		{"CAT", "cat"},
		{"Café", "cafe"},
		{"naïve", "naive"},
		{"Jürgen", "jurgen"},
		{"straße", "straße"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := NormalizeWord(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWordFilter(t *testing.T) {
	testCases := []struct {
		description string
		normalize   bool
		input       string
		expected    string
		err         error
	}{
		{"plain word", true, "hello", "hello", nil},
		{"folded accents", true, "Héllo", "hello", nil},
		{"uppercase without normalisation", false, "Hello", "", ErrWordInvalid},
		{"digits", true, "h3llo", "", ErrWordInvalid},
		{"no ascii base", true, "straße", "", ErrWordInvalid},
		{"too long", true, "abcdefghijk", "", ErrWordTooLong},
		{"empty", true, "", "", ErrWordInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f := NewWordFilter(trie.DefaultAlphabet, 10, tc.normalize)
			got, err := f.Clean(tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWordFilterAllowEmpty(t *testing.T) {
	base := NewWordFilter(trie.DefaultAlphabet, 0, true)
	f := base.AllowEmpty()
	got, err := f.Clean("")
	assert.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = f.Clean("averyveryveryverylongwordwithoutanybound")
	assert.NoError(t, err)
	assert.NotEmpty(t, got)

	_, err = base.Clean("")
	assert.ErrorIs(t, err, ErrWordInvalid, "the original filter is unchanged")
}
