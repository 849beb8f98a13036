package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	testCases := []struct {
		symbols string
		wantErr bool
	}{
		{DefaultSymbols, false},
		{"ba", false},
		{"", true},
		{"abca", true},
		{"aé", true},
	}

	for _, tc := range testCases {
		t.Run(tc.symbols, func(t *testing.T) {
			a, err := NewAlphabet(tc.symbols)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.symbols), a.Size())
		})
	}
}

func TestAlphabetIndex(t *testing.T) {
	a, err := NewAlphabet("zyx")
	require.NoError(t, err)

	i, ok := a.Index('z')
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	i, ok = a.Index('x')
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = a.Index('a')
	assert.False(t, ok)

	assert.Equal(t, byte('y'), a.Symbol(1))
	assert.True(t, a.Valid("zzyx"))
	assert.True(t, a.Valid(""))
	assert.False(t, a.Valid("zya"))
}

func TestCustomAlphabetOrder(t *testing.T) {
	a, err := NewAlphabet("ba")
	require.NoError(t, err)
	tr := NewWithAlphabet(a)
	require.NoError(t, tr.Insert("ab"))
	require.Len(t, tr.Root().children, 2)
	assert.Nil(t, tr.Root().Child(0))
	assert.NotNil(t, tr.Root().Child(1))
}
