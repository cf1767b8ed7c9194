package dictomaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDict(t *testing.T, words ...string) *Dictionary {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.AddAll(words))
	return b.Build()
}

func TestContainsRejectsNonMembersAtEveryDivergencePoint(t *testing.T) {
	d := buildDict(t, "cat", "cats", "dog")
	for _, w := range []string{"ca", "do", "dogs", "catss", "", "z"} {
		assert.False(t, d.Contains(w), w)
	}
	for _, w := range []string{"cat", "cats", "dog"} {
		assert.True(t, d.Contains(w), w)
	}
}

func TestFindTransitionBinarySearchOverWideFanout(t *testing.T) {
	var words []string
	for c := 'a'; c <= 'z'; c++ {
		words = append(words, string(c))
	}
	d := buildDict(t, words...)
	for c := 'a'; c <= 'z'; c++ {
		assert.True(t, d.Contains(string(c)), string(c))
	}
	assert.False(t, d.Contains("A"))
	assert.False(t, d.Contains("aa"))
}

func TestIterateStopsEarly(t *testing.T) {
	d := buildDict(t, "a", "b", "c", "d")
	var got []string
	d.Iterate(func(seq string) bool {
		got = append(got, seq)
		return len(got) < 2
	})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSizeMatchesIteratorLength(t *testing.T) {
	d := buildDict(t, "ab", "ac", "bb", "bc")
	n := 0
	for range d.Iterator() {
		n++
	}
	assert.Equal(t, n, d.Size())
	assert.Equal(t, 4, d.Size())
}
