package dictomaton

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderOutOfOrder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("b"))
	err := b.Add("a")
	var ooe *OutOfOrderError
	require.ErrorAs(t, err, &ooe)
	assert.Equal(t, "b", ooe.Previous)
	assert.Equal(t, "a", ooe.Given)
}

func TestBuilderDuplicateIsOutOfOrder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("cat"))
	err := b.Add("cat")
	var ooe *OutOfOrderError
	assert.ErrorAs(t, err, &ooe)
}

func TestBuilderAlreadyFinalized(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add("a"))
	_ = b.Build()
	err := b.Add("b")
	var afe *AlreadyFinalizedError
	assert.ErrorAs(t, err, &afe)
}

func TestBuilderBuildIsIdempotent(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddAll([]string{"cat", "cats", "dog"}))
	d1 := b.Build()
	d2 := b.Build()
	assert.Equal(t, d1.NumStates(), d2.NumStates())
	assert.True(t, d1.Contains("cat"))
	assert.True(t, d2.Contains("cat"))
}

func TestEndToEndPerfectHashRanks(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddAll([]string{"cat", "cats", "dog"}))
	phd := b.BuildPerfectHash()

	assert.Equal(t, 1, phd.Number("cat"))
	assert.Equal(t, 2, phd.Number("cats"))
	assert.Equal(t, 3, phd.Number("dog"))
	assert.Equal(t, 3, phd.Size())

	assert.False(t, phd.Contains("do"))
	assert.True(t, phd.Contains("dog"))
}

func TestIteratorYieldsSortedPrefixChain(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddAll([]string{"a", "ab", "abc"}))
	d := b.Build()

	var got []string
	for seq := range d.Iterator() {
		got = append(got, seq)
	}
	assert.Equal(t, []string{"a", "ab", "abc"}, got)
	// Prefix sharing: a -> ab -> abc is a single chain of 4 states
	// (start, "a", "ab", "abc"), none of it mergeable further.
	assert.Equal(t, 4, d.NumStates())
}

func TestMinimalityOnSharedTailLanguage(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddAll([]string{"ab", "ac", "bb", "bc"}))
	d := b.Build()

	// The naive trie would have 7 states (root, a, b, ab-tail, ac-tail,
	// bb-tail, bc-tail all distinct). The Myhill-Nerode classes of this
	// language are {""} (right language {ab,ac,bb,bc}), {"a","b"} (both
	// have right language {b,c}), and {"ab","ac","bb","bc"} (right
	// language {epsilon}) -- 3 reachable classes, so the minimal
	// automaton shares both the {b,c} continuation after 'a' and 'b' and
	// the accepting tail, collapsing to 3 states.
	assert.Equal(t, 3, d.NumStates())

	for _, w := range []string{"ab", "ac", "bb", "bc"} {
		assert.True(t, d.Contains(w), w)
	}
	assert.False(t, d.Contains("a"))
	assert.False(t, d.Contains("b"))
}

func TestEmptyBuilder(t *testing.T) {
	b := NewBuilder()
	d := b.Build()
	assert.False(t, d.Contains(""))
	assert.Equal(t, 0, d.Size())
}

func TestEmptyStringIsAcceptable(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(""))
	require.NoError(t, b.Add("a"))
	d := b.Build()
	assert.True(t, d.Contains(""))
	assert.True(t, d.Contains("a"))
	assert.Equal(t, 2, d.Size())
}

func TestRankBijectivityAndOrderAndRoundTrip(t *testing.T) {
	words := []string{"ant", "apple", "banana", "band", "bandana", "can", "cane", "canopy"}
	b := NewBuilder()
	require.NoError(t, b.AddAll(words))
	phd := b.BuildPerfectHash()

	seen := make(map[int]bool)
	var ranks []int
	for _, w := range words {
		r := phd.Number(w)
		require.NotEqual(t, -1, r, w)
		require.False(t, seen[r], "duplicate rank %d for %q", r, w)
		seen[r] = true
		ranks = append(ranks, r)

		got, err := phd.Sequence(r)
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}
	assert.True(t, sort.IntsAreSorted(ranks))
	assert.Equal(t, len(words), phd.Size())
}

func TestSequenceOutOfRange(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddAll([]string{"a", "b"}))
	phd := b.BuildPerfectHash()

	_, err := phd.Sequence(0)
	var nfe *NotFoundError
	assert.ErrorAs(t, err, &nfe)

	_, err = phd.Sequence(3)
	assert.ErrorAs(t, err, &nfe)
}

func TestBuilderToDotRendersFinalStatesAndLabels(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddAll([]string{"ab", "ac"}))
	var buf bytes.Buffer
	require.NoError(t, b.ToDot(&buf))

	out := buf.String()
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, "peripheries=2")
	assert.Contains(t, out, `label="a"`)
}

func TestAddAllStopsAtFirstError(t *testing.T) {
	b := NewBuilder()
	err := b.AddAll([]string{"b", "a"})
	var ooe *OutOfOrderError
	require.ErrorAs(t, err, &ooe)
	d := b.Build()
	assert.True(t, d.Contains("b"))
	assert.False(t, d.Contains("a"))
}
