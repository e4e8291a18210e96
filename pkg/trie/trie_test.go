package trie

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) []rune {
	return []rune(s)
}

func wordTrie(words ...string) *Trie[rune] {
	t := NewTrie[rune]()
	for _, w := range words {
		t.Insert(runes(w))
	}
	return t
}

// TestNewTrie verifies that a new Trie holds only an empty root.
func TestNewTrie(t *testing.T) {
	tr := NewTrie[string]()
	require.NotNil(t, tr.Root(), "Trie should have a root upon creation")
	assert.True(t, tr.Root().IsRoot())
	assert.True(t, tr.Root().IsLeaf())
	assert.Equal(t, 0, tr.Root().GetDepth(), "Root depth should be 0")
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, "ROOT", tr.Root().String())
}

// TestWordScenario checks lookups against a small set of words sharing prefixes.
func TestWordScenario(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog")

	assert.True(t, tr.ContainsSequence(runes("car")), "car was inserted")
	assert.False(t, tr.ContainsSequence(runes("ca")), "ca is only a prefix")
	assert.True(t, tr.ContainsPrefix(runes("ca")), "ca is a prefix of cat")
	assert.False(t, tr.ContainsSequence(runes("carton")), "carton was never inserted")
	assert.False(t, tr.ContainsPrefix(runes("carton")))
	assert.True(t, tr.ContainsSequence(runes("cart")))
	assert.True(t, tr.ContainsSequence(runes("dog")))
	assert.False(t, tr.ContainsPrefix(runes("x")))
	assert.Equal(t, 4, tr.Len())
}

// TestInsertSharesPrefixes verifies node reuse and insertion-ordered children.
func TestInsertSharesPrefixes(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog")

	root := tr.Root()
	require.Len(t, root.Children(), 2)
	assert.Equal(t, 'c', root.ChildAt(0).Value())
	assert.Equal(t, 'd', root.ChildAt(1).Value())
	assert.Nil(t, root.ChildAt(2))
	assert.Nil(t, root.ChildAt(-1))

	a := root.ChildAt(0).ChildAt(0)
	require.Len(t, a.Children(), 2, "cat and car share 'ca'")
	assert.Equal(t, 't', a.ChildAt(0).Value(), "children keep insertion order")
	assert.Equal(t, 'r', a.ChildAt(1).Value())
	assert.Equal(t, 2, a.GetDepth())

	r := a.ChildAt(1)
	assert.True(t, r.IsEnd())
	assert.False(t, r.IsLeaf(), "car continues to cart")
	assert.True(t, r.ChildAt(0).IsLeaf())
}

// TestInsertRepeatedCountsMultiplicity checks that repeated inserts only bump the end count.
func TestInsertRepeatedCountsMultiplicity(t *testing.T) {
	tr := wordTrie("go")
	node, ok := tr.FindPrefix(runes("go"))
	require.True(t, ok)
	assert.Equal(t, uint(1), node.EndCount())

	tr.Insert(runes("go"))
	tr.Insert(runes("go"))
	again, ok := tr.FindPrefix(runes("go"))
	require.True(t, ok)
	assert.Same(t, node, again, "no new nodes for a repeated sequence")
	assert.Equal(t, uint(3), tr.Count(runes("go")))
	assert.Len(t, tr.Root().Children(), 1)
	assert.Equal(t, uint(0), tr.Count(runes("g")))
	assert.Equal(t, uint(0), tr.Count(runes("gone")))
	assert.Equal(t, 3, tr.Len())
}

// TestInsertEmptySequence marks the root itself.
func TestInsertEmptySequence(t *testing.T) {
	tr := NewTrie[rune]()
	assert.False(t, tr.ContainsSequence(nil))
	assert.False(t, tr.ContainsPrefix(nil), "nothing inserted, nothing found")

	tr.Insert(nil)
	assert.True(t, tr.Root().IsEnd())
	assert.True(t, tr.ContainsSequence(nil))
	assert.True(t, tr.ContainsSequence([]rune{}))
	assert.False(t, tr.ContainsSequence(runes("a")))
	assert.Equal(t, "ROOT*", tr.Root().String())
}

// TestFindPrefixOnEmptyTrie checks the "not found" answer of a trie without children.
func TestFindPrefixOnEmptyTrie(t *testing.T) {
	tr := NewTrie[string]()
	node, ok := tr.FindPrefix([]string{"usr", "bin"})
	assert.False(t, ok)
	assert.Nil(t, node)
}

// TestFindPrefixReturnsNode verifies the node reached after the prefix.
func TestFindPrefixReturnsNode(t *testing.T) {
	tr := NewTrie[string]()
	tr.Insert([]string{"usr", "local", "bin"})
	tr.Insert([]string{"usr", "lib"})

	node, ok := tr.FindPrefix([]string{"usr", "local"})
	require.True(t, ok)
	assert.Equal(t, "local", node.Value())
	assert.False(t, node.IsEnd())
	assert.Equal(t, "local", node.String())

	root, ok := tr.FindPrefix(nil)
	require.True(t, ok)
	assert.True(t, root.IsRoot(), "the empty prefix ends at the root")

	_, ok = tr.FindPrefix([]string{"usr", "share"})
	assert.False(t, ok)
}

// TestTrace verifies child positions along the path of a stored sequence.
func TestTrace(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog")

	path, err := tr.TracePath(runes("cart"))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 0}, path)

	path, err = tr.TracePath(runes("do"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, path, "prefixes trace as well")

	path, err = tr.TracePath(nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}

// TestTraceFailsAtFirstMissingItem checks the error and that nothing follows it.
func TestTraceFailsAtFirstMissingItem(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog")

	var indices []int
	var errs []error
	for i, err := range tr.Trace(runes("caps")) {
		indices = append(indices, i)
		errs = append(errs, err)
	}
	require.Len(t, indices, 3, "two matches, then one failure")
	assert.Equal(t, []int{0, 0, -1}, indices)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], ErrNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, errs[2], &notFound)
	assert.Equal(t, 2, notFound.Position)
	assert.Equal(t, 'p', notFound.Item)

	path, err := tr.TracePath(runes("caps"))
	assert.Nil(t, path)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NewTrie[rune]().TracePath(nil)
	assert.ErrorIs(t, err, ErrNotFound, "empty trie has no path at all")
	var empty *NotFoundError
	require.ErrorAs(t, err, &empty)
	assert.True(t, empty.Empty)
	assert.EqualError(t, err, "trie: sequence not found: trie is empty")

	_, err = NewTrie[rune]().TracePath([]rune("x"))
	require.ErrorAs(t, err, &notFound)
	assert.False(t, notFound.Empty)
	assert.EqualError(t, err, "trie: sequence not found: no child 120 at position 0")
}

// TestTraceStopsWhenAsked checks that breaking out of Trace ends the walk.
func TestTraceStopsWhenAsked(t *testing.T) {
	tr := wordTrie("cart")
	count := 0
	for range tr.Trace(runes("cart")) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// TestTraceMatchesFindPrefix compares Trace and FindPrefix on random sequences.
func TestTraceMatchesFindPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	random := func() []int {
		s := make([]int, rng.Intn(6))
		for i := range s {
			s[i] = rng.Intn(4)
		}
		return s
	}

	tr := NewTrie[int]()
	for range 40 {
		tr.Insert(random())
	}
	for range 300 {
		seq := random()
		node, found := tr.FindPrefix(seq)
		path, err := tr.TracePath(seq)
		if !found {
			assert.ErrorIs(t, err, ErrNotFound, "%v", seq)
			continue
		}
		require.NoError(t, err, "%v", seq)
		require.Len(t, path, len(seq))

		// replay the path by position
		cur := tr.Root()
		for depth, i := range path {
			cur = cur.ChildAt(i)
			require.NotNil(t, cur)
			assert.Equal(t, seq[depth], cur.Value())
		}
		assert.Same(t, node, cur)
	}
}

// TestRoundTrip verifies every inserted sequence is contained right after insertion.
func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	tr := NewTrie[byte]()
	inserted := map[string]bool{}

	for range 500 {
		b := make([]byte, 1+rng.Intn(8))
		for i := range b {
			b[i] = 'a' + byte(rng.Intn(3))
		}
		tr.Insert(b)
		inserted[string(b)] = true
		assert.True(t, tr.ContainsSequence(b), "%q just inserted", b)
	}

	for s := range inserted {
		assert.True(t, tr.ContainsSequence([]byte(s)))
		assert.True(t, tr.ContainsPrefix([]byte(s)[:len(s)/2]))
	}
	assert.False(t, tr.ContainsSequence([]byte("d")))
}

// TestSequences verifies the depth first listing of stored sequences with counts.
func TestSequences(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog", "car")

	var words []string
	var counts []uint
	for s, count := range tr.Sequences() {
		words = append(words, string(s))
		counts = append(counts, count)
	}
	assert.Equal(t, []string{"cat", "car", "cart", "dog"}, words)
	assert.Equal(t, []uint{1, 2, 1, 1}, counts)
}

// TestSequencesYieldsCopies makes sure a yielded sequence can be kept and modified.
func TestSequencesYieldsCopies(t *testing.T) {
	tr := wordTrie("ab", "ac")
	var kept [][]rune
	for s := range tr.Sequences() {
		kept = append(kept, s)
	}
	kept[0][1] = 'z'
	assert.Equal(t, "ac", string(kept[1]))
	assert.True(t, tr.ContainsSequence(runes("ab")))
}

// TestWithPrefix lists the stored completions of a prefix.
func TestWithPrefix(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog")

	var words []string
	for s := range tr.WithPrefix(runes("car")) {
		words = append(words, string(s))
	}
	assert.Equal(t, []string{"car", "cart"}, words)

	missing := 0
	for range tr.WithPrefix(runes("cow")) {
		missing++
	}
	assert.Zero(t, missing, "no stored word starts with cow")

	var all []string
	for s := range tr.WithPrefix(nil) {
		all = append(all, string(s))
	}
	assert.Len(t, all, 4)
}

// TestForEachStepDown verifies that each node below the root is visited once.
func TestForEachStepDown(t *testing.T) {
	tr := wordTrie("cat", "car", "cart", "dog")

	visited := ""
	tr.Root().ForEachStepDown(func(n *Node[rune]) {
		visited += string(n.Value())
		if n.IsEnd() {
			visited += "*"
		}
	}, nil)
	assert.Equal(t, "cat*r*t*dog*", visited)

	var count int
	tr.Root().ForEachChild(func(*Node[rune]) { count++ })
	assert.Equal(t, 2, count)
}

// TestRemoveUnsupported checks that removal is refused and nothing changes.
func TestRemoveUnsupported(t *testing.T) {
	tr := wordTrie("cat")
	assert.ErrorIs(t, tr.Remove(runes("cat")), ErrUnsupportedOperation)
	assert.True(t, tr.ContainsSequence(runes("cat")))
}

// TestBigKeySetPrefixSearch loads a real world key set and compares prefix
// listings with a plain scan.
func TestBigKeySetPrefixSearch(t *testing.T) {
	keys := testkeys.Load("1mvl5_10")
	if len(keys) > 20000 {
		keys = keys[:20000]
	}

	tr := NewTrie[byte]()
	for _, k := range keys {
		tr.Insert([]byte(k))
	}

	prefix := keys[len(keys)/2]
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	var expected []string
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			expected = append(expected, k)
		}
	}

	var got []string
	for s, count := range tr.WithPrefix([]byte(prefix)) {
		for range count {
			got = append(got, string(s))
		}
	}
	sort.Strings(expected)
	sort.Strings(got)
	assert.Equal(t, expected, got)

	for _, k := range keys[:100] {
		assert.True(t, tr.ContainsSequence([]byte(k)))
	}
}
