// ## Overview
// Package trie implements a generic trie (prefix tree) over sequences of
// comparable items: runes of words, segments of paths, tokens of a sentence.
// Every node keeps its children in insertion order and an end count telling
// how many inserted sequences stop at it, so the same sequence may be stored
// more than once.
//
// ## Example usage:
//
//	t := trie.NewTrie[rune]()
//	for _, word := range []string{"cat", "car", "cart", "dog"} {
//		t.Insert([]rune(word))
//	}
//
//	t.ContainsSequence([]rune("car")) // true
//	t.ContainsSequence([]rune("ca"))  // false, only a prefix
//	t.ContainsPrefix([]rune("ca"))    // true
//
//	// child positions along the path, fails with ErrNotFound
//	path, err := t.TracePath([]rune("cart")) // [0 0 1 0], nil
//
//	// every stored word below a prefix
//	for word, count := range t.WithPrefix([]rune("car")) {
//		fmt.Println(string(word), count)
//	}
//
// Sequences can not be removed yet; Remove returns ErrUnsupportedOperation.
package trie
