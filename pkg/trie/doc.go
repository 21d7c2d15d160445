// ## Overview
// Package trie implements a prefix tree (trie) over the 26-letter lowercase
// English alphabet, built for word and prefix membership checks: autocomplete,
// spell checking, dictionary lookups. Each node owns one child slot per
// letter, every root-to-node path spells a prefix, and a word-end marker
// records where a stored word stops. Insert, Contains, ContainsPrefix and both
// Remove variants all run in O(len(word)).
//
// Input is validated before any traversal: values must be non-empty and
// all-letter, and lookups fold case, so "Auto" and "auto" are the same word.
// Removal prunes exactly the nodes that become unreachable, cutting the chain
// at the nearest ancestor that still ends a word or branches to other words.
//
// ## Example usage:
//
//	words := trie.New()
//	_ = words.Insert("auto")
//	_ = words.Insert("automobile")
//
//	found, _ := words.Contains("AUTO")       // true, case is folded
//	_, err := words.Contains("auto!")        // *InvalidInputError
//	more, _ := words.WordsWithPrefix("aut")  // [auto automobile]
//
//	_ = words.Remove("automobile")           // prunes the exclusive suffix chain
//	fmt.Println(words.Words())               // [auto]
//
// The trie carries no internal locking; wrap every call in one external mutex
// if several goroutines share an instance.
package trie
