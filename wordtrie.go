// Package wordtrie stores lowercase words in a 26-way prefix tree supporting
// insertion, exact lookup, prefix lookup and pruning removal. The root package
// re-exports the core API from pkg/trie; applications wanting bulk loading and
// completion reporting should use pkg/dictionary instead.
package wordtrie

import "github.com/khalid-nowaf/wordtrie/pkg/trie"

type (
	Trie              = trie.Trie
	Node              = trie.Node
	NodeView          = trie.NodeView
	InvalidInputError = trie.InvalidInputError
)

const AlphabetSize = trie.AlphabetSize

// New initializes an empty trie.
func New() *Trie {
	return trie.New()
}

// FromView builds a trie from a serialized description of its shape.
func FromView(view *NodeView) (*Trie, error) {
	return trie.FromView(view)
}
