package trie

// AlphabetSize is the fan-out of every node: one child slot per lowercase
// English letter.
const AlphabetSize = 26

// rootLetter marks the root node. It is a sentinel and is never matched
// against input.
const rootLetter = ' '

// Node is a single vertex of the trie. It exclusively owns up to one child per
// letter of the alphabet; the slot for a letter c is children[c-'a'].
type Node struct {
	letter   rune
	wordEnd  bool
	children [AlphabetSize]*Node
}

// NewNode creates a detached node for the given letter, with no children and
// no word-end marker.
func NewNode(letter rune) *Node {
	return &Node{letter: letter}
}

// Letter returns the character this node represents. The root reports the
// sentinel ' '.
func (n *Node) Letter() rune {
	return n.letter
}

// IsWordEnd reports whether a stored word terminates at this node.
func (n *Node) IsWordEnd() bool {
	return n.wordEnd
}

// ChildCount returns the number of non-empty child slots.
func (n *Node) ChildCount() int {
	count := 0
	for _, child := range n.children {
		if child != nil {
			count++
		}
	}
	return count
}

// IsEmpty reports whether the node has no children at all.
func (n *Node) IsEmpty() bool {
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}

// dead reports whether the node neither ends a word nor leads to one. Dead
// nodes must never stay attached to the tree; removal prunes them on the spot.
func (n *Node) dead() bool {
	return !n.wordEnd && n.IsEmpty()
}
