package trie

import (
	"fmt"
	"strings"
	"unicode"
)

// Trie stores a set of lowercase words over the fixed 26-letter alphabet and
// answers word and prefix membership in O(len(word)). The zero value is not
// usable; create instances with New.
type Trie struct {
	root *Node
}

// New creates an empty trie holding nothing but the sentinel root.
func New() *Trie {
	return &Trie{root: NewNode(rootLetter)}
}

// InvalidInputError reports a value that cannot be stored or looked up: empty
// or all-whitespace input, or input containing anything besides letters.
// It is the only error kind the trie operations return, and it is always
// raised before any mutation happens.
type InvalidInputError struct {
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Value, e.Reason)
}

// index maps a normalized letter to its child slot.
func index(letter rune) int {
	return int(letter - 'a')
}

// normalize validates a raw value and case-folds it for traversal. The letter
// test runs on the raw input, before folding; the alphabet test runs on the
// folded form, because the fixed fan-out cannot address letters outside a-z
// (so "naïve" is an input error, not a crash).
func normalize(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", &InvalidInputError{Value: value, Reason: "must not be empty"}
	}
	for _, r := range value {
		if !unicode.IsLetter(r) {
			return "", &InvalidInputError{Value: value, Reason: "must contain only letters"}
		}
	}
	folded := strings.ToLower(value)
	for _, r := range folded {
		if r < 'a' || r > 'z' {
			return "", &InvalidInputError{Value: value, Reason: "must contain only letters a-z"}
		}
	}
	return folded, nil
}

// Insert stores a word, walking from the root and creating a node per missing
// letter. Inserting a word twice is a no-op beyond re-marking its end.
func (t *Trie) Insert(value string) error {
	word, err := normalize(value)
	if err != nil {
		return err
	}

	current := t.root
	for _, r := range word {
		slot := index(r)
		child := current.children[slot]
		if child == nil {
			child = NewNode(r)
			current.children[slot] = child
		}
		current = child
	}
	current.wordEnd = true
	return nil
}

// Contains reports whether the value is stored as a complete word.
func (t *Trie) Contains(value string) (bool, error) {
	word, err := normalize(value)
	if err != nil {
		return false, err
	}
	node := t.findNode(word)
	return node != nil && node.wordEnd, nil
}

// ContainsPrefix reports whether the value is a prefix of at least one stored
// word. Every stored word is a prefix of itself.
func (t *Trie) ContainsPrefix(value string) (bool, error) {
	prefix, err := normalize(value)
	if err != nil {
		return false, err
	}
	return t.findNode(prefix) != nil, nil
}

// findNode walks the letter chain and returns the node the word ends on, or
// nil if any slot along the path is empty.
func (t *Trie) findNode(word string) *Node {
	current := t.root
	for _, r := range word {
		child := current.children[index(r)]
		if child == nil {
			return nil
		}
		current = child
	}
	return current
}

// Remove deletes a word from the trie if it is stored as a complete word, and
// prunes exactly the nodes that become unreachable. Three cases:
//
//   - isolated word: the whole chain below the last fork is detached;
//   - the word is a prefix of a retained word: only its end marker is cleared;
//   - the word extends a retained word: its exclusive suffix chain is detached.
//
// A node that ends a word or has more than one child is never pruned. Removing
// an absent value is a no-op.
func (t *Trie) Remove(value string) error {
	word, err := normalize(value)
	if err != nil {
		return err
	}

	current := t.root
	fork := t.root
	// Seed with the first letter: when no better fork shows up, the whole word
	// hangs off the root.
	forkSlot := index(rune(word[0]))

	for _, r := range word {
		slot := index(r)
		child := current.children[slot]
		if child == nil {
			return nil // not stored
		}
		// Word ends and branch points must survive; remember the deepest one
		// and which of its slots leads toward the removed word.
		if current.wordEnd || current.ChildCount() > 1 {
			fork = current
			forkSlot = slot
		}
		current = child
	}

	if !current.wordEnd {
		return nil // only a prefix of stored words, nothing to remove
	}
	current.wordEnd = false

	// The node still leads to longer words: clearing the marker is all.
	if !current.IsEmpty() {
		return nil
	}

	// Detach the now-dead suffix chain below the last fork.
	fork.children[forkSlot] = nil
	return nil
}

// RemoveRecursive is the depth-first equivalent of Remove: it unmarks the word
// end once the whole word is consumed and prunes any node that became dead on
// the way back up. Both variants yield identical tries on every input.
func (t *Trie) RemoveRecursive(value string) error {
	word, err := normalize(value)
	if err != nil {
		return err
	}
	// The root's own result is ignored: the root stays attached even when the
	// last word is removed.
	removeNodes(t.root, word, 0)
	return nil
}

// removeNodes returns the replacement for node after removing word[depth:]
// below it; nil detaches the subtree.
func removeNodes(node *Node, word string, depth int) *Node {
	if node == nil {
		return nil
	}
	if depth == len(word) {
		node.wordEnd = false
		if node.IsEmpty() {
			return nil
		}
		return node
	}

	slot := index(rune(word[depth]))
	node.children[slot] = removeNodes(node.children[slot], word, depth+1)

	if node.dead() {
		return nil
	}
	return node
}

// Words lists every stored word in lexicographic order.
func (t *Trie) Words() []string {
	var words []string
	collectWords(t.root, "", &words)
	return words
}

// WordsWithPrefix lists the stored words starting with the given prefix, in
// lexicographic order, the prefix itself included when it is stored.
func (t *Trie) WordsWithPrefix(value string) ([]string, error) {
	prefix, err := normalize(value)
	if err != nil {
		return nil, err
	}
	node := t.findNode(prefix)
	if node == nil {
		return nil, nil
	}
	var words []string
	collectWords(node, prefix, &words)
	return words, nil
}

// collectWords appends the words of the subtree rooted at node; prefix spells
// the path from the trie root down to node. The child array is iterated in
// slot order, which keeps the output sorted.
func collectWords(node *Node, prefix string, words *[]string) {
	if node.wordEnd {
		*words = append(*words, prefix)
	}
	for _, child := range node.children {
		if child != nil {
			collectWords(child, prefix+string(child.letter), words)
		}
	}
}

// String renders the stored words one per line. Debugging aid, not part of the
// functional contract.
func (t *Trie) String() string {
	var sb strings.Builder
	for _, word := range t.Words() {
		sb.WriteByte('-')
		sb.WriteString(word)
		sb.WriteByte('\n')
	}
	return sb.String()
}
