package trie

import (
	"fmt"
	"unicode/utf8"
)

// NodeView is a serializable description of a trie shape: a node's letter, its
// word-end marker, and its present children. Test harnesses use it to build
// arbitrary tries without going through Insert, and to assert on structure
// after removals.
type NodeView struct {
	Letter    string      `json:"letter"`
	IsWordEnd bool        `json:"isWordEnd"`
	Children  []*NodeView `json:"children,omitempty"`
}

// FromView builds a trie of real owned nodes from a description of its shape.
// A nil view yields an empty trie. Views must describe states the trie can
// actually reach: child letters are single a-z runes, unique among siblings;
// the root is not a word end (no empty word exists); and no node besides the
// root is dead.
func FromView(view *NodeView) (*Trie, error) {
	t := New()
	if view == nil {
		return t, nil
	}
	if view.Letter != "" && view.Letter != string(rootLetter) {
		return nil, fmt.Errorf("root letter must be the sentinel %q, got %q", string(rootLetter), view.Letter)
	}
	if view.IsWordEnd {
		return nil, fmt.Errorf("root cannot be a word end")
	}
	if err := attachChildren(t.root, view); err != nil {
		return nil, err
	}
	return t, nil
}

func attachChildren(node *Node, view *NodeView) error {
	for _, childView := range view.Children {
		child, err := buildNode(childView)
		if err != nil {
			return err
		}
		slot := index(child.letter)
		if node.children[slot] != nil {
			return fmt.Errorf("duplicate child letter %q under %q", childView.Letter, view.Letter)
		}
		node.children[slot] = child
	}
	return nil
}

// buildNode turns one view node and its descendants into owned Nodes.
func buildNode(view *NodeView) (*Node, error) {
	letter, err := viewLetter(view.Letter)
	if err != nil {
		return nil, err
	}
	node := NewNode(letter)
	node.wordEnd = view.IsWordEnd
	if err := attachChildren(node, view); err != nil {
		return nil, err
	}
	if node.dead() {
		return nil, fmt.Errorf("node %q is dead: not a word end and has no children", view.Letter)
	}
	return node, nil
}

func viewLetter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r < 'a' || r > 'z' {
		return 0, fmt.Errorf("node letter must be a single letter a-z, got %q", s)
	}
	return r, nil
}

// View exports the live structure, children in slot order. FromView(t.View())
// reproduces t exactly.
func (t *Trie) View() *NodeView {
	return viewNode(t.root)
}

func viewNode(node *Node) *NodeView {
	view := &NodeView{Letter: string(node.letter), IsWordEnd: node.wordEnd}
	for _, child := range node.children {
		if child != nil {
			view.Children = append(view.Children, viewNode(child))
		}
	}
	return view
}
