// Package outline holds the entry tree and its structural operations.
//
// A node owns its children; the parent link is a back-reference used for
// lookups only. Every mutation goes through Attach/Detach so the two stay in
// agreement.
package outline

import (
	"errors"
	"slices"
)

// MaxTextLen bounds an entry's text in bytes.
const MaxTextLen = 256

// RootText labels the implicit root. It is never written to a file.
const RootText = "Entries"

var (
	ErrRoot     = errors.New("cannot modify root entry")
	ErrAttached = errors.New("node is already attached to a parent")
	ErrCycle    = errors.New("node cannot become its own descendant")
	ErrNoParent = errors.New("node has no parent")
)

type FoldState int

const (
	Empty FoldState = iota
	Expanded
	Collapsed
)

func (f FoldState) String() string {
	switch f {
	case Expanded:
		return "expanded"
	case Collapsed:
		return "collapsed"
	default:
		return "empty"
	}
}

type Node struct {
	text     string
	children []*Node
	parent   *Node
	fold     FoldState
}

// NewNode returns a detached leaf.
func NewNode(text string) *Node {
	return &Node{text: clampText(text)}
}

// NewRoot returns an empty tree.
func NewRoot() *Node {
	return NewNode(RootText)
}

func clampText(s string) string {
	if len(s) > MaxTextLen {
		return s[:MaxTextLen]
	}
	return s
}

func (n *Node) Text() string { return n.text }
func (n *Node) Parent() *Node { return n.parent }
func (n *Node) Len() int { return len(n.children) }
func (n *Node) IsRoot() bool { return n.parent == nil }
func (n *Node) Child(i int) *Node { return n.children[i] }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Fold reports the stored fold state; leaves always report Empty.
func (n *Node) Fold() FoldState {
	if len(n.children) == 0 {
		return Empty
	}
	return n.fold
}

// SetText replaces the text of a non-root node.
func (n *Node) SetText(s string) error {
	if n.parent == nil {
		return ErrRoot
	}
	n.text = clampText(s)
	return nil
}

// Index is the node's position among its siblings, or -1 for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// Depth counts the ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Root walks up to the topmost ancestor.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Attach appends child to n and expands n.
func (n *Node) Attach(child *Node) error {
	return n.insert(len(n.children), child)
}

func (n *Node) insert(i int, child *Node) error {
	if child.parent != nil {
		return ErrAttached
	}
	if child == n || child.IsAncestorOf(n) {
		return ErrCycle
	}
	n.children = slices.Insert(n.children, i, child)
	child.parent = n
	n.fold = Expanded
	return nil
}

// Detach removes n from its parent, preserving the order of the remaining
// siblings. It reports false when n has no parent.
func (n *Node) Detach() (*Node, bool) {
	p := n.parent
	if p == nil {
		return nil, false
	}
	i := slices.Index(p.children, n)
	if i < 0 {
		return nil, false
	}
	p.children = slices.Delete(p.children, i, i+1)
	n.parent = nil
	if len(p.children) == 0 {
		p.fold = Empty
	}
	return n, true
}

// Walk visits n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// Count is the number of descendants of n, excluding n.
func (n *Node) Count() int {
	total := 0
	for _, c := range n.children {
		total += 1 + c.Count()
	}
	return total
}
