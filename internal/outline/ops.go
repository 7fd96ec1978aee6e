package outline

// Direction selects a neighbouring sibling.
type Direction int

const (
	Up Direction = iota
	Down
)

// Promote moves n out of its parent into its grandparent, directly above the
// old parent. It reports false (and does nothing) without a grandparent.
func Promote(n *Node) bool {
	if n == nil || n.parent == nil || n.parent.parent == nil {
		return false
	}
	p := n.parent
	g := p.parent
	if _, ok := n.Detach(); !ok {
		return false
	}
	if err := g.insert(p.Index(), n); err != nil {
		return false
	}
	return true
}

// Demote makes n the first child of its next sibling, or of its previous
// sibling when n is the last child. It needs at least one sibling.
func Demote(n *Node) bool {
	if n == nil || n.parent == nil || len(n.parent.children) < 2 {
		return false
	}
	p := n.parent
	i := n.Index()
	target := p.children[len(p.children)-2]
	if i < len(p.children)-1 {
		target = p.children[i+1]
	}
	if _, ok := n.Detach(); !ok {
		return false
	}
	if err := target.insert(0, n); err != nil {
		return false
	}
	return true
}

// Reorder swaps n with its neighbour in dir. Nothing happens at either end of
// the sibling list.
func Reorder(n *Node, dir Direction) bool {
	if n == nil || n.parent == nil {
		return false
	}
	sibs := n.parent.children
	i := n.Index()
	j := i + 1
	if dir == Up {
		j = i - 1
	}
	if i < 0 || j < 0 || j >= len(sibs) {
		return false
	}
	sibs[i], sibs[j] = sibs[j], sibs[i]
	return true
}

// SetFold assigns the fold state of n without touching descendants. Leaves
// stay Empty; Empty cannot be assigned to a node with children.
func SetFold(n *Node, state FoldState) bool {
	if n == nil || len(n.children) == 0 || state == Empty {
		return false
	}
	if n.fold == state {
		return false
	}
	n.fold = state
	return true
}

// ToggleFold flips an expanded node to collapsed and back.
func ToggleFold(n *Node) bool {
	switch n.Fold() {
	case Expanded:
		return SetFold(n, Collapsed)
	case Collapsed:
		return SetFold(n, Expanded)
	default:
		return false
	}
}

// Delete detaches n and releases its subtree. The root cannot be deleted.
func Delete(n *Node) error {
	if n == nil {
		return ErrNoParent
	}
	if n.parent == nil {
		return ErrRoot
	}
	if _, ok := n.Detach(); !ok {
		return ErrNoParent
	}
	release(n)
	return nil
}

// release severs the links of a removed subtree so stale references held by
// a view cannot reach back into the live tree.
func release(n *Node) {
	for _, c := range n.children {
		c.parent = nil
		release(c)
	}
	n.children = nil
	n.fold = Empty
}
