package outline

// Row is one visible line of the outline.
type Row struct {
	Node  *Node
	Depth int
	Fold  FoldState
}

// Flatten walks root in pre-order, descending only into expanded nodes.
func Flatten(root *Node) []Row {
	if root == nil {
		return nil
	}
	var out []Row
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		fold := n.Fold()
		out = append(out, Row{Node: n, Depth: depth, Fold: fold})
		if fold != Expanded {
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return out
}

// View tracks the selection and vertical scroll over the flattened rows of a
// tree. Call Refresh after any structural or fold change.
type View struct {
	root     *Node
	rows     []Row
	selected *Node
	index    int
	scroll   int
	height   int
}

func NewView(root *Node) *View {
	v := &View{root: root, height: 1}
	v.selected = root
	v.Refresh()
	return v
}

func (v *View) Root() *Node { return v.root }
func (v *View) Rows() []Row { return v.rows }
func (v *View) Selected() *Node { return v.selected }
func (v *View) Index() int { return v.index }
func (v *View) Scroll() int { return v.scroll }
func (v *View) Height() int { return v.height }

// SetRoot replaces the tree and selects its root.
func (v *View) SetRoot(root *Node) {
	v.root = root
	v.selected = root
	v.index = 0
	v.scroll = 0
	v.Refresh()
}

// SetHeight sets the number of rows the viewport shows.
func (v *View) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	v.height = h
	v.clampScroll()
}

// Visible returns the rows inside the viewport.
func (v *View) Visible() []Row {
	if v.scroll >= len(v.rows) {
		return nil
	}
	end := min(len(v.rows), v.scroll+v.height)
	return v.rows[v.scroll:end]
}

// Refresh re-flattens the tree and revalidates the selection. A selection
// hidden under a collapsed ancestor moves to that ancestor; a selection that
// left the tree moves to the row now at its old index.
func (v *View) Refresh() {
	v.rows = Flatten(v.root)
	if len(v.rows) == 0 {
		v.selected = nil
		v.index = 0
		v.scroll = 0
		return
	}
	if i := v.find(v.selected); i >= 0 {
		v.index = i
		v.clampScroll()
		return
	}
	if v.selected != nil && v.selected.Root() == v.root {
		for p := v.selected.parent; p != nil; p = p.parent {
			if i := v.find(p); i >= 0 {
				v.selected = p
				v.index = i
				v.clampScroll()
				return
			}
		}
	}
	v.index = min(max(v.index, 0), len(v.rows)-1)
	v.selected = v.rows[v.index].Node
	v.clampScroll()
}

func (v *View) find(n *Node) int {
	if n == nil {
		return -1
	}
	for i, r := range v.rows {
		if r.Node == n {
			return i
		}
	}
	return -1
}

// Select moves the selection to n if it is visible.
func (v *View) Select(n *Node) bool {
	i := v.find(n)
	if i < 0 {
		return false
	}
	v.selected = n
	v.index = i
	v.clampScroll()
	return true
}

// MoveUp selects the previous visible row; at the first row it stays put.
func (v *View) MoveUp() bool {
	if len(v.rows) == 0 {
		return false
	}
	if v.index <= 0 {
		v.index = 0
		v.selected = v.rows[0].Node
		v.scroll = 0
		return false
	}
	v.index--
	v.selected = v.rows[v.index].Node
	v.clampScroll()
	return true
}

// MoveDown selects the next visible row; at the last row it stays put.
func (v *View) MoveDown() bool {
	if len(v.rows) == 0 {
		return false
	}
	if v.index >= len(v.rows)-1 {
		v.index = len(v.rows) - 1
		v.selected = v.rows[v.index].Node
		v.clampScroll()
		return false
	}
	v.index++
	v.selected = v.rows[v.index].Node
	v.clampScroll()
	return true
}

func (v *View) clampScroll() {
	if v.index < v.scroll {
		v.scroll = v.index
	}
	if v.index >= v.scroll+v.height {
		v.scroll = v.index - v.height + 1
	}
	if maxScroll := max(0, len(v.rows)-v.height); v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
}
