package layout

// Tree is a minimal Layoutable arena for tests.
type Tree struct {
	nodes []treeNode
}

type treeNode struct {
	style    Style
	children []int
	measure  MeasureFunc
}

func NewTree() *Tree {
	return &Tree{}
}

// NewNode adds a node with the given style and children and returns its
// index.
func (t *Tree) NewNode(style Style, children ...int) int {
	t.nodes = append(t.nodes, treeNode{style: style, children: children})
	return len(t.nodes) - 1
}

// NewLeaf adds a childless node sized by measure.
func (t *Tree) NewLeaf(style Style, measure MeasureFunc) int {
	id := t.NewNode(style)
	t.nodes[id].measure = measure
	return id
}

func (t *Tree) Len() int                      { return len(t.nodes) }
func (t *Tree) LayoutStyle(n int) Style       { return t.nodes[n].style }
func (t *Tree) LayoutChildren(n int) []int    { return t.nodes[n].children }
func (t *Tree) MeasureFunc(n int) MeasureFunc { return t.nodes[n].measure }

var _ Layoutable = (*Tree)(nil)
