package layout

// Compute performs layout calculation on the subtree rooted at root and
// returns one Layout per node of tree, indexed like the tree. Nodes outside
// the subtree keep zero layouts.
//
// size specifies the root constraint (typically the window size). An auto
// root dimension takes the available size along that axis.
func Compute(tree Layoutable, root int, size Size[Number]) []Layout {
	s := newSolver(tree)
	if root < 0 || root >= tree.Len() {
		return s.out
	}

	// The root resolves its own width/height against the available space,
	// unlike children which receive their size from the parent's flex pass.
	style := s.style(root)
	nodeSize := Size[Number]{
		Width:  style.Width.Resolve(size.Width).Or(size.Width),
		Height: style.Height.Resolve(size.Height).Or(size.Height),
	}

	result := s.compute(root, nodeSize, size, true)
	if style.hasMinMax() {
		// Second pass with the first pass clamped.
		clamped := Size[Number]{
			Width:  Defined(result.Width).MaybeMin(style.MaxWidth.Resolve(size.Width)).MaybeMax(style.MinWidth.Resolve(size.Width)),
			Height: Defined(result.Height).MaybeMin(style.MaxHeight.Resolve(size.Height)).MaybeMax(style.MinHeight.Resolve(size.Height)),
		}
		if clamped != definedSize(result) {
			result = s.compute(root, clamped, size, true)
		}
	}

	s.out[root] = Layout{
		Size:    Size[float32]{Width: max(0, result.Width), Height: max(0, result.Height)},
		Padding: style.Padding.resolve(size.Width),
		Border:  style.Border.resolve(size.Width),
		Margin:  style.Margin.resolve(size.Width),
	}
	return s.out
}

// cacheEntry memoizes the last computation of a node.
type cacheEntry struct {
	nodeSize   Size[Number]
	parentSize Size[Number]
	perform    bool
	size       Size[float32]
}

// solver carries the per-call state of Compute.
type solver struct {
	tree   Layoutable
	out    []Layout
	cache  []*cacheEntry
	styles []Style
	loaded []bool
}

func newSolver(tree Layoutable) *solver {
	n := tree.Len()
	return &solver{
		tree:   tree,
		out:    make([]Layout, n),
		cache:  make([]*cacheEntry, n),
		styles: make([]Style, n),
		loaded: make([]bool, n),
	}
}

// style returns the memoized style of node.
func (s *solver) style(node int) *Style {
	if !s.loaded[node] {
		s.styles[node] = s.tree.LayoutStyle(node)
		s.loaded[node] = true
	}
	return &s.styles[node]
}

// cached returns a previous result that can stand in for this call. A
// measurement can reuse a full layout but not the other way round.
func (s *solver) cached(node int, nodeSize, parentSize Size[Number], perform bool) (Size[float32], bool) {
	e := s.cache[node]
	if e == nil || (perform && !e.perform) {
		return Size[float32]{}, false
	}
	widthOK := matches(nodeSize.Width, e.nodeSize.Width, e.size.Width)
	heightOK := matches(nodeSize.Height, e.nodeSize.Height, e.size.Height)
	if widthOK && heightOK {
		return e.size, true
	}
	if e.nodeSize == nodeSize && e.parentSize == parentSize {
		return e.size, true
	}
	return Size[float32]{}, false
}

func matches(want, cachedWant Number, got float32) bool {
	if want.defined {
		return want.value == got
	}
	return !cachedWant.defined
}

// compute returns the border box size of node. When perform is set the
// layouts of all descendants are written as well.
func (s *solver) compute(node int, nodeSize, parentSize Size[Number], perform bool) Size[float32] {
	if size, ok := s.cached(node, nodeSize, parentSize, perform); ok {
		return size
	}

	style := s.style(node)
	padding := style.Padding.resolve(parentSize.Width)
	border := style.Border.resolve(parentSize.Width)

	var size Size[float32]
	children := s.tree.LayoutChildren(node)
	if len(children) == 0 {
		size = s.leaf(node, nodeSize, padding.Add(border))
	} else {
		c := &container{
			s:          s,
			node:       node,
			style:      style,
			dir:        style.Direction,
			children:   children,
			nodeSize:   nodeSize,
			parentSize: parentSize,
			padding:    padding,
			border:     border,
		}
		size = c.run(perform)
	}

	s.cache[node] = &cacheEntry{nodeSize: nodeSize, parentSize: parentSize, perform: perform, size: size}
	return size
}

// leaf sizes a node without children from its definite size, its measure
// function or its padding and border.
func (s *solver) leaf(node int, nodeSize Size[Number], pb Edges) Size[float32] {
	if nodeSize.Width.defined && nodeSize.Height.defined {
		return Size[float32]{Width: nodeSize.Width.value, Height: nodeSize.Height.value}
	}
	if measure := s.tree.MeasureFunc(node); measure != nil {
		content := measure(Size[Number]{
			Width:  nodeSize.Width.Sub(pb.Horizontal()),
			Height: nodeSize.Height.Sub(pb.Vertical()),
		})
		return Size[float32]{
			Width:  nodeSize.Width.OrElse(content.Width + pb.Horizontal()),
			Height: nodeSize.Height.OrElse(content.Height + pb.Vertical()),
		}
	}
	return Size[float32]{
		Width:  nodeSize.Width.OrElse(pb.Horizontal()),
		Height: nodeSize.Height.OrElse(pb.Vertical()),
	}
}

// baseline returns the distance from the top of node to its first
// baseline. Leaves use their bottom edge.
func (s *solver) baseline(node int, height float32) float32 {
	children := s.tree.LayoutChildren(node)
	if len(children) == 0 {
		return height
	}
	first := s.out[children[0]]
	return first.Location.Y + s.baseline(children[0], first.Size.Height)
}

// hide zeroes the layouts of a display:none subtree.
func (s *solver) hide(node int, order uint32) {
	s.out[node] = Layout{Order: order}
	for i, c := range s.tree.LayoutChildren(node) {
		s.hide(c, uint32(i))
	}
}
