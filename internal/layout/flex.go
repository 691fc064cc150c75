package layout

// flexItem is an in-flow child of a flex container during layout.
type flexItem struct {
	node  int
	order uint32
	style *Style

	size    Size[Number]
	minSize Size[Number]
	maxSize Size[Number]
	inset   [4]Number // top, right, bottom, left
	margin  Edges
	padding Edges
	border  Edges

	flexBasis      float32
	innerFlexBasis float32
	violation      float32
	frozen         bool

	hypotheticalInner Size[float32]
	hypotheticalOuter Size[float32]
	target            Size[float32]
	outerTarget       Size[float32]

	baseline    float32
	offsetMain  float32
	offsetCross float32
}

// insetMain returns the relative offset along the main axis.
func (it *flexItem) insetMain(dir Direction) float32 {
	if dir.IsRow() {
		return it.inset[3].OrElse(0) - it.inset[1].OrElse(0)
	}
	return it.inset[0].OrElse(0) - it.inset[2].OrElse(0)
}

// insetCross returns the relative offset along the cross axis.
func (it *flexItem) insetCross(dir Direction) float32 {
	if dir.IsRow() {
		return it.inset[0].OrElse(0) - it.inset[2].OrElse(0)
	}
	return it.inset[3].OrElse(0) - it.inset[1].OrElse(0)
}

// flexLine is a run of items sharing a cross size. items aliases the
// container's item slice.
type flexLine struct {
	items       []flexItem
	crossSize   float32
	offsetCross float32
}

// container lays out the children of one flex container.
type container struct {
	s        *solver
	node     int
	style    *Style
	dir      Direction
	children []int

	nodeSize   Size[Number]
	parentSize Size[Number]
	padding    Edges
	border     Edges
	pb         Edges
	margin     Edges

	inner     Size[Number] // nodeSize minus padding and border
	available Size[Number]
	size      Size[float32]
	innerSize Size[float32]

	items []flexItem
	lines []flexLine
}

func (c *container) run(perform bool) Size[float32] {
	c.setup()
	c.buildItems()
	c.flexBaseSizes()
	c.collectLines()
	for i := range c.lines {
		c.resolveFlexibleLengths(&c.lines[i])
	}
	c.mainSize()
	c.hypotheticalCrossSizes()
	hasBaseline := false
	for i := range c.items {
		if c.items[i].style.alignSelf(*c.style) == AlignBaseline {
			hasBaseline = true
			break
		}
	}
	if hasBaseline {
		c.baselines()
	}
	c.lineCrossSizes()
	c.stretchLines()
	c.usedCrossSizes()
	c.distributeMain()
	c.alignCross()
	c.crossSize()

	if !perform {
		return c.size
	}

	c.alignLines()
	c.layoutItems()
	c.layoutAbsolute()
	for i, child := range c.children {
		if c.s.style(child).Display == DisplayNone {
			c.s.hide(child, uint32(i))
		}
	}
	return c.size
}

// setup resolves the box edges and the space available to items.
func (c *container) setup() {
	c.pb = c.padding.Add(c.border)
	c.margin = c.style.Margin.resolve(c.parentSize.Width)
	c.inner = Size[Number]{
		Width:  c.nodeSize.Width.Sub(c.pb.Horizontal()),
		Height: c.nodeSize.Height.Sub(c.pb.Vertical()),
	}
	c.available = Size[Number]{
		Width:  c.nodeSize.Width.Or(c.parentSize.Width.Sub(c.margin.Horizontal())).Sub(c.pb.Horizontal()),
		Height: c.nodeSize.Height.Or(c.parentSize.Height.Sub(c.margin.Vertical())).Sub(c.pb.Vertical()),
	}
}

// buildItems collects the in-flow children with sizes resolved against the
// inner size.
func (c *container) buildItems() {
	c.items = make([]flexItem, 0, len(c.children))
	for i, child := range c.children {
		cs := c.s.style(child)
		if cs.Position == PositionAbsolute || cs.Display == DisplayNone {
			continue
		}
		c.items = append(c.items, flexItem{
			node:    child,
			order:   uint32(i),
			style:   cs,
			size:    resolveSize(cs.size(), c.inner),
			minSize: resolveSize(cs.minSize(), c.inner),
			maxSize: resolveSize(cs.maxSize(), c.inner),
			inset: [4]Number{
				cs.Inset.Top.Resolve(c.inner.Width),
				cs.Inset.Right.Resolve(c.inner.Width),
				cs.Inset.Bottom.Resolve(c.inner.Width),
				cs.Inset.Left.Resolve(c.inner.Width),
			},
			margin:  cs.Margin.resolve(c.inner.Width),
			padding: cs.Padding.resolve(c.inner.Width),
			border:  cs.Border.resolve(c.inner.Width),
		})
	}
}

// flexBaseSizes determines each item's flex base size and hypothetical
// main size.
func (c *container) flexBaseSizes() {
	dir := c.dir
	for i := range c.items {
		it := &c.items[i]
		it.flexBasis = c.flexBasis(it)
	}

	for i := range c.items {
		it := &c.items[i]
		it.innerFlexBasis = it.flexBasis - it.padding.main(dir) - it.border.main(dir)

		// Content-based minimum: the item is never flexed below what its
		// content needs unless its own size says otherwise.
		content := c.s.compute(it.node, Size[Number]{}, c.available, false)
		minMain := Defined(mainOf(content, dir)).
			MaybeMax(mainOf(it.minSize, dir)).
			MaybeMin(mainOf(it.size, dir))

		hyp := maybeMin(maybeMax(maybeMax(it.flexBasis, minMain), mainOf(it.minSize, dir)), mainOf(it.maxSize, dir))
		setMain(&it.hypotheticalInner, dir, hyp)
		setMain(&it.hypotheticalOuter, dir, hyp+it.margin.main(dir))
	}
}

func (c *container) flexBasis(it *flexItem) float32 {
	dir := c.dir
	if basis := it.style.FlexBasis.Resolve(mainOf(c.inner, dir)); basis.defined {
		return basis.value
	}

	if it.style.AspectRatio.defined && it.style.FlexBasis.IsAuto() {
		if cross := crossOf(c.nodeSize, dir); cross.defined {
			return cross.value * it.style.AspectRatio.value
		}
	}

	stretch := it.style.alignSelf(*c.style) == AlignStretch
	width := it.size.Width
	if !width.defined && stretch && !dir.IsRow() {
		width = c.available.Width
	}
	height := it.size.Height
	if !height.defined && stretch && dir.IsRow() {
		height = c.available.Height
	}

	size := c.s.compute(it.node, Size[Number]{
		Width:  width.MaybeMax(it.minSize.Width).MaybeMin(it.maxSize.Width),
		Height: height.MaybeMax(it.minSize.Height).MaybeMin(it.maxSize.Height),
	}, c.available, false)
	return maybeMin(maybeMax(mainOf(size, dir), mainOf(it.minSize, dir)), mainOf(it.maxSize, dir))
}

// collectLines packs items into lines. A zero-sized item never starts a
// line of its own.
func (c *container) collectLines() {
	dir := c.dir
	if c.style.Wrap == NoWrap {
		c.lines = []flexLine{{items: c.items}}
		return
	}

	avail := mainOf(c.available, dir)
	rest := c.items
	for len(rest) > 0 {
		end := len(rest)
		if avail.defined {
			var length float32
			for i := range rest {
				w := mainOf(rest[i].hypotheticalOuter, dir)
				length += w
				if length > avail.value && i != 0 && w > 0 {
					end = i
					break
				}
			}
		}
		c.lines = append(c.lines, flexLine{items: rest[:end:end]})
		rest = rest[end:]
	}
}

// resolveFlexibleLengths grows or shrinks the items of line to fill the
// inner main size.
func (c *container) resolveFlexibleLengths(line *flexLine) {
	dir := c.dir
	innerMain := mainOf(c.inner, dir)

	var hypothetical float32
	for i := range line.items {
		hypothetical += mainOf(line.items[i].hypotheticalOuter, dir)
	}
	growing := hypothetical < innerMain.OrElse(0)
	shrinking := !growing

	// Size inflexible items.
	for i := range line.items {
		it := &line.items[i]
		hyp := mainOf(it.hypotheticalInner, dir)
		if (it.style.FlexGrow == 0 && it.style.FlexShrink == 0) ||
			(growing && it.flexBasis > hyp) ||
			(shrinking && it.flexBasis < hyp) {
			it.freeze(dir, hyp)
		}
	}

	usedSpace := func() float32 {
		var used float32
		for i := range line.items {
			it := &line.items[i]
			used += it.margin.main(dir)
			if it.frozen {
				used += mainOf(it.target, dir)
			} else {
				used += it.flexBasis
			}
		}
		return used
	}
	initialFree := innerMain.Sub(usedSpace()).OrElse(0)

	for {
		var unfrozen []*flexItem
		for i := range line.items {
			if !line.items[i].frozen {
				unfrozen = append(unfrozen, &line.items[i])
			}
		}
		if len(unfrozen) == 0 {
			break
		}

		used := usedSpace()
		var sumGrow, sumShrink float32
		for _, it := range unfrozen {
			sumGrow += it.style.FlexGrow
			sumShrink += it.style.FlexShrink
		}

		var free float32
		switch {
		case growing && sumGrow < 1:
			free = maybeMin(initialFree*sumGrow, innerMain.Sub(used))
		case shrinking && sumShrink < 1:
			free = maybeMax(initialFree*sumShrink, innerMain.Sub(used))
		default:
			free = innerMain.Sub(used).OrElse(0)
		}

		for _, it := range unfrozen {
			setMain(&it.target, dir, it.flexBasis)
		}
		if isNormal(free) {
			if growing && sumGrow > 0 {
				for _, it := range unfrozen {
					setMain(&it.target, dir, it.flexBasis+free*(it.style.FlexGrow/sumGrow))
				}
			} else if shrinking && sumShrink > 0 {
				var sumScaled float32
				for _, it := range unfrozen {
					sumScaled += it.innerFlexBasis * it.style.FlexShrink
				}
				if sumScaled > 0 {
					for _, it := range unfrozen {
						scaled := it.innerFlexBasis * it.style.FlexShrink
						setMain(&it.target, dir, it.flexBasis+free*(scaled/sumScaled))
					}
				}
			}
		}

		// Fix min/max violations.
		var totalViolation float32
		for _, it := range unfrozen {
			minMain := mainOf(it.minSize, dir)
			if dir.IsRow() && c.s.tree.MeasureFunc(it.node) == nil {
				content := c.s.compute(it.node, Size[Number]{}, c.available, false)
				minMain = Defined(content.Width).MaybeMin(it.size.Width).MaybeMax(it.minSize.Width)
			}
			target := mainOf(it.target, dir)
			clamped := max(0, maybeMax(maybeMin(target, mainOf(it.maxSize, dir)), minMain))
			it.violation = clamped - target
			setMain(&it.target, dir, clamped)
			setMain(&it.outerTarget, dir, clamped+it.margin.main(dir))
			totalViolation += it.violation
		}

		// Freeze over-flexed items.
		for _, it := range unfrozen {
			switch {
			case totalViolation > 0:
				it.frozen = it.violation > 0
			case totalViolation < 0:
				it.frozen = it.violation < 0
			default:
				it.frozen = true
			}
		}
	}
}

// freeze fixes the item's main size at v.
func (it *flexItem) freeze(dir Direction, v float32) {
	setMain(&it.target, dir, v)
	setMain(&it.outerTarget, dir, v+it.margin.main(dir))
	it.frozen = true
}

// mainSize determines the container's main size. A multi-line container
// takes all available space.
func (c *container) mainSize() {
	dir := c.dir
	main := mainOf(c.nodeSize, dir)
	if main.defined {
		setMain(&c.size, dir, main.value)
	} else {
		var longest float32
		for _, line := range c.lines {
			var length float32
			for i := range line.items {
				length += mainOf(line.items[i].outerTarget, dir)
			}
			longest = max(longest, length)
		}
		size := longest + c.pb.main(dir)
		if avail := mainOf(c.available, dir); avail.defined && len(c.lines) > 1 && size < avail.value {
			size = avail.value
		}
		setMain(&c.size, dir, size)
	}
	setMain(&c.innerSize, dir, mainOf(c.size, dir)-c.pb.main(dir))
}

func (c *container) hypotheticalCrossSizes() {
	dir := c.dir
	parent := axisSize(dir, Defined(mainOf(c.innerSize, dir)), crossOf(c.available, dir))
	for i := range c.items {
		it := &c.items[i]
		cross := crossOf(it.size, dir).MaybeMax(crossOf(it.minSize, dir)).MaybeMin(crossOf(it.maxSize, dir))
		size := c.s.compute(it.node, axisSize(dir, Defined(mainOf(it.target, dir)), cross), parent, false)
		hyp := maybeMin(maybeMax(crossOf(size, dir), crossOf(it.minSize, dir)), crossOf(it.maxSize, dir))
		setCross(&it.hypotheticalInner, dir, hyp)
		setCross(&it.hypotheticalOuter, dir, hyp+it.margin.cross(dir))
	}
}

// baselines lays out every item at its target main size to find its first
// baseline.
func (c *container) baselines() {
	dir := c.dir
	parent := axisSize(dir, Defined(mainOf(c.innerSize, dir)), crossOf(c.inner, dir))
	for i := range c.items {
		it := &c.items[i]
		size := c.s.compute(it.node, axisSize(dir,
			Defined(mainOf(it.target, dir)),
			Defined(crossOf(it.hypotheticalInner, dir)),
		), parent, true)
		it.baseline = c.s.baseline(it.node, size.Height)
	}
}

// baselineAligned reports whether the item takes part in baseline
// alignment of its line.
func (c *container) baselineAligned(it *flexItem) bool {
	start, end := it.style.crossMargins(c.dir)
	return it.style.alignSelf(*c.style) == AlignBaseline &&
		!start.IsAuto() && !end.IsAuto() &&
		!it.style.crossSize(c.dir).IsDefined()
}

func (c *container) lineCrossSizes() {
	dir := c.dir
	if cross := crossOf(c.nodeSize, dir); len(c.lines) == 1 && cross.defined {
		c.lines[0].crossSize = cross.value - c.pb.cross(dir)
		return
	}
	for l := range c.lines {
		line := &c.lines[l]
		var maxBaseline float32
		for i := range line.items {
			maxBaseline = max(maxBaseline, line.items[i].baseline)
		}
		var size float32
		for i := range line.items {
			it := &line.items[i]
			outer := crossOf(it.hypotheticalOuter, dir)
			if c.baselineAligned(it) {
				outer += maxBaseline - it.baseline
			}
			size = max(size, outer)
		}
		line.crossSize = size
	}
}

// stretchLines grows the lines to fill a definite cross size.
func (c *container) stretchLines() {
	dir := c.dir
	cross := crossOf(c.nodeSize, dir)
	if c.style.AlignContent != ContentStretch || !cross.defined {
		return
	}
	var total float32
	for _, line := range c.lines {
		total += line.crossSize
	}
	inner := cross.value - c.pb.cross(dir)
	if total < inner {
		add := (inner - total) / float32(len(c.lines))
		for l := range c.lines {
			c.lines[l].crossSize += add
		}
	}
}

func (c *container) usedCrossSizes() {
	dir := c.dir
	for l := range c.lines {
		line := &c.lines[l]
		for i := range line.items {
			it := &line.items[i]
			start, end := it.style.crossMargins(dir)
			cross := crossOf(it.hypotheticalInner, dir)
			if it.style.alignSelf(*c.style) == AlignStretch &&
				!start.IsAuto() && !end.IsAuto() &&
				!it.style.crossSize(dir).IsDefined() {
				cross = maybeMin(maybeMax(line.crossSize-it.margin.cross(dir), crossOf(it.minSize, dir)), crossOf(it.maxSize, dir))
			}
			setCross(&it.target, dir, cross)
			setCross(&it.outerTarget, dir, cross+it.margin.cross(dir))
		}
	}
}

// distributeMain resolves main-axis auto margins, or applies
// justify-content when there are none.
func (c *container) distributeMain() {
	dir := c.dir
	for l := range c.lines {
		line := &c.lines[l]
		var used float32
		autoMargins := 0
		for i := range line.items {
			it := &line.items[i]
			used += mainOf(it.outerTarget, dir)
			start, end := it.style.mainMargins(dir)
			if start.IsAuto() {
				autoMargins++
			}
			if end.IsAuto() {
				autoMargins++
			}
		}
		free := mainOf(c.innerSize, dir) - used

		if free > 0 && autoMargins > 0 {
			m := free / float32(autoMargins)
			for i := range line.items {
				it := &line.items[i]
				start, end := it.style.mainMargins(dir)
				if start.IsAuto() {
					if dir.IsRow() {
						it.margin.Left = m
					} else {
						it.margin.Top = m
					}
				}
				if end.IsAuto() {
					if dir.IsRow() {
						it.margin.Right = m
					} else {
						it.margin.Bottom = m
					}
				}
			}
			continue
		}

		n := len(line.items)
		reverse := dir.IsReverse()
		for k := 0; k < n; k++ {
			i := k
			if reverse {
				i = n - 1 - k
			}
			line.items[i].offsetMain = justifyOffset(c.style.JustifyContent, free, k == 0, n, reverse)
		}
	}
}

// justifyOffset returns the gap placed before an item. first is the first
// item in layout order.
func justifyOffset(j Justify, free float32, first bool, n int, reverse bool) float32 {
	switch j {
	case JustifyStart:
		if reverse && first {
			return free
		}
	case JustifyEnd:
		if first && !reverse {
			return free
		}
	case JustifyCenter:
		if first {
			return free / 2
		}
	case JustifySpaceBetween:
		if !first {
			return free / float32(n-1)
		}
	case JustifySpaceAround:
		if first {
			return free / float32(n) / 2
		}
		return free / float32(n)
	case JustifySpaceEvenly:
		return free / float32(n+1)
	}
	return 0
}

// alignCross resolves cross-axis auto margins, or applies align-self.
func (c *container) alignCross() {
	dir := c.dir
	wrapReverse := c.style.Wrap == WrapReverse
	for l := range c.lines {
		line := &c.lines[l]
		var maxBaseline float32
		for i := range line.items {
			maxBaseline = max(maxBaseline, line.items[i].baseline)
		}

		for i := range line.items {
			it := &line.items[i]
			free := line.crossSize - crossOf(it.outerTarget, dir)
			start, end := it.style.crossMargins(dir)

			switch {
			case start.IsAuto() && end.IsAuto():
				it.setCrossMargins(dir, free/2, free/2)
			case start.IsAuto():
				it.setCrossMargins(dir, free, it.margin.crossEnd(dir))
			case end.IsAuto():
				it.setCrossMargins(dir, it.margin.crossStart(dir), free)
			default:
				it.offsetCross = alignOffset(it.style.alignSelf(*c.style), free, wrapReverse, dir.IsRow(), maxBaseline-it.baseline)
			}
		}
	}
}

func (it *flexItem) setCrossMargins(dir Direction, start, end float32) {
	if dir.IsRow() {
		it.margin.Top, it.margin.Bottom = start, end
	} else {
		it.margin.Left, it.margin.Right = start, end
	}
}

// alignOffset returns an item's offset inside its line. Baseline
// alignment only applies to rows; columns treat it as start.
func alignOffset(a Align, free float32, wrapReverse, row bool, baselineShift float32) float32 {
	switch a {
	case AlignEnd:
		if wrapReverse {
			return 0
		}
		return free
	case AlignCenter:
		return free / 2
	case AlignBaseline:
		if row {
			return baselineShift
		}
	}
	// start and stretch
	if wrapReverse {
		return free
	}
	return 0
}

// crossSize determines the container's cross size.
func (c *container) crossSize() {
	dir := c.dir
	var total float32
	for _, line := range c.lines {
		total += line.crossSize
	}
	setCross(&c.size, dir, crossOf(c.nodeSize, dir).OrElse(total+c.pb.cross(dir)))
	setCross(&c.innerSize, dir, crossOf(c.size, dir)-c.pb.cross(dir))
}

// alignLines applies align-content.
func (c *container) alignLines() {
	dir := c.dir
	wrapReverse := c.style.Wrap == WrapReverse
	var total float32
	for _, line := range c.lines {
		total += line.crossSize
	}
	free := crossOf(c.innerSize, dir) - total
	n := len(c.lines)
	for k := 0; k < n; k++ {
		l := k
		if wrapReverse {
			l = n - 1 - k
		}
		first := k == 0
		var off float32
		switch c.style.AlignContent {
		case ContentStart:
			if first && wrapReverse {
				off = free
			}
		case ContentEnd:
			if first && !wrapReverse {
				off = free
			}
		case ContentCenter:
			if first {
				off = free / 2
			}
		case ContentSpaceBetween:
			if !first {
				off = free / float32(n-1)
			}
		case ContentSpaceAround:
			off = free / float32(n)
			if first {
				off /= 2
			}
		}
		c.lines[l].offsetCross = off
	}
}

// layoutItems performs the final layout of every in-flow item and records
// its position relative to the container's border box. Items resolve
// percentages against the container's content box.
func (c *container) layoutItems() {
	dir := c.dir
	parent := definedSize(c.innerSize)
	totalCross := c.pb.crossStart(dir)

	layoutLine := func(line *flexLine) {
		totalMain := c.pb.mainStart(dir)
		n := len(line.items)
		for k := 0; k < n; k++ {
			i := k
			if dir.IsReverse() {
				i = n - 1 - k
			}
			it := &line.items[i]
			size := nonNegative(c.s.compute(it.node, definedSize(it.target), parent, true))

			offMain := totalMain + it.offsetMain + it.margin.mainStart(dir) + it.insetMain(dir)
			offCross := totalCross + it.offsetCross + line.offsetCross + it.margin.crossStart(dir) + it.insetCross(dir)

			loc := Point{X: offMain, Y: offCross}
			if !dir.IsRow() {
				loc = Point{X: offCross, Y: offMain}
			}
			c.s.out[it.node] = Layout{
				Order:    it.order,
				Location: loc,
				Size:     size,
				Padding:  it.padding,
				Border:   it.border,
				Margin:   it.margin,
			}
			totalMain += it.offsetMain + it.margin.main(dir) + mainOf(size, dir)
		}
		totalCross += line.offsetCross + line.crossSize
	}

	n := len(c.lines)
	for k := 0; k < n; k++ {
		l := k
		if c.style.Wrap == WrapReverse {
			l = n - 1 - k
		}
		layoutLine(&c.lines[l])
	}
}
