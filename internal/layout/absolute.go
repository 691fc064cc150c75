package layout

// layoutAbsolute lays out the absolutely positioned children against the
// container's border box. Insets win over alignment on each axis.
func (c *container) layoutAbsolute() {
	dir := c.dir
	cw, ch := Defined(c.size.Width), Defined(c.size.Height)
	wrapReverse := c.style.Wrap == WrapReverse

	for i, child := range c.children {
		cs := c.s.style(child)
		if cs.Position != PositionAbsolute || cs.Display == DisplayNone {
			continue
		}

		// An unset margin counts as zero next to a defined inset.
		left := cs.Inset.Left.Resolve(cw).Add(cs.Margin.Left.Resolve(cw).OrElse(0))
		right := cs.Inset.Right.Resolve(cw).Add(cs.Margin.Right.Resolve(cw).OrElse(0))
		top := cs.Inset.Top.Resolve(ch).Add(cs.Margin.Top.Resolve(ch).OrElse(0))
		bottom := cs.Inset.Bottom.Resolve(ch).Add(cs.Margin.Bottom.Resolve(ch).OrElse(0))

		startMain, endMain := left, right
		startCross, endCross := top, bottom
		if !dir.IsRow() {
			startMain, endMain, startCross, endCross = top, bottom, left, right
		}

		width := cs.Width.Resolve(cw).MaybeMax(cs.MinWidth.Resolve(cw)).MaybeMin(cs.MaxWidth.Resolve(cw))
		if !width.defined && left.defined && right.defined {
			width = Defined(max(0, cw.value-left.value-right.value))
		}
		height := cs.Height.Resolve(ch).MaybeMax(cs.MinHeight.Resolve(ch)).MaybeMin(cs.MaxHeight.Resolve(ch))
		if !height.defined && top.defined && bottom.defined {
			height = Defined(max(0, ch.value-top.value-bottom.value))
		}

		parent := Size[Number]{Width: cw, Height: ch}
		size := nonNegative(c.s.compute(child, Size[Number]{Width: width, Height: height}, parent, true))

		minSize, maxSize := resolveSize(cs.minSize(), c.inner), resolveSize(cs.maxSize(), c.inner)
		freeMain := mainOf(c.size, dir) - maybeMin(maybeMax(mainOf(size, dir), mainOf(minSize, dir)), mainOf(maxSize, dir))
		freeCross := crossOf(c.size, dir) - maybeMin(maybeMax(crossOf(size, dir), crossOf(minSize, dir)), crossOf(maxSize, dir))

		var offMain float32
		switch {
		case startMain.defined:
			offMain = startMain.value + c.border.mainStart(dir)
		case endMain.defined:
			offMain = freeMain - endMain.value - c.border.mainEnd(dir)
		default:
			switch c.style.JustifyContent {
			case JustifyEnd:
				offMain = freeMain - c.pb.mainEnd(dir)
			case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
				offMain = freeMain / 2
			default:
				offMain = c.pb.mainStart(dir)
			}
		}

		var offCross float32
		switch {
		case startCross.defined:
			offCross = startCross.value + c.border.crossStart(dir)
		case endCross.defined:
			offCross = freeCross - endCross.value - c.border.crossEnd(dir)
		default:
			start, end := c.pb.crossStart(dir), freeCross-c.pb.crossEnd(dir)
			if wrapReverse {
				start, end = end, start
			}
			switch cs.alignSelf(*c.style) {
			case AlignEnd:
				offCross = end
			case AlignCenter, AlignBaseline:
				offCross = freeCross / 2
			default:
				offCross = start
			}
		}

		loc := Point{X: offMain, Y: offCross}
		if !dir.IsRow() {
			loc = Point{X: offCross, Y: offMain}
		}
		c.s.out[child] = Layout{
			Order:    uint32(i),
			Location: loc,
			Size:     size,
			Padding:  cs.Padding.resolve(cw),
			Border:   cs.Border.resolve(cw),
			Margin:   cs.Margin.resolve(cw),
		}
	}
}
