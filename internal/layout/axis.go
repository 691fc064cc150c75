package layout

// Axis helpers map the main and cross axes of a direction to width and
// height.

func mainOf[T any](s Size[T], dir Direction) T {
	if dir.IsRow() {
		return s.Width
	}
	return s.Height
}

func crossOf[T any](s Size[T], dir Direction) T {
	if dir.IsRow() {
		return s.Height
	}
	return s.Width
}

func setMain[T any](s *Size[T], dir Direction, v T) {
	if dir.IsRow() {
		s.Width = v
	} else {
		s.Height = v
	}
}

func setCross[T any](s *Size[T], dir Direction, v T) {
	if dir.IsRow() {
		s.Height = v
	} else {
		s.Width = v
	}
}

// axisSize builds a size from main and cross components.
func axisSize[T any](dir Direction, main, cross T) Size[T] {
	if dir.IsRow() {
		return Size[T]{Width: main, Height: cross}
	}
	return Size[T]{Width: cross, Height: main}
}

func (e Edges) main(dir Direction) float32 {
	if dir.IsRow() {
		return e.Horizontal()
	}
	return e.Vertical()
}

func (e Edges) cross(dir Direction) float32 {
	if dir.IsRow() {
		return e.Vertical()
	}
	return e.Horizontal()
}

func (e Edges) mainStart(dir Direction) float32 {
	if dir.IsRow() {
		return e.Left
	}
	return e.Top
}

func (e Edges) mainEnd(dir Direction) float32 {
	if dir.IsRow() {
		return e.Right
	}
	return e.Bottom
}

func (e Edges) crossStart(dir Direction) float32 {
	if dir.IsRow() {
		return e.Top
	}
	return e.Left
}

func (e Edges) crossEnd(dir Direction) float32 {
	if dir.IsRow() {
		return e.Bottom
	}
	return e.Right
}

// Add returns the side-wise sum of two Edges.
func (e Edges) Add(o Edges) Edges {
	return Edges{Top: e.Top + o.Top, Right: e.Right + o.Right, Bottom: e.Bottom + o.Bottom, Left: e.Left + o.Left}
}

func definedSize(s Size[float32]) Size[Number] {
	return Size[Number]{Width: Defined(s.Width), Height: Defined(s.Height)}
}

func resolveSize(s Size[Value], basis Size[Number]) Size[Number] {
	return Size[Number]{Width: s.Width.Resolve(basis.Width), Height: s.Height.Resolve(basis.Height)}
}
