package layout

// Display selects whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// PositionType selects in-flow or absolute positioning.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	Column                         // Children laid out top-to-bottom
	RowReverse                     // Children laid out right-to-left
	ColumnReverse                  // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether items run against the axis.
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

// Wrap controls whether items may flow onto several lines.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapLines
	WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStretch  Align = iota // Stretch to fill cross axis
	AlignStart                 // Align to start of cross axis
	AlignEnd                   // Align to end of cross axis
	AlignCenter                // Center on cross axis
	AlignBaseline              // Align first baselines
)

// AlignContent distributes flex lines on the cross axis.
type AlignContent uint8

const (
	ContentStretch AlignContent = iota
	ContentStart
	ContentEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceAround
)

// Sides holds one Value per box side.
type Sides struct {
	Top, Right, Bottom, Left Value
}

// SidesAll returns Sides with v on every side.
func SidesAll(v Value) Sides {
	return Sides{Top: v, Right: v, Bottom: v, Left: v}
}

// resolve resolves every side against basis, treating undefined as 0.
func (s Sides) resolve(basis Number) Edges {
	return Edges{
		Top:    s.Top.Resolve(basis).OrElse(0),
		Right:  s.Right.Resolve(basis).OrElse(0),
		Bottom: s.Bottom.Resolve(basis).OrElse(0),
		Left:   s.Left.Resolve(basis).OrElse(0),
	}
}

// Style contains all layout properties for a node.
type Style struct {
	Display  Display
	Position PositionType
	// Inset holds top/right/bottom/left offsets.
	Inset Sides

	// Sizing
	Width       Value
	Height      Value
	MinWidth    Value
	MinHeight   Value
	MaxWidth    Value
	MaxHeight   Value
	AspectRatio Number

	// Flex container properties
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent

	// Flex item properties
	FlexGrow   float32 // How much to grow relative to siblings
	FlexShrink float32 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value
	AlignSelf  *Align // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Sides
	Margin  Sides
	Border  Sides
}

// DefaultStyle returns the initial values of the CSS flexbox properties.
func DefaultStyle() Style {
	return Style{
		Width:        Auto(),
		Height:       Auto(),
		MinWidth:     Auto(),
		MinHeight:    Auto(),
		MaxWidth:     Auto(), // No maximum
		MaxHeight:    Auto(), // No maximum
		FlexBasis:    Auto(),
		Direction:    Row,
		AlignItems:   AlignStretch,
		AlignContent: ContentStretch,
		FlexShrink:   1.0,
	}
}

// alignSelf returns the item's cross-axis alignment inside parent.
func (s Style) alignSelf(parent Style) Align {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	return parent.AlignItems
}

// hasMinMax reports whether any min or max constraint is set.
func (s Style) hasMinMax() bool {
	return s.MinWidth.IsDefined() || s.MinHeight.IsDefined() ||
		s.MaxWidth.IsDefined() || s.MaxHeight.IsDefined()
}

func (s Style) size() Size[Value]    { return Size[Value]{s.Width, s.Height} }
func (s Style) minSize() Size[Value] { return Size[Value]{s.MinWidth, s.MinHeight} }
func (s Style) maxSize() Size[Value] { return Size[Value]{s.MaxWidth, s.MaxHeight} }

// mainMargins returns the start and end margins along the main axis.
func (s Style) mainMargins(dir Direction) (Value, Value) {
	if dir.IsRow() {
		return s.Margin.Left, s.Margin.Right
	}
	return s.Margin.Top, s.Margin.Bottom
}

// crossMargins returns the start and end margins along the cross axis.
func (s Style) crossMargins(dir Direction) (Value, Value) {
	if dir.IsRow() {
		return s.Margin.Top, s.Margin.Bottom
	}
	return s.Margin.Left, s.Margin.Right
}

// crossSize returns the specified size along the cross axis.
func (s Style) crossSize(dir Direction) Value {
	if dir.IsRow() {
		return s.Height
	}
	return s.Width
}
