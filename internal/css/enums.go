package css

// LayoutDisplay selects whether a node takes part in layout.
type LayoutDisplay uint8

const (
	DisplayFlex LayoutDisplay = iota
	DisplayNone
)

// LayoutPosition is the positioning scheme of a node.
type LayoutPosition uint8

const (
	PositionStatic LayoutPosition = iota
	PositionRelative
	PositionAbsolute
)

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

const (
	DirectionRow FlexDirection = iota
	DirectionRowReverse
	DirectionColumn
	DirectionColumnReverse
)

// FlexWrap controls whether items may wrap onto several lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// JustifyContent distributes items along the main axis.
type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems aligns items on the cross axis.
type AlignItems uint8

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignBaseline
)

// AlignContent aligns flex lines on the cross axis.
type AlignContent uint8

const (
	ContentStretch AlignContent = iota
	ContentStart
	ContentEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceAround
)

// Overflow is the overflow behavior of one axis.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// IsVisible reports whether content may paint outside the box.
func (o Overflow) IsVisible() bool { return o == OverflowVisible }

// IsHidden reports whether content is clipped without scrolling.
func (o Overflow) IsHidden() bool { return o == OverflowHidden }

// Scrolls reports whether overflowing content becomes scrollable.
func (o Overflow) Scrolls() bool { return o == OverflowScroll || o == OverflowAuto }

// TextAlign aligns text lines horizontally.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// BorderStyle is the line style of one border side.
type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDouble
	BorderDotted
	BorderDashed
	BorderHidden
	BorderGroove
	BorderRidge
	BorderInset
	BorderOutset
)

// Cursor is the mouse cursor shown over a node.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorCrosshair
	CursorMove
	CursorWait
	CursorHelp
	CursorProgress
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorEwResize
	CursorNsResize
)

// BoxShadowClipMode selects outset or inset shadows.
type BoxShadowClipMode uint8

const (
	ShadowOutset BoxShadowClipMode = iota
	ShadowInset
)

var keywordTables = map[PropertyType]map[string]uint8{
	PropDisplay:  {"flex": uint8(DisplayFlex), "block": uint8(DisplayFlex), "none": uint8(DisplayNone)},
	PropPosition: {"static": uint8(PositionStatic), "relative": uint8(PositionRelative), "absolute": uint8(PositionAbsolute)},
	PropFlexDirection: {
		"row": uint8(DirectionRow), "row-reverse": uint8(DirectionRowReverse),
		"column": uint8(DirectionColumn), "column-reverse": uint8(DirectionColumnReverse),
	},
	PropFlexWrap: {"nowrap": uint8(NoWrap), "wrap": uint8(Wrap), "wrap-reverse": uint8(WrapReverse)},
	PropJustifyContent: {
		"flex-start": uint8(JustifyStart), "start": uint8(JustifyStart),
		"flex-end": uint8(JustifyEnd), "end": uint8(JustifyEnd),
		"center":        uint8(JustifyCenter),
		"space-between": uint8(JustifySpaceBetween),
		"space-around":  uint8(JustifySpaceAround),
		"space-evenly":  uint8(JustifySpaceEvenly),
	},
	PropAlignItems: alignKeywords,
	PropAlignSelf:  alignKeywords,
	PropAlignContent: {
		"stretch": uint8(ContentStretch), "center": uint8(ContentCenter),
		"flex-start": uint8(ContentStart), "start": uint8(ContentStart),
		"flex-end": uint8(ContentEnd), "end": uint8(ContentEnd),
		"space-between": uint8(ContentSpaceBetween), "space-around": uint8(ContentSpaceAround),
	},
	PropOverflowX: overflowKeywords,
	PropOverflowY: overflowKeywords,
	PropTextAlign: {"left": uint8(TextAlignLeft), "start": uint8(TextAlignLeft), "center": uint8(TextAlignCenter), "right": uint8(TextAlignRight), "end": uint8(TextAlignRight)},
	PropBorderTopStyle:    borderStyleKeywords,
	PropBorderRightStyle:  borderStyleKeywords,
	PropBorderBottomStyle: borderStyleKeywords,
	PropBorderLeftStyle:   borderStyleKeywords,
	PropCursor: {
		"default": uint8(CursorDefault), "pointer": uint8(CursorPointer), "text": uint8(CursorText),
		"crosshair": uint8(CursorCrosshair), "move": uint8(CursorMove), "wait": uint8(CursorWait),
		"help": uint8(CursorHelp), "progress": uint8(CursorProgress), "not-allowed": uint8(CursorNotAllowed),
		"grab": uint8(CursorGrab), "grabbing": uint8(CursorGrabbing),
		"ew-resize": uint8(CursorEwResize), "ns-resize": uint8(CursorNsResize),
	},
}

var alignKeywords = map[string]uint8{
	"stretch": uint8(AlignStretch), "center": uint8(AlignCenter),
	"flex-start": uint8(AlignStart), "start": uint8(AlignStart),
	"flex-end": uint8(AlignEnd), "end": uint8(AlignEnd),
	"baseline": uint8(AlignBaseline),
}

var overflowKeywords = map[string]uint8{
	"visible": uint8(OverflowVisible), "hidden": uint8(OverflowHidden),
	"scroll": uint8(OverflowScroll), "auto": uint8(OverflowAuto),
}

var borderStyleKeywords = map[string]uint8{
	"none": uint8(BorderNone), "solid": uint8(BorderSolid), "double": uint8(BorderDouble),
	"dotted": uint8(BorderDotted), "dashed": uint8(BorderDashed), "hidden": uint8(BorderHidden),
	"groove": uint8(BorderGroove), "ridge": uint8(BorderRidge), "inset": uint8(BorderInset),
	"outset": uint8(BorderOutset),
}
