package font

// FontMetrics is the union of the head, hhea and OS/2 fields the layout core
// uses. All values are in font units.
type FontMetrics struct {
	// head
	UnitsPerEm       uint16
	FontFlags        uint16
	XMin             int16
	YMin             int16
	XMax             int16
	YMax             int16
	MacStyle         uint16
	LowestRecPPEM    uint16
	IndexToLocFormat int16

	// hhea
	Ascender            int16
	Descender           int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	NumHMetrics         uint16

	// OS/2
	XAvgCharWidth      int16
	WeightClass        uint16
	WidthClass         uint16
	FsType             uint16
	SubscriptXSize     int16
	SubscriptYSize     int16
	SubscriptXOffset   int16
	SubscriptYOffset   int16
	SuperscriptXSize   int16
	SuperscriptYSize   int16
	SuperscriptXOffset int16
	SuperscriptYOffset int16
	StrikeoutSize      int16
	StrikeoutPosition  int16
	FamilyClass        int16
	Panose             [10]uint8
	UnicodeRange       [4]uint32
	VendorID           Tag
	FsSelection        uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
	TypoAscender       int16
	TypoDescender      int16
	TypoLineGap        int16
	WinAscent          uint16
	WinDescent         uint16
	CodePageRange      [2]uint32
	XHeight            int16
	CapHeight          int16
	DefaultChar        uint16
	BreakChar          uint16
	MaxContext         uint16
}

// defaultUnitsPerEm replaces a zero units-per-em.
const defaultUnitsPerEm = 1000

func parseHead(m *FontMetrics, s segment) bool {
	if len(s) < 54 {
		return false
	}
	m.FontFlags = s.u16(16)
	m.UnitsPerEm = s.u16(18)
	m.XMin = s.i16(36)
	m.YMin = s.i16(38)
	m.XMax = s.i16(40)
	m.YMax = s.i16(42)
	m.MacStyle = s.u16(44)
	m.LowestRecPPEM = s.u16(46)
	m.IndexToLocFormat = s.i16(50)
	if m.UnitsPerEm == 0 {
		m.UnitsPerEm = defaultUnitsPerEm
	}
	return true
}

func parseHhea(m *FontMetrics, s segment) {
	if len(s) < 36 {
		return
	}
	m.Ascender = s.i16(4)
	m.Descender = s.i16(6)
	m.LineGap = s.i16(8)
	m.AdvanceWidthMax = s.u16(10)
	m.MinLeftSideBearing = s.i16(12)
	m.MinRightSideBearing = s.i16(14)
	m.XMaxExtent = s.i16(16)
	m.CaretSlopeRise = s.i16(18)
	m.CaretSlopeRun = s.i16(20)
	m.CaretOffset = s.i16(22)
	m.NumHMetrics = s.u16(34)
}

func parseOS2(m *FontMetrics, s segment) {
	if len(s) < 78 {
		return
	}
	version := s.u16(0)
	m.XAvgCharWidth = s.i16(2)
	m.WeightClass = s.u16(4)
	m.WidthClass = s.u16(6)
	m.FsType = s.u16(8)
	m.SubscriptXSize = s.i16(10)
	m.SubscriptYSize = s.i16(12)
	m.SubscriptXOffset = s.i16(14)
	m.SubscriptYOffset = s.i16(16)
	m.SuperscriptXSize = s.i16(18)
	m.SuperscriptYSize = s.i16(20)
	m.SuperscriptXOffset = s.i16(22)
	m.SuperscriptYOffset = s.i16(24)
	m.StrikeoutSize = s.i16(26)
	m.StrikeoutPosition = s.i16(28)
	m.FamilyClass = s.i16(30)
	copy(m.Panose[:], s.slice(32, 42))
	for i := range m.UnicodeRange {
		m.UnicodeRange[i] = s.u32(42 + 4*i)
	}
	m.VendorID = s.tag(58)
	m.FsSelection = s.u16(62)
	m.FirstCharIndex = s.u16(64)
	m.LastCharIndex = s.u16(66)
	m.TypoAscender = s.i16(68)
	m.TypoDescender = s.i16(70)
	m.TypoLineGap = s.i16(72)
	m.WinAscent = s.u16(74)
	m.WinDescent = s.u16(76)
	if version >= 1 && len(s) >= 86 {
		m.CodePageRange[0] = s.u32(78)
		m.CodePageRange[1] = s.u32(82)
	}
	if version >= 2 && len(s) >= 96 {
		m.XHeight = s.i16(86)
		m.CapHeight = s.i16(88)
		m.DefaultChar = s.u16(90)
		m.BreakChar = s.u16(92)
		m.MaxContext = s.u16(94)
	}
}

// LineHeight returns ascender - descender + line gap.
func (m FontMetrics) LineHeight() int32 {
	return int32(m.Ascender) - int32(m.Descender) + int32(m.LineGap)
}

// Scale converts font units to pixels at the given font size.
func (m FontMetrics) Scale(units int32, fontSizePx float32) float32 {
	if m.UnitsPerEm == 0 {
		return 0
	}
	return float32(units) * fontSizePx / float32(m.UnitsPerEm)
}
