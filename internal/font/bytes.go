package font

// segment is a view onto font bytes. All accessors are bounds checked and
// return zero values when reading past the end.
type segment []byte

func (s segment) u8(off int) uint8 {
	if off < 0 || off >= len(s) {
		return 0
	}
	return s[off]
}

func (s segment) u16(off int) uint16 {
	if off < 0 || off+2 > len(s) {
		return 0
	}
	return uint16(s[off])<<8 | uint16(s[off+1])
}

func (s segment) i16(off int) int16 {
	return int16(s.u16(off))
}

func (s segment) u32(off int) uint32 {
	if off < 0 || off+4 > len(s) {
		return 0
	}
	return uint32(s[off])<<24 | uint32(s[off+1])<<16 | uint32(s[off+2])<<8 | uint32(s[off+3])
}

func (s segment) i32(off int) int32 {
	return int32(s.u32(off))
}

// f2dot14 reads a 2.14 fixed-point number.
func (s segment) f2dot14(off int) float32 {
	return float32(s.i16(off)) / 16384
}

func (s segment) tag(off int) Tag {
	return Tag(s.u32(off))
}

// slice returns s[from:to], clamped to the segment.
func (s segment) slice(from, to int) segment {
	if from < 0 {
		from = 0
	}
	if to > len(s) {
		to = len(s)
	}
	if from >= to {
		return nil
	}
	return s[from:to]
}

// from returns the segment starting at off.
func (s segment) from(off int) segment {
	return s.slice(off, len(s))
}

// has reports whether n bytes are readable at off.
func (s segment) has(off, n int) bool {
	return off >= 0 && n >= 0 && off+n <= len(s)
}

// glyphs reads count big-endian glyph ids starting at off.
func (s segment) glyphs(off, count int) []GlyphIndex {
	if count <= 0 || !s.has(off, count*2) {
		return nil
	}
	out := make([]GlyphIndex, count)
	for i := range out {
		out[i] = GlyphIndex(s.u16(off + 2*i))
	}
	return out
}
