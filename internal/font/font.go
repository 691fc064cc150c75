package font

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/debug"
)

// GlyphIndex identifies a glyph within a face.
type GlyphIndex uint16

// ParsedFont is one decoded font face. It is immutable after Parse and safe
// for concurrent use.
type ParsedFont struct {
	Metrics    FontMetrics
	NumGlyphs  uint16
	SpaceWidth uint16

	glyphs  map[GlyphIndex]*OwnedGlyph
	hmtx    segment
	cmap    cmapSubtable
	uvs     *variationSubtable
	gsub    *LayoutTable
	gpos    *LayoutTable
	gdef    *GDEF
	hasGlyf bool
}

// Default returns the zero-metric fallback face.
func Default() *ParsedFont {
	return &ParsedFont{glyphs: map[GlyphIndex]*OwnedGlyph{}}
}

type tableDirectory map[Tag]segment

// readDirectory locates the table directory of face index inside data,
// following a TTC header when present.
func readDirectory(data segment, index int) (tableDirectory, error) {
	start := 0
	if data.tag(0) == tagTTC {
		n := int(data.u32(8))
		if index < 0 || index >= n {
			return nil, fmt.Errorf("font index %d out of range (%d faces)", index, n)
		}
		start = int(data.u32(12 + 4*index))
	} else if index != 0 {
		return nil, fmt.Errorf("font index %d requested from a single-face file", index)
	}
	dir := data.from(start)
	if !dir.has(0, 12) {
		return nil, fmt.Errorf("truncated table directory at %d", start)
	}
	numTables := int(dir.u16(4))
	tables := make(tableDirectory, numTables)
	for i := 0; i < numTables; i++ {
		rec := 12 + 16*i
		if !dir.has(rec, 16) {
			return nil, fmt.Errorf("truncated table record %d", i)
		}
		off, length := int(dir.u32(rec+8)), int(dir.u32(rec+12))
		if !data.has(off, length) {
			debug.L().Debug("font table out of bounds", zap.Stringer("tag", dir.tag(rec)))
			continue
		}
		tables[dir.tag(rec)] = data.slice(off, off+length)
	}
	return tables, nil
}

// Parse decodes face index of a TrueType/OpenType file or collection. It
// never fails: on malformed input the zero-metric Default face is returned
// and the failure is logged.
func Parse(data []byte, index int) (pf *ParsedFont) {
	defer func() {
		if r := recover(); r != nil {
			debug.L().Warn("font parse panicked; using default face", zap.Any("panic", r))
			pf = Default()
		}
	}()
	pf, err := parse(segment(data), index)
	if err != nil {
		debug.L().Warn("font parse failed; using default face", zap.Error(err))
		return Default()
	}
	return pf
}

func parse(data segment, index int) (*ParsedFont, error) {
	tables, err := readDirectory(data, index)
	if err != nil {
		return nil, err
	}
	pf := Default()
	if !parseHead(&pf.Metrics, tables[tagHead]) {
		return nil, fmt.Errorf("missing or truncated head table")
	}
	parseHhea(&pf.Metrics, tables[tagHhea])
	parseOS2(&pf.Metrics, tables[tagOS2])
	pf.NumGlyphs = tables[tagMaxp].u16(4)
	pf.hmtx = tables[tagHmtx]

	if cm, ok := tables[tagCmap]; ok {
		pf.cmap, pf.uvs = parseCmap(cm)
	}

	if glyf, ok := tables[tagGlyf]; ok {
		loca := parseLoca(tables[tagLoca], int(pf.NumGlyphs), pf.Metrics.IndexToLocFormat)
		pf.glyphs = decodeGlyphs(glyf, loca, pf)
		pf.hasGlyf = true
	} else {
		if _, ok := tables[tagCFF]; ok {
			debug.L().Debug("CFF outlines are not decoded; glyph records carry metrics only")
		}
		for g := 0; g < int(pf.NumGlyphs); g++ {
			pf.glyphs[GlyphIndex(g)] = &OwnedGlyph{Advance: pf.Advance(GlyphIndex(g))}
		}
	}

	if seg, ok := tables[tagGDEF]; ok {
		pf.gdef = parseGDEF(seg)
	}
	if seg, ok := tables[tagGSUB]; ok {
		pf.gsub = parseLayoutTable(seg, kindGSUB)
	}
	if seg, ok := tables[tagGPOS]; ok {
		pf.gpos = parseLayoutTable(seg, kindGPOS)
	}

	if space, ok := pf.GlyphIndex(' '); ok {
		pf.SpaceWidth = pf.Advance(space)
		if _, present := pf.glyphs[space]; !present {
			pf.glyphs[space] = &OwnedGlyph{Advance: pf.SpaceWidth}
		}
	}
	return pf, nil
}

// GlyphIndex maps a codepoint through the cmap. It reports false when the
// face has no cmap or no mapping for r.
func (pf *ParsedFont) GlyphIndex(r rune) (GlyphIndex, bool) {
	if pf == nil || pf.cmap == nil {
		return 0, false
	}
	g := pf.cmap.lookup(r)
	return g, g != 0
}

// VariationGlyph resolves a codepoint followed by a variation selector using
// cmap format 14. It falls back to the default mapping when the sequence is
// listed as default or absent.
func (pf *ParsedFont) VariationGlyph(r, selector rune) (GlyphIndex, bool) {
	if pf.uvs != nil {
		if g, found, useDefault := pf.uvs.lookup(r, selector); found && !useDefault {
			return g, true
		}
	}
	return pf.GlyphIndex(r)
}

// Advance returns the horizontal advance of g from hmtx. Glyphs beyond the
// last long metric share its advance.
func (pf *ParsedFont) Advance(g GlyphIndex) uint16 {
	if pf == nil {
		return 0
	}
	n := int(pf.Metrics.NumHMetrics)
	if n == 0 {
		return 0
	}
	i := int(g)
	if i >= n {
		i = n - 1
	}
	return pf.hmtx.u16(4 * i)
}

// Glyph returns the decoded glyph record, or nil.
func (pf *ParsedFont) Glyph(g GlyphIndex) *OwnedGlyph {
	if pf == nil {
		return nil
	}
	return pf.glyphs[g]
}

// Glyphs returns how many glyph records were decoded.
func (pf *ParsedFont) Glyphs() int { return len(pf.glyphs) }

func (pf *ParsedFont) GSUB() *LayoutTable { return pf.gsub }
func (pf *ParsedFont) GPOS() *LayoutTable { return pf.gpos }
func (pf *ParsedFont) GDEF() *GDEF        { return pf.gdef }

// HasOutlines reports whether the face had a glyf table.
func (pf *ParsedFont) HasOutlines() bool { return pf.hasGlyf }
