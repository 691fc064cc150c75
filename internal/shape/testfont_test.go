package shape

import (
	"encoding/binary"
	"sort"
)

func be16(vs ...int) []byte {
	out := make([]byte, 2*len(vs))
	for i, v := range vs {
		binary.BigEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

func be32(vs ...int) []byte {
	out := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.BigEndian.PutUint32(out[4*i:], uint32(v))
	}
	return out
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Glyph ids of the test font: 'a'..'z' map to 1..26, the fi ligature is 27.
const (
	glyphA        = 1
	glyphF        = 6
	glyphI        = 9
	glyphV        = 22
	glyphX        = 24
	glyphFI       = 27
	numTestGlyphs = 28
	testAdvance   = 500
)

// testFont builds a font mapping a-z, with the given extra tables.
func testFont(extra map[string][]byte) []byte {
	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:], 1000)

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint16(hhea[4:], 800)
	binary.BigEndian.PutUint16(hhea[6:], uint16(0xFFFF-199)) // -200
	binary.BigEndian.PutUint16(hhea[34:], numTestGlyphs)

	var hmtx []byte
	for i := 0; i < numTestGlyphs; i++ {
		hmtx = append(hmtx, be16(testAdvance, 0)...)
	}

	cmap12 := cat(be16(12, 0), be32(28, 0, 1), be32('a', 'z', glyphA))
	cmap := cat(be16(0, 1), be16(3, 10), be32(12), cmap12)

	tables := map[string][]byte{
		"head": head,
		"hhea": hhea,
		"hmtx": hmtx,
		"maxp": cat(be32(0x5000), be16(numTestGlyphs)),
		"cmap": cmap,
	}
	for k, v := range extra {
		tables[k] = v
	}

	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	out := make([]byte, 12+16*len(tags))
	binary.BigEndian.PutUint32(out, 0x00010000)
	binary.BigEndian.PutUint16(out[4:], uint16(len(tags)))
	for i, tag := range tags {
		rec := out[12+16*i:]
		copy(rec, tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(tables[tag])))
		out = append(out, tables[tag]...)
	}
	return out
}

// layoutTable builds a GSUB/GPOS table with one DFLT script whose default
// language system enables one feature with one lookup.
func layoutTable(feature string, lookupType int, subtable []byte) []byte {
	return layoutTableFlag(feature, lookupType, 0, subtable)
}

// layoutTableFlag is layoutTable with a lookup flag.
func layoutTableFlag(feature string, lookupType, flag int, subtable []byte) []byte {
	scriptList := cat(be16(1), []byte("DFLT"), be16(8), be16(4, 0), be16(0, 0xFFFF, 1, 0))
	featureList := cat(be16(1), []byte(feature), be16(8), be16(0, 1, 0))
	lookupList := cat(be16(1, 4), be16(lookupType, flag, 1, 8), subtable)
	header := be16(1, 0, 10, 10+len(scriptList), 10+len(scriptList)+len(featureList))
	return cat(header, scriptList, featureList, lookupList)
}

// fiLigature is a GSUB type 4 subtable turning f+i into glyphFI.
func fiLigature() []byte {
	return cat(
		be16(1, 8, 1, 14),        // format, coverage, set count, set offset
		be16(1, 1, glyphF),       // coverage: f
		be16(1, 4),               // ligature set: one ligature
		be16(glyphFI, 2, glyphI), // fi
	)
}

// avKern is a GPOS type 2 format 1 subtable kerning a+v by -50.
func avKern() []byte {
	return cat(
		be16(1, 12, 4, 0, 1, 18), // format, coverage, vf1=XAdvance, vf2, set count, set offset
		be16(1, 1, glyphA),       // coverage: a
		be16(1, glyphV, -50),     // pair set
	)
}
