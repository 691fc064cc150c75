// Package fonttest builds small synthetic fonts for tests.
package fonttest

import (
	"encoding/binary"
	"sort"
)

// UnitsPerEm of every font built here.
const UnitsPerEm = 1000

// First and Last bound the printable ASCII range mapped by Monospace. Rune r
// maps to glyph r-First+1.
const (
	First = ' '
	Last  = '~'
)

// Monospace returns a TrueType font without outlines that maps printable
// ASCII to glyphs of the given advance in font units. At a font size of
// 10px an advance of 1000 is 10px per character.
func Monospace(advance int) []byte {
	numGlyphs := int(Last-First) + 2

	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head, 0x00010000)
	binary.BigEndian.PutUint16(head[18:], UnitsPerEm)

	hhea := make([]byte, 36)
	binary.BigEndian.PutUint32(hhea, 0x00010000)
	binary.BigEndian.PutUint16(hhea[4:], 800)
	binary.BigEndian.PutUint16(hhea[6:], uint16(0x10000-200))
	binary.BigEndian.PutUint16(hhea[34:], uint16(numGlyphs))

	hmtx := make([]byte, 4*numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		binary.BigEndian.PutUint16(hmtx[4*i:], uint16(advance))
	}

	maxp := make([]byte, 6)
	binary.BigEndian.PutUint32(maxp, 0x00005000)
	binary.BigEndian.PutUint16(maxp[4:], uint16(numGlyphs))

	// cmap with one format 12 subtable holding a single group.
	cmap := make([]byte, 12+28)
	binary.BigEndian.PutUint16(cmap[2:], 1)
	binary.BigEndian.PutUint16(cmap[4:], 3)
	binary.BigEndian.PutUint16(cmap[6:], 10)
	binary.BigEndian.PutUint32(cmap[8:], 12)
	sub := cmap[12:]
	binary.BigEndian.PutUint16(sub, 12)
	binary.BigEndian.PutUint32(sub[4:], 28)
	binary.BigEndian.PutUint32(sub[12:], 1)
	binary.BigEndian.PutUint32(sub[16:], uint32(First))
	binary.BigEndian.PutUint32(sub[20:], uint32(Last))
	binary.BigEndian.PutUint32(sub[24:], 1)

	return Build(map[string][]byte{
		"head": head,
		"hhea": hhea,
		"hmtx": hmtx,
		"maxp": maxp,
		"cmap": cmap,
	})
}

// Build assembles an sfnt file from raw tables keyed by tag.
func Build(tables map[string][]byte) []byte {
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
		copy(rec[:4], tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(tables[tag])))
		out = append(out, tables[tag]...)
	}
	return out
}
