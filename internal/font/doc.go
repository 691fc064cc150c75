// Package font parses TrueType and OpenType font files.
//
// [Parse] reads the head, hhea, maxp, OS/2, cmap, hmtx, loca and glyf tables
// plus the GSUB, GPOS and GDEF layout tables of one face (optionally out of a
// TTC collection). Glyph outlines are decoded into em-space
// [curve.PathElement] commands; composite glyphs are resolved in at most
// [MaxCompositePasses] passes.
//
// Parsing never fails: a malformed font yields a zero-metric [ParsedFont]
// whose lookups all return glyph 0.
package font
