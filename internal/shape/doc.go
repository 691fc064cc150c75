// Package shape turns codepoints into positioned glyphs using a parsed font.
//
// [Shape] maps codepoints through the cmap (attaching trailing variation
// selectors to the preceding glyph), applies the GSUB lookups enabled for the
// script and language, initializes positioning from GDEF and applies GPOS.
// The result is in unscaled font units; callers scale by
// font size / units-per-em.
//
// Every codepoint of the input belongs to exactly one glyph cluster, so the
// ClusterLen values of a shaped run always sum to the input length.
package shape
