// Package text lays out a run of text: it splits the run into words, shapes
// each word with a parsed font, breaks lines at a maximum width and
// positions the resulting glyphs.
//
// The pipeline is [SplitWords], [ScaleWords], [PositionWords] and finally
// [LayoutGlyphs]. The layout solver only needs the first three stages to
// measure text.
package text
