// Package gui is the layout and rendering core of a retained-mode GUI
// toolkit.
//
// A Window runs a layout callback that builds an element tree, styles it,
// lays it out with flexbox, shapes its text and turns the result into a
// display list for a GPU renderer. Fonts and images the tree references are
// loaded through pluggable loaders and garbage collected between frames.
//
// Users import this single package for the public API: windows and their
// options, element construction, geometry types and the display list.
package gui
