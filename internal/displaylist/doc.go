// Package displaylist turns laid-out styled trees into a cached display
// list: a tree of frames, each holding the primitives painted for one node
// followed by the frames of its children in paint order.
//
// Build never fails. Missing images, textures and sub-documents are skipped
// so that every node still emits a frame for hit-testing.
package displaylist
