// Package scroll finds the nodes whose children overflow them.
//
// [Analyze] walks every parent of a laid-out styled tree and decides
// whether it needs a scroll frame (overflow scroll or auto), a plain clip
// (overflow hidden on both axes) or nothing. Scroll frames get a stable
// [tag.ExternalScrollId] derived from the node's content hash, so scroll
// positions survive DOM rebuilds.
package scroll
