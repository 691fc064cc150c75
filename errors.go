package gui

import "errors"

var (
	// ErrNoLayoutCallback is returned by RenderFrame for a window created
	// without WithLayout.
	ErrNoLayoutCallback = errors.New("window has no layout callback")

	// ErrIFrameCycle marks a sub-document that contains itself. The node
	// renders empty and the frame carries the error in Frame.Skipped.
	ErrIFrameCycle = errors.New("sub-document cycle")

	// ErrIFrameDepth marks a sub-document nested deeper than the window's
	// maximum depth.
	ErrIFrameDepth = errors.New("sub-document nesting too deep")
)
