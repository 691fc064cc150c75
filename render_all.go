package gui

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RenderAll renders one frame of every window in parallel. Frames are
// returned in the order of windows.
//
// A failing window does not stop the others: every window renders, and the
// ones that succeed advance their epoch as RenderFrame would. On error the
// returned slice still holds those frames, with nil in place of each window
// that failed, and the first error is returned alongside it.
func RenderAll(ctx context.Context, windows ...*Window) ([]*Frame, error) {
	frames := make([]*Frame, len(windows))
	var g errgroup.Group
	for i, w := range windows {
		g.Go(func() error {
			f, err := w.RenderFrame(ctx)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		})
	}
	return frames, g.Wait()
}
