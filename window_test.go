package gui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-gui/internal/config"
	"github.com/grindlemire/go-gui/internal/resources"
)

func TestNewWindow_Options(t *testing.T) {
	type tc struct {
		opts    []WindowOption
		wantErr string
		check   func(t *testing.T, w *Window)
	}

	badConfig := config.NewDefaultConfig()
	badConfig.Window.Width = -1

	tests := map[string]tc{
		"defaults from config": {
			check: func(t *testing.T, w *Window) {
				assert.Equal(t, Size{Width: 800, Height: 600}, w.Size())
				assert.Equal(t, float32(1), w.hidpi)
				assert.Equal(t, 8, w.maxIFrameDepth)
				assert.True(t, w.gcAfterFrame)
				assert.NotNil(t, w.Resources())
				assert.NotNil(t, w.loadFont)
			},
		},
		"size and hidpi": {
			opts: []WindowOption{WithSize(1024, 768), WithHidpiFactor(2)},
			check: func(t *testing.T, w *Window) {
				assert.Equal(t, Size{Width: 1024, Height: 768}, w.Size())
				assert.Equal(t, LayoutInfo{WindowWidth: 1024, WindowHeight: 768, HidpiFactor: 2}, w.layoutInfo())
			},
		},
		"later options override config": {
			opts: []WindowOption{WithSize(10, 10), WithConfig(config.NewDefaultConfig()), WithMaxIFrameDepth(2)},
			check: func(t *testing.T, w *Window) {
				assert.Equal(t, Size{Width: 800, Height: 600}, w.Size())
				assert.Equal(t, 2, w.maxIFrameDepth)
			},
		},
		"shared resources": {
			opts: []WindowOption{WithResources(resources.New("serif"))},
			check: func(t *testing.T, w *Window) {
				assert.Equal(t, "serif", w.Resources().DefaultFamily())
			},
		},
		"without gc": {
			opts: []WindowOption{WithoutGC()},
			check: func(t *testing.T, w *Window) {
				assert.False(t, w.gcAfterFrame)
			},
		},
		"nil config": {
			opts:    []WindowOption{WithConfig(nil)},
			wantErr: "config must not be nil",
		},
		"invalid config": {
			opts:    []WindowOption{WithConfig(badConfig)},
			wantErr: "invalid configuration",
		},
		"negative size": {
			opts:    []WindowOption{WithSize(-1, 10)},
			wantErr: "must not be negative",
		},
		"zero hidpi": {
			opts:    []WindowOption{WithHidpiFactor(0)},
			wantErr: "hidpi factor must be positive",
		},
		"zero iframe depth": {
			opts:    []WindowOption{WithMaxIFrameDepth(0)},
			wantErr: "max iframe depth must be at least 1",
		},
		"nil resources": {
			opts:    []WindowOption{WithResources(nil)},
			wantErr: "resources must not be nil",
		},
		"nil render api": {
			opts:    []WindowOption{WithRenderApi(nil)},
			wantErr: "render api must not be nil",
		},
		"nil gl context": {
			opts:    []WindowOption{WithGLContext(nil)},
			wantErr: "gl context must not be nil",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, err := NewWindow(tt.opts...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			tt.check(t, w)
		})
	}
}

func TestWindow_PipelinesAreDistinct(t *testing.T) {
	a, err := NewWindow()
	require.NoError(t, err)
	b, err := NewWindow()
	require.NoError(t, err)

	assert.NotEqual(t, a.Pipeline(), b.Pipeline())
}

func TestWindow_Resize(t *testing.T) {
	var infos []LayoutInfo
	w, err := NewWindow(WithLayout(func(info LayoutInfo) *Dom {
		infos = append(infos, info)
		return Div()
	}))
	require.NoError(t, err)

	w.Resize(320, -5)
	f, err := w.RenderFrame(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Size{Width: 320, Height: 0}, w.Size())
	require.Len(t, infos, 1)
	assert.Equal(t, float32(320), infos[0].WindowWidth)
	assert.Equal(t, NewRect(0, 0, 320, 0), f.Root().Rects[0])
}

func TestRenderAll(t *testing.T) {
	sizes := []Size{{Width: 100, Height: 50}, {Width: 300, Height: 200}}
	var windows []*Window
	for _, s := range sizes {
		w, err := NewWindow(
			WithSize(s.Width, s.Height),
			WithFontLoader(monoFonts),
			WithLayout(func(LayoutInfo) *Dom {
				return Div(WithChildren(Label("shared", WithClass("text"))))
			}),
		)
		require.NoError(t, err)
		windows = append(windows, w)
	}

	frames, err := RenderAll(context.Background(), windows...)
	require.NoError(t, err)
	require.Len(t, frames, len(windows))

	for i, f := range frames {
		assert.Equal(t, windows[i].Pipeline(), f.Pipeline)
		assert.Equal(t, NewRect(0, 0, sizes[i].Width, sizes[i].Height), f.DisplayList.Root.Frame.Rect)
		assert.Equal(t, 1, int(windows[i].Epoch()))
	}
}

func TestRenderAll_Error(t *testing.T) {
	ok, err := NewWindow(WithLayout(func(LayoutInfo) *Dom { return Div() }))
	require.NoError(t, err)
	missing, err := NewWindow()
	require.NoError(t, err)

	frames, err := RenderAll(context.Background(), ok, missing)
	assert.ErrorIs(t, err, ErrNoLayoutCallback)
	require.Len(t, frames, 2)
	require.NotNil(t, frames[0])
	assert.Nil(t, frames[1])
	assert.Equal(t, 1, int(ok.Epoch()))
	assert.Equal(t, 0, int(missing.Epoch()))
}

func TestMustStyle(t *testing.T) {
	assert.NotPanics(t, func() { MustStyle("width: 10px") })
	assert.Panics(t, func() { MustStyle("width: wide") })
}
