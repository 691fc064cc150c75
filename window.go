package gui

import (
	"sync"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/config"
	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
	"github.com/grindlemire/go-gui/internal/resources"
	"github.com/grindlemire/go-gui/internal/tag"
)

// LayoutCallback produces the element tree of a window. It runs at the start
// of every frame; state lives in the closure.
type LayoutCallback func(info dom.LayoutInfo) *dom.Dom

// Window is one rendering pipeline: a layout callback, the resources it
// draws with and the epoch of the last frame. Frames of one window are
// rendered one at a time; separate windows may render in parallel.
type Window struct {
	mu sync.Mutex

	pipeline tag.PipelineId
	epoch    tag.Epoch
	size     layout.Size[float32]
	hidpi    float32

	layoutFn  LayoutCallback
	sheet     *css.Stylesheet
	overrides dom.Overrides

	res       *resources.AppResources
	api       resources.RenderApi
	loadFont  resources.FontLoader
	loadImage resources.ImageLoader
	gl        GLContext

	// Configuration (set via options)
	defaultFamily  string
	defaultFontPx  float32
	fontDirs       []string
	maxIFrameDepth int
	gcAfterFrame   bool

	log *zap.Logger
}

// NewWindow creates a window configured from the defaults of the config
// package, then applies opts in order. An option returning an error aborts
// the construction.
func NewWindow(opts ...WindowOption) (*Window, error) {
	w := &Window{
		pipeline: tag.NewPipelineId(),
		gl:       noGL{},
	}
	w.applyConfig(config.NewDefaultConfig())

	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}

	if w.res == nil {
		w.res = resources.New(w.defaultFamily)
	}
	if w.api == nil {
		w.api = discardApi{ns: resources.IdNamespace(w.pipeline.Index)}
	}
	if w.loadFont == nil {
		w.loadFont = resources.ChainFontLoaders(resources.DirFontLoader(w.fontDirs...), resources.BuiltinFontLoader())
	}
	w.log = debug.Named("window").With(zap.Stringer("pipeline", w.pipeline))
	return w, nil
}

// applyConfig copies the window-related settings of cfg.
func (w *Window) applyConfig(cfg *config.Config) {
	w.size = layout.Size[float32]{Width: cfg.Window.Width, Height: cfg.Window.Height}
	w.hidpi = cfg.Window.HidpiFactor
	w.defaultFamily = cfg.Text.DefaultFontFamily
	w.defaultFontPx = cfg.Text.DefaultFontSize
	w.fontDirs = cfg.Text.FontDirs
	w.maxIFrameDepth = cfg.Layout.MaxIFrameDepth
	w.gcAfterFrame = cfg.Resources.GCAfterFrame
}

// Pipeline returns the pipeline id of the window.
func (w *Window) Pipeline() tag.PipelineId { return w.pipeline }

// Resources returns the font and image registry the window renders with.
func (w *Window) Resources() *resources.AppResources { return w.res }

// Epoch returns the epoch the next frame will carry.
func (w *Window) Epoch() tag.Epoch {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.epoch
}

// Size returns the window size in CSS pixels.
func (w *Window) Size() layout.Size[float32] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Resize changes the size used by the next frame.
func (w *Window) Resize(width, height float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.size = layout.Size[float32]{Width: max(0, width), Height: max(0, height)}
}

// SetOverrides replaces the dynamic CSS overrides applied to the root
// document from the next frame on.
func (w *Window) SetOverrides(o dom.Overrides) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.overrides = o
}

func (w *Window) layoutInfo() dom.LayoutInfo {
	return dom.LayoutInfo{WindowWidth: w.size.Width, WindowHeight: w.size.Height, HidpiFactor: w.hidpi}
}

// discardApi drops resource updates. It stands in when no renderer is
// attached.
type discardApi struct {
	ns resources.IdNamespace
}

func (d discardApi) Namespace() resources.IdNamespace { return d.ns }
func (discardApi) UpdateResources([]resources.ResourceUpdate) {}
