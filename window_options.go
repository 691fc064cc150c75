package gui

import (
	"fmt"

	"github.com/grindlemire/go-gui/internal/config"
	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/resources"
)

// WindowOption is a functional option for configuring a Window.
type WindowOption func(*Window) error

// WithConfig applies the window, text, layout and resource settings of cfg.
// Later options override it.
func WithConfig(cfg *config.Config) WindowOption {
	return func(w *Window) error {
		if cfg == nil {
			return fmt.Errorf("config must not be nil")
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		w.applyConfig(cfg)
		return nil
	}
}

// WithLayout sets the callback producing the element tree of every frame.
func WithLayout(fn LayoutCallback) WindowOption {
	return func(w *Window) error {
		w.layoutFn = fn
		return nil
	}
}

// WithSize sets the window size in CSS pixels.
func WithSize(width, height float32) WindowOption {
	return func(w *Window) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("window size must not be negative, got %vx%v", width, height)
		}
		w.size.Width, w.size.Height = width, height
		return nil
	}
}

// WithHidpiFactor sets the device pixel ratio handed to callbacks.
// Default is 1. Must be positive.
func WithHidpiFactor(f float32) WindowOption {
	return func(w *Window) error {
		if f <= 0 {
			return fmt.Errorf("hidpi factor must be positive")
		}
		w.hidpi = f
		return nil
	}
}

// WithStylesheet sets the stylesheet applied to every document of the
// window, sub-documents included.
func WithStylesheet(sheet *css.Stylesheet) WindowOption {
	return func(w *Window) error {
		w.sheet = sheet
		return nil
	}
}

// WithOverrides sets the initial dynamic CSS overrides of the root document.
func WithOverrides(o dom.Overrides) WindowOption {
	return func(w *Window) error {
		w.overrides = o
		return nil
	}
}

// WithResources shares a resource registry between windows. By default each
// window owns its own. Collection only sees the references of the window
// that runs it, so at most one window sharing a registry should collect.
func WithResources(res *resources.AppResources) WindowOption {
	return func(w *Window) error {
		if res == nil {
			return fmt.Errorf("resources must not be nil")
		}
		w.res = res
		return nil
	}
}

// WithRenderApi sets the receiver of resource updates. By default updates
// are dropped.
func WithRenderApi(api resources.RenderApi) WindowOption {
	return func(w *Window) error {
		if api == nil {
			return fmt.Errorf("render api must not be nil")
		}
		w.api = api
		return nil
	}
}

// WithFontLoader replaces the default font lookup, which searches the
// configured font directories and falls back to the built-in face.
func WithFontLoader(load resources.FontLoader) WindowOption {
	return func(w *Window) error {
		w.loadFont = load
		return nil
	}
}

// WithImageLoader sets the image loader. Without one, images are never
// loaded and image nodes draw nothing.
func WithImageLoader(load resources.ImageLoader) WindowOption {
	return func(w *Window) error {
		w.loadImage = load
		return nil
	}
}

// WithGLContext sets the context reset after every texture callback.
func WithGLContext(gl GLContext) WindowOption {
	return func(w *Window) error {
		if gl == nil {
			return fmt.Errorf("gl context must not be nil")
		}
		w.gl = gl
		return nil
	}
}

// WithMaxIFrameDepth bounds the nesting of sub-documents. Default is 8.
// Must be at least 1.
func WithMaxIFrameDepth(depth int) WindowOption {
	return func(w *Window) error {
		if depth < 1 {
			return fmt.Errorf("max iframe depth must be at least 1")
		}
		w.maxIFrameDepth = depth
		return nil
	}
}

// WithoutGC keeps fonts and images that a frame no longer uses.
func WithoutGC() WindowOption {
	return func(w *Window) error {
		w.gcAfterFrame = false
		return nil
	}
}
