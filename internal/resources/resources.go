package resources

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/font"
)

// DefaultFontFamily is used for text nodes that do not set font-family.
const DefaultFontFamily = "sans-serif"

type fontEntry struct {
	key       FontKey
	index     int
	face      *font.ParsedFont
	instances map[Au]*instanceEntry
	refs      int
}

type instanceEntry struct {
	key  FontInstanceKey
	refs int
}

type imageEntry struct {
	cssID string
	info  ImageInfo
	refs  int
}

// AppResources holds the fonts, images and texts shared by all windows of an
// application. It is safe for concurrent use; registrations take the write
// lock only for the insert itself.
type AppResources struct {
	defaultFamily string

	mu        sync.RWMutex
	fonts     map[FontId]*fontEntry
	cssImages map[string]ImageId
	images    map[ImageId]*imageEntry
	texts     map[dom.TextId]string
	nextText  dom.TextId

	loads singleflight.Group
}

// New returns empty resources. An empty defaultFamily selects
// DefaultFontFamily.
func New(defaultFamily string) *AppResources {
	if defaultFamily == "" {
		defaultFamily = DefaultFontFamily
	}
	return &AppResources{
		defaultFamily: defaultFamily,
		fonts:         map[FontId]*fontEntry{},
		cssImages:     map[string]ImageId{},
		images:        map[ImageId]*imageEntry{},
		texts:         map[dom.TextId]string{},
	}
}

// DefaultFamily returns the family used when a node sets none.
func (r *AppResources) DefaultFamily() string {
	return r.defaultFamily
}

// FamilyOf returns the font family a styled node renders its text with: the
// first family it lists, or the default.
func (r *AppResources) FamilyOf(sn *dom.StyledNode) FontId {
	families := sn.Style.FontFamily.GetOr(nil)
	if len(families) == 0 || families[0] == "" {
		return FontId(r.defaultFamily)
	}
	return FontId(families[0])
}

// Font returns the parsed face registered for family.
func (r *AppResources) Font(family FontId) (*font.ParsedFont, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.fonts[family]
	if !ok {
		return nil, false
	}
	return e.face, true
}

// FontKey returns the key of the face registered for family.
func (r *AppResources) FontKey(family FontId) (FontKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.fonts[family]
	if !ok {
		return FontKey{}, false
	}
	return e.key, true
}

// FontInstanceKey returns the instance of family at sizePx, if one was
// added.
func (r *AppResources) FontInstanceKey(family FontId, sizePx float32) (FontInstanceKey, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.fonts[family]
	if !ok {
		return FontInstanceKey{}, false
	}
	inst, ok := e.instances[AuFromPx(sizePx)]
	if !ok {
		return FontInstanceKey{}, false
	}
	return inst.key, true
}

// HasFont reports whether family is registered.
func (r *AppResources) HasFont(family FontId) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.fonts[family]
	return ok
}

// CSSImageId returns the image registered under the CSS image id.
func (r *AppResources) CSSImageId(cssID string) (ImageId, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.cssImages[cssID]
	return id, ok
}

// ImageInfo returns the renderer key and descriptor of an image.
func (r *AppResources) ImageInfo(id ImageId) (ImageInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.images[id]
	if !ok {
		return ImageInfo{}, false
	}
	return e.info, true
}

// LoadedFonts returns the registered families.
func (r *AppResources) LoadedFonts() []FontId {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]FontId, 0, len(r.fonts))
	for id := range r.fonts {
		out = append(out, id)
	}
	return out
}

// LoadedCSSImages returns the registered CSS image ids.
func (r *AppResources) LoadedCSSImages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.cssImages))
	for id := range r.cssImages {
		out = append(out, id)
	}
	return out
}

// AddText stores a text run and returns its id.
func (r *AppResources) AddText(s string) dom.TextId {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextText++
	r.texts[r.nextText] = s
	return r.nextText
}

// Text returns the text run stored under id.
func (r *AppResources) Text(id dom.TextId) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.texts[id]
	return s, ok
}

// DeleteText removes a text run.
func (r *AppResources) DeleteText(id dom.TextId) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.texts, id)
}

// ClearTexts removes every text run.
func (r *AppResources) ClearTexts() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.texts)
}

// NodeText returns the string a text or label node displays.
func (r *AppResources) NodeText(nd *dom.NodeData) (string, bool) {
	switch nd.Type {
	case dom.NodeLabel:
		return nd.Label, true
	case dom.NodeText:
		return r.Text(nd.TextId)
	default:
		return "", false
	}
}
