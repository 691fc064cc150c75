package resources

import (
	"fmt"
	"sync"
)

// UpdateKind discriminates ResourceUpdate.
type UpdateKind uint8

const (
	AddFont UpdateKind = iota
	DeleteFont
	AddFontInstance
	DeleteFontInstance
	AddImage
	DeleteImage
)

func (k UpdateKind) String() string {
	switch k {
	case AddFont:
		return "add_font"
	case DeleteFont:
		return "delete_font"
	case AddFontInstance:
		return "add_font_instance"
	case DeleteFontInstance:
		return "delete_font_instance"
	case AddImage:
		return "add_image"
	case DeleteImage:
		return "delete_image"
	default:
		return fmt.Sprintf("UpdateKind(%d)", uint8(k))
	}
}

// ResourceUpdate is one change to the renderer's resources. Only the fields
// relevant to Kind are set.
type ResourceUpdate struct {
	Kind UpdateKind `json:"kind"`

	FontKey         FontKey         `json:"font_key,omitzero"`
	FontIndex       int             `json:"font_index,omitempty"`
	FontInstanceKey FontInstanceKey `json:"font_instance_key,omitzero"`
	Size            Au              `json:"size,omitempty"`

	ImageKey   ImageKey        `json:"image_key,omitzero"`
	Descriptor ImageDescriptor `json:"descriptor,omitzero"`

	// Data is the font file or the decoded pixels.
	Data []byte `json:"-"`
}

func (u ResourceUpdate) String() string {
	switch u.Kind {
	case AddFont, DeleteFont:
		return fmt.Sprintf("%s %s", u.Kind, u.FontKey)
	case AddFontInstance:
		return fmt.Sprintf("%s %s of %s at %.1fpx", u.Kind, u.FontInstanceKey, u.FontKey, u.Size.Px())
	case DeleteFontInstance:
		return fmt.Sprintf("%s %s", u.Kind, u.FontInstanceKey)
	default:
		return fmt.Sprintf("%s %s", u.Kind, u.ImageKey)
	}
}

// RenderApi receives resource updates. Implementations must be safe for
// concurrent use.
type RenderApi interface {
	Namespace() IdNamespace
	UpdateResources(updates []ResourceUpdate)
}

// RecordingApi is a RenderApi that only records the updates it receives.
type RecordingApi struct {
	ns IdNamespace

	mu      sync.Mutex
	batches [][]ResourceUpdate
}

var _ RenderApi = (*RecordingApi)(nil)

// NewRecordingApi returns a RecordingApi allocating keys in ns.
func NewRecordingApi(ns IdNamespace) *RecordingApi {
	return &RecordingApi{ns: ns}
}

// Namespace implements RenderApi.
func (r *RecordingApi) Namespace() IdNamespace { return r.ns }

// UpdateResources implements RenderApi.
func (r *RecordingApi) UpdateResources(updates []ResourceUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, append([]ResourceUpdate(nil), updates...))
}

// Batches returns every batch received so far, oldest first.
func (r *RecordingApi) Batches() [][]ResourceUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]ResourceUpdate(nil), r.batches...)
}

// Updates returns every update received so far, flattened.
func (r *RecordingApi) Updates() []ResourceUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ResourceUpdate
	for _, b := range r.batches {
		out = append(out, b...)
	}
	return out
}
