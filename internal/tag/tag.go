package tag

import (
	"fmt"
	"sync/atomic"
)

var (
	tagCounter atomic.Uint64
	domCounter atomic.Uint64
)

// TagId identifies a frame for cursor-location queries. The zero value means "no tag".
type TagId uint64

// NewTagId allocates a fresh tag, strictly greater than every tag returned
// since the last Reset.
func NewTagId() TagId {
	return TagId(tagCounter.Add(1))
}

// Reset zeroes the tag counter. Only call this between frames.
func Reset() {
	tagCounter.Store(0)
}

// IsNone reports whether t is the reserved "no tag" value.
func (t TagId) IsNone() bool {
	return t == 0
}

func (t TagId) String() string {
	return fmt.Sprintf("TagId(%d)", uint64(t))
}

// ScrollTagId marks a tag that also identifies a scroll frame.
type ScrollTagId struct {
	Tag TagId `json:"tag"`
}

// NewScrollTagId wraps a freshly allocated tag.
func NewScrollTagId() ScrollTagId {
	return ScrollTagId{Tag: NewTagId()}
}

// DomId identifies one styled tree. The root document of a window is DomId 0.
type DomId uint64

// RootDomId is the id of a window's top-level document.
const RootDomId DomId = 0

// NewDomId allocates a fresh DomId for a sub-document.
func NewDomId() DomId {
	return DomId(domCounter.Add(1))
}

// ResetDomIds zeroes the DomId counter. Only call this between frames.
func ResetDomIds() {
	domCounter.Store(0)
}

// PipelineId identifies an independent rendering context, typically one per window.
type PipelineId struct {
	Namespace uint32 `json:"namespace"`
	Index     uint32 `json:"index"`
}

var pipelineCounter atomic.Uint32

// NewPipelineId allocates a pipeline id in namespace 0.
func NewPipelineId() PipelineId {
	return PipelineId{Index: pipelineCounter.Add(1)}
}

func (p PipelineId) String() string {
	return fmt.Sprintf("Pipeline(%d,%d)", p.Namespace, p.Index)
}

// ExternalScrollId is derived from a scrolled node's content hash so that the
// scroll position survives DOM rebuilds.
type ExternalScrollId struct {
	Hash     uint64     `json:"hash"`
	Pipeline PipelineId `json:"pipeline"`
}

// Epoch is a monotonic per-pipeline counter the renderer uses to discard stale frames.
type Epoch uint32

// Next returns the following epoch, wrapping at the maximum value.
func (e Epoch) Next() Epoch {
	return e + 1
}
