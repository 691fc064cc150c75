package displaylist

import (
	"fmt"

	json "github.com/json-iterator/go"
)

// Marshal encodes dl as JSON.
func Marshal(dl CachedDisplayList) ([]byte, error) {
	data, err := json.Marshal(dl)
	if err != nil {
		return nil, fmt.Errorf("marshal display list: %w", err)
	}
	return data, nil
}

// MarshalIndent is Marshal with two-space indentation.
func MarshalIndent(dl CachedDisplayList) ([]byte, error) {
	data, err := json.MarshalIndent(dl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal display list: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a display list produced by Marshal.
func Unmarshal(data []byte) (CachedDisplayList, error) {
	var dl CachedDisplayList
	if err := json.Unmarshal(data, &dl); err != nil {
		return CachedDisplayList{}, fmt.Errorf("unmarshal display list: %w", err)
	}
	return dl, nil
}

// Walk calls fn for every frame of dl in paint order, with its depth.
func (dl CachedDisplayList) Walk(fn func(f *Frame, depth int)) {
	walk(dl.Root, 0, fn)
}

func walk(m Msg, depth int, fn func(f *Frame, depth int)) {
	f := m.Inner()
	if f == nil {
		return
	}
	fn(f, depth)
	for _, c := range f.Children {
		walk(c, depth+1, fn)
	}
}

// FrameCount returns the number of frames in dl.
func (dl CachedDisplayList) FrameCount() int {
	n := 0
	dl.Walk(func(*Frame, int) { n++ })
	return n
}
