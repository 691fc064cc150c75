package resources

import (
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/tag"
)

// GarbageCollect removes the fonts, font instances and images that no call
// to AddFontsAndImages referenced since the previous collection, sends the
// deletions to api and returns them. References of the surviving entries are
// released so that the next collection starts from scratch.
func GarbageCollect(res *AppResources, api RenderApi, pipeline tag.PipelineId) []ResourceUpdate {
	log := debug.L().With(zap.Stringer("pipeline", pipeline))

	res.mu.Lock()
	var updates []ResourceUpdate
	for _, family := range slices.Sorted(maps.Keys(res.fonts)) {
		e := res.fonts[family]
		unused := e.refs <= 1
		for _, size := range slices.Sorted(maps.Keys(e.instances)) {
			inst := e.instances[size]
			if unused || inst.refs <= 1 {
				updates = append(updates, ResourceUpdate{Kind: DeleteFontInstance, FontKey: e.key, FontInstanceKey: inst.key, Size: size})
				delete(e.instances, size)
				continue
			}
			inst.refs = 1
		}
		if unused {
			updates = append(updates, ResourceUpdate{Kind: DeleteFont, FontKey: e.key})
			delete(res.fonts, family)
			log.Debug("font collected", zap.String("family", string(family)))
			continue
		}
		e.refs = 1
	}
	for _, id := range slices.Sorted(maps.Keys(res.images)) {
		e := res.images[id]
		if e.refs <= 1 {
			updates = append(updates, ResourceUpdate{Kind: DeleteImage, ImageKey: e.info.Key})
			delete(res.images, id)
			delete(res.cssImages, e.cssID)
			log.Debug("image collected", zap.String("id", e.cssID))
			continue
		}
		e.refs = 1
	}
	res.mu.Unlock()

	if len(updates) > 0 {
		api.UpdateResources(updates)
	}
	return updates
}
