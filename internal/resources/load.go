package resources

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/font"
	"github.com/grindlemire/go-gui/internal/tag"
)

// usage is what one styled tree references.
type usage struct {
	fonts  map[FontId]map[Au]struct{}
	images map[string]struct{}
}

// scan collects the font sizes of every text node and the CSS image ids of
// every image node and image background.
func (r *AppResources) scan(sd *dom.StyledDom) usage {
	u := usage{fonts: map[FontId]map[Au]struct{}{}, images: map[string]struct{}{}}
	for i := range sd.NodeData {
		nd := &sd.NodeData[i]
		sn := &sd.Styled[i]
		switch nd.Type {
		case dom.NodeText, dom.NodeLabel:
			family := r.FamilyOf(sn)
			if u.fonts[family] == nil {
				u.fonts[family] = map[Au]struct{}{}
			}
			u.fonts[family][AuFromPx(sn.FontSizePx())] = struct{}{}
		case dom.NodeImage:
			if nd.ImageId != "" {
				u.images[nd.ImageId] = struct{}{}
			}
		}
		if bg := sn.Style.Background.GetOr(css.BackgroundContent{}); bg.Kind == css.BackgroundImage && bg.Image != "" {
			u.images[bg.Image] = struct{}{}
		}
	}
	return u
}

type loadedFont struct {
	family FontId
	index  int
	data   []byte
	face   *font.ParsedFont
}

type loadedImage struct {
	cssID  string
	desc   ImageDescriptor
	pixels []byte
}

// AddFontsAndImages loads every font and image sd references that is not
// registered yet, takes a reference on everything sd uses and sends the
// resulting additions to api in one batch.
//
// Loads run concurrently; concurrent callers asking for the same resource
// share one load. A resource that fails to load is logged and left out, so
// the only error returned is the cancellation of ctx.
func AddFontsAndImages(ctx context.Context, res *AppResources, api RenderApi, pipeline tag.PipelineId, sd *dom.StyledDom, loadFont FontLoader, loadImage ImageLoader) error {
	u := res.scan(sd)
	log := debug.L().With(zap.Stringer("pipeline", pipeline))

	var (
		mu     sync.Mutex
		fonts  []loadedFont
		images []loadedImage
	)
	g, gctx := errgroup.WithContext(ctx)

	for family := range u.fonts {
		if loadFont == nil || res.HasFont(family) {
			continue
		}
		g.Go(func() error {
			v, err, _ := res.loads.Do("font:"+string(family), func() (any, error) {
				data, index, err := loadFont(gctx, string(family))
				if err != nil {
					return nil, err
				}
				return loadedFont{family: family, index: index, data: data, face: font.Parse(data, index)}, nil
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Debug("font not loaded", zap.String("family", string(family)), zap.Error(err))
				return nil
			}
			mu.Lock()
			fonts = append(fonts, v.(loadedFont))
			mu.Unlock()
			return nil
		})
	}

	for cssID := range u.images {
		if loadImage == nil {
			break
		}
		if _, ok := res.CSSImageId(cssID); ok {
			continue
		}
		g.Go(func() error {
			v, err, _ := res.loads.Do("image:"+cssID, func() (any, error) {
				data, err := loadImage(gctx, cssID)
				if err != nil {
					return nil, err
				}
				desc, pixels, err := decodeImage(data)
				if err != nil {
					return nil, fmt.Errorf("image %q: %w", cssID, err)
				}
				return loadedImage{cssID: cssID, desc: desc, pixels: pixels}, nil
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Debug("image not loaded", zap.String("id", cssID), zap.Error(err))
				return nil
			}
			mu.Lock()
			images = append(images, v.(loadedImage))
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load resources: %w", err)
	}

	updates := res.register(api.Namespace(), fonts, images, u)
	if len(updates) > 0 {
		log.Debug("resources added", zap.Int("updates", len(updates)))
		api.UpdateResources(updates)
	}
	return nil
}

// register inserts the loaded resources, references everything u uses and
// returns the updates announcing new fonts, instances and images.
func (r *AppResources) register(ns IdNamespace, fonts []loadedFont, images []loadedImage, u usage) []ResourceUpdate {
	slices.SortFunc(fonts, func(a, b loadedFont) int { return strings.Compare(string(a.family), string(b.family)) })
	slices.SortFunc(images, func(a, b loadedImage) int { return strings.Compare(a.cssID, b.cssID) })

	r.mu.Lock()
	defer r.mu.Unlock()

	var updates []ResourceUpdate
	for _, f := range fonts {
		if _, ok := r.fonts[f.family]; ok {
			continue
		}
		key := NewFontKey(ns)
		r.fonts[f.family] = &fontEntry{key: key, index: f.index, face: f.face, instances: map[Au]*instanceEntry{}, refs: 1}
		updates = append(updates, ResourceUpdate{Kind: AddFont, FontKey: key, FontIndex: f.index, Data: f.data})
	}
	for _, img := range images {
		if _, ok := r.cssImages[img.cssID]; ok {
			continue
		}
		id := NewImageId()
		info := ImageInfo{Key: NewImageKey(ns), Descriptor: img.desc}
		r.cssImages[img.cssID] = id
		r.images[id] = &imageEntry{cssID: img.cssID, info: info, refs: 1}
		updates = append(updates, ResourceUpdate{Kind: AddImage, ImageKey: info.Key, Descriptor: img.desc, Data: img.pixels})
	}

	for _, family := range slices.Sorted(maps.Keys(u.fonts)) {
		e, ok := r.fonts[family]
		if !ok {
			continue
		}
		e.refs++
		for _, size := range slices.Sorted(maps.Keys(u.fonts[family])) {
			inst, ok := e.instances[size]
			if !ok {
				inst = &instanceEntry{key: NewFontInstanceKey(ns), refs: 1}
				e.instances[size] = inst
				updates = append(updates, ResourceUpdate{Kind: AddFontInstance, FontKey: e.key, FontInstanceKey: inst.key, Size: size})
			}
			inst.refs++
		}
	}
	for cssID := range u.images {
		if id, ok := r.cssImages[cssID]; ok {
			r.images[id].refs++
		}
	}
	return updates
}
