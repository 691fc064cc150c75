package resources

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/tag"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func rgbaPNG(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	return encodePNG(t, img)
}

func grayPNG(t *testing.T, w, h int) []byte {
	return encodePNG(t, image.NewGray(image.Rect(0, 0, w, h)))
}

func styled(t *testing.T, d *dom.Dom) *dom.StyledDom {
	t.Helper()
	sd, _ := dom.Style(d, nil, nil)
	return sd
}

func inline(t *testing.T, s string) dom.Option {
	t.Helper()
	decls, err := dom.ParseInline(s)
	require.NoError(t, err)
	return dom.WithStyle(decls...)
}

func testDom(t *testing.T, fontSize string) *dom.Dom {
	return dom.Div(
		inline(t, "background: url(bg)"),
		dom.WithChildren(
			dom.Label("hello", inline(t, "font-family: Go; font-size: "+fontSize)),
			dom.Image("logo"),
		),
	)
}

func testLoaders(t *testing.T) (FontLoader, ImageLoader) {
	return MapFontLoader(map[string][]byte{"Go": goregular.TTF}),
		MapImageLoader(map[string][]byte{"logo": rgbaPNG(t, 2, 3), "bg": grayPNG(t, 4, 4)})
}

func kinds(updates []ResourceUpdate) []UpdateKind {
	out := make([]UpdateKind, len(updates))
	for i, u := range updates {
		out[i] = u.Kind
	}
	return out
}

func TestAddFontsAndImages(t *testing.T) {
	res := New("")
	api := NewRecordingApi(3)
	loadFont, loadImage := testLoaders(t)
	sd := styled(t, testDom(t, "16px"))

	err := AddFontsAndImages(context.Background(), res, api, tag.PipelineId{}, sd, loadFont, loadImage)
	require.NoError(t, err)

	updates := api.Updates()
	assert.Equal(t, []UpdateKind{AddFont, AddImage, AddImage, AddFontInstance}, kinds(updates))
	for _, u := range updates {
		assert.Equal(t, IdNamespace(3), u.FontKey.Namespace|u.ImageKey.Namespace|u.FontInstanceKey.Namespace)
	}

	face, ok := res.Font("Go")
	require.True(t, ok)
	assert.NotZero(t, face.NumGlyphs)

	inst, ok := res.FontInstanceKey("Go", 16)
	require.True(t, ok)
	assert.Equal(t, updates[3].FontInstanceKey, inst)
	assert.Equal(t, AuFromPx(16), updates[3].Size)

	logo, ok := res.CSSImageId("logo")
	require.True(t, ok)
	info, ok := res.ImageInfo(logo)
	require.True(t, ok)
	assert.Equal(t, ImageDescriptor{Format: FormatRGBA8, Width: 2, Height: 3, Stride: 8, IsOpaque: true}, info.Descriptor)

	bg, ok := res.CSSImageId("bg")
	require.True(t, ok)
	info, _ = res.ImageInfo(bg)
	assert.Equal(t, FormatR8, info.Descriptor.Format)
	assert.Len(t, updates[1].Data, 16)

	// A second frame over the same tree adds nothing.
	require.NoError(t, AddFontsAndImages(context.Background(), res, api, tag.PipelineId{}, sd, loadFont, loadImage))
	assert.Len(t, api.Batches(), 1)
}

func TestAddFontsAndImages_MissingResources(t *testing.T) {
	res := New("")
	api := NewRecordingApi(0)
	sd := styled(t, testDom(t, "16px"))

	err := AddFontsAndImages(context.Background(), res, api, tag.PipelineId{}, sd,
		MapFontLoader(nil), MapImageLoader(map[string][]byte{"logo": []byte("not an image")}))
	require.NoError(t, err)

	assert.Empty(t, api.Updates())
	assert.False(t, res.HasFont("Go"))
	_, ok := res.CSSImageId("logo")
	assert.False(t, ok)
}

func TestAddFontsAndImages_NilLoaders(t *testing.T) {
	res := New("")
	api := NewRecordingApi(0)

	require.NoError(t, AddFontsAndImages(context.Background(), res, api, tag.PipelineId{}, styled(t, testDom(t, "16px")), nil, nil))
	assert.Empty(t, api.Batches())
}

func TestAddFontsAndImages_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	blocking := func(ctx context.Context, _ string) ([]byte, int, error) {
		return nil, 0, ctx.Err()
	}

	err := AddFontsAndImages(ctx, New(""), NewRecordingApi(0), tag.PipelineId{}, styled(t, testDom(t, "16px")), blocking, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAddFontsAndImages_Concurrent(t *testing.T) {
	res := New("")
	api := NewRecordingApi(0)
	loadFont, loadImage := testLoaders(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sd := styled(t, testDom(t, "16px"))
			err := AddFontsAndImages(context.Background(), res, api, tag.PipelineId{Index: uint32(i)}, sd, loadFont, loadImage)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	counts := map[UpdateKind]int{}
	for _, u := range api.Updates() {
		counts[u.Kind]++
	}
	assert.Equal(t, map[UpdateKind]int{AddFont: 1, AddImage: 2, AddFontInstance: 1}, counts)
}

func TestGarbageCollect(t *testing.T) {
	res := New("")
	api := NewRecordingApi(0)
	loadFont, loadImage := testLoaders(t)
	ctx := context.Background()

	require.NoError(t, AddFontsAndImages(ctx, res, api, tag.PipelineId{}, styled(t, testDom(t, "16px")), loadFont, loadImage))
	assert.Empty(t, GarbageCollect(res, api, tag.PipelineId{}), "resources used this frame survive")

	// Next frame uses the font at another size and no images.
	next := styled(t, dom.Label("hi", inline(t, "font-family: Go; font-size: 20px")))
	require.NoError(t, AddFontsAndImages(ctx, res, api, tag.PipelineId{}, next, loadFont, loadImage))
	removed := GarbageCollect(res, api, tag.PipelineId{})
	assert.Equal(t, []UpdateKind{DeleteFontInstance, DeleteImage, DeleteImage}, kinds(removed))
	assert.Equal(t, AuFromPx(16), removed[0].Size)

	_, ok := res.FontInstanceKey("Go", 20)
	assert.True(t, ok)
	assert.Empty(t, res.LoadedCSSImages())

	// Nothing referenced: the font goes with its last instance.
	removed = GarbageCollect(res, api, tag.PipelineId{})
	assert.Equal(t, []UpdateKind{DeleteFontInstance, DeleteFont}, kinds(removed))
	assert.Empty(t, res.LoadedFonts())
}

func TestFamilyOf(t *testing.T) {
	res := New("Fallback")
	sd := styled(t, dom.Div(dom.WithChildren(
		dom.Label("a"),
		dom.Label("b", inline(t, "font-family: 'Fira Sans', serif")),
	)))

	assert.Equal(t, FontId("Fallback"), res.FamilyOf(&sd.Styled[1]))
	assert.Equal(t, FontId("Fira Sans"), res.FamilyOf(&sd.Styled[2]))
	assert.Equal(t, DefaultFontFamily, New("").DefaultFamily())
}

func TestTexts(t *testing.T) {
	res := New("")
	id := res.AddText("stored")
	other := res.AddText("other")
	assert.NotEqual(t, id, other)

	s, ok := res.NodeText(&dom.NodeData{Type: dom.NodeText, TextId: id})
	assert.True(t, ok)
	assert.Equal(t, "stored", s)

	s, ok = res.NodeText(&dom.NodeData{Type: dom.NodeLabel, Label: "inline"})
	assert.True(t, ok)
	assert.Equal(t, "inline", s)

	_, ok = res.NodeText(&dom.NodeData{Type: dom.NodeDiv})
	assert.False(t, ok)

	res.DeleteText(id)
	_, ok = res.Text(id)
	assert.False(t, ok)

	res.ClearTexts()
	_, ok = res.Text(other)
	assert.False(t, ok)
}

func TestAu(t *testing.T) {
	tests := map[string]struct {
		px   float32
		want Au
	}{
		"zero":     {px: 0, want: 0},
		"whole":    {px: 16, want: 960},
		"fraction": {px: 10.5, want: 630},
		"rounds":   {px: 0.01, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuFromPx(tt.px))
			assert.InDelta(t, float64(tt.px), float64(tt.want.Px()), 1.0/AuPerPx)
		})
	}
}

func TestDirLoaders(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), rgbaPNG(t, 1, 1), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "MyFont.TTF"), goregular.TTF, 0o644))
	ctx := context.Background()

	data, err := DirImageLoader(dir)(ctx, "logo")
	require.NoError(t, err)
	_, _, err = decodeImage(data)
	assert.NoError(t, err)

	_, err = DirImageLoader(dir)(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = DirImageLoader(dir)(ctx, "../logo")
	assert.ErrorIs(t, err, ErrNotFound)

	data, index, err := DirFontLoader(filepath.Join(dir, "nope"), dir)(ctx, "myfont")
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.Equal(t, goregular.TTF, data)

	_, _, err = DirFontLoader(dir)(ctx, "Other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChainFontLoaders(t *testing.T) {
	ctx := context.Background()
	chain := ChainFontLoaders(MapFontLoader(nil), BuiltinFontLoader())

	data, _, err := chain(ctx, "anything")
	require.NoError(t, err)
	assert.Equal(t, goregular.TTF, data)

	_, _, err = ChainFontLoaders(MapFontLoader(nil))(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, err = ChainFontLoaders()(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeImage_Invalid(t *testing.T) {
	_, _, err := decodeImage([]byte("garbage"))
	assert.Error(t, err)
}
