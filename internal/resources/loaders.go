package resources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
)

// ErrNotFound is returned by loaders that have no data for a request.
var ErrNotFound = errors.New("resource not found")

// FontLoader returns the font file for a family and the face index inside
// it.
type FontLoader func(ctx context.Context, family string) (data []byte, index int, err error)

// ImageLoader returns the encoded image registered under a CSS image id.
type ImageLoader func(ctx context.Context, cssID string) ([]byte, error)

var fontExts = []string{".ttf", ".otf", ".ttc"}

var imageExts = []string{"", ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tif", ".tiff"}

// DirFontLoader looks for "<family>.ttf", ".otf" or ".ttc" in dirs, in order,
// matching the family name case-insensitively.
func DirFontLoader(dirs ...string) FontLoader {
	return func(ctx context.Context, family string) ([]byte, int, error) {
		for _, dir := range dirs {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				continue
			}
			for _, e := range entries {
				name := e.Name()
				ext := strings.ToLower(filepath.Ext(name))
				if e.IsDir() || !strings.EqualFold(strings.TrimSuffix(name, filepath.Ext(name)), family) {
					continue
				}
				for _, want := range fontExts {
					if ext != want {
						continue
					}
					data, err := os.ReadFile(filepath.Join(dir, name))
					if err != nil {
						return nil, 0, fmt.Errorf("read font %q: %w", family, err)
					}
					return data, 0, nil
				}
			}
		}
		return nil, 0, fmt.Errorf("font %q: %w", family, ErrNotFound)
	}
}

// BuiltinFontLoader serves the Go Regular face for every family.
func BuiltinFontLoader() FontLoader {
	return func(context.Context, string) ([]byte, int, error) {
		return goregular.TTF, 0, nil
	}
}

// MapFontLoader serves fonts from memory.
func MapFontLoader(fonts map[string][]byte) FontLoader {
	return func(_ context.Context, family string) ([]byte, int, error) {
		data, ok := fonts[family]
		if !ok {
			return nil, 0, fmt.Errorf("font %q: %w", family, ErrNotFound)
		}
		return data, 0, nil
	}
}

// ChainFontLoaders tries each loader in turn and returns the first success.
func ChainFontLoaders(loaders ...FontLoader) FontLoader {
	return func(ctx context.Context, family string) ([]byte, int, error) {
		var errs []error
		for _, load := range loaders {
			data, index, err := load(ctx, family)
			if err == nil {
				return data, index, nil
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return nil, 0, fmt.Errorf("font %q: %w", family, ErrNotFound)
		}
		return nil, 0, errors.Join(errs...)
	}
}

// DirImageLoader reads "<dir>/<id>", trying the common image extensions.
func DirImageLoader(dir string) ImageLoader {
	return func(ctx context.Context, cssID string) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if cssID != filepath.Base(cssID) {
			return nil, fmt.Errorf("image %q: not a plain name: %w", cssID, ErrNotFound)
		}
		for _, ext := range imageExts {
			data, err := os.ReadFile(filepath.Join(dir, cssID+ext))
			if err == nil {
				return data, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read image %q: %w", cssID, err)
			}
		}
		return nil, fmt.Errorf("image %q: %w", cssID, ErrNotFound)
	}
}

// MapImageLoader serves images from memory.
func MapImageLoader(images map[string][]byte) ImageLoader {
	return func(_ context.Context, cssID string) ([]byte, error) {
		data, ok := images[cssID]
		if !ok {
			return nil, fmt.Errorf("image %q: %w", cssID, ErrNotFound)
		}
		return data, nil
	}
}
