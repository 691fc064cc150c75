package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ColorU is an 8-bit straight-alpha sRGB color.
type ColorU struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	Transparent = ColorU{}
	Black       = ColorU{A: 255}
	White       = ColorU{R: 255, G: 255, B: 255, A: 255}
	Red         = ColorU{R: 255, A: 255}
)

// RGBA returns an opaque color.
func RGBA(r, g, b, a uint8) ColorU {
	return ColorU{R: r, G: g, B: b, A: a}
}

// IsTransparent reports whether the color paints nothing.
func (c ColorU) IsTransparent() bool {
	return c.A == 0
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c ColorU) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex formats the color as #rrggbbaa.
func (c ColorU) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func fromColorful(c colorful.Color, a uint8) ColorU {
	r, g, b := c.Clamped().RGB255()
	return ColorU{R: r, G: g, B: b, A: a}
}

// Lerp blends c towards o in linear RGB space by t in [0, 1].
func (c ColorU) Lerp(o ColorU, t float64) ColorU {
	mixed := c.Colorful().BlendLinearRgb(o.Colorful(), t)
	a := float64(c.A) + (float64(o.A)-float64(c.A))*t
	return fromColorful(mixed, uint8(a+0.5))
}

// ParseColor parses #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), named
// colors and "transparent".
func ParseColor(s string) (ColorU, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "transparent":
		return Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl(") || strings.HasPrefix(s, "hsla("):
		return parseHSLFunc(s)
	}
	if named, ok := colornames.Map[s]; ok {
		return ColorU{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	return ColorU{}, fmt.Errorf("unknown color %q: %w", s, ErrInvalidValue)
}

func parseHexColor(s string) (ColorU, error) {
	alpha := uint8(255)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return ColorU{}, fmt.Errorf("invalid alpha in %q: %w", s, ErrInvalidValue)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return ColorU{}, fmt.Errorf("invalid hex color %q: %w", s, ErrInvalidValue)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorU{}, fmt.Errorf("invalid hex color %q: %w", s, ErrInvalidValue)
	}
	return fromColorful(c, alpha), nil
}

func funcArgs(s string) []string {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return nil
	}
	parts := strings.FieldsFunc(s[open+1:end], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	return parts
}

func parseRGBFunc(s string) (ColorU, error) {
	args := funcArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return ColorU{}, fmt.Errorf("invalid rgb color %q: %w", s, ErrInvalidValue)
	}
	var out [4]uint8
	out[3] = 255
	for i, arg := range args {
		if i == 3 {
			a, err := parseAlpha(arg)
			if err != nil {
				return ColorU{}, err
			}
			out[3] = a
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 32)
		if err != nil {
			return ColorU{}, fmt.Errorf("invalid rgb component %q: %w", arg, ErrInvalidValue)
		}
		if strings.HasSuffix(arg, "%") {
			v = v * 255 / 100
		}
		out[i] = uint8(clampFloat(v, 0, 255) + 0.5)
	}
	return ColorU{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

func parseHSLFunc(s string) (ColorU, error) {
	args := funcArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return ColorU{}, fmt.Errorf("invalid hsl color %q: %w", s, ErrInvalidValue)
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return ColorU{}, fmt.Errorf("invalid hue %q: %w", args[0], ErrInvalidValue)
	}
	sat, err := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	if err != nil {
		return ColorU{}, fmt.Errorf("invalid saturation %q: %w", args[1], ErrInvalidValue)
	}
	light, err := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err != nil {
		return ColorU{}, fmt.Errorf("invalid lightness %q: %w", args[2], ErrInvalidValue)
	}
	alpha := uint8(255)
	if len(args) == 4 {
		if alpha, err = parseAlpha(args[3]); err != nil {
			return ColorU{}, err
		}
	}
	return fromColorful(colorful.Hsl(h, sat/100, light/100), alpha), nil
}

func parseAlpha(arg string) (uint8, error) {
	pct := strings.HasSuffix(arg, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q: %w", arg, ErrInvalidValue)
	}
	if pct {
		v /= 100
	}
	return uint8(clampFloat(v, 0, 1)*255 + 0.5), nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
