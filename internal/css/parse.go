package css

import (
	"fmt"
	"strconv"
	"strings"
)

var keywordKinds = map[string]ValueKind{
	"auto":    Auto,
	"none":    None,
	"initial": Initial,
	"inherit": Inherit,
	"revert":  Revert,
	"unset":   Unset,
}

// ParseProperty parses one longhand declaration.
func ParseProperty(key, value string) (Property, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	t, ok := PropertyTypeByName(key)
	if !ok {
		return Property{}, fmt.Errorf("%q: %w", key, ErrUnknownProperty)
	}

	lower := strings.ToLower(value)
	if table, ok := keywordTables[t]; ok {
		if v, ok := table[lower]; ok {
			return NewProperty(t, enumValue(t, v)), nil
		}
	}
	if kind, ok := keywordKinds[lower]; ok {
		return Keyword(t, kind), nil
	}

	v, err := parseExact(t, value)
	if err != nil {
		return Property{}, fmt.Errorf("%s: %w", key, err)
	}
	return NewProperty(t, v), nil
}

// ParseDeclaration parses a declaration that may be a shorthand, returning
// the longhands it expands to.
func ParseDeclaration(key, value string) ([]Property, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	switch key {
	case "padding":
		return parseBoxShorthand(value, PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft)
	case "margin":
		return parseBoxShorthand(value, PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft)
	case "border-width":
		return parseBoxShorthand(value, PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth)
	case "border-color":
		return parseBoxShorthand(value, PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor)
	case "border-style":
		return parseBoxShorthand(value, PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle)
	case "border-radius":
		return parseBoxShorthand(value, PropBorderTopLeftRadius, PropBorderTopRightRadius, PropBorderBottomRightRadius, PropBorderBottomLeftRadius)
	case "overflow":
		x, err := ParseProperty("overflow-x", value)
		if err != nil {
			return nil, err
		}
		y, err := ParseProperty("overflow-y", value)
		if err != nil {
			return nil, err
		}
		return []Property{x, y}, nil
	case "border":
		return parseBorderShorthand(value)
	case "background-color":
		p, err := ParseProperty("background", value)
		if err != nil {
			return nil, err
		}
		return []Property{p}, nil
	}
	p, err := ParseProperty(key, value)
	if err != nil {
		return nil, err
	}
	return []Property{p}, nil
}

func parseBoxShorthand(value string, top, right, bottom, left PropertyType) ([]Property, error) {
	parts := splitTopLevel(value, ' ')
	var vals [4]string
	switch len(parts) {
	case 1:
		vals = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		vals = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		vals = [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		vals = [4]string{parts[0], parts[1], parts[2], parts[3]}
	default:
		return nil, fmt.Errorf("expected 1 to 4 values, got %d: %w", len(parts), ErrInvalidValue)
	}
	out := make([]Property, 0, 4)
	for i, t := range []PropertyType{top, right, bottom, left} {
		p, err := ParseProperty(t.String(), vals[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parseBorderShorthand(value string) ([]Property, error) {
	var width, style, color string
	for _, part := range splitTopLevel(value, ' ') {
		lower := strings.ToLower(part)
		switch {
		case isBorderStyle(lower):
			style = part
		case len(part) > 0 && (part[0] >= '0' && part[0] <= '9' || part[0] == '.'):
			width = part
		default:
			color = part
		}
	}
	var out []Property
	add := func(shorthand, v string) error {
		if v == "" {
			return nil
		}
		ps, err := ParseDeclaration(shorthand, v)
		if err != nil {
			return err
		}
		out = append(out, ps...)
		return nil
	}
	if err := add("border-width", width); err != nil {
		return nil, err
	}
	if err := add("border-style", style); err != nil {
		return nil, err
	}
	if err := add("border-color", color); err != nil {
		return nil, err
	}
	return out, nil
}

func parseExact(t PropertyType, value string) (any, error) {
	switch t {
	case PropTextColor, PropBorderTopColor, PropBorderRightColor, PropBorderBottomColor, PropBorderLeftColor:
		return ParseColor(value)
	case PropFontFamily:
		return parseFontFamily(value)
	case PropFlexGrow, PropFlexShrink, PropTabWidth:
		return parseFloat(value)
	case PropLineHeight:
		return parseLineHeight(value)
	case PropAspectRatio:
		return parseAspectRatio(value)
	case PropBoxShadow:
		return parseBoxShadows(value)
	case PropBackground:
		return parseBackground(value)
	case PropFontSize, PropLetterSpacing, PropWordSpacing,
		PropTop, PropRight, PropBottom, PropLeft,
		PropWidth, PropHeight, PropMinWidth, PropMinHeight, PropMaxWidth, PropMaxHeight,
		PropFlexBasis,
		PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft,
		PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft,
		PropBorderTopWidth, PropBorderRightWidth, PropBorderBottomWidth, PropBorderLeftWidth,
		PropBorderTopLeftRadius, PropBorderTopRightRadius, PropBorderBottomRightRadius, PropBorderBottomLeftRadius:
		return ParsePixelValue(value)
	}
	return nil, fmt.Errorf("%q: %w", value, ErrInvalidValue)
}

func enumValue(t PropertyType, v uint8) any {
	switch t {
	case PropDisplay:
		return LayoutDisplay(v)
	case PropPosition:
		return LayoutPosition(v)
	case PropFlexDirection:
		return FlexDirection(v)
	case PropFlexWrap:
		return FlexWrap(v)
	case PropJustifyContent:
		return JustifyContent(v)
	case PropAlignItems, PropAlignSelf:
		return AlignItems(v)
	case PropAlignContent:
		return AlignContent(v)
	case PropOverflowX, PropOverflowY:
		return Overflow(v)
	case PropTextAlign:
		return TextAlign(v)
	case PropBorderTopStyle, PropBorderRightStyle, PropBorderBottomStyle, PropBorderLeftStyle:
		return BorderStyle(v)
	case PropCursor:
		return Cursor(v)
	}
	return v
}

// ParsePixelValue parses a length such as "10px", "1.5em", "12pt" or "50%".
// A bare number is treated as pixels.
func ParsePixelValue(s string) (PixelValue, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	metric := Px
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "pt"):
		metric, num = Pt, strings.TrimSuffix(s, "pt")
	case strings.HasSuffix(s, "em"):
		metric, num = Em, strings.TrimSuffix(s, "em")
	case strings.HasSuffix(s, "%"):
		metric, num = Percent, strings.TrimSuffix(s, "%")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return PixelValue{}, fmt.Errorf("invalid length %q: %w", s, ErrInvalidValue)
	}
	return PixelValue{Metric: metric, Number: Float(float32(f))}, nil
}

func parseFloat(s string) (FloatValue, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return FloatValue{}, fmt.Errorf("invalid number %q: %w", s, ErrInvalidValue)
	}
	return Float(float32(f)), nil
}

// parseLineHeight accepts a multiplier ("1.5") or a percentage ("150%").
func parseLineHeight(s string) (FloatValue, error) {
	if strings.HasSuffix(s, "%") {
		f, err := parseFloat(strings.TrimSuffix(s, "%"))
		if err != nil {
			return FloatValue{}, err
		}
		return Float(f.Get() / 100), nil
	}
	return parseFloat(s)
}

// parseAspectRatio accepts "16/9" or "1.5".
func parseAspectRatio(s string) (FloatValue, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseFloat(num)
		if err != nil {
			return FloatValue{}, err
		}
		d, err := parseFloat(den)
		if err != nil {
			return FloatValue{}, err
		}
		if d.Get() == 0 {
			return FloatValue{}, fmt.Errorf("zero denominator in %q: %w", s, ErrInvalidValue)
		}
		return Float(n.Get() / d.Get()), nil
	}
	return parseFloat(s)
}

func parseFontFamily(s string) ([]string, error) {
	var out []string
	for _, part := range splitTopLevel(s, ',') {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name != "" {
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty font-family: %w", ErrInvalidValue)
	}
	return out, nil
}

// parseBoxShadows parses a comma separated list of
// "[inset] <x> <y> [<blur> [<spread>]] [<color>]".
func parseBoxShadows(s string) ([]BoxShadow, error) {
	var out []BoxShadow
	for _, entry := range splitTopLevel(s, ',') {
		var shadow BoxShadow
		shadow.Color = Black
		var lengths []PixelValue
		for _, part := range splitTopLevel(entry, ' ') {
			if strings.EqualFold(part, "inset") {
				shadow.ClipMode = ShadowInset
				continue
			}
			if px, err := ParsePixelValue(part); err == nil {
				lengths = append(lengths, px)
				continue
			}
			c, err := ParseColor(part)
			if err != nil {
				return nil, fmt.Errorf("box-shadow %q: %w", entry, err)
			}
			shadow.Color = c
		}
		if len(lengths) < 2 || len(lengths) > 4 {
			return nil, fmt.Errorf("box-shadow %q needs 2 to 4 lengths: %w", entry, ErrInvalidValue)
		}
		shadow.OffsetX, shadow.OffsetY = lengths[0], lengths[1]
		if len(lengths) > 2 {
			shadow.Blur = lengths[2]
		}
		if len(lengths) > 3 {
			shadow.Spread = lengths[3]
		}
		out = append(out, shadow)
	}
	return out, nil
}

func parseBackground(s string) (BackgroundContent, error) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "url(") || strings.HasPrefix(lower, "image("):
		open := strings.IndexByte(s, '(')
		id := strings.Trim(strings.TrimSuffix(s[open+1:], ")"), `"' `)
		return BackgroundContent{Kind: BackgroundImage, Image: id}, nil
	case strings.HasPrefix(lower, "linear-gradient("):
		g, err := parseLinearGradient(s)
		if err != nil {
			return BackgroundContent{}, err
		}
		return BackgroundContent{Kind: BackgroundLinearGradient, Gradient: g}, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return BackgroundContent{}, err
	}
	return BackgroundContent{Kind: BackgroundColor, Color: c}, nil
}

var gradientDirections = map[string]float32{
	"to top":    0,
	"to right":  90,
	"to bottom": 180,
	"to left":   270,
}

func parseLinearGradient(s string) (LinearGradient, error) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return LinearGradient{}, fmt.Errorf("malformed gradient %q: %w", s, ErrInvalidValue)
	}
	args := splitTopLevel(s[open+1:end], ',')
	g := LinearGradient{Angle: 180}
	if len(args) > 0 {
		first := strings.ToLower(strings.TrimSpace(args[0]))
		if angle, ok := gradientDirections[first]; ok {
			g.Angle = angle
			args = args[1:]
		} else if strings.HasSuffix(first, "deg") {
			f, err := parseFloat(strings.TrimSuffix(first, "deg"))
			if err != nil {
				return LinearGradient{}, err
			}
			g.Angle = f.Get()
			args = args[1:]
		}
	}
	for _, arg := range args {
		parts := splitTopLevel(arg, ' ')
		if len(parts) == 0 {
			continue
		}
		c, err := ParseColor(parts[0])
		if err != nil {
			return LinearGradient{}, err
		}
		stop := GradientStop{Color: c}
		if len(parts) > 1 {
			px, err := ParsePixelValue(parts[1])
			if err != nil || px.Metric != Percent {
				return LinearGradient{}, fmt.Errorf("gradient stop %q: %w", arg, ErrInvalidValue)
			}
			stop.Offset = &PercentageValue{Number: px.Number}
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) < 2 {
		return LinearGradient{}, fmt.Errorf("gradient %q needs two stops: %w", s, ErrInvalidValue)
	}
	return g, nil
}

func isBorderStyle(s string) bool {
	_, ok := borderStyleKeywords[s]
	return ok
}

// splitTopLevel splits s on sep outside of parentheses, dropping empty parts.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth, start := 0, 0
	flush := func(end int) {
		if part := strings.TrimSpace(s[start:end]); part != "" {
			out = append(out, part)
		}
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return out
}
