package css

import (
	"errors"
	"testing"
)

func TestParseProperty(t *testing.T) {
	tests := map[string]struct {
		key, value string
		want       Property
	}{
		"width px":        {key: "width", value: "100px", want: NewProperty(PropWidth, Pixels(100))},
		"width percent":   {key: "width", value: "50%", want: NewProperty(PropWidth, Percentage(50))},
		"bare number":     {key: "height", value: "40", want: NewProperty(PropHeight, Pixels(40))},
		"auto keyword":    {key: "margin-left", value: "auto", want: Keyword(PropMarginLeft, Auto)},
		"inherit":         {key: "font-size", value: "inherit", want: Keyword(PropFontSize, Inherit)},
		"display none":    {key: "display", value: "none", want: NewProperty(PropDisplay, DisplayNone)},
		"overflow auto":   {key: "overflow-y", value: "auto", want: NewProperty(PropOverflowY, OverflowAuto)},
		"justify":         {key: "justify-content", value: "space-between", want: NewProperty(PropJustifyContent, JustifySpaceBetween)},
		"align self":      {key: "align-self", value: "baseline", want: NewProperty(PropAlignSelf, AlignBaseline)},
		"flex grow":       {key: "flex-grow", value: "2", want: NewProperty(PropFlexGrow, Float(2))},
		"aspect ratio":    {key: "aspect-ratio", value: "16/8", want: NewProperty(PropAspectRatio, Float(2))},
		"line height pct": {key: "line-height", value: "150%", want: NewProperty(PropLineHeight, Float(1.5))},
		"color":           {key: "color", value: "#ffffff", want: NewProperty(PropTextColor, White)},
		"position":        {key: "position", value: "absolute", want: NewProperty(PropPosition, PositionAbsolute)},
		"case and space":  {key: " Width ", value: " 10PX ", want: NewProperty(PropWidth, Pixels(10))},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseProperty(tt.key, tt.value)
			if err != nil {
				t.Fatalf("ParseProperty(%q, %q) error: %v", tt.key, tt.value, err)
			}
			if got.Type != tt.want.Type || got.Kind != tt.want.Kind || got.Value != tt.want.Value {
				t.Errorf("ParseProperty(%q, %q) = %v, want %v", tt.key, tt.value, got, tt.want)
			}
		})
	}
}

func TestParseProperty_Errors(t *testing.T) {
	if _, err := ParseProperty("not-a-prop", "1px"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("unknown property error = %v, want ErrUnknownProperty", err)
	}
	if _, err := ParseProperty("width", "wide"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("invalid width error = %v, want ErrInvalidValue", err)
	}
	if _, err := ParseProperty("aspect-ratio", "1/0"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("zero denominator error = %v, want ErrInvalidValue", err)
	}
}

func TestParseDeclaration_Shorthands(t *testing.T) {
	tests := map[string]struct {
		key, value string
		want       []Property
	}{
		"padding one": {key: "padding", value: "5px", want: []Property{
			NewProperty(PropPaddingTop, Pixels(5)), NewProperty(PropPaddingRight, Pixels(5)),
			NewProperty(PropPaddingBottom, Pixels(5)), NewProperty(PropPaddingLeft, Pixels(5)),
		}},
		"margin two": {key: "margin", value: "1px auto", want: []Property{
			NewProperty(PropMarginTop, Pixels(1)), Keyword(PropMarginRight, Auto),
			NewProperty(PropMarginBottom, Pixels(1)), Keyword(PropMarginLeft, Auto),
		}},
		"overflow": {key: "overflow", value: "scroll", want: []Property{
			NewProperty(PropOverflowX, OverflowScroll), NewProperty(PropOverflowY, OverflowScroll),
		}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDeclaration(tt.key, tt.value)
			if err != nil {
				t.Fatalf("ParseDeclaration error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d properties, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Type != tt.want[i].Type || got[i].Kind != tt.want[i].Kind || got[i].Value != tt.want[i].Value {
					t.Errorf("property %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseDeclaration_Border(t *testing.T) {
	got, err := ParseDeclaration("border", "2px solid red")
	if err != nil {
		t.Fatalf("border shorthand error: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("border expanded to %d longhands, want 12", len(got))
	}
	var layout RectLayout
	var style RectStyle
	for _, p := range got {
		if !layout.Apply(p) && !style.Apply(p) {
			t.Errorf("property %v not applied", p)
		}
	}
	if !layout.HasBorder() {
		t.Error("HasBorder() = false after border shorthand")
	}
	if c := style.BorderLeftColor.GetOr(Transparent); c != Red {
		t.Errorf("left border color = %+v, want red", c)
	}
}

func TestParseBackground(t *testing.T) {
	p, err := ParseProperty("background", "linear-gradient(to right, red, blue 80%)")
	if err != nil {
		t.Fatalf("gradient error: %v", err)
	}
	bg, ok := Get[BackgroundContent](p)
	if !ok || bg.Kind != BackgroundLinearGradient {
		t.Fatalf("background = %+v, want linear gradient", p)
	}
	if bg.Gradient.Angle != 90 || len(bg.Gradient.Stops) != 2 {
		t.Errorf("gradient = %+v", bg.Gradient)
	}
	if bg.Gradient.Stops[1].Offset == nil || bg.Gradient.Stops[1].Offset.Get() != 80 {
		t.Errorf("second stop offset = %v, want 80", bg.Gradient.Stops[1].Offset)
	}

	p, err = ParseProperty("background", `url("logo")`)
	if err != nil {
		t.Fatalf("image background error: %v", err)
	}
	if bg, _ := Get[BackgroundContent](p); bg.Kind != BackgroundImage || bg.Image != "logo" {
		t.Errorf("image background = %+v", bg)
	}
}

func TestParseBoxShadow(t *testing.T) {
	p, err := ParseProperty("box-shadow", "2px 3px 4px red, inset 0 0 5px 1px rgba(0,0,0,0.5)")
	if err != nil {
		t.Fatalf("box-shadow error: %v", err)
	}
	shadows, ok := Get[[]BoxShadow](p)
	if !ok || len(shadows) != 2 {
		t.Fatalf("shadows = %+v", p.Value)
	}
	if shadows[0].ClipMode != ShadowOutset || shadows[0].Blur != Pixels(4) || shadows[0].Color != Red {
		t.Errorf("first shadow = %+v", shadows[0])
	}
	if shadows[1].ClipMode != ShadowInset || shadows[1].Spread != Pixels(1) {
		t.Errorf("second shadow = %+v", shadows[1])
	}
}
