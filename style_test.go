package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/layout"
)

func styledNode(t *testing.T, style string) *dom.StyledNode {
	t.Helper()
	decls, err := dom.ParseInline(style)
	if err != nil {
		t.Fatalf("ParseInline(%q) error = %v", style, err)
	}
	sd, _ := dom.Style(dom.Div(dom.WithStyle(decls...)), nil, nil)
	return &sd.Styled[0]
}

func alignPtr(a layout.Align) *layout.Align { return &a }

func TestLayoutStyle(t *testing.T) {
	type tc struct {
		style string
		want  func(s *layout.Style)
	}

	tests := map[string]tc{
		"defaults": {
			style: "",
			want:  func(s *layout.Style) {},
		},
		"static lays out as relative": {
			style: "position: static",
			want:  func(s *layout.Style) {},
		},
		"absolute with insets": {
			style: "position: absolute; top: 10px; right: 20px",
			want: func(s *layout.Style) {
				s.Position = layout.PositionAbsolute
				s.Inset.Top = layout.Points(10)
				s.Inset.Right = layout.Points(20)
			},
		},
		"percent sizes stay relative": {
			style: "width: 50%; max-height: 25%",
			want: func(s *layout.Style) {
				s.Width = layout.Percent(50)
				s.MaxHeight = layout.Percent(25)
			},
		},
		"em padding uses the node font size": {
			style: "font-size: 10px; padding-left: 2em",
			want: func(s *layout.Style) {
				s.Padding.Left = layout.Points(20)
			},
		},
		"auto margin": {
			style: "margin-left: auto; margin-top: 4px",
			want: func(s *layout.Style) {
				s.Margin.Left = layout.Auto()
				s.Margin.Top = layout.Points(4)
			},
		},
		"flex container": {
			style: "display: flex; flex-direction: column-reverse; flex-wrap: wrap; justify-content: space-evenly; align-items: center; align-content: space-between",
			want: func(s *layout.Style) {
				s.Direction = layout.ColumnReverse
				s.Wrap = layout.WrapLines
				s.JustifyContent = layout.JustifySpaceEvenly
				s.AlignItems = layout.AlignCenter
				s.AlignContent = layout.ContentSpaceBetween
			},
		},
		"flex item": {
			style: "flex-grow: 2; flex-shrink: 0; flex-basis: 30px; align-self: flex-end",
			want: func(s *layout.Style) {
				s.FlexGrow = 2
				s.FlexShrink = 0
				s.FlexBasis = layout.Points(30)
				s.AlignSelf = alignPtr(layout.AlignEnd)
			},
		},
		"display none": {
			style: "display: none",
			want: func(s *layout.Style) {
				s.Display = layout.DisplayNone
			},
		},
		"border width counts for solid sides": {
			style: "border-width: 3px; border-top-style: none",
			want: func(s *layout.Style) {
				s.Border = layout.Sides{Right: layout.Points(3), Bottom: layout.Points(3), Left: layout.Points(3)}
			},
		},
		"aspect ratio": {
			style: "aspect-ratio: 16/9",
			want: func(s *layout.Style) {
				s.AspectRatio = layout.Defined(16.0 / 9.0)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			want := layout.DefaultStyle()
			tt.want(&want)

			got := layoutStyle(styledNode(t, tt.style))
			opt := cmp.Comparer(func(a, b layout.Number) bool {
				av, bv := a.OrElse(-1), b.OrElse(-1)
				d := av - bv
				return a.IsDefined() == b.IsDefined() && d < 1e-3 && d > -1e-3
			})
			if diff := cmp.Diff(want, got, opt); diff != "" {
				t.Errorf("layoutStyle(%q) mismatch (-want +got):\n%s", tt.style, diff)
			}
		})
	}
}

func TestImageMeasure(t *testing.T) {
	natural := layout.Size[float32]{Width: 200, Height: 100}
	type tc struct {
		known layout.Size[layout.Number]
		want  layout.Size[float32]
	}

	tests := map[string]tc{
		"unconstrained": {
			known: layout.Size[layout.Number]{Width: layout.Undefined, Height: layout.Undefined},
			want:  natural,
		},
		"width known keeps ratio": {
			known: layout.Size[layout.Number]{Width: layout.Defined(50), Height: layout.Undefined},
			want:  layout.Size[float32]{Width: 50, Height: 25},
		},
		"height known keeps ratio": {
			known: layout.Size[layout.Number]{Width: layout.Undefined, Height: layout.Defined(50)},
			want:  layout.Size[float32]{Width: 100, Height: 50},
		},
		"both known": {
			known: layout.Size[layout.Number]{Width: layout.Defined(10), Height: layout.Defined(70)},
			want:  layout.Size[float32]{Width: 10, Height: 70},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := imageMeasure(natural)(tt.known); got != tt.want {
				t.Errorf("imageMeasure(%v) = %v, want %v", tt.known, got, tt.want)
			}
		})
	}
}
