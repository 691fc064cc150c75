package css

import "testing"

func TestParseSelector(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Selector
		err  bool
	}{
		"type":       {in: "div", want: Selector{Type: "div"}},
		"universal":  {in: "*", want: Selector{}},
		"id":         {in: "#main", want: Selector{ID: "main"}},
		"classes":    {in: ".a.b", want: Selector{Classes: []string{"a", "b"}}},
		"compound":   {in: "p#x.y", want: Selector{Type: "p", ID: "x", Classes: []string{"y"}}},
		"descendant": {in: "div p", err: true},
		"dangling":   {in: "div.", err: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSelector(tt.in)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseSelector(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSelector(%q) error: %v", tt.in, err)
			}
			if got.Type != tt.want.Type || got.ID != tt.want.ID || len(got.Classes) != len(tt.want.Classes) {
				t.Errorf("ParseSelector(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStylesheet_Matching(t *testing.T) {
	byID := Static(NewProperty(PropWidth, Pixels(3)))
	byClass := Static(NewProperty(PropWidth, Pixels(2)))
	byType := Static(NewProperty(PropWidth, Pixels(1)))
	other := Static(NewProperty(PropWidth, Pixels(9)))

	mustSel := func(s string) Selector {
		sel, err := ParseSelector(s)
		if err != nil {
			t.Fatalf("ParseSelector(%q): %v", s, err)
		}
		return sel
	}
	sheet := &Stylesheet{Rules: []Rule{
		{Selector: mustSel("#main"), Declarations: []Declaration{byID}},
		{Selector: mustSel(".wide"), Declarations: []Declaration{byClass}},
		{Selector: mustSel("div"), Declarations: []Declaration{byType}},
		{Selector: mustSel("p"), Declarations: []Declaration{other}},
	}}

	got := sheet.Matching("div", []string{"main"}, []string{"wide"})
	if len(got) != 3 {
		t.Fatalf("matched %d declarations, want 3", len(got))
	}
	want := []Declaration{byType, byClass, byID}
	for i := range want {
		if got[i].Property.Value != want[i].Property.Value {
			t.Errorf("declaration %d = %v, want %v", i, got[i].Property, want[i].Property)
		}
	}

	var nilSheet *Stylesheet
	if nilSheet.Matching("div", nil, nil) != nil {
		t.Error("nil stylesheet should match nothing")
	}
}
