package dom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-gui/internal/css"
)

// tree builds
//
//	0 div
//	├─ 1 label
//	│  └─ 2 div
//	├─ 3 image
//	└─ 4 div
//	   └─ 5 div
func tree() *Dom {
	return Div(WithChildren(
		Label("a", WithChildren(Div())),
		Image("img"),
		Div(WithChildren(Div())),
	))
}

func TestArena_PreOrder(t *testing.T) {
	h, data := tree().Arena()

	if err := h.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	wantTypes := []NodeType{NodeDiv, NodeLabel, NodeDiv, NodeImage, NodeDiv, NodeDiv}
	var gotTypes []NodeType
	for _, nd := range data {
		gotTypes = append(gotTypes, nd.Type)
	}
	if diff := cmp.Diff(wantTypes, gotTypes); diff != "" {
		t.Errorf("node types mismatch (-want +got):\n%s", diff)
	}

	type tc struct {
		id       NodeId
		parent   int
		children []NodeId
		prev     int
		next     int
	}
	// -1 means none.
	tests := map[string]tc{
		"root":         {id: 0, parent: -1, children: []NodeId{1, 3, 4}, prev: -1, next: -1},
		"label":        {id: 1, parent: 0, children: []NodeId{2}, prev: -1, next: 3},
		"nested leaf":  {id: 2, parent: 1, prev: -1, next: -1},
		"image":        {id: 3, parent: 0, prev: 1, next: 4},
		"last child":   {id: 4, parent: 0, children: []NodeId{5}, prev: 3, next: -1},
		"deepest leaf": {id: 5, parent: 4, prev: -1, next: -1},
	}

	opt := func(id NodeId, ok bool) int {
		if !ok {
			return -1
		}
		return int(id)
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := h.Node(tt.id)
			if got := opt(n.Parent()); got != tt.parent {
				t.Errorf("Parent() = %d, want %d", got, tt.parent)
			}
			if got := opt(n.PreviousSibling()); got != tt.prev {
				t.Errorf("PreviousSibling() = %d, want %d", got, tt.prev)
			}
			if got := opt(n.NextSibling()); got != tt.next {
				t.Errorf("NextSibling() = %d, want %d", got, tt.next)
			}
			if diff := cmp.Diff(tt.children, h.ChildIds(tt.id)); diff != "" {
				t.Errorf("ChildIds() mismatch (-want +got):\n%s", diff)
			}
			if got, want := h.HasChildren(tt.id), len(tt.children) > 0; got != want {
				t.Errorf("HasChildren() = %v, want %v", got, want)
			}
		})
	}
}

func TestNodeHierarchy_ParentsByDepth(t *testing.T) {
	h, _ := tree().Arena()

	want := []ParentWithDepth{
		{Depth: 0, Node: 0},
		{Depth: 1, Node: 1},
		{Depth: 1, Node: 4},
	}
	if diff := cmp.Diff(want, h.ParentsByDepth()); diff != "" {
		t.Errorf("ParentsByDepth() mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeHierarchy_Validate(t *testing.T) {
	type tc struct {
		nodes []Node
		ok    bool
	}

	tests := map[string]tc{
		"empty": {
			ok: true,
		},
		"single root": {
			nodes: []Node{{}},
			ok:    true,
		},
		"root with parent": {
			nodes: []Node{{parent: ref(0)}},
		},
		"orphan": {
			nodes: []Node{{}, {}},
		},
		"first without last": {
			nodes: []Node{{firstChild: ref(1)}, {parent: ref(0)}},
		},
		"chain ends early": {
			nodes: []Node{
				{firstChild: ref(1), lastChild: ref(2)},
				{parent: ref(0)},
				{parent: ref(0), previousSibling: ref(1)},
			},
		},
		"child points elsewhere": {
			nodes: []Node{
				{firstChild: ref(1), lastChild: ref(2)},
				{parent: ref(0), firstChild: ref(2), lastChild: ref(2), nextSibling: ref(2)},
				{parent: ref(1)},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := NodeHierarchy{nodes: tt.nodes}
			err := h.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidHierarchy) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidHierarchy)
			}
		})
	}
}

func TestParseInline(t *testing.T) {
	type tc struct {
		input   string
		want    []css.Declaration
		wantErr bool
	}

	tests := map[string]tc{
		"empty": {
			input: "",
		},
		"static": {
			input: "width: 10px; color: red;",
			want: []css.Declaration{
				css.Static(css.NewProperty(css.PropWidth, css.Pixels(10))),
				css.Static(css.NewProperty(css.PropTextColor, css.Red)),
			},
		},
		"dynamic": {
			input: "width: var(--w, 10px)",
			want: []css.Declaration{
				css.Dynamic("w", css.NewProperty(css.PropWidth, css.Pixels(10))),
			},
		},
		"shorthand expands": {
			input: "overflow: hidden",
			want: []css.Declaration{
				css.Static(css.NewProperty(css.PropOverflowX, css.OverflowHidden)),
				css.Static(css.NewProperty(css.PropOverflowY, css.OverflowHidden)),
			},
		},
		"missing colon": {
			input:   "width 10px",
			wantErr: true,
		},
		"dynamic without default": {
			input:   "width: var(--w)",
			wantErr: true,
		},
		"bad value": {
			input:   "width: wide",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseInline(tt.input)
			if tt.wantErr {
				if !errors.Is(err, css.ErrInvalidValue) {
					t.Errorf("ParseInline(%q) error = %v, want %v", tt.input, err, css.ErrInvalidValue)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInline(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseInline(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNodeData_Hash(t *testing.T) {
	base := NodeData{Type: NodeLabel, Label: "a", IDs: []string{"x"}, Classes: []string{"c"}}

	type tc struct {
		mutate func(d *NodeData)
		same   bool
	}

	tests := map[string]tc{
		"identical":        {mutate: func(d *NodeData) {}, same: true},
		"style is ignored": {mutate: func(d *NodeData) { d.Declarations = []css.Declaration{{}} }, same: true},
		"hit test ignored": {mutate: func(d *NodeData) { d.HitTest = true }, same: true},
		"label":            {mutate: func(d *NodeData) { d.Label = "b" }},
		"type":             {mutate: func(d *NodeData) { d.Type = NodeDiv }},
		"class":            {mutate: func(d *NodeData) { d.Classes = []string{"d"} }},
		"id vs class":      {mutate: func(d *NodeData) { d.IDs, d.Classes = d.Classes, d.IDs }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			if got := d.Hash() == base.Hash(); got != tt.same {
				t.Errorf("hash equal = %v, want %v", got, tt.same)
			}
		})
	}
}
