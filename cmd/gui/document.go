package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-gui/internal/css"
	"github.com/grindlemire/go-gui/internal/dom"
)

var errInvalidDocument = errors.New("invalid document")

// document is the YAML input of the render command:
//
//	window: {width: 800, height: 600}
//	stylesheet:
//	  - selector: .button
//	    style: "width: 100px; height: 40px"
//	root:
//	  type: div
//	  style: "display: flex; justify-content: center"
//	  children:
//	    - {type: label, text: Hello, class: [button]}
type document struct {
	Window     *windowSize `yaml:"window"`
	Stylesheet []ruleSpec  `yaml:"stylesheet"`
	Root       *nodeSpec   `yaml:"root"`
}

type windowSize struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type ruleSpec struct {
	Selector string `yaml:"selector"`
	Style    string `yaml:"style"`
}

type nodeSpec struct {
	Type     string      `yaml:"type"`
	ID       stringList  `yaml:"id"`
	Class    stringList  `yaml:"class"`
	Style    string      `yaml:"style"`
	HitTest  bool        `yaml:"hit_test"`
	Text     string      `yaml:"text"`
	Image    string      `yaml:"image"`
	Children []*nodeSpec `yaml:"children"`
}

// stringList accepts either a single string or a sequence of strings.
type stringList []string

func (l *stringList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*l = stringList{n.Value}
		return nil
	}
	var s []string
	if err := n.Decode(&s); err != nil {
		return err
	}
	*l = s
	return nil
}

// decodeDocument reads a YAML document. Unknown keys are rejected.
func decodeDocument(r io.Reader) (*document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", errInvalidDocument)
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("document has no root: %w", errInvalidDocument)
	}
	return &doc, nil
}

// stylesheet parses the rules of the document in source order.
func (d *document) stylesheet() (*css.Stylesheet, error) {
	sheet := &css.Stylesheet{}
	for i, r := range d.Stylesheet {
		sel, err := css.ParseSelector(r.Selector)
		if err != nil {
			return nil, fmt.Errorf("stylesheet rule %d: %w", i, err)
		}
		decls, err := dom.ParseInline(r.Style)
		if err != nil {
			return nil, fmt.Errorf("stylesheet rule %d (%s): %w", i, r.Selector, err)
		}
		sheet.Rules = append(sheet.Rules, css.Rule{Selector: sel, Declarations: decls})
	}
	return sheet, nil
}

// build converts the node tree. path locates errors, e.g. "root.children[1]".
func (n *nodeSpec) build(path string) (*dom.Dom, error) {
	if n == nil {
		return nil, fmt.Errorf("%s: empty node: %w", path, errInvalidDocument)
	}
	var opts []dom.Option
	if len(n.ID) > 0 {
		opts = append(opts, dom.WithID(n.ID...))
	}
	if len(n.Class) > 0 {
		opts = append(opts, dom.WithClass(n.Class...))
	}
	if n.Style != "" {
		decls, err := dom.ParseInline(n.Style)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		opts = append(opts, dom.WithStyle(decls...))
	}
	if n.HitTest {
		opts = append(opts, dom.WithHitTest())
	}

	var d *dom.Dom
	switch n.Type {
	case "", "div":
		d = dom.Div(opts...)
	case "label":
		d = dom.Label(n.Text, opts...)
	case "image":
		if n.Image == "" {
			return nil, fmt.Errorf("%s: image node needs an image id: %w", path, errInvalidDocument)
		}
		d = dom.Image(n.Image, opts...)
	default:
		return nil, fmt.Errorf("%s: unsupported node type %q: %w", path, n.Type, errInvalidDocument)
	}

	for i, c := range n.Children {
		child, err := c.build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		d.AddChild(child)
	}
	return d, nil
}
