package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/grindlemire/go-gui/internal/config"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/displaylist"
	"github.com/grindlemire/go-gui/internal/layout"
)

// executeCommand runs a fresh root command and returns its stdout and
// stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(debug.ResetForTest)

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const centeredDoc = `
window: {width: 800, height: 600}
stylesheet:
  - selector: .button
    style: "width: 100px; height: 40px; background: red"
root:
  style: "display: flex; justify-content: center; align-items: center"
  children:
    - class: button
      hit_test: true
`

func decodeOutput(t *testing.T, s string) renderOutput {
	t.Helper()
	var out renderOutput
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

func button(t *testing.T, dl displaylist.CachedDisplayList) *displaylist.Frame {
	t.Helper()
	root := dl.Root.Inner()
	require.NotNil(t, root)
	require.Len(t, root.Children, 1)
	return root.Children[0].Inner()
}

func TestVersion(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gui version "+version+"\n", out)

	out, _, err = executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "gui version "+version+"\n", out)
}

func TestRender(t *testing.T) {
	type tc struct {
		args     []string
		config   string
		wantRoot layout.Rect
		wantBtn  layout.Rect
	}

	tests := map[string]tc{
		"document size": {
			wantRoot: layout.NewRect(0, 0, 800, 600),
			wantBtn:  layout.NewRect(350, 280, 100, 40),
		},
		"flags override the document": {
			args:     []string{"--width", "400", "--height", "200"},
			wantRoot: layout.NewRect(0, 0, 400, 200),
			wantBtn:  layout.NewRect(150, 80, 100, 40),
		},
		"compact output": {
			args:     []string{"--compact"},
			wantRoot: layout.NewRect(0, 0, 800, 600),
			wantBtn:  layout.NewRect(350, 280, 100, 40),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := writeFile(t, "doc.yaml", centeredDoc)
			out, _, err := executeCommand(t, append([]string{"render", doc}, tt.args...)...)
			require.NoError(t, err)

			got := decodeOutput(t, out)
			assert.Equal(t, tt.wantRoot, got.DisplayList.Root.Inner().Rect)
			btn := button(t, got.DisplayList)
			assert.Equal(t, tt.wantBtn, btn.Rect)
			assert.False(t, btn.Tag.IsNone())
			require.Len(t, btn.Content, 1)
			assert.Equal(t, displaylist.KindBackground, btn.Content[0].Kind)
			assert.Equal(t, 2, got.Frames)
		})
	}
}

func TestRender_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "gui.yaml", "window:\n  width: 200\n  height: 100\nlog:\n  level: debug\n")
	doc := writeFile(t, "doc.yaml", "root:\n  type: div\n")

	out, errOut, err := executeCommand(t, "--config", cfg, "render", doc)
	require.NoError(t, err)

	got := decodeOutput(t, out)
	assert.Equal(t, layout.NewRect(0, 0, 200, 100), got.DisplayList.Root.Inner().Rect)
	assert.Contains(t, errOut, "document rendered")
}

func TestRender_Text(t *testing.T) {
	doc := writeFile(t, "doc.yaml", `
root:
  children:
    - type: label
      text: Hello
      style: "font-size: 20px; color: red"
`)
	out, _, err := executeCommand(t, "render", doc)
	require.NoError(t, err)

	got := decodeOutput(t, out)
	label := button(t, got.DisplayList)
	require.Len(t, label.Content, 1)
	text := label.Content[0].Text
	require.NotNil(t, text)
	assert.Len(t, text.Glyphs, 5)
	assert.NotEmpty(t, got.Resources, "font additions are reported")
}

func TestRender_OutputFile(t *testing.T) {
	doc := writeFile(t, "doc.yaml", centeredDoc)
	dest := filepath.Join(t.TempDir(), "out.json")

	out, _, err := executeCommand(t, "render", doc, "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	got := decodeOutput(t, string(data))
	assert.Equal(t, layout.NewRect(350, 280, 100, 40), button(t, got.DisplayList).Rect)
}

func TestRender_Errors(t *testing.T) {
	type tc struct {
		doc     string
		args    []string
		wantErr string
	}

	tests := map[string]tc{
		"no argument": {
			wantErr: "accepts 1 arg",
		},
		"missing file": {
			args:    []string{"render", "does-not-exist.yaml"},
			wantErr: "open document",
		},
		"empty document": {
			doc:     "",
			wantErr: "empty document",
		},
		"no root": {
			doc:     "window: {width: 10, height: 10}\n",
			wantErr: "document has no root",
		},
		"unknown key": {
			doc:     "root:\n  colour: red\n",
			wantErr: "colour",
		},
		"unsupported node": {
			doc:     "root:\n  children:\n    - type: iframe\n",
			wantErr: `root.children[0]: unsupported node type "iframe"`,
		},
		"bad inline style": {
			doc:     "root:\n  style: \"width: wide\"\n",
			wantErr: "root: parse",
		},
		"bad selector": {
			doc:     "stylesheet:\n  - selector: \"div > p\"\n    style: \"color: red\"\nroot: {}\n",
			wantErr: "stylesheet rule 0",
		},
		"invalid config value": {
			doc:     "root: {}\n",
			args:    []string{"--log-format", "xml"},
			wantErr: "invalid configuration",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			args := tt.args
			switch {
			case name == "no argument":
				args = []string{"render"}
			case tt.doc != "" || name == "empty document":
				args = append([]string{"render", writeFile(t, "doc.yaml", tt.doc)}, args...)
			}
			_, _, err := executeCommand(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeDocument(t *testing.T) {
	doc, err := decodeDocument(strings.NewReader(`
stylesheet:
  - {selector: "#main", style: "width: 10px"}
  - {selector: ".a.b", style: "color: red"}
root:
  id: main
  class: [a, b]
  children:
    - {type: label, text: hi, class: a}
    - {type: image, image: logo}
`))
	require.NoError(t, err)

	sheet, err := doc.stylesheet()
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, "main", sheet.Rules[0].Selector.ID)
	assert.Equal(t, []string{"a", "b"}, sheet.Rules[1].Selector.Classes)

	root, err := doc.Root.build("root")
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, root.Data.IDs)
	assert.Equal(t, []string{"a", "b"}, root.Data.Classes)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "hi", root.Children[0].Data.Label)
	assert.Equal(t, []string{"a"}, root.Children[0].Data.Classes)
	assert.Equal(t, "logo", root.Children[1].Data.ImageId)

	_, err = (&nodeSpec{Type: "image"}).build("root")
	assert.ErrorIs(t, err, errInvalidDocument)
}

func TestBindFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float32("width", 0, "")
	fs.Float32("height", 0, "")
	fs.StringSlice("font-dir", nil, "")
	fs.String("unrelated", "", "")
	require.NoError(t, fs.Parse([]string{"--width", "300", "--font-dir", "/a,/b"}))

	v := config.NewViper("")
	require.NoError(t, bindFlags(v, fs))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, float32(300), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height, "unset flags keep the default")
	assert.Equal(t, []string{"/a", "/b"}, cfg.Text.FontDirs)
}

func TestFont(t *testing.T) {
	path := writeFile(t, "goregular.ttf", string(goregular.TTF))

	out, _, err := executeCommand(t, "font", path)
	require.NoError(t, err)
	assert.Contains(t, out, "units per em  2048")
	assert.Contains(t, out, "outlines      yes")

	out, _, err = executeCommand(t, "font", path, "--json")
	require.NoError(t, err)
	var info fontInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, uint16(2048), info.UnitsPerEm)
	assert.Positive(t, info.Glyphs)
	assert.Positive(t, info.Ascender)
	assert.Negative(t, info.Descender)
}

func TestFont_NotAFont(t *testing.T) {
	path := writeFile(t, "notes.txt", "definitely not a font")

	_, _, err := executeCommand(t, "font", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotAFont)
}

func TestShape(t *testing.T) {
	path := writeFile(t, "goregular.ttf", string(goregular.TTF))

	out, _, err := executeCommand(t, "shape", "--font", path, "--json", "abc")
	require.NoError(t, err)

	var glyphs []shapedGlyph
	require.NoError(t, json.Unmarshal([]byte(out), &glyphs))
	require.Len(t, glyphs, 3)
	for i, g := range glyphs {
		assert.Equal(t, uint32(i), g.Cluster)
		assert.Equal(t, string("abc"[i]), g.Text)
		assert.NotZero(t, g.Glyph)
		assert.Positive(t, g.Advance)
	}

	out, _, err = executeCommand(t, "shape", "--font", path, "--script", "latn", "ab")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "glyph"))
}

func TestShape_RequiresFont(t *testing.T) {
	_, _, err := executeCommand(t, "shape", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "font" not set`)
}
