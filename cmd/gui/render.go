package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gui "github.com/grindlemire/go-gui"
	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/dom"
	"github.com/grindlemire/go-gui/internal/resources"
	"github.com/grindlemire/go-gui/internal/tag"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// renderOutput is what the render command prints.
type renderOutput struct {
	Pipeline    tag.PipelineId             `json:"pipeline"`
	Epoch       tag.Epoch                  `json:"epoch"`
	Frames      int                        `json:"frames"`
	DisplayList gui.DisplayList            `json:"display_list"`
	Resources   []resources.ResourceUpdate `json:"resource_updates,omitempty"`
	Warnings    []string                   `json:"warnings,omitempty"`
}

type renderOptions struct {
	images  string
	output  string
	compact bool
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render <doc.yaml>",
		Short: "Lay out a YAML document and print its display list as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, opts, args[0])
		},
	}
	f := cmd.Flags()
	f.Float32("width", 0, "window width in CSS pixels (overrides the document)")
	f.Float32("height", 0, "window height in CSS pixels (overrides the document)")
	f.Float32("hidpi", 0, "device pixel ratio handed to callbacks")
	f.Float32("font-size", 0, "default font size in pixels")
	f.StringSlice("font-dir", nil, "directories searched for font files")
	f.StringVar(&opts.images, "images", "", "directory holding the images referenced by the document")
	f.StringVarP(&opts.output, "output", "o", "", "write the JSON to this file instead of stdout")
	f.BoolVar(&opts.compact, "compact", false, "print JSON without indentation")
	return cmd
}

func runRender(cmd *cobra.Command, a *app, opts renderOptions, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer src.Close()

	doc, err := decodeDocument(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	sheet, err := doc.stylesheet()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	root, err := doc.Root.build("root")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	api := resources.NewRecordingApi(0)
	winOpts := []gui.WindowOption{
		gui.WithConfig(a.cfg),
		gui.WithStylesheet(sheet),
		gui.WithRenderApi(api),
		gui.WithLayout(func(dom.LayoutInfo) *dom.Dom { return root }),
		// A single frame has nothing to collect for.
		gui.WithoutGC(),
	}
	flags := cmd.Flags()
	if doc.Window != nil && !flags.Changed("width") && !flags.Changed("height") {
		winOpts = append(winOpts, gui.WithSize(doc.Window.Width, doc.Window.Height))
	}
	if opts.images != "" {
		winOpts = append(winOpts, gui.WithImageLoader(resources.DirImageLoader(opts.images)))
	}
	w, err := gui.NewWindow(winOpts...)
	if err != nil {
		return err
	}

	frame, err := w.RenderFrame(cmd.Context())
	if err != nil {
		return err
	}
	out := renderOutput{
		Pipeline:    frame.Pipeline,
		Epoch:       frame.Epoch,
		Frames:      frame.DisplayList.FrameCount(),
		DisplayList: frame.DisplayList,
		Resources:   api.Updates(),
	}
	for _, warn := range frame.Warnings {
		out.Warnings = append(out.Warnings, fmt.Sprintf("node %d: override %q of type %s ignored", warn.Node, warn.DynamicID, warn.Overridden.Type))
	}
	for _, skipped := range frame.Skipped {
		out.Warnings = append(out.Warnings, skipped.Error())
	}

	var data []byte
	if opts.compact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	data = append(data, '\n')

	debug.L().Info("document rendered",
		zap.String("document", path),
		zap.Int("frames", out.Frames),
		zap.Int("resource_updates", len(out.Resources)))

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
