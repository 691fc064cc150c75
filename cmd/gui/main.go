// Package main provides the gui command line tool.
//
// Usage:
//
//	gui render <doc.yaml>               Lay out a YAML document and print its display list
//	gui font <file>                     Print the metrics of a font file
//	gui shape --font <file> <text>      Print the shaped glyphs of a text
//	gui version                         Print version information
//
// Examples:
//
//	gui render page.yaml --width 1024 --height 768
//	gui render page.yaml --images ./img -o page.json
//	gui font /usr/share/fonts/DejaVuSans.ttf --json
//	gui shape --font DejaVuSans.ttf --script latn "office"
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/go-gui/internal/debug"
)

const version = "0.1.0"

func main() {
	root := newRootCmd()
	err := root.ExecuteContext(context.Background())
	_ = debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
