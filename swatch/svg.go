// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"
)

// Layout of the named color table, in pixels.
const (
	rowHeight   = 16
	colWidth    = 180
	swatchWidth = 40
	margin      = 4
)

// WriteColorsSVG writes grid as an SVG table of swatches, one column
// of grid per table column. Each swatch is labeled with its name,
// less any "xkcd:" prefix. Every name in grid must be in lookup.
func WriteColorsSVG(w io.Writer, grid [][]string, lookup map[string]colorful.Color) error {
	nrows := 0
	for _, col := range grid {
		for _, name := range col {
			if _, ok := lookup[name]; !ok {
				return fmt.Errorf("swatch: no color for %q", name)
			}
		}
		if len(col) > nrows {
			nrows = len(col)
		}
	}

	canvas := svg.New(w)
	canvas.Start(len(grid)*colWidth+2*margin, nrows*rowHeight+2*margin)
	canvas.Rect(0, 0, len(grid)*colWidth+2*margin, nrows*rowHeight+2*margin, "fill:white")
	for c, col := range grid {
		x := margin + c*colWidth
		for r, name := range col {
			y := margin + r*rowHeight
			canvas.Rect(x, y+2, swatchWidth, rowHeight-4, "fill:"+lookup[name].Hex())
			label := strings.TrimPrefix(name, "xkcd:")
			canvas.Text(x+swatchWidth+margin, y+rowHeight/2, label, "font-family:sans-serif;font-size:11px;dominant-baseline:middle")
		}
	}
	canvas.End()
	return nil
}
