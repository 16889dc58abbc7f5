// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"

	"github.com/aclements/go-colortools/cycle"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/lucasb-eyer/go-colorful"
)

// A Cycle is a named color cycle to display.
type Cycle struct {
	Name   string
	Colors []colorful.Color
}

// Label returns the facet title of c.
func (c Cycle) Label() string {
	return fmt.Sprintf("%s: %d colors", c.Name, len(c.Colors))
}

// BuiltinCycles returns every built-in cycle in name order.
func BuiltinCycles() []Cycle {
	var out []Cycle
	for _, name := range cycle.Names() {
		cs, _ := cycle.Get(name)
		out = append(out, Cycle{name, cs})
	}
	return out
}

// cycleSeed fixes the random series so renderings are reproducible.
const cycleSeed = 123412

// points is the number of points in each series.
const points = 10

// cycleTable builds one row per point of one random series per cycle
// color.
func cycleTable(cycles []Cycle) *table.Table {
	rng := rand.New(rand.NewSource(cycleSeed))
	var (
		labels []string
		series []int
		xs     []int
		ys     []float64
		cs     []color.Color
	)
	for _, c := range cycles {
		label := c.Label()
		for j, col := range c.Colors {
			for x := 0; x < points; x++ {
				labels = append(labels, label)
				series = append(series, j)
				xs = append(xs, x)
				ys = append(ys, rng.Float64())
				cs = append(cs, col)
			}
		}
	}
	return new(table.Builder).
		Add("cycle", labels).
		Add("series", series).
		Add("x", xs).
		Add("y", ys).
		Add("color", cs).
		Done()
}

// WriteCyclesSVG plots a random line per color of each cycle, one
// facet per cycle, and writes the plot as SVG.
func WriteCyclesSVG(w io.Writer, cycles []Cycle) error {
	if len(cycles) == 0 {
		return fmt.Errorf("swatch: no cycles to plot")
	}
	plot := gg.NewPlot(cycleTable(cycles))

	// Colors are already concrete.
	plot.SetScale("stroke", gg.NewIdentityScale())

	plot.Add(gg.FacetY{Col: "cycle"})
	plot.GroupBy("series")
	plot.Add(gg.LayerLines{X: "x", Y: "y", Color: "color"})
	plot.Add(gg.Title("color cycles"))

	return plot.WriteSVG(w, 500, 150*len(cycles))
}
