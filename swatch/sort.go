// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch renders diagnostic views of the registered named
// colors, color cycles, and colormaps.
package swatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-colortools/colors"
	"github.com/aclements/go-colortools/cycle"
	"github.com/aclements/go-moremath/vec"
	"github.com/lucasb-eyer/go-colorful"
)

// Hues are the open-color hue families in display order.
var Hues = []string{"gray", "red", "pink", "grape", "violet", "indigo", "blue", "cyan", "teal", "green", "lime", "yellow", "orange"}

// OpenShades is the number of shades of each open-color hue.
const OpenShades = 10

// OpenGrid lays out the open-color palette as one column per hue
// family with shades 0 through 9 top to bottom. Names absent from
// named are left out.
func OpenGrid(named []colors.Named) [][]string {
	have := make(map[string]bool, len(named))
	for _, n := range named {
		have[n.Name] = true
	}
	var grid [][]string
	for _, hue := range Hues {
		var col []string
		for i := 0; i < OpenShades; i++ {
			name := fmt.Sprintf("%s%d", hue, i)
			if have[name] {
				col = append(col, name)
			}
		}
		if col != nil {
			grid = append(grid, col)
		}
	}
	return grid
}

// SortByHue groups named into a column of grays (saturation below
// minsat) followed by nbreak-1 equal hue bins. Grays are ordered by
// value then hue, colors by value then saturation. The result is
// reflowed into nbreak-1 columns of roughly equal height.
func SortByHue(named []colors.Named, nbreak int, minsat float64) [][]string {
	if nbreak < 2 {
		nbreak = 15
	}
	type hsv struct {
		name    string
		h, s, v float64
	}
	all := make([]hsv, len(named))
	for i, n := range named {
		h, s, v := n.Color.Hsv()
		all[i] = hsv{n.Name, h / 360, s, v}
	}

	bps := vec.Linspace(0, 1, nbreak)
	var flat []string
	for b := range bps {
		var bin []hsv
		var key func(hsv) float64
		if b == 0 {
			for _, c := range all {
				if c.s < minsat {
					bin = append(bin, c)
				}
			}
			key = func(c hsv) float64 { return 3*c.v + c.h }
		} else {
			lo, hi, last := bps[b-1], bps[b], b == len(bps)-1
			for _, c := range all {
				if c.s < minsat || c.h < lo {
					continue
				}
				if c.h < hi || (last && c.h <= hi) {
					bin = append(bin, c)
				}
			}
			key = func(c hsv) float64 { return 3*c.v + c.s }
		}
		sort.SliceStable(bin, func(i, j int) bool { return key(bin[i]) < key(bin[j]) })
		for _, c := range bin {
			flat = append(flat, c.name)
		}
	}

	// Reflow into a rectangle.
	ncols := nbreak - 1
	nrows := len(flat)/ncols + 1
	grid := [][]string{nil}
	for i, name := range flat {
		if (i+1)%nrows == 0 {
			grid = append(grid, nil)
		}
		grid[len(grid)-1] = append(grid[len(grid)-1], name)
	}
	return grid
}

// Group collects the colors of the named categories of reg into a
// display grid and a lookup table. The pseudo-category "cycle" holds
// the distinct colors of the default cycle as C0, C1, and so on. A
// group containing "open" uses the open-color layout; any other group
// is sorted by hue.
func Group(reg *colors.Registry, names []string, nbreak int, minsat float64) ([][]string, map[string]colorful.Color, error) {
	var named []colors.Named
	open := false
	for _, name := range names {
		if name == "cycle" {
			seen := make(map[colorful.Color]bool)
			for _, c := range cycle.Default().Colors() {
				if seen[c] {
					continue
				}
				seen[c] = true
				named = append(named, colors.Named{Name: fmt.Sprintf("C%d", len(seen)-1), Color: c})
			}
			continue
		}
		cat, ok := reg.Category(name)
		if !ok {
			return nil, nil, fmt.Errorf("swatch: no color category %q (have %s)", name, strings.Join(reg.Categories(), ", "))
		}
		if name == "open" {
			open = true
		}
		named = append(named, cat...)
	}

	lookup := make(map[string]colorful.Color, len(named))
	for _, n := range named {
		lookup[n.Name] = n.Color
	}
	if open {
		return OpenGrid(named), lookup, nil
	}
	return SortByHue(named, nbreak, minsat), lookup, nil
}
