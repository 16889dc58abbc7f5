// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cycle holds the built-in color cycles and the process-wide
// default cycle used to color successive plot series.
package cycle

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// rgb255 is a color written as 0-255 channel values.
type rgb255 [3]uint8

// palettes holds the built-in cycles. Each entry is either a hex
// string or an rgb255.
var palettes = map[string][]interface{}{
	// matplotlib 2.0 default.
	"default": {"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"},

	// From the common style sheets.
	"ggplot":    {"#E24A33", "#348ABD", "#988ED5", "#777777", "#FBC15E", "#8EBA42", "#FFB5B8"},
	"bmh":       {"#348ABD", "#A60628", "#7A68A6", "#467821", "#D55E00", "#CC79A7", "#56B4E9", "#009E73", "#F0E442", "#0072B2"},
	"solarized": {"#268BD2", "#2AA198", "#859900", "#B58900", "#CB4B16", "#DC322F", "#D33682", "#6C71C4"},
	"538":       {"#008fd5", "#fc4f30", "#e5ae38", "#6d904f", "#8b8b8b", "#810f7c"},
	"seaborn":   {"#4C72B0", "#55A868", "#C44E52", "#8172B2", "#CCB974", "#64B5CD"},
	"pastel":    {"#92C6FF", "#97F0AA", "#FF9F9A", "#D0BBFF", "#FFFEA3", "#B0E0E6"},

	// seaborn palettes. deep, muted and bright are close to
	// colorblind.
	"colorblind": {"#0072B2", "#D55E00", "#009E73", "#CC79A7", "#F0E442", "#56B4E9"},
	"deep":       {"#4C72B0", "#55A868", "#C44E52", "#8172B2", "#CCB974", "#64B5CD"},
	"muted":      {"#4878CF", "#6ACC65", "#D65F5F", "#B47CC7", "#C4AD66", "#77BEDB"},
	"bright":     {"#023EFF", "#1AC938", "#E8000B", "#8B2BE2", "#FFC400", "#00D7FF"},

	// Ten-color versions.
	"colorblind10": {"#0173B2", "#DE8F05", "#029E73", "#D55E00", "#CC78BC", "#CA9161", "#FBAFE4", "#949494", "#ECE133", "#56B4E9"},
	"deep10":       {"#4C72B0", "#DD8452", "#55A868", "#C44E52", "#8172B3", "#937860", "#DA8BC3", "#8C8C8C", "#CCB974", "#64B5CD"},
	"muted10":      {"#4878D0", "#EE854A", "#6ACC64", "#D65F5F", "#956CB4", "#8C613C", "#DC7EC0", "#797979", "#D5BB67", "#82C6E2"},
	"bright10":     {"#023EFF", "#FF7C00", "#1AC938", "#E8000B", "#8B2BE2", "#9F4800", "#F14CC1", "#A3A3A3", "#FFC400", "#00D7FF"},

	"cinematic1": {rgb255{51, 92, 103}, rgb255{255, 243, 176}, rgb255{224, 159, 62}, rgb255{158, 42, 43}, rgb255{84, 11, 14}},
	"cinematic2": {rgb255{1, 116, 152}, rgb255{231, 80, 0}, rgb255{123, 65, 75}, rgb255{197, 207, 255}, rgb255{241, 255, 47}},
}

// Seaborn lists the seaborn cycles. These are the only cycles that
// can rebind the single-letter color codes.
var Seaborn = []string{"colorblind", "deep", "muted", "bright"}

// Listed names the qualitative colormaps that make good cycles.
var Listed = []string{"Pastel1", "Pastel2", "Paired", "Accent", "Dark2", "Set1", "Set2", "Set3", "tab10", "tab20"}

var decoded = func() map[string][]colorful.Color {
	m := make(map[string][]colorful.Color, len(palettes))
	for name, entries := range palettes {
		cs := make([]colorful.Color, len(entries))
		for i, e := range entries {
			switch e := e.(type) {
			case string:
				c, err := colorful.Hex(e)
				if err != nil {
					panic(fmt.Sprintf("cycle %s: %v", name, err))
				}
				cs[i] = c
			case rgb255:
				cs[i] = colorful.Color{R: float64(e[0]) / 255, G: float64(e[1]) / 255, B: float64(e[2]) / 255}
			}
		}
		m[name] = cs
	}
	return m
}()

// Names returns the names of the built-in cycles, sorted.
func Names() []string {
	out := make([]string, 0, len(decoded))
	for n := range decoded {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Get returns a copy of the built-in cycle name.
func Get(name string) ([]colorful.Color, bool) {
	cs, ok := decoded[name]
	if !ok {
		return nil, false
	}
	return append([]colorful.Color(nil), cs...), true
}

// IsSeaborn reports whether name is one of the Seaborn cycles.
func IsSeaborn(name string) bool {
	for _, s := range Seaborn {
		if s == name {
			return true
		}
	}
	return false
}
