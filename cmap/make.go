// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/aclements/go-colortools/colors"
	"github.com/aclements/go-colortools/cycle"
	"github.com/aclements/go-moremath/vec"
	"github.com/kballard/go-shellquote"
	"github.com/lucasb-eyer/go-colorful"
)

// A Spec describes one component of a map built by Make. Exactly one
// field should be set.
type Spec struct {
	// Map is used as is.
	Map Colormap

	// Name is a registered map name, or a color with optional
	// "_" flags: r reverses, l or w build a light map (w blends to
	// true white), d or b build a dark map (b blends from true
	// black). Cycle references like "C2" are colors.
	Name string

	// Colors becomes a listed map.
	Colors []colorful.Color

	// CSpace builds a map with CSpace.
	CSpace *CSpaceOptions
}

// Named returns a Spec for a map or color name.
func Named(name string) Spec { return Spec{Name: name} }

// FromCycle returns a Spec for color i of the current cycle.
func FromCycle(i int) Spec { return Spec{Name: fmt.Sprintf("C%d", i)} }

// FromColors returns a Spec for a listed map over cs.
func FromColors(cs ...colorful.Color) Spec { return Spec{Colors: cs} }

// FromMap returns a Spec for m.
func FromMap(m Colormap) Spec { return Spec{Map: m} }

func (s Spec) String() string {
	switch {
	case s.Map != nil:
		return s.Map.Name()
	case s.Name != "":
		return s.Name
	case s.Colors != nil:
		var hex []string
		for _, c := range s.Colors {
			hex = append(hex, c.Hex())
		}
		return strings.Join(hex, ",")
	case s.CSpace != nil:
		return "cspace"
	}
	return "<empty>"
}

// extendOffset is subtracted from the number of levels to size
// segmented maps for each extend option.
var extendOffset = map[string]int{"neither": -1, "min": 0, "max": 0, "both": 1}

// MakeOptions configure Make.
type MakeOptions struct {
	// Levels are the contour levels the map will be used with.
	// They are required unless Extend is "both".
	Levels []float64

	// Extend is one of "both" (the default), "neither", "min" or
	// "max". Unless it is "both", segmented components are
	// resampled to len(Levels)+1 colors for "neither" and
	// len(Levels) colors for "min" and "max", so the extreme
	// levels use the end colors of the map.
	Extend string

	// Dark builds dark maps from bare colors instead of light ones.
	Dark bool

	// Tone is passed to Light and Dark for colors without a w or b
	// flag.
	Tone ToneOptions

	// Name and N configure the merged map when there is more than
	// one spec.
	Name string
	N    int

	// Maps and Colors resolve names. Nil means the defaults.
	Maps   *Registry
	Colors *colors.Registry
}

var ErrNoSpecs = errors.New("cmap: no colormap specs")

var flagRe = regexp.MustCompile(`_([rlwdb]+)$`)

// Make builds a map from specs, merging them if there is more than
// one.
func Make(o MakeOptions, specs ...Spec) (Colormap, error) {
	if len(specs) == 0 {
		return nil, ErrNoSpecs
	}
	if o.Extend == "" {
		o.Extend = "both"
	}
	offset, ok := extendOffset[o.Extend]
	if !ok {
		return nil, fmt.Errorf("cmap: unknown extend option %q", o.Extend)
	}
	if o.Maps == nil {
		o.Maps = Default()
	}
	if o.Colors == nil {
		o.Colors = colors.Default()
	}

	var maps []Colormap
	for _, s := range specs {
		m, err := o.build(s)
		if err != nil {
			return nil, err
		}
		if _, ok := m.(*Segmented); ok && o.Extend != "both" {
			if o.Levels == nil {
				return nil, fmt.Errorf("cmap: levels are required when extend is %q", o.Extend)
			}
			n := len(o.Levels) - offset
			if n < 1 {
				return nil, fmt.Errorf("cmap: %d levels is too few for extend %q", len(o.Levels), o.Extend)
			}
			m = m.Resampled(n)
		}
		maps = append(maps, m)
	}
	return Merge(o.Name, o.N, maps...)
}

func (o *MakeOptions) build(s Spec) (Colormap, error) {
	switch {
	case s.Map != nil:
		return s.Map, nil
	case s.Colors != nil:
		return NewListed("listed", s.Colors)
	case s.CSpace != nil:
		cs := *s.CSpace
		if cs.Colors == nil {
			cs.Colors = o.Colors
		}
		return CSpace(cs)
	case s.Name == "":
		return nil, fmt.Errorf("cmap: empty spec: %w", ErrUnknownMap)
	}

	if m, err := o.Maps.Get(s.Name); err == nil {
		return m, nil
	}

	name, flags := s.Name, ""
	if loc := flagRe.FindStringSubmatchIndex(name); loc != nil {
		name, flags = name[:loc[0]], name[loc[2]:loc[3]]
	}
	c, err := o.Colors.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("cmap: %q is neither a colormap nor a color: %w", s.Name, ErrUnknownMap)
	}

	tone := o.Tone
	tone.Colors = o.Colors
	light := !o.Dark
	if strings.ContainsRune(flags, 'r') {
		tone.Reverse = true
	}
	if strings.ContainsAny(flags, "lw") {
		light = true
		if strings.ContainsRune(flags, 'w') {
			tone.Tone = "white"
		}
	}
	if strings.ContainsAny(flags, "db") {
		light = false
		if strings.ContainsRune(flags, 'b') {
			tone.Tone = "black"
		}
	}
	if light {
		return Light(c, tone)
	}
	return Dark(c, tone)
}

// ParseSpecs splits s into words with shell quoting rules and returns
// a Spec for each. A word containing commas is a list of colors.
func ParseSpecs(reg *colors.Registry, s string) ([]Spec, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = colors.Default()
	}
	var specs []Spec
	for _, w := range words {
		if !strings.Contains(w, ",") {
			specs = append(specs, Named(w))
			continue
		}
		var cs []colorful.Color
		for _, part := range strings.Split(w, ",") {
			c, err := reg.Parse(part)
			if err != nil {
				return nil, err
			}
			cs = append(cs, c)
		}
		specs = append(specs, FromColors(cs...))
	}
	return specs, nil
}

// Cycle draws n evenly spaced colors from m, from edge to edge. A
// listed map returns its own colors. If n <= 0, it draws 10.
func Cycle(m Colormap, n int) []colorful.Color {
	if KindOf(m) == KindListed {
		return m.Colors()
	}
	if n <= 0 {
		n = 10
	}
	return CycleAt(m, vec.Linspace(0, 1, n), 0, 1)
}

// CycleAt draws the colors of m at xs scaled from [vmin, vmax] to
// [0, 1]. Samples outside the range take the extreme colors.
func CycleAt(m Colormap, xs []float64, vmin, vmax float64) []colorful.Color {
	out := make([]colorful.Color, len(xs))
	for i, x := range xs {
		p := (x - vmin) / (vmax - vmin)
		if math.IsNaN(p) {
			p = 0
		}
		out[i] = toColorful(m.Map(p))
	}
	return out
}

// SetCycle draws a cycle from the map built from spec and installs it
// as the default cycle and as the colors C0, C1, ... of reg. If rename
// is set, the single-letter codes are rebound as well, which requires
// spec to name a seaborn cycle.
func SetCycle(reg *colors.Registry, spec Spec, samples int, rename bool) ([]colorful.Color, error) {
	if reg == nil {
		reg = colors.Default()
	}
	if rename && !cycle.IsSeaborn(spec.Name) {
		return nil, fmt.Errorf("cmap: cannot rename colors with cycle %q", spec.String())
	}
	m, err := Make(MakeOptions{Colors: reg}, spec)
	if err != nil {
		return nil, err
	}
	cs := Cycle(m, samples)
	if err := cycle.SetDefault(spec.String(), cs); err != nil {
		return nil, err
	}
	reg.SetCycle(cs)
	if rename {
		if err := reg.Rename(spec.Name); err != nil {
			return nil, err
		}
	}
	return cs, nil
}
