// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors implements a registry of named colors and parses
// color strings against it.
package colors

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aclements/go-colortools/colorspace"
	"github.com/aclements/go-colortools/cycle"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// Named is a color with a registered name.
type Named struct {
	Name  string
	Color colorful.Color
}

// Categories seeded by NewRegistry.
const (
	Base = "base"
	CSS  = "css"
)

// codes are the single-letter color codes in the order Rename binds
// them.
const codes = "bgrmyck"

var classic = []colorful.Color{
	{R: 0, G: 0, B: 1},
	{R: 0, G: 0.5, B: 0},
	{R: 1, G: 0, B: 0},
	{R: 0.75, G: 0, B: 0.75},
	{R: 0.75, G: 0.75, B: 0},
	{R: 0, G: 0.75, B: 0.75},
	{R: 0, G: 0, B: 0},
}

// A Registry maps color names to colors and groups names into
// categories. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	names map[string]colorful.Color
	lower map[string]string
	cats  map[string][]Named
	cycle []colorful.Color
}

// NewRegistry returns a registry holding the single-letter base codes
// and the SVG 1.1 color keywords.
func NewRegistry() *Registry {
	r := &Registry{
		names: make(map[string]colorful.Color),
		lower: make(map[string]string),
		cats:  make(map[string][]Named),
	}

	base := make([]Named, 0, len(codes)+1)
	for i, code := range codes {
		base = append(base, Named{string(code), classic[i]})
	}
	base = append(base, Named{"w", colorful.Color{R: 1, G: 1, B: 1}})
	r.Add(Base, base)

	css := make([]Named, 0, len(colornames.Map))
	for name, c := range colornames.Map {
		col, _ := colorful.MakeColor(c)
		css = append(css, Named{name, col})
	}
	sort.Slice(css, func(i, j int) bool { return css[i].Name < css[j].Name })
	r.Add(CSS, css)

	r.cycle = cycle.Default().Colors()
	return r
}

// Add registers colors under category, appending to any colors
// already in that category. Later registrations of a name replace
// earlier ones.
func (r *Registry) Add(category string, colors []Named) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range colors {
		r.names[n.Name] = n.Color
		r.lower[strings.ToLower(n.Name)] = n.Name
	}
	r.cats[category] = append(r.cats[category], colors...)
}

// Lookup returns the color registered as name. If there is no exact
// match, Lookup falls back to a case-insensitive match.
func (r *Registry) Lookup(name string) (colorful.Color, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.names[name]; ok {
		return c, true
	}
	if canon, ok := r.lower[strings.ToLower(name)]; ok {
		return r.names[canon], true
	}
	return colorful.Color{}, false
}

// Categories returns the sorted category names.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.cats))
	for c := range r.cats {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Category returns the colors registered under category, in
// registration order.
func (r *Registry) Category(category string) ([]Named, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cs, ok := r.cats[category]
	if !ok {
		return nil, false
	}
	return append([]Named(nil), cs...), true
}

// SetCycle installs the colors that the references C0, C1, ... resolve
// to.
func (r *Registry) SetCycle(colors []colorful.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cycle = append([]colorful.Color(nil), colors...)
}

// Rename rebinds the codes b, g, r, m, y, c and k. cycleName must be
// one of the seaborn cycles, whose colors are followed by a dark gray
// for k, or "reset" to restore the classic colors.
func (r *Registry) Rename(cycleName string) error {
	var cs []colorful.Color
	switch {
	case cycleName == "reset":
		cs = classic
	case cycle.IsSeaborn(cycleName):
		cs, _ = cycle.Get(cycleName)
		cs = append(cs, colorful.Color{R: 0.1, G: 0.1, B: 0.1})
	default:
		return fmt.Errorf("colors: cannot rename codes with cycle %q (want reset or one of %s)", cycleName, strings.Join(cycle.Seaborn, ", "))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, code := range codes {
		if i >= len(cs) {
			break
		}
		r.names[string(code)] = cs[i]
	}
	return nil
}

// Parse resolves a color string. It accepts #rgb, #rrggbb and
// #rrggbbaa hex colors (alpha is dropped), gray levels such as "0.5",
// cycle references C0, C1, ..., and registered names.
func (r *Registry) Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return colorful.Color{}, fmt.Errorf("colors: empty color: %w", ErrUnknownColor)

	case strings.HasPrefix(s, "#"):
		h := s
		if len(h) == 9 {
			h = h[:7]
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("colors: bad hex color %q: %w", s, ErrUnknownColor)
		}
		return c, nil

	case s[0] == 'C' && len(s) > 1 && isDigits(s[1:]):
		i, err := strconv.Atoi(s[1:])
		if err == nil {
			r.mu.RLock()
			defer r.mu.RUnlock()
			if len(r.cycle) == 0 {
				return colorful.Color{}, fmt.Errorf("colors: %q: no color cycle: %w", s, ErrUnknownColor)
			}
			return r.cycle[i%len(r.cycle)], nil
		}
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || v > 1 {
			return colorful.Color{}, fmt.Errorf("colors: gray level %q not in [0, 1]: %w", s, ErrUnknownColor)
		}
		return colorful.Color{R: v, G: v, B: v}, nil
	}

	if c, ok := r.Lookup(s); ok {
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("colors: %q: %w", s, ErrUnknownColor)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FromTuple converts 3 or 4 channel values to a color. If any value is
// greater than 1, the values are taken to be on a 0-255 scale. Alpha
// is dropped.
func FromTuple(vals []float64) (colorful.Color, error) {
	if len(vals) != 3 && len(vals) != 4 {
		return colorful.Color{}, fmt.Errorf("colors: tuple has %d components, want 3 or 4", len(vals))
	}
	scale := 1.0
	for _, v := range vals[:3] {
		if v > 1 {
			scale = 255
		}
	}
	var rgb [3]float64
	for i := range rgb {
		rgb[i] = vals[i] / scale
		if !(rgb[i] >= 0 && rgb[i] <= 1) {
			return colorful.Color{}, fmt.Errorf("colors: tuple %v: %w", vals, colorspace.ErrRange)
		}
	}
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}
