// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmap implements colormaps, a registry of named colormaps,
// and builders for new sequential and diverging maps.
//
// A colormap maps a position in [0, 1] to a color by way of a lookup
// table of N colors. Position x selects entry floor(x*N), with x == 1
// selecting the last entry. Positions below 0 and above 1 select the
// under and over colors, and NaN selects the bad color.
package cmap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultN is the lookup table size of maps built by Smooth and
// Merge.
const DefaultN = 512

// A Colormap maps positions in [0, 1] to colors.
//
// Every Colormap is also a go-gg palette.Continuous.
type Colormap interface {
	// Name returns the name the map registers under.
	Name() string

	// N returns the size of the lookup table.
	N() int

	// At returns entry i of the lookup table.
	At(i int) colorful.Color

	// Map returns the color for position x, including the
	// extreme colors.
	Map(x float64) color.Color

	// Colors returns a copy of the lookup table.
	Colors() []colorful.Color

	// Reversed returns the map run backwards. Its name has "_r"
	// appended, or removed if already present.
	Reversed() Colormap

	// Resampled returns the map with an n entry lookup table.
	Resampled(n int) Colormap

	// Extremes returns the under, over and bad colors.
	Extremes() Extremes

	// WithExtremes returns a copy of the map with the non-nil
	// colors of e replacing its extremes.
	WithExtremes(e Extremes) Colormap
}

// Extremes are the colors for out of range and invalid positions. A
// nil color means the default: the first lookup table entry for
// Under, the last for Over, and transparent for Bad.
type Extremes struct {
	Under, Over, Bad color.Color
}

// Sample returns the lookup table entry for x, clamping x to [0, 1].
// NaN samples the first entry.
func Sample(m Colormap, x float64) colorful.Color {
	return m.At(index(x, m.N()))
}

func index(x float64, n int) int {
	if !(x > 0) {
		return 0
	}
	i := int(math.Floor(x * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

// table is the lookup table and extremes shared by Listed and
// Segmented.
type table struct {
	name string
	lut  []colorful.Color
	ext  Extremes
}

func (t *table) Name() string { return t.name }

func (t *table) N() int { return len(t.lut) }

func (t *table) At(i int) colorful.Color { return t.lut[i] }

func (t *table) Colors() []colorful.Color {
	return append([]colorful.Color(nil), t.lut...)
}

func (t *table) Extremes() Extremes {
	e := t.ext
	if e.Under == nil {
		e.Under = t.lut[0]
	}
	if e.Over == nil {
		e.Over = t.lut[len(t.lut)-1]
	}
	if e.Bad == nil {
		e.Bad = color.Transparent
	}
	return e
}

func (t *table) Map(x float64) color.Color {
	switch {
	case math.IsNaN(x):
		return t.Extremes().Bad
	case x < 0:
		return t.Extremes().Under
	case x > 1:
		return t.Extremes().Over
	}
	return t.lut[index(x, len(t.lut))]
}

func (t *table) withName(name string) table {
	nt := *t
	nt.name = name
	return nt
}

func (t *table) withExtremes(e Extremes) table {
	nt := *t
	if e.Under != nil {
		nt.ext.Under = e.Under
	}
	if e.Over != nil {
		nt.ext.Over = e.Over
	}
	if e.Bad != nil {
		nt.ext.Bad = e.Bad
	}
	return nt
}

// reversed swaps the extremes and the name suffix. The caller
// supplies the new lookup table.
func (t *table) reversed(lut []colorful.Color) table {
	name := t.name + "_r"
	if strings.HasSuffix(t.name, "_r") {
		name = strings.TrimSuffix(t.name, "_r")
	}
	return table{name, lut, Extremes{Under: t.ext.Over, Over: t.ext.Under, Bad: t.ext.Bad}}
}

func reverse(cs []colorful.Color) []colorful.Color {
	out := make([]colorful.Color, len(cs))
	for i, c := range cs {
		out[len(cs)-1-i] = c
	}
	return out
}

// Renamed returns a copy of m that registers under name.
func Renamed(m Colormap, name string) Colormap {
	switch m := m.(type) {
	case *Listed:
		return &Listed{m.withName(name)}
	case *Segmented:
		return &Segmented{m.withName(name), m.anchors, m.blend}
	}
	return &Listed{table{name: name, lut: m.Colors(), ext: m.Extremes()}}
}

// Listed is a colormap over a fixed list of colors. It never
// interpolates, so it suits qualitative data and color cycles.
type Listed struct {
	table
}

// NewListed returns a listed colormap over colors. colors must not be
// empty.
func NewListed(name string, colors []colorful.Color) (*Listed, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("cmap: %s: %w", name, ErrEmpty)
	}
	return &Listed{table{name: name, lut: append([]colorful.Color(nil), colors...)}}, nil
}

func (m *Listed) Reversed() Colormap {
	return &Listed{m.table.reversed(reverse(m.lut))}
}

// Resampled picks n colors from the list by nearest lookup.
func (m *Listed) Resampled(n int) Colormap {
	if n <= 0 {
		n = len(m.lut)
	}
	lut := make([]colorful.Color, n)
	for i := range lut {
		lut[i] = Sample(m, position(i, n))
	}
	return &Listed{table{m.name, lut, m.ext}}
}

func (m *Listed) WithExtremes(e Extremes) Colormap {
	return &Listed{m.withExtremes(e)}
}

// Blend selects how Segmented interpolates between anchor colors.
type Blend int

const (
	// BlendRGB interpolates sRGB channel values.
	BlendRGB Blend = iota
	// BlendLinear interpolates in linear-light RGB.
	BlendLinear
	// BlendLuv interpolates in CIE L*u*v*.
	BlendLuv
)

// Segmented is a colormap whose lookup table interpolates between
// anchor colors evenly spaced on [0, 1].
type Segmented struct {
	table
	anchors []colorful.Color
	blend   Blend
}

// NewSegmented returns a map with an n entry lookup table that blends
// between anchors. If n <= 0, the table has one entry per anchor.
func NewSegmented(name string, anchors []colorful.Color, n int, blend Blend) (*Segmented, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("cmap: %s: %w", name, ErrEmpty)
	}
	if n <= 0 {
		n = len(anchors)
	}
	anchors = append([]colorful.Color(nil), anchors...)
	return &Segmented{table{name: name, lut: interpolate(anchors, n, blend)}, anchors, blend}, nil
}

// Anchors returns a copy of the anchor colors.
func (m *Segmented) Anchors() []colorful.Color {
	return append([]colorful.Color(nil), m.anchors...)
}

func (m *Segmented) Reversed() Colormap {
	anchors := reverse(m.anchors)
	return &Segmented{m.table.reversed(interpolate(anchors, len(m.lut), m.blend)), anchors, m.blend}
}

// Resampled recomputes the lookup table from the anchors.
func (m *Segmented) Resampled(n int) Colormap {
	if n <= 0 {
		n = len(m.lut)
	}
	return &Segmented{table{m.name, interpolate(m.anchors, n, m.blend), m.ext}, m.anchors, m.blend}
}

func (m *Segmented) WithExtremes(e Extremes) Colormap {
	return &Segmented{m.withExtremes(e), m.anchors, m.blend}
}

// position returns the position of entry i of an n entry table, with
// the first and last entries at 0 and 1.
func position(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func interpolate(anchors []colorful.Color, n int, blend Blend) []colorful.Color {
	lut := make([]colorful.Color, n)
	if len(anchors) == 1 {
		for i := range lut {
			lut[i] = anchors[0]
		}
		return lut
	}
	segs := float64(len(anchors) - 1)
	for i := range lut {
		x := position(i, n) * segs
		k := int(x)
		if k >= len(anchors)-1 {
			k = len(anchors) - 2
		}
		lut[i] = mix(anchors[k], anchors[k+1], x-float64(k), blend)
	}
	return lut
}

func mix(a, b colorful.Color, t float64, blend Blend) colorful.Color {
	switch blend {
	case BlendLinear:
		ar, ag, ab := a.LinearRgb()
		br, bg, bb := b.LinearRgb()
		return colorful.LinearRgb(ar+t*(br-ar), ag+t*(bg-ag), ab+t*(bb-ab))
	case BlendLuv:
		return a.BlendLuv(b, t).Clamped()
	}
	return a.BlendRgb(b, t)
}
