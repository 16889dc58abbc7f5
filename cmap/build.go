// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aclements/go-colortools/colors"
	"github.com/aclements/go-colortools/colorspace"
	"github.com/aclements/go-moremath/vec"
	"github.com/lucasb-eyer/go-colorful"
)

// Smooth returns a map that blends in RGB between colors with an n
// entry lookup table. If n <= 0, it uses DefaultN.
func Smooth(name string, n int, cs ...colorful.Color) (*Segmented, error) {
	if n <= 0 {
		n = DefaultN
	}
	return NewSegmented(name, cs, n, BlendRGB)
}

// SmoothIn is like Smooth, but takes colors in any color space.
// Colors outside the RGB gamut are clipped.
func SmoothIn(name string, n int, ts ...colorspace.Triple) (*Segmented, error) {
	cs := make([]colorful.Color, len(ts))
	for i, t := range ts {
		c, err := colorspace.ToRGB(t)
		if err != nil {
			return nil, fmt.Errorf("cmap: %s: %w", name, err)
		}
		cs[i] = c
	}
	return Smooth(name, n, colorspace.Clip(cs, false)...)
}

// An Endpoint is one end of a channel gradient in CSpace. If Color is
// empty, Value is the channel value as a fraction of the channel's
// full scale (a full turn for hue). Otherwise the channel is taken
// from Color and Value is added to it.
type Endpoint struct {
	Color string
	Value float64
}

// Frac returns a fixed-fraction endpoint.
func Frac(v float64) Endpoint { return Endpoint{Value: v} }

var offsetRe = regexp.MustCompile(`[-+][^-+]*$`)

// ParseChannel parses an endpoint. It accepts a number, a color, or a
// color followed by a signed offset such as "red+0.1".
func ParseChannel(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Endpoint{Value: v}, nil
	}
	e := Endpoint{Color: s}
	if loc := offsetRe.FindStringIndex(s); loc != nil && loc[0] > 0 {
		v, err := strconv.ParseFloat(s[loc[0]:], 64)
		if err != nil {
			return Endpoint{}, fmt.Errorf("cmap: invalid channel identifier %q", s)
		}
		e = Endpoint{Color: s[:loc[0]], Value: v}
	}
	if e.Color == "" {
		return Endpoint{}, fmt.Errorf("cmap: invalid channel identifier %q", s)
	}
	return e, nil
}

// resolve returns the endpoint as a fraction of channel i of space.
func (e Endpoint) resolve(reg *colors.Registry, space colorspace.Space, i int) (float64, error) {
	if e.Color == "" {
		return e.Value, nil
	}
	c, err := reg.Parse(e.Color)
	if err != nil {
		return 0, err
	}
	t := colorspace.FromRGB(c, space)
	return e.Value + t.Values[i]/space.Scale()[i], nil
}

// CSpaceOptions describe a map that varies channels linearly in a
// cylindrical color space.
//
// H, S and L each hold one endpoint for a constant channel or two for
// a gradient. For HCL, S is the chroma. A nil channel takes its
// default.
type CSpaceOptions struct {
	// N is the number of steps. The map has N+1 anchor colors.
	N int

	H, S, L []Endpoint

	// Space is the color space. Non-cylindrical spaces select HSL.
	Space colorspace.Space

	// Name defaults to the name of the space.
	Name string

	Reverse bool

	// Clip clamps out-of-gamut channels instead of masking the
	// color out with a dark gray.
	Clip bool

	// Colors resolves color endpoints. Nil means colors.Default().
	Colors *colors.Registry
}

// CSpace returns a map that varies hue, saturation and lightness
// linearly. Hue wraps around the color wheel.
func CSpace(o CSpaceOptions) (*Segmented, error) {
	if o.N <= 0 {
		o.N = 256
	}
	if o.H == nil {
		o.H = []Endpoint{Frac(0.05), Frac(1)}
	}
	if o.S == nil {
		o.S = []Endpoint{Frac(1)}
	}
	if o.L == nil {
		o.L = []Endpoint{Frac(0.2), Frac(1)}
	}
	if !o.Space.Cylindrical() {
		o.Space = colorspace.HSL
	}
	if o.Name == "" {
		o.Name = o.Space.String()
	}
	if o.Colors == nil {
		o.Colors = colors.Default()
	}

	var ch [3][]float64
	for i, eps := range [3][]Endpoint{o.H, o.S, o.L} {
		if len(eps) != 1 && len(eps) != 2 {
			return nil, fmt.Errorf("cmap: channel %s wants 1 or 2 endpoints, got %d", o.Space.Channels()[i], len(eps))
		}
		var lo, hi float64
		var err error
		if lo, err = eps[0].resolve(o.Colors, o.Space, i); err != nil {
			return nil, err
		}
		hi = lo
		if len(eps) == 2 {
			if hi, err = eps[1].resolve(o.Colors, o.Space, i); err != nil {
				return nil, err
			}
		}
		ch[i] = vec.Linspace(lo, hi, o.N+1)
	}

	scale := o.Space.Scale()
	cs := make([]colorful.Color, o.N+1)
	for k := range cs {
		h := math.Mod(ch[0][k], 1)
		if h < 0 {
			h++
		}
		t := colorspace.T(o.Space, scale[0]*h, scale[1]*ch[1][k], scale[2]*ch[2][k]).Snapped()
		c, err := colorspace.ToRGB(t)
		if err != nil {
			return nil, fmt.Errorf("cmap: %s: %w", o.Name, err)
		}
		cs[k] = c
	}
	cs = colorspace.Clip(cs, !o.Clip)
	if o.Reverse {
		cs = reverse(cs)
	}
	return Smooth(o.Name, 0, cs...)
}

// ToneOptions configure Light and Dark.
type ToneOptions struct {
	// N is the number of steps. Default 512.
	N int

	Reverse bool

	// Space is the space in which lightness varies. Non-cylindrical
	// spaces select HSL.
	Space colorspace.Space

	// Name defaults to the name of the space.
	Name string

	// Tone is the light end for Light (default "#eeeeee") or the
	// dark end for Dark (default "#444444").
	Tone string

	Colors *colors.Registry
}

func (o *ToneOptions) fill(tone string) {
	if o.N <= 0 {
		o.N = DefaultN
	}
	if !o.Space.Cylindrical() {
		o.Space = colorspace.HSL
	}
	if o.Tone == "" {
		o.Tone = tone
	}
	if o.Colors == nil {
		o.Colors = colors.Default()
	}
}

func pair(a, b Endpoint, rev bool) []Endpoint {
	if rev {
		return []Endpoint{b, a}
	}
	return []Endpoint{a, b}
}

// fracs returns c in space as fractions of each channel's scale.
func fracs(c colorful.Color, space colorspace.Space) [3]float64 {
	t := colorspace.FromRGB(c, space)
	scale := space.Scale()
	return [3]float64{t.Values[0] / scale[0], t.Values[1] / scale[1], t.Values[2] / scale[2]}
}

// Light returns a sequential map from c to a near-white, keeping the
// hue and saturation of c.
func Light(c colorful.Color, o ToneOptions) (*Segmented, error) {
	o.fill("#eeeeee")
	white, err := o.Colors.Parse(o.Tone)
	if err != nil {
		return nil, err
	}
	f, w := fracs(c, o.Space), fracs(white, o.Space)
	return CSpace(CSpaceOptions{
		N:      o.N,
		H:      []Endpoint{Frac(f[0])},
		S:      pair(Frac(f[1]), Frac(f[1]), o.Reverse),
		L:      pair(Frac(f[2]), Frac(w[2]), o.Reverse),
		Space:  o.Space,
		Name:   o.Name,
		Colors: o.Colors,
	})
}

// Dark returns a sequential map from a dark gray to c.
func Dark(c colorful.Color, o ToneOptions) (*Segmented, error) {
	o.fill("#444444")
	black, err := o.Colors.Parse(o.Tone)
	if err != nil {
		return nil, err
	}
	f, b := fracs(c, o.Space), fracs(black, o.Space)
	return CSpace(CSpaceOptions{
		N:      o.N,
		H:      []Endpoint{Frac(f[0])},
		S:      pair(Frac(b[1]), Frac(f[1]), o.Reverse),
		L:      pair(Frac(b[2]), Frac(f[2]), o.Reverse),
		Space:  o.Space,
		Name:   o.Name,
		Colors: o.Colors,
	})
}

// Merge joins maps end to end. Each map contributes n/len(maps)
// evenly spaced samples to the anchors of the result; n is only a
// sample count, and the result always has a DefaultN entry lookup
// table. A single map is returned as is, renamed if name is set.
func Merge(name string, n int, maps ...Colormap) (Colormap, error) {
	switch len(maps) {
	case 0:
		return nil, fmt.Errorf("cmap: merge %s: %w", name, ErrEmpty)
	case 1:
		if name == "" || name == maps[0].Name() {
			return maps[0], nil
		}
		return Renamed(maps[0], name), nil
	}
	if name == "" {
		name = "merged"
	}
	if n <= 0 {
		n = DefaultN
	}
	per := n / len(maps)
	if per < 2 {
		per = 2
	}
	var cs []colorful.Color
	for _, m := range maps {
		for _, x := range vec.Linspace(0, 1, per) {
			cs = append(cs, Sample(m, x))
		}
	}
	return NewSegmented(name, cs, DefaultN, BlendRGB)
}
