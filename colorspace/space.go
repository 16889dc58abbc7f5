// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace names the color spaces colortools understands
// and converts colors between them.
//
// Every space except RGB is a cylindrical space whose first channel
// is a hue in degrees. The remaining two channels are expressed in
// percent, so a fully saturated HSLuv color at half lightness is
// Triple{HSL, [3]float64{h, 100, 50}}. RGB channels are in [0, 1].
//
// "hsv" is plain hue, saturation, value. It is not an alias for HLS;
// the perceptual hue, saturation, lightness space is "hsl" (HSLuv).
package colorspace

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// A Space identifies a color space.
type Space int

const (
	RGB Space = iota
	// HSV is the classic hue/saturation/value space.
	HSV
	// HSL is HSLuv, the perceptually uniform counterpart of HSL.
	HSL
	// HPL is HPLuv, HSLuv truncated to pastel colors so that
	// saturation is uniform across hues.
	HPL
	// HCL is cylindrical CIE Luv (LCh). Its chroma channel is not
	// bounded by the RGB gamut, so some triples are imaginary.
	HCL
)

var (
	// ErrUnknownSpace is returned for unrecognized color space
	// names.
	ErrUnknownSpace = errors.New("unknown color space")

	// ErrRange is returned when a channel lies outside its
	// defined range.
	ErrRange = errors.New("channel out of range")
)

// names maps every accepted alias to its Space. The first alias for
// each space is its canonical name.
var names = map[string]Space{
	"rgb":   RGB,
	"hsv":   HSV,
	"hsl":   HSL,
	"hsluv": HSL,
	"hpl":   HPL,
	"hpluv": HPL,
	"hcl":   HCL,
	"lch":   HCL,
}

// ParseSpace returns the Space named by name. Names are
// case-insensitive and include the aliases hsluv, hpluv and lch.
// "hsv" names HSV proper, not HLS.
func ParseSpace(name string) (Space, error) {
	s, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("colorspace: %q (want one of %s): %w", name, strings.Join(Names(), ", "), ErrUnknownSpace)
	}
	return s, nil
}

// Names returns every accepted color space name, sorted.
func Names() []string {
	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Aliases returns the names that parse to s.
func (s Space) Aliases() []string {
	var out []string
	for n, sp := range names {
		if sp == s {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func (s Space) String() string {
	switch s {
	case RGB:
		return "rgb"
	case HSV:
		return "hsv"
	case HSL:
		return "hsl"
	case HPL:
		return "hpl"
	case HCL:
		return "hcl"
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// Cylindrical reports whether the first channel of s is a hue.
func (s Space) Cylindrical() bool {
	return s != RGB
}

// Scale returns the full-scale value of each channel of s. Channel i
// divided by Scale()[i] is the fraction used by the colormap
// builders.
func (s Space) Scale() [3]float64 {
	if s == RGB {
		return [3]float64{1, 1, 1}
	}
	return [3]float64{360, 100, 100}
}

// Range returns the inclusive range of channel i of s. Hues are
// unbounded and wrap modulo 360.
func (s Space) Range(i int) (lo, hi float64) {
	switch {
	case s == RGB:
		return 0, 1
	case i == 0:
		return math.Inf(-1), math.Inf(1)
	case s == HCL && i == 1:
		// Luv chroma peaks near 179 for saturated red.
		return 0, maxChroma
	}
	return 0, 100
}

const maxChroma = 180

// Channels returns the channel names of s.
func (s Space) Channels() [3]string {
	switch s {
	case RGB:
		return [3]string{"r", "g", "b"}
	case HSV:
		return [3]string{"h", "s", "v"}
	case HCL:
		return [3]string{"h", "c", "l"}
	}
	return [3]string{"h", "s", "l"}
}
