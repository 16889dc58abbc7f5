// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// A Triple is a color expressed as three channel values in Space.
type Triple struct {
	Space  Space
	Values [3]float64
}

// T is shorthand for constructing a Triple.
func T(s Space, a, b, c float64) Triple {
	return Triple{s, [3]float64{a, b, c}}
}

func (t Triple) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", t.Space, t.Values[0], t.Values[1], t.Values[2])
}

// Validate checks that every channel of t is finite and inside the
// range of its space.
func (t Triple) Validate() error {
	ch := t.Space.Channels()
	for i, v := range t.Values {
		lo, hi := t.Space.Range(i)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < lo || v > hi {
			return fmt.Errorf("colorspace: %s channel %s = %g not in [%g, %g]: %w", t.Space, ch[i], v, lo, hi, ErrRange)
		}
	}
	return nil
}

// ToRGB converts t to RGB. For HCL the result may fall outside the
// unit cube; use InGamut or Clip to deal with that.
func ToRGB(t Triple) (colorful.Color, error) {
	if err := t.Validate(); err != nil {
		return colorful.Color{}, err
	}
	v := t.Values
	h := wrapHue(v[0])
	switch t.Space {
	case RGB:
		return colorful.Color{R: v[0], G: v[1], B: v[2]}, nil
	case HSV:
		return colorful.Hsv(h, v[1]/100, v[2]/100), nil
	case HSL:
		return colorful.HSLuv(h, v[1]/100, v[2]/100), nil
	case HPL:
		return colorful.HPLuv(h, v[1]/100, v[2]/100), nil
	case HCL:
		return colorful.LuvLCh(v[2]/100, v[1]/100, h), nil
	}
	return colorful.Color{}, fmt.Errorf("colorspace: %s: %w", t.Space, ErrUnknownSpace)
}

// FromRGB expresses c in space s. Achromatic colors get hue 0.
func FromRGB(c colorful.Color, s Space) Triple {
	var a, b, d float64
	switch s {
	case RGB:
		return T(RGB, c.R, c.G, c.B)
	case HSV:
		a, b, d = c.Hsv()
		b, d = b*100, d*100
	case HSL:
		a, b, d = c.HSLuv()
		b, d = b*100, d*100
	case HPL:
		a, b, d = c.HPLuv()
		b, d = b*100, d*100
	case HCL:
		var l, ch float64
		l, ch, a = c.LuvLCh()
		b, d = ch*100, l*100
	}
	if math.IsNaN(a) {
		a = 0
	}
	return T(s, wrapHue(a), snap(s, 1, b), snap(s, 2, d))
}

// Snapped returns t with channel values that overshoot their range by
// rounding error pulled back onto the range.
func (t Triple) Snapped() Triple {
	for i := 1; i < 3; i++ {
		t.Values[i] = snap(t.Space, i, t.Values[i])
	}
	return t
}

// snap pulls values that overshoot a channel bound by rounding error
// back onto the bound.
func snap(s Space, i int, v float64) float64 {
	const eps = 1e-6
	lo, hi := s.Range(i)
	if v < lo && v > lo-eps {
		return lo
	}
	if v > hi && v < hi+eps {
		return hi
	}
	return v
}

// Convert re-expresses t in space to.
func Convert(t Triple, to Space) (Triple, error) {
	c, err := ToRGB(t)
	if err != nil {
		return Triple{}, err
	}
	return FromRGB(c, to), nil
}

// InGamut reports whether every channel of c lies in [0, 1].
func InGamut(c colorful.Color) bool {
	return c.IsValid()
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
