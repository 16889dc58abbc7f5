// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"fmt"
	"math"
)

// MaxExp bounds the magnitude of StretchOptions.Exp.
const MaxExp = 10

// expMax is the warp exponent that Exp == MaxExp corresponds to.
const expMax = 4

// StretchOptions configure NewStretch.
type StretchOptions struct {
	// Exp in [-10, 10] sets how strongly each side of the midpoint
	// is warped. Positive values stretch the colors near the
	// midpoint; negative values compress them. 0 is linear.
	Exp float64

	// Extend is "neither" (the default), "min", "max" or "both".
	// It selects which sides of the output are clamped to [0, 1].
	Extend string

	// Midpoint defaults to VMin, which warps the whole range in
	// one direction. Use the center of the range for diverging
	// maps.
	Midpoint *float64

	VMin, VMax float64
}

// Stretch warps either side of a midpoint exponentially or
// logarithmically. Data values are clamped to [VMin, VMax].
type Stretch struct {
	exp        float64
	extend     string
	mid        float64
	vmin, vmax float64
}

// NewStretch returns a stretching normalizer.
func NewStretch(o StretchOptions) (*Stretch, error) {
	if math.Abs(o.Exp) > MaxExp || math.IsNaN(o.Exp) {
		return nil, fmt.Errorf("norm: stretch exponent %g not in [-%d, %d]", o.Exp, MaxExp, MaxExp)
	}
	switch o.Extend {
	case "":
		o.Extend = "neither"
	case "neither", "min", "max", "both":
	default:
		return nil, fmt.Errorf("norm: unknown extend option %q", o.Extend)
	}
	if err := checkRange("stretch", o.VMin, o.VMax); err != nil {
		return nil, err
	}
	mid := o.VMin
	if o.Midpoint != nil {
		mid = *o.Midpoint
	}
	if mid < o.VMin || mid > o.VMax {
		return nil, fmt.Errorf("norm: stretch midpoint %g outside [%g, %g]", mid, o.VMin, o.VMax)
	}
	return &Stretch{o.Exp, o.Extend, (mid - o.VMin) / (o.VMax - o.VMin), o.VMin, o.VMax}, nil
}

// warp maps [0, 1] onto itself, fixing both ends. exp > 0 bows the
// curve up and exp < 0 bows it down.
func warp(x, exp float64) float64 {
	invert := exp > 0
	exp = math.Abs(exp) * expMax / MaxExp
	if invert {
		x = 1 - x
	}
	y := (x - 1 + math.Pow(math.Exp(x)-x, exp)) / math.Pow(math.E-1, exp)
	if invert {
		y = 1 - y
	}
	return y
}

func (n *Stretch) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	x := (v - n.vmin) / (n.vmax - n.vmin)
	x = math.Max(0, math.Min(1, x))

	var y float64
	switch m := n.mid; {
	case x >= m:
		if w := 1 - m; w > 0 {
			y = m + w*warp((x-m)/w, n.exp)
		} else {
			y = m
		}
	default:
		y = m - m*warp((m-x)/m, n.exp)
	}

	if n.extend == "both" || n.extend == "max" {
		y = math.Min(y, 1)
	}
	if n.extend == "both" || n.extend == "min" {
		y = math.Max(y, 0)
	}
	return y
}

// Inverse finds the data value for p by bisection.
func (n *Stretch) Inverse(p float64) (float64, error) {
	if math.IsNaN(p) {
		return p, nil
	}
	if p <= n.Map(n.vmin) {
		return n.vmin, nil
	}
	if p >= n.Map(n.vmax) {
		return n.vmax, nil
	}
	lo, hi := n.vmin, n.vmax
	for i := 0; i < 100 && hi-lo > 1e-12*(n.vmax-n.vmin); i++ {
		mid := (lo + hi) / 2
		if n.Map(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2, nil
}
