// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm implements normalizers, which map data values onto
// colormap positions in [0, 1].
package norm

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrLevels        = errors.New("levels must be at least 2 finite, strictly increasing values")
	ErrNotInvertible = errors.New("normalizer is not invertible")
	ErrUnknownNorm   = errors.New("unknown normalizer")
)

// A Normalizer maps data values to colormap positions. Positions
// below 0 and above 1 select a colormap's under and over colors.
// NaN values map to NaN.
type Normalizer interface {
	Map(v float64) float64

	// Inverse maps a position back to a data value.
	Inverse(p float64) (float64, error)
}

// MapAll maps each of vs through n.
func MapAll(n Normalizer, vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = n.Map(v)
	}
	return out
}

// InverseAll inverts each of ps through n.
func InverseAll(n Normalizer, ps []float64) ([]float64, error) {
	out := make([]float64, len(ps))
	for i, p := range ps {
		v, err := n.Inverse(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// checkLevels returns a copy of levels, or an error if levels is not
// a valid level sequence.
func checkLevels(levels []float64) ([]float64, error) {
	if len(levels) < 2 {
		return nil, fmt.Errorf("norm: %d levels: %w", len(levels), ErrLevels)
	}
	for i, l := range levels {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("norm: level %d is %g: %w", i, l, ErrLevels)
		}
		if i > 0 && l <= levels[i-1] {
			return nil, fmt.Errorf("norm: level %d (%g) <= level %d (%g): %w", i, l, i-1, levels[i-1], ErrLevels)
		}
	}
	return append([]float64(nil), levels...), nil
}

// Options parameterize New. Each normalizer reads only the fields it
// needs.
type Options struct {
	// Levels are the boundaries for the level-based normalizers.
	Levels []float64

	// VMin and VMax bound the data range. If both are zero, they
	// default to the extent of Levels, or to [0, 1].
	VMin, VMax float64

	// Clip clamps the data to [VMin, VMax].
	Clip bool

	// NColors is the number of colormap colors for "boundary".
	// It defaults to one per bin.
	NColors int

	// Gamma is the exponent for "power". It defaults to 1.
	Gamma float64

	// LinThresh, LinScale and Base configure "symlog".
	LinThresh, LinScale, Base float64

	// Exp, Extend and Midpoint configure "stretch".
	Exp      float64
	Extend   string
	Midpoint *float64
}

func (o Options) bounds() (float64, float64) {
	if o.VMin != 0 || o.VMax != 0 {
		return o.VMin, o.VMax
	}
	if len(o.Levels) > 0 {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, l := range o.Levels {
			lo, hi = math.Min(lo, l), math.Max(hi, l)
		}
		return lo, hi
	}
	return 0, 1
}

var constructors = map[string]func(o Options) (Normalizer, error){
	"none":       func(o Options) (Normalizer, error) { return None{}, nil },
	"null":       func(o Options) (Normalizer, error) { return None{}, nil },
	"boundary":   func(o Options) (Normalizer, error) { return NewBoundary(o.Levels, o.NColors) },
	"discrete":   func(o Options) (Normalizer, error) { return NewDiscrete(o.Levels) },
	"continuous": func(o Options) (Normalizer, error) { return NewContinuous(o.Levels) },
	"linear": func(o Options) (Normalizer, error) {
		lo, hi := o.bounds()
		return NewLinear(lo, hi, o.Clip)
	},
	"log": func(o Options) (Normalizer, error) {
		lo, hi := o.bounds()
		return NewLog(lo, hi, o.Clip)
	},
	"power": func(o Options) (Normalizer, error) {
		lo, hi := o.bounds()
		return NewPower(o.Gamma, lo, hi, o.Clip)
	},
	"symlog": func(o Options) (Normalizer, error) {
		lo, hi := o.bounds()
		return NewSymLog(SymLogOptions{LinThresh: o.LinThresh, LinScale: o.LinScale, Base: o.Base, VMin: lo, VMax: hi, Clip: o.Clip})
	},
	"stretch": func(o Options) (Normalizer, error) {
		lo, hi := o.bounds()
		return NewStretch(StretchOptions{Exp: o.Exp, Extend: o.Extend, Midpoint: o.Midpoint, VMin: lo, VMax: hi})
	},
}

// Names returns the names New accepts, sorted.
func Names() []string {
	var out []string
	for name := range constructors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// New returns the normalizer called name. An empty name selects
// "discrete" if o has levels and a linear normalizer on [0, 1]
// otherwise.
func New(name string, o Options) (Normalizer, error) {
	if name == "" {
		if o.Levels != nil {
			name = "discrete"
		} else {
			return NewLinear(0, 1, o.Clip)
		}
	}
	c, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("norm: %q (options are %s): %w", name, strings.Join(Names(), ", "), ErrUnknownNorm)
	}
	return c(o)
}
