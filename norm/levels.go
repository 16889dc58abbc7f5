// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"fmt"
	"math"
	"sort"
)

// bracket returns the number of levels <= v.
func bracket(levels []float64, v float64) int {
	return sort.Search(len(levels), func(i int) bool { return levels[i] > v })
}

// slot returns the position of level index i among n evenly spaced
// positions on [0, 1].
func slot(i, n int) float64 {
	return float64(i) / float64(n-1)
}

// Continuous places level i at position i/(len(levels)-1) and
// interpolates linearly between levels, so unevenly spaced levels get
// evenly spaced colors.
type Continuous struct {
	levels []float64
}

// NewContinuous returns a Continuous normalizer over levels.
func NewContinuous(levels []float64) (*Continuous, error) {
	levels, err := checkLevels(levels)
	if err != nil {
		return nil, err
	}
	return &Continuous{levels}, nil
}

// Levels returns a copy of the levels.
func (n *Continuous) Levels() []float64 {
	return append([]float64(nil), n.levels...)
}

// Map returns 0 below the first level and 1 at or above the last.
func (n *Continuous) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	L := len(n.levels)
	k := bracket(n.levels, v)
	switch k {
	case 0:
		return 0
	case L:
		return 1
	}
	lo, hi := n.levels[k-1], n.levels[k]
	return slot(k-1, L) + (v-lo)/(hi-lo)*(slot(k, L)-slot(k-1, L))
}

// Inverse returns the first level for p < 0 and the last for p >= 1.
func (n *Continuous) Inverse(p float64) (float64, error) {
	if math.IsNaN(p) {
		return p, nil
	}
	L := len(n.levels)
	if p < 0 {
		return n.levels[0], nil
	}
	if p >= 1 {
		return n.levels[L-1], nil
	}
	k := int(p * float64(L-1))
	// Guard against rounding putting p just outside slot k.
	for k > 0 && slot(k, L) > p {
		k--
	}
	for k < L-2 && slot(k+1, L) <= p {
		k++
	}
	lo, hi := slot(k, L), slot(k+1, L)
	return n.levels[k] + (p-lo)/(hi-lo)*(n.levels[k+1]-n.levels[k]), nil
}

// Discrete maps each value to the middle of its interval's span, so
// every value between two levels gets the same color.
type Discrete struct {
	levels []float64
}

// NewDiscrete returns a Discrete normalizer over levels.
func NewDiscrete(levels []float64) (*Discrete, error) {
	levels, err := checkLevels(levels)
	if err != nil {
		return nil, err
	}
	return &Discrete{levels}, nil
}

func (n *Discrete) Levels() []float64 {
	return append([]float64(nil), n.levels...)
}

// Map returns 0 below the first level, 1 at or above the last, and
// otherwise the midpoint of the bracketing interval.
func (n *Discrete) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	L := len(n.levels)
	k := bracket(n.levels, v)
	switch k {
	case 0:
		return 0
	case L:
		return 1
	}
	return (slot(k-1, L) + slot(k, L)) / 2
}

func (n *Discrete) Inverse(p float64) (float64, error) {
	return 0, fmt.Errorf("norm: discrete: %w", ErrNotInvertible)
}

// Boundary maps each bin between adjacent levels to one of ncolors
// colormap entries, spreading the bins across all the colors. Values
// below the first level map below 0 and values at or above the last
// map above 1.
type Boundary struct {
	levels  []float64
	ncolors int
}

// NewBoundary returns a Boundary normalizer. If ncolors <= 0, it uses
// one color per bin. ncolors must be at least the number of bins.
func NewBoundary(levels []float64, ncolors int) (*Boundary, error) {
	levels, err := checkLevels(levels)
	if err != nil {
		return nil, err
	}
	nbins := len(levels) - 1
	if ncolors <= 0 {
		ncolors = nbins
	}
	if ncolors < nbins {
		return nil, fmt.Errorf("norm: %d colors for %d bins: %w", ncolors, nbins, ErrLevels)
	}
	return &Boundary{levels, ncolors}, nil
}

// Index returns the colormap entry for v: -1 below the first level
// and ncolors at or above the last.
func (n *Boundary) Index(v float64) int {
	L := len(n.levels)
	bin := bracket(n.levels, v) - 1
	switch {
	case bin < 0:
		return -1
	case bin >= L-1:
		return n.ncolors
	}
	nbins := L - 1
	if nbins == 1 {
		return (n.ncolors - 1) / 2
	}
	return int(float64(bin) * float64(n.ncolors-1) / float64(nbins-1))
}

// Map returns the center of v's colormap entry.
func (n *Boundary) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return (float64(n.Index(v)) + 0.5) / float64(n.ncolors)
}

func (n *Boundary) Inverse(p float64) (float64, error) {
	return 0, fmt.Errorf("norm: boundary: %w", ErrNotInvertible)
}
