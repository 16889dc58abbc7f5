// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

// None passes positions through unchanged.
type None struct{}

func (None) Map(v float64) float64 { return v }

func (None) Inverse(p float64) (float64, error) { return p, nil }

func checkRange(kind string, vmin, vmax float64) error {
	if math.IsNaN(vmin) || math.IsNaN(vmax) || math.IsInf(vmin, 0) || math.IsInf(vmax, 0) {
		return fmt.Errorf("norm: %s range [%g, %g] is not finite", kind, vmin, vmax)
	}
	if vmin >= vmax {
		return fmt.Errorf("norm: %s range [%g, %g] is empty", kind, vmin, vmax)
	}
	return nil
}

// Linear maps [VMin, VMax] linearly onto [0, 1].
type Linear struct {
	s scale.Linear
}

// NewLinear returns a linear normalizer. If clip is set, values
// outside [vmin, vmax] are clamped.
func NewLinear(vmin, vmax float64, clip bool) (*Linear, error) {
	if err := checkRange("linear", vmin, vmax); err != nil {
		return nil, err
	}
	return &Linear{scale.Linear{Min: vmin, Max: vmax, Clamp: clip}}, nil
}

func (n *Linear) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return n.s.Map(v)
}

func (n *Linear) Inverse(p float64) (float64, error) {
	return n.s.Unmap(p), nil
}

// Log maps [VMin, VMax] onto [0, 1] logarithmically. Values on the
// wrong side of zero map to NaN.
type Log struct {
	s scale.Log
}

// NewLog returns a logarithmic normalizer. The range must not
// include zero.
func NewLog(vmin, vmax float64, clip bool) (*Log, error) {
	if err := checkRange("log", vmin, vmax); err != nil {
		return nil, err
	}
	s, err := scale.NewLog(vmin, vmax, 10)
	if err != nil {
		return nil, fmt.Errorf("norm: log range [%g, %g]: %v", vmin, vmax, err)
	}
	s.SetClamp(clip)
	return &Log{s}, nil
}

func (n *Log) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if n.s.Clamp {
		v = math.Max(n.s.Min, math.Min(n.s.Max, v))
	}
	return n.s.Map(v)
}

func (n *Log) Inverse(p float64) (float64, error) {
	return n.s.Unmap(p), nil
}

// Power maps [VMin, VMax] onto [0, 1] and raises the result to Gamma.
// Values below VMin map to 0.
type Power struct {
	Gamma      float64
	VMin, VMax float64
	Clip       bool
}

// NewPower returns a power-law normalizer. A zero gamma means 1.
func NewPower(gamma, vmin, vmax float64, clip bool) (*Power, error) {
	if gamma == 0 {
		gamma = 1
	}
	if gamma < 0 || math.IsNaN(gamma) {
		return nil, fmt.Errorf("norm: power gamma %g must be positive", gamma)
	}
	if err := checkRange("power", vmin, vmax); err != nil {
		return nil, err
	}
	return &Power{gamma, vmin, vmax, clip}, nil
}

func (n *Power) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	x := (v - n.VMin) / (n.VMax - n.VMin)
	if n.Clip {
		x = math.Min(x, 1)
	}
	if x < 0 {
		return 0
	}
	return math.Pow(x, n.Gamma)
}

func (n *Power) Inverse(p float64) (float64, error) {
	if p < 0 {
		p = 0
	}
	return n.VMin + math.Pow(p, 1/n.Gamma)*(n.VMax-n.VMin), nil
}

// SymLogOptions configure NewSymLog.
type SymLogOptions struct {
	// LinThresh bounds the linear region (-LinThresh, LinThresh)
	// around zero. It is required.
	LinThresh float64

	// LinScale is the width of the linear region in decades of
	// the logarithmic regions. It defaults to 1.
	LinScale float64

	// Base is the logarithm base. It defaults to 10.
	Base float64

	VMin, VMax float64
	Clip       bool
}

// SymLog is logarithmic in both directions away from zero and linear
// near zero.
type SymLog struct {
	o           SymLogOptions
	linscaleAdj float64
	logBase     float64
	tmin, tmax  float64
}

// NewSymLog returns a symmetric logarithmic normalizer.
func NewSymLog(o SymLogOptions) (*SymLog, error) {
	if !(o.LinThresh > 0) {
		return nil, fmt.Errorf("norm: symlog linthresh %g must be positive", o.LinThresh)
	}
	if o.LinScale == 0 {
		o.LinScale = 1
	}
	if o.Base == 0 {
		o.Base = 10
	}
	if o.LinScale < 0 || !(o.Base > 1) {
		return nil, fmt.Errorf("norm: symlog linscale %g, base %g out of range", o.LinScale, o.Base)
	}
	if err := checkRange("symlog", o.VMin, o.VMax); err != nil {
		return nil, err
	}
	n := &SymLog{o: o, linscaleAdj: o.LinScale / (1 - 1/o.Base), logBase: math.Log(o.Base)}
	n.tmin, n.tmax = n.transform(o.VMin), n.transform(o.VMax)
	return n, nil
}

func (n *SymLog) transform(v float64) float64 {
	t := n.o.LinThresh
	if math.Abs(v) <= t {
		return v * n.linscaleAdj
	}
	sign := math.Copysign(1, v)
	return sign * t * (n.linscaleAdj + math.Log(math.Abs(v)/t)/n.logBase)
}

func (n *SymLog) untransform(y float64) float64 {
	t := n.o.LinThresh
	if math.Abs(y) <= t*n.linscaleAdj {
		return y / n.linscaleAdj
	}
	sign := math.Copysign(1, y)
	return sign * t * math.Exp((math.Abs(y)/t-n.linscaleAdj)*n.logBase)
}

func (n *SymLog) Map(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if n.o.Clip {
		v = math.Max(n.o.VMin, math.Min(n.o.VMax, v))
	}
	return (n.transform(v) - n.tmin) / (n.tmax - n.tmin)
}

func (n *SymLog) Inverse(p float64) (float64, error) {
	return n.untransform(n.tmin + p*(n.tmax-n.tmin)), nil
}
