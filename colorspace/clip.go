// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

// MaskGray is the gray level that replaces colors with an
// out-of-range channel when masking.
const MaskGray = 0.2

// roundoff is half an 8-bit channel step.
const roundoff = 0.5 / 255

// Clip returns a copy of cs with every out-of-range RGB channel
// fixed up. If mask is true, the whole color is replaced with a dark
// gray; otherwise the offending channel is clamped to [0, 1].
//
// Channels within half an 8-bit step of the range are clamped
// silently. Otherwise a warning is logged the first time each channel
// is found under or over range. A masked color is not checked past
// its first bad channel.
func Clip(cs []colorful.Color, mask bool) []colorful.Color {
	msg := "Clipping"
	if mask {
		msg = "Invalid value for"
	}
	type key struct {
		ch   int
		over bool
	}
	warned := map[key]bool{}
	warn := func(ch int, over bool) {
		k := key{ch, over}
		if warned[k] {
			return
		}
		warned[k] = true
		bound := "<0"
		if over {
			bound = ">1"
		}
		log.WithField("channel", "rgb"[ch:ch+1]).Warnf("%s channel %s (%s)", msg, "rgb"[ch:ch+1], bound)
	}

	out := make([]colorful.Color, len(cs))
	for i, c := range cs {
		v := [3]float64{c.R, c.G, c.B}
		bad := false
		for j := range v {
			if bad && mask {
				break
			}
			switch {
			case v[j] < 0 && v[j] > -roundoff, v[j] > 1 && v[j] < 1+roundoff:
				v[j] = math.Max(0, math.Min(1, v[j]))
			case v[j] < 0:
				warn(j, false)
				bad = true
				v[j] = 0
			case v[j] > 1:
				warn(j, true)
				bad = true
				v[j] = 1
			}
		}
		if bad && mask {
			v = [3]float64{MaskGray, MaskGray, MaskGray}
		}
		out[i] = colorful.Color{R: v[0], G: v[1], B: v[2]}
	}
	return out
}
