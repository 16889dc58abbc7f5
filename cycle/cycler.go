// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"errors"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrEmpty = errors.New("empty color cycle")

// A Cycler hands out the colors of a cycle in order, wrapping around
// at the end.
type Cycler struct {
	colors []colorful.Color
	pos    int
}

// NewCycler returns a Cycler over colors. colors must not be empty.
func NewCycler(colors []colorful.Color) (*Cycler, error) {
	if len(colors) == 0 {
		return nil, ErrEmpty
	}
	return &Cycler{colors: append([]colorful.Color(nil), colors...)}, nil
}

// Next returns the next color in the cycle.
func (c *Cycler) Next() colorful.Color {
	col := c.colors[c.pos]
	c.pos = (c.pos + 1) % len(c.colors)
	return col
}

// Reset restarts the cycle at its first color.
func (c *Cycler) Reset() { c.pos = 0 }

// Len returns the number of colors in the cycle.
func (c *Cycler) Len() int { return len(c.colors) }

// Colors returns a copy of the colors in the cycle.
func (c *Cycler) Colors() []colorful.Color {
	return append([]colorful.Color(nil), c.colors...)
}

// At returns color i of the cycle, taken modulo the cycle length.
func (c *Cycler) At(i int) colorful.Color {
	n := len(c.colors)
	return c.colors[((i%n)+n)%n]
}

var defaultState struct {
	sync.Mutex
	name   string
	colors []colorful.Color
}

// SetDefault installs colors as the process-wide default cycle under
// name.
func SetDefault(name string, colors []colorful.Color) error {
	if len(colors) == 0 {
		return ErrEmpty
	}
	defaultState.Lock()
	defer defaultState.Unlock()
	defaultState.name = name
	defaultState.colors = append([]colorful.Color(nil), colors...)
	return nil
}

func current() (string, []colorful.Color) {
	defaultState.Lock()
	defer defaultState.Unlock()
	if defaultState.colors == nil {
		return "default", decoded["default"]
	}
	return defaultState.name, defaultState.colors
}

// Default returns a fresh Cycler over the process-wide default cycle.
// Until SetDefault is called this is the "default" cycle.
func Default() *Cycler {
	_, cs := current()
	c, _ := NewCycler(cs)
	return c
}

// DefaultName returns the name the default cycle was installed under.
func DefaultName() string {
	name, _ := current()
	return name
}

// FaceColor returns the fill color for patches, which is the first
// color of the default cycle.
func FaceColor() colorful.Color {
	_, cs := current()
	return cs[0]
}
