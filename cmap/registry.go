// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
	"sync"

	"github.com/aclements/go-colortools/cycle"
	"github.com/aclements/go-colortools/data"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/palette/brewer"
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownMap = errors.New("unknown colormap")
	ErrEmpty      = errors.New("no colors")
)

// Kind distinguishes listed from segmented maps.
type Kind int

const (
	KindListed Kind = iota
	KindSegmented
)

func (k Kind) String() string {
	if k == KindListed {
		return "listed"
	}
	return "segmented"
}

// KindOf returns the kind of m. Maps of other types are reported as
// segmented.
func KindOf(m Colormap) Kind {
	if _, ok := m.(*Listed); ok {
		return KindListed
	}
	return KindSegmented
}

// A Registry holds colormaps by name. Lookups fall back to a
// case-insensitive match. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	maps   map[string]Colormap
	lower  map[string]string
	custom map[string]bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		maps:   make(map[string]Colormap),
		lower:  make(map[string]string),
		custom: make(map[string]bool),
	}
}

// Register adds m under m.Name(), replacing any map of that name.
func (r *Registry) Register(m Colormap) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.maps[m.Name()] = m
	r.lower[strings.ToLower(m.Name())] = m.Name()
}

// RegisterPair registers m and its reverse.
func (r *Registry) RegisterPair(m Colormap) {
	r.Register(m)
	r.Register(m.Reversed())
}

// Get returns the map registered as name.
func (r *Registry) Get(name string) (Colormap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.maps[name]; ok {
		return m, nil
	}
	if canon, ok := r.lower[strings.ToLower(name)]; ok {
		return r.maps[canon], nil
	}
	return nil, fmt.Errorf("cmap: %q: %w", name, ErrUnknownMap)
}

// Kind returns the kind of the map registered as name.
func (r *Registry) Kind(name string) (Kind, error) {
	m, err := r.Get(name)
	if err != nil {
		return 0, err
	}
	return KindOf(m), nil
}

// Names returns the sorted names of every registered map.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.maps))
	for name := range r.maps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Custom returns the sorted names of maps and cycles loaded from
// files, without their reversed twins.
func (r *Registry) Custom() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for name := range r.custom {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) markCustom(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[name] = true
}

// Qualitative lists the ColorBrewer palettes that are registered as
// listed maps. The rest are registered as segmented maps.
var Qualitative = []string{"Accent", "Dark2", "Paired", "Pastel1", "Pastel2", "Set1", "Set2", "Set3"}

var tab20 = []string{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c", "#98df8a",
	"#d62728", "#ff9896", "#9467bd", "#c5b0d5", "#8c564b", "#c49c94",
	"#e377c2", "#f7b6d2", "#7f7f7f", "#c7c7c7", "#bcbd22", "#dbdb8d",
	"#17becf", "#9edae5",
}

// RegisterBuiltins registers viridis, the ColorBrewer palettes, the
// tab10 and tab20 lists, and every built-in color cycle, each with its
// reverse.
func (r *Registry) RegisterBuiltins() {
	viridis := make([]colorful.Color, 256)
	for i := range viridis {
		viridis[i] = toColorful(palette.Viridis.Map(position(i, len(viridis))))
	}
	m, _ := NewListed("viridis", viridis)
	r.RegisterPair(m)

	for name, variants := range brewer.ByName {
		best := 0
		for n := range variants {
			if n > best {
				best = n
			}
		}
		var cs []colorful.Color
		for _, c := range variants[best] {
			cs = append(cs, toColorful(c))
		}
		if len(cs) == 0 {
			continue
		}
		if isQualitative(name) {
			m, _ := NewListed(name, cs)
			r.RegisterPair(m)
		} else {
			m, _ := NewSegmented(name, cs, 256, BlendRGB)
			r.RegisterPair(m)
		}
	}

	tab10, _ := cycle.Get("default")
	m, _ = NewListed("tab10", tab10)
	r.RegisterPair(m)
	var cs []colorful.Color
	for _, h := range tab20 {
		c, _ := colorful.Hex(h)
		cs = append(cs, c)
	}
	m, _ = NewListed("tab20", cs)
	r.RegisterPair(m)

	for _, name := range cycle.Names() {
		cs, _ := cycle.Get(name)
		m, _ := NewListed(name, cs)
		r.RegisterPair(m)
	}
}

func isQualitative(name string) bool {
	for _, q := range Qualitative {
		if q == name {
			return true
		}
	}
	return false
}

func toColorful(c color.Color) colorful.Color {
	out, _ := colorful.MakeColor(c)
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry. On first use it is
// populated with the built-in maps and the embedded map files.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		defaultReg.RegisterBuiltins()
		if err := defaultReg.LoadFS(data.FS, "cmaps"); err != nil {
			log.WithError(err).Warn("loading embedded colormaps")
		}
	})
	return defaultReg
}

// Get returns the map registered as name in the default registry.
func Get(name string) (Colormap, error) {
	return Default().Get(name)
}
