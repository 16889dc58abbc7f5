// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-colortools/colors"
	"github.com/aclements/go-colortools/colorspace"
	"github.com/aclements/go-colortools/cycle"
	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
)

func TestParseChannel(t *testing.T) {
	for _, test := range []struct {
		in   string
		want Endpoint
	}{
		{"0.3", Endpoint{Value: 0.3}},
		{"-0.25", Endpoint{Value: -0.25}},
		{"red", Endpoint{Color: "red"}},
		{"red+0.1", Endpoint{Color: "red", Value: 0.1}},
		{"#336699-0.2", Endpoint{Color: "#336699", Value: -0.2}},
		{"xkcd:light blue+1", Endpoint{Color: "xkcd:light blue", Value: 1}},
	} {
		got, err := ParseChannel(test.in)
		if err != nil {
			t.Errorf("ParseChannel(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseChannel(%q) = %+v, want %+v", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"", "red+x", "blue-"} {
		if _, err := ParseChannel(bad); err == nil {
			t.Errorf("ParseChannel(%q) succeeded", bad)
		}
	}
}

func lightness(c colorful.Color) float64 {
	return colorspace.FromRGB(c, colorspace.HSL).Values[2]
}

func TestCSpace(t *testing.T) {
	m, err := CSpace(CSpaceOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "hsl" || len(m.Anchors()) != 257 || m.N() != DefaultN {
		t.Errorf("default CSpace: name %s, %d anchors, N %d", m.Name(), len(m.Anchors()), m.N())
	}
	if l0, l1 := lightness(m.At(0)), lightness(m.At(m.N()-1)); math.Abs(l0-20) > 0.5 || math.Abs(l1-100) > 0.5 {
		t.Errorf("default CSpace lightness runs %g to %g, want 20 to 100", l0, l1)
	}

	m, err = CSpace(CSpaceOptions{
		N: 4,
		H: []Endpoint{Frac(0.5)},
		L: []Endpoint{Frac(0), Frac(1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	as := m.Anchors()
	if as[0].Hex() != "#000000" || as[4].Hex() != "#ffffff" {
		t.Errorf("anchors run %s to %s, want black to white", as[0].Hex(), as[4].Hex())
	}
	for i := 1; i < len(as); i++ {
		if lightness(as[i]) <= lightness(as[i-1]) {
			t.Errorf("lightness not increasing at anchor %d", i)
		}
	}

	r, err := CSpace(CSpaceOptions{N: 4, H: []Endpoint{Frac(0.5)}, L: []Endpoint{Frac(0), Frac(1)}, Reverse: true, Name: "rev"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Name() != "rev" || r.Anchors()[0].Hex() != "#ffffff" {
		t.Errorf("reversed: name %s, first anchor %s", r.Name(), r.Anchors()[0].Hex())
	}

	// Hue wraps, so 0.9 to 1.1 passes through red rather than
	// around the wheel.
	w, err := CSpace(CSpaceOptions{N: 2, H: []Endpoint{Frac(0.9), Frac(1.1)}, L: []Endpoint{Frac(0.5)}})
	if err != nil {
		t.Fatal(err)
	}
	if h := colorspace.FromRGB(w.Anchors()[1], colorspace.HSL).Values[0]; math.Abs(h) > 0.5 && math.Abs(h-360) > 0.5 {
		t.Errorf("middle hue = %g, want 0", h)
	}

	// Hue taken from a color.
	red, _ := colors.Parse("red")
	h, err := CSpace(CSpaceOptions{N: 2, H: []Endpoint{{Color: "red"}}, S: []Endpoint{{Color: "red"}}, L: []Endpoint{{Color: "red"}}})
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Anchors()[1].Hex(); got != red.Hex() {
		t.Errorf("anchor from red = %s, want %s", got, red.Hex())
	}

	// HCL at full chroma leaves the gamut and is masked.
	hcl, err := CSpace(CSpaceOptions{Space: colorspace.HCL, N: 2, S: []Endpoint{Frac(1.5)}, L: []Endpoint{Frac(0.9)}})
	if err != nil {
		t.Fatal(err)
	}
	gray := colorful.Color{R: colorspace.MaskGray, G: colorspace.MaskGray, B: colorspace.MaskGray}
	if got := hcl.Anchors()[0]; got != gray {
		t.Errorf("masked anchor = %v, want %v", got, gray)
	}

	if _, err := CSpace(CSpaceOptions{S: []Endpoint{Frac(2)}}); !errors.Is(err, colorspace.ErrRange) {
		t.Errorf("saturation 200%% error = %v, want ErrRange", err)
	}
	if _, err := CSpace(CSpaceOptions{H: []Endpoint{{Color: "nosuchcolor"}}}); !errors.Is(err, colors.ErrUnknownColor) {
		t.Errorf("unknown color error = %v", err)
	}
	if _, err := CSpace(CSpaceOptions{H: []Endpoint{Frac(0), Frac(0.5), Frac(1)}}); err == nil {
		t.Errorf("three hue endpoints succeeded")
	}
}

func TestLightDark(t *testing.T) {
	red, _ := colors.Parse("#cc3333")
	white, _ := colors.Parse("#eeeeee")
	dark, _ := colors.Parse("#444444")

	m, err := Light(red, ToneOptions{N: 8})
	if err != nil {
		t.Fatal(err)
	}
	as := m.Anchors()
	if got := as[0].Hex(); got != "#cc3333" {
		t.Errorf("Light first anchor = %s, want #cc3333", got)
	}
	if got, want := lightness(as[len(as)-1]), lightness(white); math.Abs(got-want) > 0.5 {
		t.Errorf("Light last lightness = %g, want %g", got, want)
	}
	sat := colorspace.FromRGB(red, colorspace.HSL).Values[1]
	if got := colorspace.FromRGB(as[len(as)/2], colorspace.HSL).Values[1]; math.Abs(got-sat) > 1 {
		t.Errorf("Light middle saturation = %g, want %g", got, sat)
	}

	r, _ := Light(red, ToneOptions{N: 8, Reverse: true})
	if got := r.Anchors()[len(as)-1].Hex(); got != "#cc3333" {
		t.Errorf("reversed Light last anchor = %s", got)
	}

	d, err := Dark(red, ToneOptions{N: 8})
	if err != nil {
		t.Fatal(err)
	}
	das := d.Anchors()
	if got := das[len(das)-1].Hex(); got != "#cc3333" {
		t.Errorf("Dark last anchor = %s, want #cc3333", got)
	}
	if got, want := lightness(das[0]), lightness(dark); math.Abs(got-want) > 0.5 {
		t.Errorf("Dark first lightness = %g, want %g", got, want)
	}

	if _, err := Light(red, ToneOptions{Tone: "nosuchcolor"}); err == nil {
		t.Errorf("Light with unknown tone succeeded")
	}
}

func TestMerge(t *testing.T) {
	red, _ := NewListed("red", []colorful.Color{{R: 1}})
	blue, _ := NewListed("blue", []colorful.Color{{B: 1}})
	if m, err := Merge("", 0, red); err != nil || m != Colormap(red) {
		t.Errorf("Merge of one map = %v, %v", m, err)
	}
	if m, err := Merge("solo", 0, red); err != nil || m.Name() != "solo" || mapHex(m, 0) != "#ff0000" {
		t.Errorf("Merge(solo, red) = %v, %v", m, err)
	}
	if red.Name() != "red" {
		t.Errorf("Merge renamed its input to %s", red.Name())
	}
	if _, err := Merge("", 0); !errors.Is(err, ErrEmpty) {
		t.Errorf("Merge() error = %v", err)
	}
	m, err := Merge("", 4, red, blue)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "merged" || m.N() != DefaultN {
		t.Errorf("merged name %s N %d", m.Name(), m.N())
	}
	if mapHex(m, 0) != "#ff0000" || mapHex(m, 1) != "#0000ff" || mapHex(m, 0.2) != "#ff0000" {
		t.Errorf("merged colors %s %s %s", mapHex(m, 0), mapHex(m, 0.2), mapHex(m, 1))
	}
}

func TestMake(t *testing.T) {
	reg := colors.NewRegistry()
	opts := MakeOptions{Colors: reg}

	if _, err := Make(opts); !errors.Is(err, ErrNoSpecs) {
		t.Errorf("Make() error = %v", err)
	}

	viridis, _ := Get("viridis")
	m, err := Make(opts, Named("Viridis"))
	if err != nil || m != viridis {
		t.Errorf("Make(Viridis) = %v, %v", m, err)
	}

	named := opts
	named.Name = "ocean"
	m, err = Make(named, Named("blue_l"))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "ocean" || m.Reversed().Name() != "ocean_r" {
		t.Errorf("Make(name=ocean, blue_l) named %s and %s", m.Name(), m.Reversed().Name())
	}
	plain, err := Make(opts, Named("blue_l"))
	if err != nil {
		t.Fatal(err)
	}
	if plain.Name() == "ocean" || mapHex(m, 0) != mapHex(plain, 0) || mapHex(m, 1) != mapHex(plain, 1) {
		t.Errorf("Make(name=ocean, blue_l) differs from unnamed blue_l %s", plain.Name())
	}
	if m, err := Make(named, Named("Viridis")); err != nil || m.Name() != "ocean" || viridis.Name() != "viridis" {
		t.Errorf("Make(name=ocean, Viridis) = %v, %v", m, err)
	}

	m, err = Make(opts, Named("red"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mapHex(m, 0); got != "#ff0000" {
		t.Errorf("Make(red) starts at %s", got)
	}
	m, err = Make(opts, Named("red_r"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mapHex(m, 1); got != "#ff0000" {
		t.Errorf("Make(red_r) ends at %s", got)
	}
	m, err = Make(opts, Named("red_w"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mapHex(m, 1); got != "#ffffff" {
		t.Errorf("Make(red_w) ends at %s", got)
	}
	m, err = Make(opts, Named("red_b"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mapHex(m, 0); got != "#000000" {
		t.Errorf("Make(red_b) starts at %s", got)
	}
	dopts := opts
	dopts.Dark = true
	m, err = Make(dopts, Named("C0"))
	if err != nil {
		t.Fatal(err)
	}
	if got := mapHex(m, 1); got != "#1f77b4" {
		t.Errorf("dark Make(C0) ends at %s", got)
	}

	if _, err := Make(opts, Named("nosuchthing")); !errors.Is(err, ErrUnknownMap) {
		t.Errorf("Make(nosuchthing) error = %v", err)
	}

	m, err = Make(opts, FromColors(colorful.Color{R: 1}, colorful.Color{G: 1}))
	if err != nil || KindOf(m) != KindListed || m.N() != 2 {
		t.Errorf("Make(colors) = %v, %v", m, err)
	}

	m, err = Make(opts, Spec{CSpace: &CSpaceOptions{N: 4}})
	if err != nil || m.Name() != "hsl" {
		t.Errorf("Make(cspace) = %v, %v", m, err)
	}

	m, err = Make(opts, Named("Blues"), Named("Reds_r"))
	if err != nil || m.Name() != "merged" {
		t.Errorf("Make(Blues, Reds_r) = %v, %v", m, err)
	}
}

func TestMakeExtend(t *testing.T) {
	opts := MakeOptions{Colors: colors.NewRegistry(), Extend: "neither"}
	if _, err := Make(opts, Named("Blues")); err == nil {
		t.Errorf("extend neither without levels succeeded")
	}
	opts.Levels = []float64{0, 1, 2, 3, 4}
	for extend, want := range map[string]int{"neither": 6, "min": 5, "max": 5, "both": 256} {
		opts.Extend = extend
		m, err := Make(opts, Named("Blues"))
		if err != nil {
			t.Errorf("extend %s: %v", extend, err)
			continue
		}
		if m.N() != want {
			t.Errorf("extend %s: N = %d, want %d", extend, m.N(), want)
		}
	}
	// Listed maps are never resampled.
	opts.Extend = "neither"
	if m, err := Make(opts, Named("Set1")); err != nil || m.N() != 9 {
		t.Errorf("extend neither Set1 = %v, %v", m, err)
	}
	opts.Extend = "sideways"
	if _, err := Make(opts, Named("Blues")); err == nil {
		t.Errorf("extend sideways succeeded")
	}
}

func TestCycle(t *testing.T) {
	bw, _ := Smooth("bw", 0, colorful.Color{}, colorful.Color{R: 1, G: 1, B: 1})
	if diff := cmp.Diff([]string{"#000000", "#808080", "#ffffff"}, hexes(Cycle(bw, 3))); diff != "" {
		t.Errorf("Cycle(bw, 3) mismatch (-want +got):\n%s", diff)
	}
	if got := len(Cycle(bw, 0)); got != 10 {
		t.Errorf("len(Cycle(bw, 0)) = %d, want 10", got)
	}
	set1, _ := Get("Set1")
	if got := len(Cycle(set1, 3)); got != set1.N() {
		t.Errorf("Cycle of listed map returned %d colors, want %d", got, set1.N())
	}
	got := hexes(CycleAt(bw, []float64{10, 15, 20, 25}, 10, 20))
	if diff := cmp.Diff([]string{"#000000", "#808080", "#ffffff", "#ffffff"}, got); diff != "" {
		t.Errorf("CycleAt mismatch (-want +got):\n%s", diff)
	}
}

func TestSetCycle(t *testing.T) {
	defer cycle.SetDefault("default", cycle.Default().Colors())

	reg := colors.NewRegistry()
	cs, err := SetCycle(reg, Named("colorblind"), 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 6 || cycle.DefaultName() != "colorblind" || cycle.FaceColor().Hex() != "#0072b2" {
		t.Errorf("SetCycle: %d colors, default %s, face %s", len(cs), cycle.DefaultName(), cycle.FaceColor().Hex())
	}
	for code, want := range map[string]string{"C0": "#0072b2", "b": "#0072b2", "C7": "#d55e00"} {
		if c, err := reg.Parse(code); err != nil || c.Hex() != want {
			t.Errorf("Parse(%s) = %s, %v, want %s", code, c.Hex(), err, want)
		}
	}

	cs, err = SetCycle(reg, Named("Blues"), 4, false)
	if err != nil || len(cs) != 4 {
		t.Errorf("SetCycle(Blues, 4) = %d colors, %v", len(cs), err)
	}
	if _, err := SetCycle(reg, Named("Blues"), 4, true); err == nil {
		t.Errorf("SetCycle(Blues) with rename succeeded")
	}
}

func TestParseSpecs(t *testing.T) {
	specs, err := ParseSpecs(colors.NewRegistry(), `viridis "red, #0000ff" 'cornflowerblue_l'`)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, s := range specs {
		got = append(got, s.String())
	}
	if diff := cmp.Diff([]string{"viridis", "#ff0000,#0000ff", "cornflowerblue_l"}, got); diff != "" {
		t.Errorf("ParseSpecs mismatch (-want +got):\n%s", diff)
	}
	if _, err := ParseSpecs(nil, `"unterminated`); err == nil {
		t.Errorf("ParseSpecs(unterminated) succeeded")
	}
	if _, err := ParseSpecs(nil, `red,nosuchcolor`); err == nil {
		t.Errorf("ParseSpecs(bad color list) succeeded")
	}
}
