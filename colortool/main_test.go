// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/aclements/go-colortools/cmap"
	"github.com/aclements/go-colortools/colors"
	"github.com/aclements/go-colortools/colorspace"
	"github.com/aclements/go-colortools/cycle"
	"github.com/aclements/go-colortools/norm"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseFloats(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"", nil, false},
		{"1", []float64{1}, false},
		{"0,0.5, 1", []float64{0, 0.5, 1}, false},
		{"-1 2e3", []float64{-1, 2000}, false},
		{"1,x", nil, true},
	} {
		got, err := parseFloats(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("parseFloats(%q) error = %v", test.in, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("parseFloats(%q) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestGroupOutput(t *testing.T) {
	for _, test := range []struct{ path, group, want string }{
		{"colors.svg", "open", "colors_open.svg"},
		{"out/colors.svg", "crayons-xkcd", "out/colors_crayons-xkcd.svg"},
		{"colors", "open", "colors_open"},
	} {
		if got := groupOutput(test.path, test.group); got != test.want {
			t.Errorf("groupOutput(%q, %q) = %q, want %q", test.path, test.group, got, test.want)
		}
	}
}

func TestConvert(t *testing.T) {
	reg := colors.NewRegistry()
	approx := cmpopts.EquateApprox(0, 1e-6)

	got, err := convert(reg, "", "rgb", []string{"red"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(colorspace.T(colorspace.RGB, 1, 0, 0), got, approx); diff != "" {
		t.Errorf("convert(red) mismatch (-want +got):\n%s", diff)
	}

	got, err = convert(reg, "hsv", "rgb", []string{"120", "100", "100"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(colorspace.T(colorspace.RGB, 0, 1, 0), got, approx); diff != "" {
		t.Errorf("convert(hsv green) mismatch (-want +got):\n%s", diff)
	}

	if _, err := convert(reg, "rgb", "cmyk", []string{"red"}); !errors.Is(err, colorspace.ErrUnknownSpace) {
		t.Errorf("convert to cmyk error = %v, want ErrUnknownSpace", err)
	}
	if _, err := convert(reg, "rgb", "hsl", []string{"1", "2"}); err == nil {
		t.Error("convert with two channels succeeded")
	}
}

func TestMakeMap(t *testing.T) {
	old := makeFlags
	defer func() { makeFlags = old }()

	makeFlags.extend = "both"
	m, err := makeMap(colors.Default(), cmap.Default(), []string{"Fire"})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "Fire" || m.N() != 17 {
		t.Errorf("make Fire = %s with %d colors", m.Name(), m.N())
	}

	makeFlags.extend = "neither"
	makeFlags.levels = "0,1,2,3"
	makeFlags.reverse = true
	m, err = makeMap(colors.Default(), cmap.Default(), []string{"Fire"})
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "Fire_r" || m.N() != 5 {
		t.Errorf("make Fire with 4 levels = %s with %d colors, want Fire_r with 5", m.Name(), m.N())
	}

	if _, err := makeMap(colors.Default(), cmap.Default(), []string{"not-a-map"}); !errors.Is(err, cmap.ErrUnknownMap) {
		t.Errorf("make not-a-map error = %v, want ErrUnknownMap", err)
	}
}

func TestNormalize(t *testing.T) {
	old := normFlags
	defer func() { normFlags = old }()

	normFlags.kind = "continuous"
	normFlags.levels = "0,1,2"
	got, err := normalize([]float64{0.5, 2}, false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{0.25, 1}, got); diff != "" {
		t.Errorf("normalize mismatch (-want +got):\n%s", diff)
	}

	normFlags.inverse = true
	got, err = normalize([]float64{0.25}, false)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got[0]-0.5) > 1e-9 {
		t.Errorf("inverse continuous(0.25) = %g, want 0.5", got[0])
	}

	normFlags.kind = "discrete"
	if _, err := normalize([]float64{0.5}, false); !errors.Is(err, norm.ErrNotInvertible) {
		t.Errorf("inverse discrete error = %v, want ErrNotInvertible", err)
	}
}

func TestLoadDataDir(t *testing.T) {
	fsys := fstest.MapFS{
		"colors/mine.txt": {Data: []byte("% test colors\nink\t#123456\n")},
	}
	creg := colors.NewRegistry()
	mreg := cmap.NewRegistry()
	if err := loadDataDir(fsys, creg, mreg, 0); err != nil {
		t.Fatal(err)
	}
	if c, ok := creg.Lookup("ink"); !ok || c.Hex() != "#123456" {
		t.Errorf("ink = %s, %v", c.Hex(), ok)
	}
	if len(mreg.Names()) != 0 {
		t.Errorf("maps loaded without a cmaps directory: %v", mreg.Names())
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o666); err != nil {
		t.Fatal(err)
	}
}

func TestApplyConfig(t *testing.T) {
	def, _ := cycle.Get("default")
	defer cycle.SetDefault("default", def)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "cmaps", "Mine.hex"), "#000000,#ffffff\n")
	writeFile(t, filepath.Join(dir, "colors", "mine.txt"), "ink\t#123456\n")

	v := newConfig()
	v.Set("data_dirs", []string{dir})
	v.Set("colormaps", map[string]interface{}{"combo": "Mine red_l", "ocean": "blue_l"})
	v.Set("cycle.default", "colorblind")

	creg := colors.NewRegistry()
	mreg := cmap.NewRegistry()
	mreg.RegisterBuiltins()
	if err := applyConfig(v, creg, mreg); err != nil {
		t.Fatal(err)
	}

	if _, ok := creg.Lookup("ink"); !ok {
		t.Error("color from data dir not loaded")
	}
	if diff := cmp.Diff([]string{"Mine"}, mreg.Custom()); diff != "" {
		t.Errorf("custom maps mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"combo", "combo_r", "ocean", "ocean_r"} {
		m, err := mreg.Get(name)
		if err != nil {
			t.Errorf("composite map: %v", err)
		} else if m.Name() != name {
			t.Errorf("map registered as %s is named %s", name, m.Name())
		}
	}
	if m, err := mreg.Get("hsl"); err == nil && m.Name() != "hsl" {
		t.Errorf("hsl replaced by %s", m.Name())
	}
	if got := cycle.DefaultName(); got != "colorblind" {
		t.Errorf("default cycle = %q, want colorblind", got)
	}
	if c, err := creg.Parse("C0"); err != nil || c.Hex() != "#0072b2" {
		t.Errorf("C0 = %s, %v, want #0072b2", c.Hex(), err)
	}
}

func TestApplyConfigErrors(t *testing.T) {
	for _, test := range []struct {
		key string
		val interface{}
	}{
		{"colormaps", map[string]interface{}{"bad": "no-such-map"}},
		{"cycle.default", "deep pastel"},
		{"data_dirs", []string{filepath.Join(t.TempDir(), "missing", "colors")}},
	} {
		v := newConfig()
		v.Set(test.key, test.val)
		err := applyConfig(v, colors.NewRegistry(), cmap.NewRegistry())
		if test.key == "data_dirs" {
			// A directory without tables is not an error.
			if err != nil {
				t.Errorf("%s: %v", test.key, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s = %v: expected error", test.key, test.val)
		}
	}
}
