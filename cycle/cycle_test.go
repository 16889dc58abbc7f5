// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycle

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestPalettes(t *testing.T) {
	lens := map[string]int{
		"default": 10, "ggplot": 7, "538": 6, "colorblind10": 10,
		"cinematic1": 5, "cinematic2": 5,
	}
	for name, want := range lens {
		cs, ok := Get(name)
		if !ok {
			t.Errorf("Get(%q) not found", name)
			continue
		}
		if len(cs) != want {
			t.Errorf("len(Get(%q)) = %d, want %d", name, len(cs), want)
		}
	}
	if _, ok := Get("nonesuch"); ok {
		t.Errorf("Get(nonesuch) found")
	}
	for _, name := range Seaborn {
		if _, ok := Get(name); !ok {
			t.Errorf("seaborn cycle %q missing", name)
		}
		if !IsSeaborn(name) {
			t.Errorf("IsSeaborn(%q) = false", name)
		}
	}
	if IsSeaborn("default") {
		t.Errorf("IsSeaborn(default) = true")
	}

	cs, _ := Get("cinematic1")
	if got := cs[0].Hex(); got != "#335c67" {
		t.Errorf("cinematic1[0] = %s, want #335c67", got)
	}
	if got := len(Names()); got != len(palettes) {
		t.Errorf("len(Names()) = %d, want %d", got, len(palettes))
	}
}

func TestGetCopies(t *testing.T) {
	cs, _ := Get("default")
	cs[0] = colorful.Color{}
	again, _ := Get("default")
	if again[0].Hex() != "#1f77b4" {
		t.Errorf("Get returned shared storage")
	}
}

func TestCycler(t *testing.T) {
	if _, err := NewCycler(nil); err != ErrEmpty {
		t.Fatalf("NewCycler(nil) error = %v, want ErrEmpty", err)
	}
	cs, _ := Get("538")
	c, err := NewCycler(cs)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2*len(cs); i++ {
		if got, want := c.Next().Hex(), cs[i%len(cs)].Hex(); got != want {
			t.Errorf("Next #%d = %s, want %s", i, got, want)
		}
	}
	c.Next()
	c.Reset()
	if got := c.Next().Hex(); got != cs[0].Hex() {
		t.Errorf("after Reset Next = %s, want %s", got, cs[0].Hex())
	}
	if got := c.At(-1).Hex(); got != cs[len(cs)-1].Hex() {
		t.Errorf("At(-1) = %s, want %s", got, cs[len(cs)-1].Hex())
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if DefaultName() != "default" || c.Len() != 10 {
		t.Fatalf("Default() = %s, %d colors", DefaultName(), c.Len())
	}
	if got := FaceColor().Hex(); got != "#1f77b4" {
		t.Errorf("FaceColor() = %s, want #1f77b4", got)
	}
	orig := c.Colors()
	gg, _ := Get("ggplot")
	if err := SetDefault("ggplot", gg); err != nil {
		t.Fatal(err)
	}
	defer SetDefault("default", orig)
	if DefaultName() != "ggplot" || Default().Len() != 7 {
		t.Errorf("after SetDefault: %s, %d colors", DefaultName(), Default().Len())
	}
	if got := FaceColor().Hex(); got != "#e24a33" {
		t.Errorf("FaceColor() = %s, want #e24a33", got)
	}
	if err := SetDefault("x", nil); err != ErrEmpty {
		t.Errorf("SetDefault(empty) error = %v", err)
	}
}
