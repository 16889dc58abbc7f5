// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"testing"

	"github.com/aclements/go-colortools/cmap"
	"github.com/aclements/go-colortools/swatch"
	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"
)

func testRows(t *testing.T) []Row {
	t.Helper()
	rb, err := cmap.NewListed("rb", []colorful.Color{{R: 1}, {B: 1}})
	if err != nil {
		t.Fatal(err)
	}
	rows := []Row{{Label: "Seq"}}
	for i := 0; i < 7; i++ {
		rows = append(rows, Row{Label: "rb", Map: rb})
	}
	return rows
}

func TestStrip(t *testing.T) {
	rows := testRows(t)
	var got []string
	for _, c := range Strip(rows[1].Map, 4) {
		got = append(got, c.Hex())
	}
	want := []string{"#ff0000", "#ff0000", "#0000ff", "#0000ff"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Strip mismatch (-want +got):\n%s", diff)
	}
}

func TestCycleRows(t *testing.T) {
	rows := CycleRows([]swatch.Cycle{
		{Name: "pair", Colors: []colorful.Color{{R: 1}, {G: 1}}},
		{Name: "empty"},
	})
	if len(rows) != 1 || rows[0].Label != "pair: 2 colors" || rows[0].Map.N() != 2 {
		t.Errorf("CycleRows = %+v", rows)
	}
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDraw(t *testing.T) {
	screen := newScreen(t, 40, 5)
	v := New(screen, testRows(t))
	v.Draw()

	if r, _, _, _ := screen.GetContent(0, 0); r != 'S' {
		t.Errorf("heading starts with %q, want 'S'", r)
	}
	if r, _, _, _ := screen.GetContent(1, 1); r != 'b' {
		t.Errorf("label cell = %q, want 'b'", r)
	}
	if r, _, _, _ := screen.GetContent(0, 4); r != 'r' {
		t.Errorf("status line starts with %q, want 'r'", r)
	}
}

func TestHandle(t *testing.T) {
	screen := newScreen(t, 40, 5)
	v := New(screen, testRows(t))
	key := func(k tcell.Key, r rune) *tcell.EventKey {
		return tcell.NewEventKey(k, r, tcell.ModNone)
	}
	for _, test := range []struct {
		ev   tcell.Event
		top  int
		quit bool
	}{
		{key(tcell.KeyDown, 0), 1, false},
		{key(tcell.KeyRune, 'j'), 2, false},
		{key(tcell.KeyRune, 'k'), 1, false},
		{key(tcell.KeyEnd, 0), 4, false},
		{key(tcell.KeyDown, 0), 4, false},
		{key(tcell.KeyHome, 0), 0, false},
		{key(tcell.KeyUp, 0), 0, false},
		{key(tcell.KeyPgDn, 0), 4, false},
		{key(tcell.KeyPgUp, 0), 0, false},
		{tcell.NewEventResize(40, 5), 0, false},
		{key(tcell.KeyRune, 'q'), 0, true},
		{key(tcell.KeyEscape, 0), 0, true},
	} {
		if quit := v.Handle(test.ev); quit != test.quit {
			t.Errorf("Handle(%T) quit = %v, want %v", test.ev, quit, test.quit)
		}
		if v.Top() != test.top {
			t.Errorf("after %T, top = %d, want %d", test.ev, v.Top(), test.top)
		}
	}
}
