// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview is an interactive terminal browser of colormaps and
// color cycles.
//
// Each row shows a label followed by the map sampled across the rest
// of the terminal width. The arrow keys, j and k, PgUp, PgDn, Home,
// and End scroll. q or Esc quits.
package termview

import (
	"fmt"

	"github.com/aclements/go-colortools/cmap"
	"github.com/aclements/go-colortools/swatch"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
)

// A Row is one line of the browser. A Row with a nil Map is a
// heading.
type Row struct {
	Label string
	Map   cmap.Colormap
}

// CategoryRows returns a heading row for each category followed by a
// row per map.
func CategoryRows(reg *cmap.Registry, cats []swatch.Category) ([]Row, error) {
	var rows []Row
	for _, cat := range cats {
		rows = append(rows, Row{Label: cat.Name})
		for _, name := range cat.Maps {
			m, err := reg.Get(name)
			if err != nil {
				return nil, err
			}
			rows = append(rows, Row{Label: name, Map: m})
		}
	}
	return rows, nil
}

// CycleRows returns a row per cycle, each shown as a listed map.
func CycleRows(cycles []swatch.Cycle) []Row {
	var rows []Row
	for _, c := range cycles {
		m, err := cmap.NewListed(c.Name, c.Colors)
		if err != nil {
			continue
		}
		rows = append(rows, Row{Label: c.Label(), Map: m})
	}
	return rows
}

// Strip samples m at the centers of width equal cells.
func Strip(m cmap.Colormap, width int) []colorful.Color {
	out := make([]colorful.Color, width)
	for i := range out {
		out[i] = cmap.Sample(m, (float64(i)+0.5)/float64(width))
	}
	return out
}

// A View draws rows on a screen and scrolls through them.
type View struct {
	screen tcell.Screen
	rows   []Row
	top    int
}

// New returns a view of rows on screen. The screen must already be
// initialized.
func New(screen tcell.Screen, rows []Row) *View {
	return &View{screen: screen, rows: rows}
}

// Top returns the index of the first visible row.
func (v *View) Top() int { return v.top }

// page is the number of rows that fit above the status line.
func (v *View) page() int {
	_, h := v.screen.Size()
	if h <= 1 {
		return 1
	}
	return h - 1
}

func (v *View) scrollTo(top int) {
	if last := len(v.rows) - v.page(); top > last {
		top = last
	}
	if top < 0 {
		top = 0
	}
	v.top = top
}

func labelWidth(w int) int {
	lw := w / 4
	if lw > 24 {
		lw = 24
	}
	return lw
}

// Draw renders the visible rows and the status line.
func (v *View) Draw() {
	s := v.screen
	s.Clear()
	w, _ := s.Size()
	lw := labelWidth(w)
	page := v.page()

	for y := 0; y < page && v.top+y < len(v.rows); y++ {
		row := v.rows[v.top+y]
		if row.Map == nil {
			drawText(s, 0, y, w, row.Label, tcell.StyleDefault.Bold(true))
			continue
		}
		drawText(s, 0, y, lw-1, row.Label, tcell.StyleDefault)
		for i, c := range Strip(row.Map, w-lw) {
			r, g, b := c.Clamped().RGB255()
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			s.SetContent(lw+i, y, ' ', nil, style)
		}
	}

	last := v.top + page
	if last > len(v.rows) {
		last = len(v.rows)
	}
	status := fmt.Sprintf("rows %d-%d of %d  q: quit", v.top+1, last, len(v.rows))
	drawText(s, 0, page, w, status, tcell.StyleDefault.Reverse(true))
	s.Show()
}

func drawText(s tcell.Screen, x, y, limit int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		if i >= limit {
			break
		}
		s.SetContent(x+i, y, r, nil, style)
	}
}

// Handle applies ev to the view and reports whether the view should
// close.
func (v *View) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			v.scrollTo(v.top - 1)
		case tcell.KeyDown:
			v.scrollTo(v.top + 1)
		case tcell.KeyPgUp:
			v.scrollTo(v.top - v.page())
		case tcell.KeyPgDn:
			v.scrollTo(v.top + v.page())
		case tcell.KeyHome:
			v.scrollTo(0)
		case tcell.KeyEnd:
			v.scrollTo(len(v.rows))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'k':
				v.scrollTo(v.top - 1)
			case 'j':
				v.scrollTo(v.top + 1)
			}
		}
	case *tcell.EventResize:
		v.scrollTo(v.top)
		v.screen.Sync()
	}
	return false
}

// Run draws and handles events until the user quits or the screen is
// finalized.
func (v *View) Run() {
	for {
		v.Draw()
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if v.Handle(ev) {
			return
		}
	}
}

// Browse opens the terminal and runs a view of rows until the user
// quits.
func Browse(rows []Row) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termview: %w", err)
	}
	defer screen.Fini()
	log.WithField("rows", len(rows)).Debug("browsing colormaps")
	New(screen, rows).Run()
	return nil
}
