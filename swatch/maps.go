// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sort"
	"strings"

	"github.com/aclements/go-colortools/cmap"
	svg "github.com/ajstarks/svgo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// A Category is a titled group of colormaps.
type Category struct {
	Name string
	Maps []string
}

// Known lists the standard colormap categories in display order.
// Custom is filled in by Categories.
var Known = []Category{
	{"Custom", nil},
	{"Rainbow", []string{"inferno", "magma", "plasma", "viridis"}},
	{"Rainbow Alt", []string{"cividis", "cubehelix", "multi"}},
	{"Diverging", []string{"brbg", "piyg", "prgn", "puor", "rdbu", "rdgy", "rdylbu", "rdylgn", "spectral"}},
	{"Sequential", []string{
		"blues", "bugn", "bupu", "gnbu", "greens", "greys", "oranges", "orrd", "pubu",
		"pubugn", "purd", "purples", "rdpu", "reds", "ylgn", "ylgnbu", "ylorbr", "ylorrd",
	}},
	{"Sequential Alt", []string{
		"afmhot", "autumn", "binary", "bone", "bwr", "cool", "coolwarm", "copper", "gist_gray",
		"gist_heat", "gist_yarg", "gray", "pink", "seismic", "spring", "summer", "winter", "wistia",
	}},
	{"Diverging Alt", []string{"bwr", "coolwarm", "seismic"}},
	{"Miscellaneous", []string{
		"brg", "cmrmap", "flag", "gist_earth", "gist_ncar", "gist_rainbow", "gist_stern",
		"gnuplot", "gnuplot2", "hsv", "jet", "nipy_spectral", "ocean", "prism", "rainbow", "terrain",
	}},
}

// DefaultIgnore is the set of categories Categories leaves out by
// default.
var DefaultIgnore = []string{"Diverging Alt", "Sequential Alt", "Rainbow Alt", "Miscellaneous"}

// Categories resolves Known against reg, dropping the ignored
// categories and any map reg does not have. Custom collects every
// segmented map and every file-loaded map that no other category
// claims. Reversed twins are never listed.
func Categories(reg *cmap.Registry, ignore []string) []Category {
	skip := make(map[string]bool)
	for _, name := range ignore {
		skip[name] = true
	}

	claimed := make(map[string]bool)
	var ignored, missing []string
	var out []Category
	for _, cat := range Known {
		if skip[cat.Name] {
			for _, name := range cat.Maps {
				claimed[strings.ToLower(name)] = true
				ignored = append(ignored, name)
			}
			continue
		}
		res := Category{Name: cat.Name}
		for _, name := range cat.Maps {
			claimed[strings.ToLower(name)] = true
			m, err := reg.Get(name)
			if err != nil {
				missing = append(missing, name)
				continue
			}
			res.Maps = append(res.Maps, m.Name())
		}
		out = append(out, res)
	}

	custom := make(map[string]bool)
	for _, name := range reg.Custom() {
		custom[name] = true
	}
	for _, name := range reg.Names() {
		if strings.HasSuffix(name, "_r") || claimed[strings.ToLower(name)] {
			continue
		}
		if kind, _ := reg.Kind(name); kind == cmap.KindSegmented {
			custom[name] = true
		}
	}
	for name := range custom {
		if claimed[strings.ToLower(name)] {
			delete(custom, name)
		}
	}
	for i := range out {
		if out[i].Name != "Custom" {
			continue
		}
		for name := range custom {
			out[i].Maps = append(out[i].Maps, name)
		}
		sort.Strings(out[i].Maps)
	}

	if len(missing) > 0 {
		log.WithField("maps", strings.Join(missing, ", ")).Warn("missing colormaps")
	}
	if len(ignored) > 0 {
		log.WithField("maps", strings.Join(ignored, ", ")).Debug("ignored colormaps")
	}
	return out
}

// Layout of the colormap table, in pixels.
const (
	labelWidth = 150
	stripWidth = 512
	stripRow   = 20
)

// A mapRow is one display row. A row with a nil map is a category
// title.
type mapRow struct {
	label string
	m     cmap.Colormap
}

func mapRows(reg *cmap.Registry, cats []Category, n int) ([]mapRow, error) {
	var rows []mapRow
	for _, cat := range cats {
		rows = append(rows, mapRow{label: cat.Name})
		for _, name := range cat.Maps {
			m, err := reg.Get(name)
			if err != nil {
				return nil, err
			}
			if n > 0 {
				m = m.Resampled(n)
			}
			rows = append(rows, mapRow{label: name, m: m})
		}
	}
	return rows, nil
}

// WriteMapsSVG draws each map of cats resampled to n colors (n <= 0
// draws its full table) as a labeled strip, with one title row per
// category.
func WriteMapsSVG(w io.Writer, reg *cmap.Registry, cats []Category, n int) error {
	rows, err := mapRows(reg, cats, n)
	if err != nil {
		return err
	}
	width, height := labelWidth+stripWidth+2*margin, len(rows)*stripRow+2*margin
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	for i, row := range rows {
		y := margin + i*stripRow
		if row.m == nil {
			canvas.Text(margin, y+stripRow/2, row.label, "font-family:sans-serif;font-size:13px;font-weight:bold;dominant-baseline:middle")
			continue
		}
		canvas.Text(labelWidth-margin, y+stripRow/2, row.label, "font-family:sans-serif;font-size:11px;text-anchor:end;dominant-baseline:middle")
		cs := row.m.Colors()
		for j, c := range cs {
			x0 := labelWidth + j*stripWidth/len(cs)
			x1 := labelWidth + (j+1)*stripWidth/len(cs)
			canvas.Rect(x0, y+2, x1-x0, stripRow-4, "fill:"+c.Clamped().Hex())
		}
	}
	canvas.End()
	return nil
}

// WriteMapsPNG is like WriteMapsSVG, but renders a PNG. Each map is
// drawn at its native resolution and scaled up to the strip width.
func WriteMapsPNG(w io.Writer, reg *cmap.Registry, cats []Category, n int) error {
	rows, err := mapRows(reg, cats, n)
	if err != nil {
		return err
	}
	width, height := labelWidth+stripWidth+2*margin, len(rows)*stripRow+2*margin
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: dst, Src: image.Black, Face: basicfont.Face7x13}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	for i, row := range rows {
		y := margin + i*stripRow
		baseline := y + (stripRow+ascent)/2
		if row.m == nil {
			d.Dot = fixed.P(margin, baseline)
			d.DrawString(row.label)
			continue
		}
		adv := d.MeasureString(row.label).Ceil()
		d.Dot = fixed.P(labelWidth-margin-adv, baseline)
		d.DrawString(row.label)

		cs := row.m.Colors()
		src := image.NewRGBA(image.Rect(0, 0, len(cs), 1))
		for j, c := range cs {
			r, g, b := c.Clamped().RGB255()
			src.SetRGBA(j, 0, color.RGBA{r, g, b, 0xff})
		}
		strip := image.Rect(labelWidth, y+2, labelWidth+stripWidth, y+stripRow-2)
		draw.NearestNeighbor.Scale(dst, strip, src, src.Bounds(), draw.Src, nil)
	}
	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("swatch: encoding png: %w", err)
	}
	return nil
}
