// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReadRGB reads a table of comma-separated RGB rows. Extra columns
// are ignored. If any value exceeds 1, every value is taken to be on
// a 0-255 scale.
func ReadRGB(r io.Reader) ([]colorful.Color, error) {
	var rows [][3]float64
	big := false
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want 3 columns, got %d", lineno, len(fields))
		}
		var row [3]float64
		for i := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %v", lineno, err)
			}
			if v < 0 {
				return nil, fmt.Errorf("line %d: negative value %g", lineno, v)
			}
			if v > 1 {
				big = true
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	scale := 1.0
	if big {
		scale = 255
	}
	out := make([]colorful.Color, len(rows))
	for i, row := range rows {
		out[i] = colorful.Color{R: row[0] / scale, G: row[1] / scale, B: row[2] / scale}
		if !out[i].IsValid() {
			return nil, fmt.Errorf("row %d: %v out of range", i+1, row)
		}
	}
	return out, nil
}

// ReadHex reads a single line of comma-separated hex colors.
func ReadHex(r io.Reader) ([]colorful.Color, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmpty
	}
	var out []colorful.Color
	for _, h := range strings.Split(line, ",") {
		c, err := colorful.Hex(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("bad hex color %q", h)
		}
		out = append(out, c)
	}
	return out, nil
}

// LoadFS registers the *.rgb and *.hex files in dir of fsys. Each
// file defines a map named after the file. Files whose names contain
// "lines" define listed maps for use as color cycles; the rest define
// segmented maps with one lookup table entry per color. Files that
// cannot be parsed are logged and skipped.
func (r *Registry) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	var files []string
	for _, e := range entries {
		if ext := path.Ext(e.Name()); !e.IsDir() && (ext == ".rgb" || ext == ".hex") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	tables := make([][]colorful.Color, len(files))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			f, err := fsys.Open(path.Join(dir, file))
			if err != nil {
				return err
			}
			defer f.Close()
			var cs []colorful.Color
			if path.Ext(file) == ".rgb" {
				cs, err = ReadRGB(f)
			} else {
				cs, err = ReadHex(f)
			}
			if err != nil {
				log.WithField("file", file).WithError(err).Warn("failed to load colormap")
				return nil
			}
			tables[i] = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		cs := tables[i]
		if cs == nil {
			continue
		}
		name := strings.TrimSuffix(file, path.Ext(file))
		var m Colormap
		if strings.Contains(strings.ToLower(name), "lines") {
			m, _ = NewListed(name, cs)
		} else {
			m, _ = NewSegmented(name, cs, len(cs), BlendRGB)
		}
		r.RegisterPair(m)
		r.markCustom(name)
	}
	return nil
}
