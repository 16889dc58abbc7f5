// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/aclements/go-colortools/data"
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReadTable reads a color table. Each line is a name and a hex color
// separated by a tab. Further columns are ignored, and everything
// from a '%' to the end of the line is a comment. If nmax > 0, only
// the first nmax colors are returned.
func ReadTable(r io.Reader, nmax int) ([]Named, error) {
	var out []Named
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: want name<TAB>color, got %q", lineno, line)
		}
		name, hex := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad color %q for %s", lineno, hex, name)
		}
		out = append(out, Named{name, c})
		if nmax > 0 && len(out) == nmax {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFS registers every *.txt table in dir of fsys as a category
// named after the file. Tables are parsed concurrently and registered
// in file name order.
func (r *Registry) LoadFS(fsys fs.FS, dir string, nmax int) error {
	files, err := fs.Glob(fsys, path.Join(dir, "*.txt"))
	if err != nil {
		return err
	}

	tables := make([][]Named, len(files))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			f, err := fsys.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()
			tables[i], err = ReadTable(f, nmax)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		category := strings.TrimSuffix(path.Base(file), ".txt")
		r.Add(category, tables[i])
		log.WithField("category", category).Debugf("registered %d colors", len(tables[i]))
	}
	return nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry. On first use it is
// populated from the embedded color tables.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		if err := defaultReg.LoadFS(data.FS, "colors", 0); err != nil {
			log.WithError(err).Warn("loading embedded colors")
		}
	})
	return defaultReg
}

// Parse resolves s against the default registry.
func Parse(s string) (colorful.Color, error) {
	return Default().Parse(s)
}
