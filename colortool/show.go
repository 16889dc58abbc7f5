// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-colortools/swatch"
	"github.com/aclements/go-colortools/termview"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func addOutputFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "output", "o", "", "Write to `file` instead of standard output")
}

// create opens path for writing, or returns standard output if path
// is empty.
func create(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// withOutput runs write on the output file and closes it.
func withOutput(path string, write func(io.Writer) error) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// groupOutput returns the file for group when several groups share
// one output name: colors.svg becomes colors_open.svg.
func groupOutput(path, group string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + group + ext
}

var colorsFlags struct {
	output string
	nbreak int
	minsat float64
}

var colorsCmd = &cobra.Command{
	Use:   "colors [groups...]",
	Short: "Draw swatches of the named colors",
	Long: `Draw a table of named colors for each group. A group is a comma-separated
list of color categories such as "open" or "crayons,xkcd"; the category
"cycle" holds the colors of the current color cycle. With several groups,
-o names a pattern: colors.svg writes colors_open.svg and so on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := args
		if len(groups) == 0 {
			groups = []string{"open", "crayons,xkcd"}
		}
		o := colorsFlags
		if len(groups) > 1 && o.output == "" {
			return fmt.Errorf("more than one group requires -o")
		}
		for _, g := range groups {
			cats := strings.Split(g, ",")
			grid, lookup, err := swatch.Group(defaultColors(), cats, o.nbreak, o.minsat)
			if err != nil {
				return err
			}
			path := o.output
			if len(groups) > 1 {
				path = groupOutput(path, strings.Join(cats, "-"))
			}
			err = withOutput(path, func(w io.Writer) error {
				return swatch.WriteColorsSVG(w, grid, lookup)
			})
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"group": g, "file": path}).Debug("wrote colors")
		}
		return nil
	},
}

var cyclesOutput string

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Plot every built-in color cycle",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withOutput(cyclesOutput, func(w io.Writer) error {
			return swatch.WriteCyclesSVG(w, swatch.BuiltinCycles())
		})
	},
}

var cmapsFlags struct {
	output  string
	samples int
	format  string
	ignore  []string
}

var cmapsCmd = &cobra.Command{
	Use:   "cmaps",
	Short: "Draw or browse the registered colormaps by category",
	Long: `Draw every registered colormap as a labeled strip, grouped by category.
When standard output is a terminal and no output file is given, browse the
colormaps and cycles interactively instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o := cmapsFlags
		reg := defaultMaps()
		cats := swatch.Categories(reg, o.ignore)

		if o.output == "" && term.IsTerminal(int(os.Stdout.Fd())) {
			rows, err := termview.CategoryRows(reg, cats)
			if err != nil {
				return err
			}
			rows = append(rows, termview.Row{Label: "Cycles"})
			rows = append(rows, termview.CycleRows(swatch.BuiltinCycles())...)
			return termview.Browse(rows)
		}

		var write func(io.Writer) error
		switch o.format {
		case "svg":
			write = func(w io.Writer) error { return swatch.WriteMapsSVG(w, reg, cats, o.samples) }
		case "png":
			write = func(w io.Writer) error { return swatch.WriteMapsPNG(w, reg, cats, o.samples) }
		default:
			return fmt.Errorf("unknown format %q (want svg or png)", o.format)
		}
		return withOutput(o.output, write)
	},
}

func init() {
	f := colorsCmd.Flags()
	addOutputFlag(f, &colorsFlags.output)
	f.IntVar(&colorsFlags.nbreak, "nbreak", 15, "Number of hue breakpoints")
	f.Float64Var(&colorsFlags.minsat, "minsat", 0.1, "Saturation below which a color is gray")

	addOutputFlag(cyclesCmd.Flags(), &cyclesOutput)

	f = cmapsCmd.Flags()
	addOutputFlag(f, &cmapsFlags.output)
	f.IntVarP(&cmapsFlags.samples, "samples", "n", 31, "Resample each map to `n` colors (0 for none)")
	f.StringVar(&cmapsFlags.format, "format", "svg", "Output format: svg or png")
	f.StringSliceVar(&cmapsFlags.ignore, "ignore", swatch.DefaultIgnore, "Categories to leave out")
}
