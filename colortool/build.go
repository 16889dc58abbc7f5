// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aclements/go-colortools/cmap"
	"github.com/aclements/go-colortools/colors"
	"github.com/aclements/go-colortools/colorspace"
	"github.com/aclements/go-colortools/norm"
	"github.com/aclements/go-colortools/swatch"
	"github.com/kballard/go-shellquote"
	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parseFloats parses a comma- or space-separated list of numbers.
func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseArgs re-joins command-line words with shell quoting and parses
// them as a spec list.
func parseArgs(reg *colors.Registry, args []string) ([]cmap.Spec, error) {
	return cmap.ParseSpecs(reg, shellquote.Join(args...))
}

var listFlags struct {
	custom bool
	colors bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered colormaps or color categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		if listFlags.colors {
			reg := defaultColors()
			for _, cat := range reg.Categories() {
				named, _ := reg.Category(cat)
				fmt.Fprintf(tw, "%s\t%d\n", cat, len(named))
			}
			return tw.Flush()
		}
		reg := defaultMaps()
		names := reg.Names()
		if listFlags.custom {
			names = reg.Custom()
		}
		for _, name := range names {
			m, err := reg.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\n", name, cmap.KindOf(m), m.N())
		}
		return tw.Flush()
	},
}

var convertFlags struct {
	from, to string
}

// convert converts a color string or a triple in from to the space to.
func convert(reg *colors.Registry, from, to string, args []string) (colorspace.Triple, error) {
	dst, err := colorspace.ParseSpace(to)
	if err != nil {
		return colorspace.Triple{}, err
	}
	switch len(args) {
	case 1:
		c, err := reg.Parse(args[0])
		if err != nil {
			return colorspace.Triple{}, err
		}
		return colorspace.FromRGB(c, dst), nil
	case 3:
		src, err := colorspace.ParseSpace(from)
		if err != nil {
			return colorspace.Triple{}, err
		}
		var t colorspace.Triple
		t.Space = src
		for i, a := range args {
			if t.Values[i], err = strconv.ParseFloat(a, 64); err != nil {
				return colorspace.Triple{}, err
			}
		}
		return colorspace.Convert(t, dst)
	}
	return colorspace.Triple{}, fmt.Errorf("want a color or three channel values, got %d arguments", len(args))
}

var convertCmd = &cobra.Command{
	Use:   "convert (a b c | color)",
	Short: "Convert a color between color spaces",
	Long: `Convert three channel values in the --from space, or any color string, to
the --to space. Hues are in degrees, RGB channels in [0, 1], and every other
channel in [0, 100].`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := convert(defaultColors(), convertFlags.from, convertFlags.to, args)
		if err != nil {
			return err
		}
		fmt.Println(t)
		if c, err := colorspace.ToRGB(t); err == nil {
			if !colorspace.InGamut(c) {
				log.WithField("color", t).Warn("color is outside the RGB gamut")
			}
			fmt.Println(c.Clamped().Hex())
		}
		return nil
	},
}

var makeFlags struct {
	n       int
	extend  string
	levels  string
	dark    bool
	name    string
	reverse bool
	output  string
}

// makeMap builds a map from command-line spec words.
func makeMap(creg *colors.Registry, mreg *cmap.Registry, args []string) (cmap.Colormap, error) {
	o := makeFlags
	specs, err := parseArgs(creg, args)
	if err != nil {
		return nil, err
	}
	levels, err := parseFloats(o.levels)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	m, err := cmap.Make(cmap.MakeOptions{
		Levels: levels,
		Extend: o.extend,
		Dark:   o.dark,
		Name:   o.name,
		N:      o.n,
		Maps:   mreg,
		Colors: creg,
	}, specs...)
	if err != nil {
		return nil, err
	}
	if o.reverse {
		m = m.Reversed()
	}
	return m, nil
}

var makeCmd = &cobra.Command{
	Use:   "make spec...",
	Short: "Build a colormap from specs and print its lookup table",
	Long: `Build a colormap from one or more specs and print its lookup table as hex
colors, or write it as a PNG strip with -o. A spec is a registered map, a color
with optional _r, _l, _w, _d or _b flags, a cycle color like C1, or a
comma-separated list of colors. Several specs are merged into one map.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := makeMap(defaultColors(), defaultMaps(), args)
		if err != nil {
			return err
		}
		if makeFlags.output == "" {
			return printColors(os.Stdout, m.Colors(), false)
		}
		reg := cmap.NewRegistry()
		reg.Register(m)
		cats := []swatch.Category{{Name: cmap.KindOf(m).String(), Maps: []string{m.Name()}}}
		return withOutput(makeFlags.output, func(w io.Writer) error {
			return swatch.WriteMapsPNG(w, reg, cats, 0)
		})
	},
}

func printColors(w io.Writer, cs []colorful.Color, codes bool) error {
	for i, c := range cs {
		var err error
		if codes {
			_, err = fmt.Fprintf(w, "C%d\t%s\n", i, c.Clamped().Hex())
		} else {
			_, err = fmt.Fprintln(w, c.Clamped().Hex())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var normFlags struct {
	kind       string
	levels     string
	inverse    bool
	vmin, vmax float64
	clip       bool
	ncolors    int
	gamma      float64
	linthresh  float64
	linscale   float64
	base       float64
	exp        float64
	extend     string
	midpoint   float64
}

// normalize applies the normalizer described by the flags to values.
// midpoint is only used if set.
func normalize(values []float64, midpointSet bool) ([]float64, error) {
	o := normFlags
	levels, err := parseFloats(o.levels)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	opts := norm.Options{
		Levels:    levels,
		VMin:      o.vmin,
		VMax:      o.vmax,
		Clip:      o.clip,
		NColors:   o.ncolors,
		Gamma:     o.gamma,
		LinThresh: o.linthresh,
		LinScale:  o.linscale,
		Base:      o.base,
		Exp:       o.exp,
		Extend:    o.extend,
	}
	if midpointSet {
		mid := o.midpoint
		opts.Midpoint = &mid
	}
	n, err := norm.New(o.kind, opts)
	if err != nil {
		return nil, err
	}
	if o.inverse {
		return norm.InverseAll(n, values)
	}
	return norm.MapAll(n, values), nil
}

var normCmd = &cobra.Command{
	Use:   "norm values...",
	Short: "Map data values to colormap positions",
	Long: `Map each value to a colormap position in [0, 1] with the normalizer named
by --kind, or map positions back to data values with --inverse. Kinds are ` +
		strings.Join(norm.Names(), ", ") + ".",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseFloats(strings.Join(args, " "))
		if err != nil {
			return err
		}
		out, err := normalize(values, cmd.Flags().Changed("midpoint"))
		if errors.Is(err, norm.ErrNotInvertible) {
			return fmt.Errorf("%s normalizer has no inverse", normFlags.kind)
		} else if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		for i, v := range values {
			fmt.Fprintf(tw, "%g\t%g\n", v, out[i])
		}
		return tw.Flush()
	},
}

var cycleFlags struct {
	samples int
	rename  bool
}

// setCycle installs the cycle described by spec.
func setCycle(reg *colors.Registry, spec string, samples int, rename bool) ([]colorful.Color, error) {
	specs, err := cmap.ParseSpecs(reg, spec)
	if err != nil {
		return nil, err
	}
	if len(specs) != 1 {
		return nil, fmt.Errorf("want one cycle spec, got %d", len(specs))
	}
	return cmap.SetCycle(reg, specs[0], samples, rename)
}

var cycleCmd = &cobra.Command{
	Use:   "cycle spec",
	Short: "Set the color cycle from a spec and print it",
	Long: `Draw a color cycle from a listed map, a segmented map, or a color spec and
print the resulting C0, C1, ... colors. With --rename the spec must be a
seaborn cycle and the single-letter colors are rebound to it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cs, err := setCycle(defaultColors(), shellquote.Join(args...), cycleFlags.samples, cycleFlags.rename)
		if err != nil {
			return err
		}
		return printColors(os.Stdout, cs, true)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listFlags.custom, "custom", false, "List only maps loaded from files")
	listCmd.Flags().BoolVar(&listFlags.colors, "colors", false, "List color categories instead of maps")

	f := convertCmd.Flags()
	f.StringVar(&convertFlags.from, "from", "rgb", "Color space of the input channels")
	f.StringVar(&convertFlags.to, "to", "hcl", "Color space to convert to: "+strings.Join(colorspace.Names(), ", "))

	f = makeCmd.Flags()
	f.IntVar(&makeFlags.n, "n", 0, "Size of a merged map (default 512)")
	f.StringVar(&makeFlags.extend, "extend", "both", "Extend option: both, neither, min or max")
	f.StringVar(&makeFlags.levels, "levels", "", "Comma-separated contour levels")
	f.BoolVar(&makeFlags.dark, "dark", false, "Build dark maps from bare colors")
	f.StringVar(&makeFlags.name, "name", "", "Name of a merged map")
	f.BoolVar(&makeFlags.reverse, "reverse", false, "Reverse the result")
	addOutputFlag(f, &makeFlags.output)

	f = normCmd.Flags()
	f.StringVar(&normFlags.kind, "kind", "", "Normalizer kind (default discrete with levels, else linear)")
	f.StringVar(&normFlags.levels, "levels", "", "Comma-separated levels")
	f.BoolVar(&normFlags.inverse, "inverse", false, "Map positions back to data values")
	f.Float64Var(&normFlags.vmin, "vmin", 0, "Lower bound of the data")
	f.Float64Var(&normFlags.vmax, "vmax", 0, "Upper bound of the data")
	f.BoolVar(&normFlags.clip, "clip", false, "Clamp data to [vmin, vmax]")
	f.IntVar(&normFlags.ncolors, "ncolors", 0, "Number of colors for the boundary normalizer")
	f.Float64Var(&normFlags.gamma, "gamma", 1, "Exponent for the power normalizer")
	f.Float64Var(&normFlags.linthresh, "linthresh", 1, "Linear threshold for symlog")
	f.Float64Var(&normFlags.linscale, "linscale", 1, "Linear scale for symlog")
	f.Float64Var(&normFlags.base, "base", 10, "Logarithm base for symlog")
	f.Float64Var(&normFlags.exp, "exp", 0, "Warp exponent for stretch")
	f.StringVar(&normFlags.extend, "extend", "neither", "Clamping for stretch: neither, min, max or both")
	f.Float64Var(&normFlags.midpoint, "midpoint", 0, "Midpoint for stretch (default vmin)")

	f = cycleCmd.Flags()
	f.IntVar(&cycleFlags.samples, "samples", 10, "Colors to draw from a segmented map")
	f.BoolVar(&cycleFlags.rename, "rename", false, "Rebind the single-letter colors to the cycle")
}
