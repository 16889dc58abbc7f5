// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colortool inspects and builds named colors, color cycles,
// colormaps, and normalizers.
//
// Usage:
//
//	colortool colors [-o file] [groups...]
//	colortool cycles [-o file]
//	colortool cmaps [-o file] [-n samples] [--format svg|png]
//	colortool list [--custom] [--colors]
//	colortool convert --from SPACE --to SPACE (a b c | color)
//	colortool make [--n N] [--extend E] [--levels L] [--dark] spec...
//	colortool norm --kind K --levels L [--inverse] values...
//	colortool cycle [--samples N] [--rename] spec
//
// Configuration is read from the file named by --config and from
// COLORTOOL_ environment variables. The keys are:
//
//	data_dirs        directories holding extra colors/ and cmaps/ tables
//	colors.max       maximum number of colors read from each extra table
//	cycle.default    spec of the cycle to install at startup
//	cycle.samples    number of colors to draw from a segmented cycle map
//	cycle.rename     rebind the single-letter colors to the cycle
//	colormaps.NAME   spec list of a composite map registered as NAME
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     = newConfig()
)

var rootCmd = &cobra.Command{
	Use:   "colortool",
	Short: "Inspect and build colors, color cycles, and colormaps",
	Long: `colortool renders swatches of the registered named colors, color cycles,
and colormaps, and builds new colormaps, cycles, and normalizers from specs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if err := readConfig(cfg, cfgFile); err != nil {
			return err
		}
		return applyConfig(cfg, defaultColors(), defaultMaps())
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed execution info")
	rootCmd.AddCommand(colorsCmd, cyclesCmd, cmapsCmd, listCmd, convertCmd, makeCmd, normCmd, cycleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
