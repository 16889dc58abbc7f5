// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/aclements/go-colortools/cmap"
	"github.com/aclements/go-colortools/colors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Indirection so tests can substitute fresh registries.
var (
	defaultColors = colors.Default
	defaultMaps   = cmap.Default
)

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("COLORTOOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("cycle.samples", 10)
	return v
}

func readConfig(v *viper.Viper, file string) error {
	if file == "" {
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	log.WithField("file", v.ConfigFileUsed()).Debug("using config file")
	return nil
}

// applyConfig loads the configured data directories into creg and
// mreg, registers the composite maps, and installs the default cycle.
func applyConfig(v *viper.Viper, creg *colors.Registry, mreg *cmap.Registry) error {
	for _, dir := range v.GetStringSlice("data_dirs") {
		if err := loadDataDir(os.DirFS(dir), creg, mreg, v.GetInt("colors.max")); err != nil {
			return fmt.Errorf("%s: %w", dir, err)
		}
	}

	composite := v.GetStringMapString("colormaps")
	names := make([]string, 0, len(composite))
	for name := range composite {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		specs, err := cmap.ParseSpecs(creg, composite[name])
		if err != nil {
			return fmt.Errorf("colormap %s: %w", name, err)
		}
		m, err := cmap.Make(cmap.MakeOptions{Name: name, Maps: mreg, Colors: creg}, specs...)
		if err != nil {
			return fmt.Errorf("colormap %s: %w", name, err)
		}
		mreg.RegisterPair(m)
		log.WithField("name", m.Name()).Debug("registered composite colormap")
	}

	if spec := v.GetString("cycle.default"); spec != "" {
		if _, err := setCycle(creg, spec, v.GetInt("cycle.samples"), v.GetBool("cycle.rename")); err != nil {
			return fmt.Errorf("cycle.default: %w", err)
		}
	}
	return nil
}

// loadDataDir loads the colors and cmaps subdirectories of fsys, if
// present.
func loadDataDir(fsys fs.FS, creg *colors.Registry, mreg *cmap.Registry, nmax int) error {
	if _, err := fs.Stat(fsys, "colors"); err == nil {
		if err := creg.LoadFS(fsys, "colors", nmax); err != nil {
			return err
		}
	}
	if _, err := fs.Stat(fsys, "cmaps"); err == nil {
		if err := mreg.LoadFS(fsys, "cmaps"); err != nil {
			return err
		}
	}
	return nil
}
