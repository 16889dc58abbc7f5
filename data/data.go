// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data embeds the color tables and colormap definitions that
// are registered by default.
//
// colors/*.txt are tab-separated name/color tables, one category per
// file. cmaps/*.rgb hold comma-separated RGB rows (0-1 or 0-255) and
// cmaps/*.hex hold a single line of comma-separated hex colors.
package data

import "embed"

//go:embed cmaps colors
var FS embed.FS
