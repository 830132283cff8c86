// seehuhn.de/go/protext - obfuscate text in HTML documents using re-keyed fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testfont provides source fonts for the protext tests.
package testfont

import (
	"bytes"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// GoRegular returns the Go Regular font.  The font has glyf outlines.
func GoRegular() *sfnt.Font {
	return mustRead(goregular.TTF)
}

// GoMono returns the Go Mono font.
func GoMono() *sfnt.Font {
	return mustRead(gomono.TTF)
}

func mustRead(data []byte) *sfnt.Font {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return info
}

// WriteGoRegular stores the Go Regular font file in dir and returns the
// path of the new file.
func WriteGoRegular(dir string) (string, error) {
	fname := filepath.Join(dir, "GoRegular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		return "", err
	}
	return fname, nil
}

// Synthetic returns a minimal glyf font which only has glyphs for the
// characters in chars.  The glyph for the i-th character has advance width
// 100*(i+1).  The outlines are empty and the vertical metrics are zero.
func Synthetic(family string, chars string) *sfnt.Font {
	runes := []rune(chars)
	numGlyphs := len(runes) + 1

	widths := make([]funit.Int16, numGlyphs)
	widths[0] = 500
	enc := cmap.Format4{}
	for i, r := range runes {
		gid := glyph.ID(i + 1)
		widths[gid] = funit.Int16(100 * (i + 1))
		enc[uint16(r)] = gid
	}

	return &sfnt.Font{
		FamilyName: family,
		UnitsPerEm: 1000,
		Outlines: &glyf.Outlines{
			Glyphs: make(glyf.Glyphs, numGlyphs),
			Widths: widths,
		},
		CMapTable: cmap.Table{
			{PlatformID: 3, EncodingID: 1}: enc.Encode(0),
		},
	}
}
