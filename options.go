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

package protext

import (
	"io"
	"math/rand/v2"
	"strings"
	"unicode"
)

// Options configures the generation of fonts and the encoder.
type Options struct {
	// Font is the path of the source font file.  If no file exists at
	// this path, Font is looked up as the name of an installed font.
	Font string

	// Destination is the output directory.  Fonts are written to the
	// "protext" subdirectory, which is cleared on every compilation.
	Destination string

	// Charsets optionally replaces the default character sets.
	Charsets *Charsets

	// Count is the number of font files to distribute the glyphs over.
	// The value 0 selects one file.
	Count int

	// FontFamily is the font family used as a fallback in the generated
	// style sheet.  If empty, the family name of the source font is used.
	FontFamily string

	// Rand is the random number generator used for the character mapping
	// and for distributing glyphs over files.  If nil, a generator seeded
	// from crypto/rand is used.
	Rand *rand.Rand

	// Entropy is the source of the random font file names.
	// If nil, crypto/rand.Reader is used.
	Entropy io.Reader
}

// Charsets holds the source and target character sets.
type Charsets struct {
	Source Charset
	Target Charset
}

// Validate checks the options for consistency.
// Validate has no side effects.
func (opt *Options) Validate() error {
	if opt == nil {
		return &ConfigError{Field: "options", Reason: "missing"}
	}
	if opt.Font == "" {
		return &ConfigError{Field: "font", Reason: "must be set"}
	}
	if opt.Destination == "" {
		return &ConfigError{Field: "destination", Reason: "must be set"}
	}

	if cs := opt.Charsets; cs != nil {
		if cs.Source == nil {
			return &ConfigError{Field: "charsets.source", Reason: "must be set"}
		}
		if cs.Target == nil {
			return &ConfigError{Field: "charsets.target", Reason: "must be set"}
		}
		if err := cs.Source.check("charsets.source"); err != nil {
			return err
		}
		if err := cs.Target.check("charsets.target"); err != nil {
			return err
		}
		if len(cs.Target) < len(cs.Source) {
			return &ConfigError{
				Field:  "charsets",
				Reason: "target charset is smaller than source charset",
			}
		}
	}

	if opt.Count < 0 {
		return &ConfigError{Field: "count", Reason: "must be positive"}
	}

	if strings.ContainsFunc(opt.FontFamily, unicode.IsControl) {
		return &ConfigError{Field: "fontFamily", Reason: "contains control characters"}
	}

	return nil
}

// FileCount returns the number of font files to generate.
func (opt *Options) FileCount() int {
	if opt.Count == 0 {
		return 1
	}
	return opt.Count
}

// SourceTarget returns the configured character sets, or the default
// character set on both sides.
func (opt *Options) SourceTarget() (source, target Charset) {
	if opt.Charsets != nil {
		return opt.Charsets.Source, opt.Charsets.Target
	}
	return DefaultCharset(), DefaultCharset()
}
