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

// Package compiler implements the one-time setup step of protext.
//
// [Compile] generates a random character mapping, writes the matching font
// files to the destination directory and returns an [encoder.Encoder]
// which applies the mapping to text and HTML templates.
package compiler

import (
	"errors"

	"seehuhn.de/go/protext"
	"seehuhn.de/go/protext/encoder"
	"seehuhn.de/go/protext/fontgen"
	"seehuhn.de/go/protext/internal/fontload"
	"seehuhn.de/go/protext/internal/sample"
)

// Compile generates fonts for a new random character mapping and returns
// an encoder for this mapping.
//
// The options are validated, and the font is loaded and re-keyed, before
// anything is written.  If any of these steps fails, the destination
// directory is left untouched.  Otherwise all files in the "protext"
// subdirectory of the destination are replaced by the new fonts.
func Compile(opt *protext.Options) (*encoder.Encoder, error) {
	err := opt.Validate()
	if err != nil {
		return nil, err
	}
	tr := protext.Tracer()

	src, fname, err := fontload.Load(opt.Font)
	if err != nil {
		return nil, err
	}

	rng := opt.Rand
	if rng == nil {
		rng = sample.NewRand()
	}

	source, target := opt.SourceTarget()
	m, err := protext.NewMapper(source, target, rng)
	if err != nil {
		return nil, err
	}

	files, err := fontgen.Synthesize(src, m, opt.FileCount(), &fontgen.Options{
		Rand:    rng,
		Entropy: opt.Entropy,
	})
	if err != nil {
		var fontErr *protext.FontError
		if errors.As(err, &fontErr) && fontErr.Font == "" {
			fontErr.Font = fname
		}
		return nil, err
	}

	family := opt.FontFamily
	if family == "" {
		family = src.FamilyName
	}
	if family == "" {
		family, err = protext.NewToken(opt.Entropy)
		if err != nil {
			return nil, err
		}
	}

	fontDir, err := protext.PrepareDestination(opt.Destination)
	if err != nil {
		return nil, err
	}
	err = fontgen.WriteFiles(fontDir, files)
	if err != nil {
		return nil, err
	}

	tokens := make([]string, len(files))
	for i, f := range files {
		tokens[i] = f.Token
	}
	tr.Infof("compiled %d characters from %s into %d font files",
		m.Len(), fname, len(files))

	return encoder.New(&encoder.Config{
		Destination: opt.Destination,
		FontFamily:  family,
		Mapper:      m,
		Fonts:       tokens,
	}), nil
}
