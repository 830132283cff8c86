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

// Package fontload locates and parses the source font of a compilation.
package fontload

import (
	"bytes"
	"errors"
	"io/fs"
	"os"

	"github.com/flopp/go-findfont"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/protext"
)

// Load reads the font given by name.  If a file exists at the path name,
// this file is used.  Otherwise name is looked up in the font directories
// of the system, for example "DejaVuSans.ttf" or "DejaVuSans".
//
// Load returns the font together with the path of the file it was read
// from.  All failures are reported as [*protext.FontError].
func Load(name string) (*sfnt.Font, string, error) {
	fname, err := locate(name)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, "", &protext.FontError{Font: fname, Reason: "cannot read", Err: err}
	}
	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, "", &protext.FontError{Font: fname, Reason: "cannot parse", Err: err}
	}

	protext.Tracer().Debugf("loaded font %q from %s, %d glyphs",
		font.FamilyName, fname, font.NumGlyphs())
	return font, fname, nil
}

func locate(name string) (string, error) {
	info, err := os.Stat(name)
	if err == nil {
		if info.IsDir() {
			return "", &protext.FontError{Font: name, Reason: "is a directory"}
		}
		return name, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", &protext.FontError{Font: name, Reason: "cannot read", Err: err}
	}

	fname, err := findfont.Find(name)
	if err != nil {
		return "", &protext.FontError{Font: name, Reason: "not found", Err: err}
	}
	protext.Tracer().Debugf("%s is a system font at %s", name, fname)
	return fname, nil
}
