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

package fontgen

import (
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/protext"
	"seehuhn.de/go/protext/internal/atomicfile"
)

// File is a generated font.
type File struct {
	// Token is the random name of the font.  It is used for the file name
	// and for the CSS font family.
	Token string

	// Font is the font data.
	Font *sfnt.Font

	// Glyphs lists the glyphs of the font, excluding .notdef.
	Glyphs []Glyph
}

// Filename returns the name of the font file.
func (f *File) Filename() string {
	return f.Token + ".ttf"
}

// WriteTo writes the font file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := f.Font.Write(w)
	return int64(n), err
}

// WriteFiles stores the fonts in dir.  Each file is written atomically.
// If a file cannot be written, the files written so far are removed again.
func WriteFiles(dir string, files []*File) error {
	var done []string
	for _, f := range files {
		fname := filepath.Join(dir, f.Filename())
		err := atomicfile.Write(fname, func(w io.Writer) error {
			_, err := f.WriteTo(w)
			return err
		})
		if err != nil {
			for _, old := range done {
				os.Remove(old)
			}
			protext.Tracer().Errorf("cannot write %s: %v", fname, err)
			return &protext.IOError{Op: "write", Path: fname, Err: err}
		}
		done = append(done, fname)
		protext.Tracer().Infof("wrote %s (%d glyphs)", fname, len(f.Glyphs))
	}
	return nil
}
