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
	"os"
	"path/filepath"
)

// FontDir is the name of the subdirectory of the destination directory
// which holds the generated fonts.
const FontDir = "protext"

// PrepareDestination makes sure that the font directory inside destination
// exists and is empty.  Files left over from earlier runs are removed.
// The path of the font directory is returned.
//
// PrepareDestination is idempotent.  It must not run concurrently with
// another compilation for the same destination.
func PrepareDestination(destination string) (string, error) {
	dir := filepath.Join(destination, FontDir)
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return "", &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &IOError{Op: "read", Path: dir, Err: err}
	}
	for _, e := range entries {
		fname := filepath.Join(dir, e.Name())
		err := os.RemoveAll(fname)
		if err != nil {
			return "", &IOError{Op: "remove", Path: fname, Err: err}
		}
	}

	if len(entries) > 0 {
		Tracer().Infof("removed %d old files from %s", len(entries), dir)
	}
	return dir, nil
}
