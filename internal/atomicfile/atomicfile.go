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

// Package atomicfile writes files so that readers either see the old
// contents or the complete new contents, never a partial file.
package atomicfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// Write creates or replaces the file fname with the data written by fill.
// The data is written to a temporary file in the same directory, which is
// renamed to fname once fill has succeeded.  If anything fails, the
// temporary file is removed and fname is left unchanged.
// Missing parent directories are created.
func Write(fname string, fill func(w io.Writer) error) (err error) {
	dir := filepath.Dir(fname)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}

	fd, err := os.CreateTemp(dir, "."+filepath.Base(fname)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := fd.Name()
	defer func() {
		if err != nil {
			fd.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(fd)
	err = fill(w)
	if err != nil {
		return err
	}
	err = w.Flush()
	if err != nil {
		return err
	}
	err = fd.Chmod(0o644)
	if err != nil {
		return err
	}
	err = fd.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmpName, fname)
}
