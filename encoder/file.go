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

package encoder

import (
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/transform"

	"seehuhn.de/go/protext"
	"seehuhn.de/go/protext/internal/atomicfile"
)

// EncodeFile reads the template entry, rewrites it and stores the result in
// output.  The font URLs in the style sheet are relative to the directory of
// output.  The output file is replaced atomically.
func (e *Encoder) EncodeFile(entry, output string) error {
	data, err := os.ReadFile(entry)
	if err != nil {
		return &protext.IOError{Op: "read", Path: entry, Err: err}
	}
	rel, err := e.relPath(output)
	if err != nil {
		return err
	}

	html := e.encodeTemplate(string(data), rel)

	err = atomicfile.Write(output, func(w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
	if err != nil {
		return &protext.IOError{Op: "write", Path: output, Err: err}
	}
	protext.Tracer().Infof("encoded %s -> %s", entry, output)
	return nil
}

// EncodeStream is like [Encoder.EncodeFile], but processes the template as
// a stream instead of reading it into memory.  Entry and output must be
// different files.
func (e *Encoder) EncodeStream(entry, output string) error {
	same, err := samePath(entry, output)
	if err != nil {
		return err
	}
	if same {
		return &protext.UsageError{Reason: "cannot stream " + entry + " onto itself"}
	}

	rel, err := e.relPath(output)
	if err != nil {
		return err
	}

	in, err := os.Open(entry)
	if err != nil {
		return &protext.IOError{Op: "open", Path: entry, Err: err}
	}
	defer in.Close()

	var readErr error
	err = atomicfile.Write(output, func(w io.Writer) error {
		readErr = e.EncodeReader(w, in, rel)
		return readErr
	})
	if err != nil {
		path := output
		if readErr != nil {
			path = entry
		}
		return &protext.IOError{Op: "encode", Path: path, Err: err}
	}
	protext.Tracer().Infof("encoded %s -> %s (streaming)", entry, output)
	return nil
}

// EncodeReader copies r to w, rewriting the template on the fly.  The
// argument rel is the path of the destination directory, relative to the
// output document, using forward slashes.
func (e *Encoder) EncodeReader(w io.Writer, r io.Reader, rel string) error {
	_, err := io.Copy(w, transform.NewReader(r, e.NewTransformer(rel)))
	return err
}

// NewTransformer returns a transformer which rewrites a template for a
// document at relative path rel from the destination directory.  Each call
// returns a new transformer, which must not be used concurrently.
func (e *Encoder) NewTransformer(rel string) transform.Transformer {
	head := newHeadStage(HeadMarker, []byte(e.StyleTag(rel)))
	body := newBodyStage(OpenMarker, CloseMarker, func(inner []byte) []byte {
		return []byte(e.wrap(string(inner)))
	})
	return transform.Chain(head, body)
}

// relPath returns the path of the destination directory relative to the
// directory containing output, using forward slashes.
func (e *Encoder) relPath(output string) (string, error) {
	absOut, err := filepath.Abs(output)
	if err != nil {
		return "", &protext.IOError{Op: "resolve", Path: output, Err: err}
	}
	absDest, err := filepath.Abs(e.destination)
	if err != nil {
		return "", &protext.IOError{Op: "resolve", Path: e.destination, Err: err}
	}
	rel, err := filepath.Rel(filepath.Dir(absOut), absDest)
	if err != nil {
		return "", &protext.IOError{Op: "resolve", Path: output, Err: err}
	}
	return filepath.ToSlash(rel), nil
}

// samePath reports whether a and b refer to the same file.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, &protext.IOError{Op: "resolve", Path: a, Err: err}
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, &protext.IOError{Op: "resolve", Path: b, Err: err}
	}
	if absA == absB {
		return true, nil
	}

	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA == nil && errB == nil {
		return os.SameFile(infoA, infoB), nil
	}
	return false, nil
}
