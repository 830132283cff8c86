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
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/npillmayer/schuko/tracing"
)

// TraceKey selects the tracer used by all protext packages.
const TraceKey = "protext"

// Tracer returns the tracer for key [TraceKey].
func Tracer() tracing.Trace {
	return tracing.Select(TraceKey)
}

// NewToken returns a random string of 32 hexadecimal digits.
// The randomness is read from r, or from crypto/rand if r is nil.
func NewToken(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	var buf [16]byte
	_, err := io.ReadFull(r, buf[:])
	if err != nil {
		return "", &IOError{Op: "read", Path: "random token", Err: err}
	}
	return hex.EncodeToString(buf[:]), nil
}
