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
	"bytes"

	"golang.org/x/text/transform"
)

// markerStage is a streaming version of the template substitutions.
//
// If close is empty, every occurrence of open is replaced by replace(nil).
// Otherwise, every region from open up to the next close is replaced by
// replace(inner), where inner is the text between the markers.  A region
// which is still open at the end of the input is copied unchanged.
//
// Outside a region, at most len(open)-1 bytes are held back, in case they
// are the start of a marker which continues in the next chunk of input.
type markerStage struct {
	open, close []byte
	replace     func(inner []byte) []byte

	inside  bool
	region  []byte // text of the current region
	pending []byte // output which did not fit into dst
}

func newHeadStage(marker string, replacement []byte) *markerStage {
	return &markerStage{
		open:    []byte(marker),
		replace: func([]byte) []byte { return replacement },
	}
}

func newBodyStage(open, close string, replace func([]byte) []byte) *markerStage {
	return &markerStage{
		open:    []byte(open),
		close:   []byte(close),
		replace: replace,
	}
}

// Reset implements the [transform.Transformer] interface.
func (s *markerStage) Reset() {
	s.inside = false
	s.region = s.region[:0]
	s.pending = s.pending[:0]
}

// Transform implements the [transform.Transformer] interface.
func (s *markerStage) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for {
		n := copy(dst[nDst:], s.pending)
		nDst += n
		s.pending = s.pending[n:]
		if len(s.pending) > 0 {
			return nDst, nSrc, transform.ErrShortDst
		}

		rest := src[nSrc:]
		if !s.inside {
			if i := bytes.Index(rest, s.open); i >= 0 {
				s.pending = append(s.pending, rest[:i]...)
				nSrc += i + len(s.open)
				if len(s.close) == 0 {
					s.pending = append(s.pending, s.replace(nil)...)
				} else {
					s.inside = true
					s.region = s.region[:0]
				}
				continue
			}

			k := len(rest)
			if !atEOF {
				k -= partialMatch(rest, s.open)
			}
			s.pending = append(s.pending, rest[:k]...)
			nSrc += k
		} else {
			if i := bytes.Index(rest, s.close); i >= 0 {
				s.region = append(s.region, rest[:i]...)
				nSrc += i + len(s.close)
				s.pending = append(s.pending, s.replace(s.region)...)
				s.inside = false
				continue
			}

			k := len(rest)
			if !atEOF {
				k -= partialMatch(rest, s.close)
			}
			s.region = append(s.region, rest[:k]...)
			nSrc += k

			if atEOF {
				s.pending = append(s.pending, s.open...)
				s.pending = append(s.pending, s.region...)
				s.region = s.region[:0]
				s.inside = false
			}
		}

		n = copy(dst[nDst:], s.pending)
		nDst += n
		s.pending = s.pending[n:]
		switch {
		case len(s.pending) > 0:
			return nDst, nSrc, transform.ErrShortDst
		case nSrc < len(src):
			return nDst, nSrc, transform.ErrShortSrc
		default:
			return nDst, nSrc, nil
		}
	}
}

// partialMatch returns the length of the longest proper prefix of marker
// which is a suffix of buf.
func partialMatch(buf, marker []byte) int {
	n := min(len(marker)-1, len(buf))
	for ; n > 0; n-- {
		if bytes.HasSuffix(buf, marker[:n]) {
			return n
		}
	}
	return 0
}
