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

import "strconv"

// Charset is an ordered sequence of distinct characters.
type Charset []rune

// ParseCharset returns the characters of s, in order.
func ParseCharset(s string) Charset {
	return Charset(s)
}

// DefaultCharset returns the characters 0-9, a-z and A-Z.
func DefaultCharset() Charset {
	return ParseCharset("1234567890" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// String returns the characters of the charset as a string.
func (cs Charset) String() string {
	return string(cs)
}

// check returns an error if a character occurs more than once.
func (cs Charset) check(field string) error {
	seen := make(map[rune]bool, len(cs))
	for _, r := range cs {
		if seen[r] {
			return &ConfigError{
				Field:  field,
				Reason: "duplicate character " + strconv.QuoteRune(r),
			}
		}
		seen[r] = true
	}
	return nil
}
