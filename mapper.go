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
	"iter"
	"math/rand/v2"
	"strconv"

	"seehuhn.de/go/protext/internal/sample"
)

// Mapper is an injective mapping from source characters to target
// characters.  A Mapper cannot be changed after construction and is safe
// for concurrent use.
type Mapper struct {
	source []rune
	target []rune
	index  map[rune]rune
}

// NewMapper binds every character of source to a different character of
// target, chosen at random.  Characters are processed in source order and
// each one draws from the target characters not used so far.
//
// If rng is nil, a generator seeded from crypto/rand is used.
func NewMapper(source, target Charset, rng *rand.Rand) (*Mapper, error) {
	if err := source.check("charsets.source"); err != nil {
		return nil, err
	}
	if err := target.check("charsets.target"); err != nil {
		return nil, err
	}
	if len(target) < len(source) {
		return nil, &ConfigError{
			Field:  "charsets",
			Reason: "target charset is smaller than source charset",
		}
	}

	pool := sample.New(len(target), rng)
	m := &Mapper{
		source: make([]rune, len(source)),
		target: make([]rune, len(source)),
		index:  make(map[rune]rune, len(source)),
	}
	for i, s := range source {
		k, ok := pool.Draw()
		if !ok {
			return nil, &ConfigError{
				Field:  "charsets",
				Reason: "target charset is smaller than source charset",
			}
		}
		t := target[k]
		m.source[i] = s
		m.target[i] = t
		m.index[s] = t
	}

	Tracer().Debugf("mapped %d source characters onto %d target characters, %d unused",
		len(source), len(target), pool.Remaining())
	return m, nil
}

// NewMapperFromPairs returns a Mapper with a fixed set of (source, target)
// pairs.  The iteration order of the Mapper is the order of the pairs.
func NewMapperFromPairs(pairs ...[2]rune) (*Mapper, error) {
	m := &Mapper{
		source: make([]rune, 0, len(pairs)),
		target: make([]rune, 0, len(pairs)),
		index:  make(map[rune]rune, len(pairs)),
	}
	used := make(map[rune]bool, len(pairs))
	for _, p := range pairs {
		s, t := p[0], p[1]
		if _, dup := m.index[s]; dup {
			return nil, &ConfigError{
				Field:  "charsets.source",
				Reason: "duplicate character " + strconv.QuoteRune(s),
			}
		}
		if used[t] {
			return nil, &ConfigError{
				Field:  "charsets.target",
				Reason: "character " + strconv.QuoteRune(t) + " used twice",
			}
		}
		used[t] = true
		m.source = append(m.source, s)
		m.target = append(m.target, t)
		m.index[s] = t
	}
	return m, nil
}

// Len returns the number of source characters.
func (m *Mapper) Len() int {
	return len(m.source)
}

// Map returns the target character for s.
// The second return value is false if s is not a source character.
func (m *Mapper) Map(s rune) (rune, bool) {
	t, ok := m.index[s]
	return t, ok
}

// All iterates over the (source, target) pairs in source charset order.
func (m *Mapper) All() iter.Seq2[rune, rune] {
	return func(yield func(rune, rune) bool) {
		for i, s := range m.source {
			if !yield(s, m.target[i]) {
				return
			}
		}
	}
}
