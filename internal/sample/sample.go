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

// Package sample implements drawing without replacement from an index set.
package sample

import (
	crand "crypto/rand"
	"math/rand/v2"
	"slices"
)

// Sampler draws indices from {0, ..., n-1} without replacement.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng  *rand.Rand
	pool []int
}

// New returns a sampler for the indices 0, ..., n-1.
// If rng is nil, a generator seeded from crypto/rand is used.
func New(n int, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = NewRand()
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	return &Sampler{rng: rng, pool: pool}
}

// Remaining returns the number of indices which can still be drawn.
func (s *Sampler) Remaining() int {
	return len(s.pool)
}

// Draw removes a uniformly chosen index from the pool and returns it.
// The second return value is false once the pool is exhausted.
func (s *Sampler) Draw() (int, bool) {
	if len(s.pool) == 0 {
		return 0, false
	}
	k := s.rng.IntN(len(s.pool))
	idx := s.pool[k]
	s.pool = slices.Delete(s.pool, k, k+1)
	return idx, true
}

// NewRand returns a pseudo-random generator seeded from crypto/rand.
func NewRand() *rand.Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}
