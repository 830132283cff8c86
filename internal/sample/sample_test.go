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

package sample

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDrawExhaustsPool(t *testing.T) {
	const n = 50
	s := New(n, rand.New(rand.NewPCG(1, 2)))

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		if s.Remaining() != n-i {
			t.Fatalf("Remaining() = %d, want %d", s.Remaining(), n-i)
		}
		idx, ok := s.Draw()
		if !ok {
			t.Fatalf("pool exhausted after %d draws", i)
		}
		if idx < 0 || idx >= n {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d drawn twice", idx)
		}
		seen[idx] = true
	}

	if _, ok := s.Draw(); ok {
		t.Error("Draw succeeded on an empty pool")
	}
}

func TestDrawReproducible(t *testing.T) {
	draw := func() []int {
		s := New(10, rand.New(rand.NewPCG(7, 7)))
		var res []int
		for {
			idx, ok := s.Draw()
			if !ok {
				return res
			}
			res = append(res, idx)
		}
	}

	a := draw()
	b := draw()
	if d := cmp.Diff(a, b); d != "" {
		t.Errorf("same seed gave different sequences (-a +b):\n%s", d)
	}
}

func TestEmpty(t *testing.T) {
	s := New(0, nil)
	if _, ok := s.Draw(); ok {
		t.Error("Draw succeeded on an empty pool")
	}
}
