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

// Package fontgen generates the fonts for a character mapping.
//
// For every pair (s, t) of a [protext.Mapper], the generated fonts contain a
// glyph for character code t which has the outline and advance width of the
// glyph for s in the source font.  The glyphs are distributed at random over
// one or more font files, so that no single file contains the whole mapping.
package fontgen

import (
	"io"
	"maps"
	"math/rand/v2"
	"slices"
	"strconv"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/protext"
	"seehuhn.de/go/protext/internal/sample"
)

// Options controls the randomness used by [Synthesize].
type Options struct {
	// Rand chooses the file for each glyph.
	// If nil, a generator seeded from crypto/rand is used.
	Rand *rand.Rand

	// Entropy is the source for the random file names.
	// If nil, crypto/rand.Reader is used.
	Entropy io.Reader
}

// Glyph describes one glyph of a generated font.
type Glyph struct {
	// Code is the character code which selects the glyph.
	Code rune

	// Source is the character whose outline the glyph shows.
	Source rune

	// GID is the glyph ID in the generated font.
	GID glyph.ID

	// Width is the advance width, in font design units.
	Width funit.Int16
}

// entry is a glyph waiting to be placed in a font file.
type entry struct {
	source, target rune
	gid            glyph.ID // in the source font
}

// bucket collects the glyphs for one output file.
// The first glyph is always .notdef.
type bucket struct {
	glyphs  []glyph.ID
	entries []entry
}

func newBucket() *bucket {
	return &bucket{glyphs: []glyph.ID{0}}
}

func (b *bucket) add(e entry) {
	b.entries = append(b.entries, e)
	b.glyphs = append(b.glyphs, e.gid)
}

// Synthesize generates count fonts from the glyphs of src, keyed by the
// target characters of m.  Fonts which would only contain the .notdef glyph
// are omitted, so fewer than count files may be returned.
//
// If src has no glyph for one of the source characters of m, a
// [*protext.FontError] is returned and no fonts are generated.
func Synthesize(src *sfnt.Font, m *protext.Mapper, count int, opt *Options) ([]*File, error) {
	if count < 1 {
		return nil, &protext.ConfigError{Field: "count", Reason: "must be positive"}
	}
	if opt == nil {
		opt = &Options{}
	}
	rng := opt.Rand
	if rng == nil {
		rng = sample.NewRand()
	}

	fontName := src.FamilyName
	lookup, err := src.CMapTable.GetBest()
	if err != nil {
		return nil, &protext.FontError{Font: fontName, Reason: "no usable cmap table", Err: err}
	}
	numGlyphs := src.NumGlyphs()

	// Buckets are created on first use, so that memory does not grow
	// with count.  Unused buckets would only hold .notdef.
	buckets := make(map[int]*bucket)
	for s, t := range m.All() {
		if t > 0xFFFF {
			return nil, &protext.FontError{
				Font:   fontName,
				Reason: "target character " + strconv.QuoteRune(t) + " outside the Basic Multilingual Plane",
			}
		}
		gid := lookup.Lookup(s)
		if gid == 0 || int(gid) >= numGlyphs {
			return nil, &protext.FontError{
				Font:   fontName,
				Reason: "no glyph for character " + strconv.QuoteRune(s),
			}
		}
		k := rng.IntN(count)
		b := buckets[k]
		if b == nil {
			b = newBucket()
			buckets[k] = b
		}
		b.add(entry{source: s, target: t, gid: gid})
	}

	var res []*File
	for _, k := range slices.Sorted(maps.Keys(buckets)) {
		b := buckets[k]
		token, err := protext.NewToken(opt.Entropy)
		if err != nil {
			return nil, err
		}
		res = append(res, b.build(src, token))
	}

	protext.Tracer().Infof("distributed %d glyphs over %d font files", m.Len(), len(res))
	return res, nil
}

// build makes the font file for the glyphs in b.
func (b *bucket) build(src *sfnt.Font, token string) *File {
	// Two source characters may share a glyph, so the glyph list for the
	// subset is deduplicated.
	subsetGID := make(map[glyph.ID]glyph.ID, len(b.glyphs))
	var subsetGlyphs []glyph.ID
	for _, gid := range b.glyphs {
		if _, seen := subsetGID[gid]; seen {
			continue
		}
		subsetGID[gid] = glyph.ID(len(subsetGlyphs))
		subsetGlyphs = append(subsetGlyphs, gid)
	}

	enc := cmap.Format4{}
	glyphs := make([]Glyph, len(b.entries))
	for i, e := range b.entries {
		newGID := subsetGID[e.gid]
		enc[uint16(e.target)] = newGID
		glyphs[i] = Glyph{
			Code:   e.target,
			Source: e.source,
			GID:    newGID,
			Width:  funit.Int16(src.GlyphWidth(e.gid)),
		}
		protext.Tracer().Debugf("%s: %q -> %q (glyph %d -> %d)",
			token, e.source, e.target, e.gid, newGID)
	}

	orig := src.Clone()
	orig.CMapTable = nil
	orig.Gdef = nil
	orig.Gsub = nil
	orig.Gpos = nil
	out := orig.Subset(subsetGlyphs)

	cmapData := enc.Encode(0)
	out.CMapTable = cmap.Table{
		{PlatformID: 0, EncodingID: 3}: cmapData,
		{PlatformID: 3, EncodingID: 1}: cmapData,
	}

	if out.FamilyName == "" {
		out.FamilyName = token
	}
	// Missing vertical metrics get fixed proportions of the em square,
	// not random values.
	if out.Ascent == 0 && out.Descent == 0 {
		upem := float64(out.UnitsPerEm)
		out.Ascent = funit.Int16(0.8 * upem)
		out.Descent = funit.Int16(-0.2 * upem)
	}

	return &File{
		Token:  token,
		Font:   out,
		Glyphs: glyphs,
	}
}
