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

// Package encoder rewrites text and HTML templates using a character
// mapping and the fonts generated for it.
//
// An [Encoder] holds only immutable data and can be used concurrently.
package encoder

import (
	"regexp"
	"slices"
	"strings"

	"seehuhn.de/go/protext"
)

// Template markers.
const (
	// HeadMarker is replaced by the <style> element for the generated fonts.
	HeadMarker = "{{protext}}"

	// OpenMarker and CloseMarker delimit text to be encoded.
	OpenMarker  = "{{#protext}}"
	CloseMarker = "{{/protext}}"
)

// ClassName is the CSS class of the elements holding encoded text.
const ClassName = "protext"

// FamilyPrefix is prepended to the font tokens to form the CSS font family
// names of the generated fonts.
const FamilyPrefix = "protext_"

var bodyRegexp = regexp.MustCompile(
	`(?s)` + regexp.QuoteMeta(OpenMarker) + `(.*?)` + regexp.QuoteMeta(CloseMarker))

// Config holds the result of a compilation.
type Config struct {
	// Destination is the directory which contains the "protext" font
	// directory.
	Destination string

	// FontFamily is the fallback font family.
	FontFamily string

	// Mapper maps source characters to target characters.
	Mapper *protext.Mapper

	// Fonts lists the tokens of the generated font files, in order.
	Fonts []string
}

// Encoder applies a character mapping to text and HTML templates.
type Encoder struct {
	destination string
	fontFamily  string
	mapper      *protext.Mapper
	fonts       []string
}

// New returns an encoder for the given configuration.
func New(cfg *Config) *Encoder {
	return &Encoder{
		destination: cfg.Destination,
		fontFamily:  cfg.FontFamily,
		mapper:      cfg.Mapper,
		fonts:       slices.Clone(cfg.Fonts),
	}
}

// Fonts returns the tokens of the generated font files.
func (e *Encoder) Fonts() []string {
	return slices.Clone(e.fonts)
}

// EncodeText replaces every mapped character of text by its target
// character.  Other characters are copied unchanged.
func (e *Encoder) EncodeText(text string) string {
	return strings.Map(func(r rune) rune {
		if t, ok := e.mapper.Map(r); ok {
			return t
		}
		return r
	}, text)
}

// EncodeTemplate rewrites an HTML template which is located in the
// destination directory.  Head markers are replaced by the style sheet for
// the generated fonts, and marked text is encoded and wrapped in a <span>
// element of class [ClassName].
func (e *Encoder) EncodeTemplate(html string) string {
	return e.encodeTemplate(html, ".")
}

// encodeTemplate rewrites html for a document at relative path rel from
// the destination directory.
func (e *Encoder) encodeTemplate(html, rel string) string {
	html = e.encodeHead(html, rel)
	html = e.encodeBody(html)
	return html
}

func (e *Encoder) encodeHead(html, rel string) string {
	if !strings.Contains(html, HeadMarker) {
		return html
	}
	return strings.ReplaceAll(html, HeadMarker, e.StyleTag(rel))
}

func (e *Encoder) encodeBody(html string) string {
	return bodyRegexp.ReplaceAllStringFunc(html, func(match string) string {
		inner := match[len(OpenMarker) : len(match)-len(CloseMarker)]
		return e.wrap(inner)
	})
}

// wrap returns the encoded form of the text between a pair of body markers.
func (e *Encoder) wrap(inner string) string {
	return `<span class="` + ClassName + `">` + e.EncodeText(inner) + `</span>`
}
