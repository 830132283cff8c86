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
	"path"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"

	"seehuhn.de/go/protext"
)

// StyleTag returns the <style> element which loads the generated fonts and
// assigns them to the class [ClassName].  The argument rel is the path of
// the destination directory, relative to the HTML document, using forward
// slashes.
func (e *Encoder) StyleTag(rel string) string {
	sheet := css.NewStylesheet()

	families := make([]string, 0, len(e.fonts)+1)
	for _, token := range e.fonts {
		family := cssString(FamilyPrefix + token)
		url := path.Join(rel, protext.FontDir, token+".ttf")

		face := css.NewRule(css.AtRule)
		face.Name = "@font-face"
		face.Declarations = []*css.Declaration{
			{Property: "src", Value: "url(" + cssString(url) + ")"},
			{Property: "font-family", Value: family},
		}
		sheet.Rules = append(sheet.Rules, face)

		families = append(families, family)
	}
	families = append(families, cssString(e.fontFamily))

	class := css.NewRule(css.QualifiedRule)
	class.Prelude = "." + ClassName
	class.Selectors = []string{"." + ClassName}
	class.Declarations = []*css.Declaration{
		{Property: "font-family", Value: strings.Join(families, ", ")},
	}
	sheet.Rules = append(sheet.Rules, class)

	return "<style>\n" + sheet.String() + "\n</style>"
}

// cssString quotes s as a CSS string.  Characters which could end the
// surrounding <style> element are escaped.
func cssString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '<', '>', '\n', '\r', '\f':
			b.WriteString(`\` + strconv.FormatInt(int64(r), 16) + " ")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
