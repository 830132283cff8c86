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

// Package protext hides the text of HTML documents from naive scrapers.
//
// Every character of the protected text is replaced by a different
// character code, and the page is paired with generated fonts in which the
// glyph for each substituted code is the outline of the original character.
// A human reader sees the original text, while copy & paste and text
// extraction see the substituted codes.
//
// This package contains the shared data types: the character sets
// ([Charset]), the random character mapping ([Mapper]), the configuration
// ([Options]) and the error types.  The font generation is in
// [seehuhn.de/go/protext/fontgen], the HTML rewriting in
// [seehuhn.de/go/protext/encoder], and [seehuhn.de/go/protext/compiler]
// ties everything together:
//
//	enc, err := compiler.Compile(&protext.Options{
//		Font:        "fonts/Lobster-Regular.ttf",
//		Destination: "build",
//		Count:       3,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = enc.EncodeFile("src/index.html.tmpl", "build/index.html")
//
// # Templates
//
// Templates are HTML files with two kinds of markers.  The head marker
// {{protext}} is replaced by a <style> element which loads the generated
// fonts.  Text between {{#protext}} and {{/protext}} is replaced by the
// substituted text, wrapped in <span class="protext">.
package protext
