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
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var (
	protextSpans = cascadia.MustCompile("span." + ClassName)
	headStyle    = cascadia.MustCompile("head > style")
)

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// TestEncodedDocument checks the structure of a rewritten document with an
// HTML parser.
func TestEncodedDocument(t *testing.T) {
	enc := testEncoder(t, "F", "G")

	tmpl := `<!DOCTYPE html>
<html>
<head><title>test</title>{{protext}}</head>
<body>
<h1>{{#protext}}abba{{/protext}}</h1>
<p>visible <em>{{#protext}}b{{/protext}}</em> and {{#protext}}a
b{{/protext}}</p>
</body>
</html>`
	out := enc.EncodeTemplate(tmpl)

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)

	styles := headStyle.MatchAll(doc)
	require.Len(t, styles, 1)
	css := textContent(styles[0])
	assert.Equal(t, 2, strings.Count(css, "@font-face"))
	assert.Contains(t, css, "."+ClassName)

	var got []string
	for _, span := range protextSpans.MatchAll(doc) {
		got = append(got, textContent(span))
	}
	assert.Equal(t, []string{"1221", "2", "1\n2"}, got)

	assert.Contains(t, textContent(doc), "visible")
}
