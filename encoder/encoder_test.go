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

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/protext"
)

func testEncoder(t *testing.T, fonts ...string) *Encoder {
	t.Helper()
	m, err := protext.NewMapperFromPairs([2]rune{'a', '1'}, [2]rune{'b', '2'})
	require.NoError(t, err)
	return New(&Config{
		Destination: t.TempDir(),
		FontFamily:  "Fallback Sans",
		Mapper:      m,
		Fonts:       fonts,
	})
}

func TestEncodeText(t *testing.T) {
	enc := testEncoder(t, "F")

	cases := []struct{ in, out string }{
		{"abc", "12c"},
		{"", ""},
		{"ba ab", "21 12"},
		{"äbä", "ä2ä"},
		{"xyz", "xyz"},
	}
	for _, c := range cases {
		got := enc.EncodeText(c.in)
		assert.Equal(t, c.out, got, "EncodeText(%q)", c.in)
		assert.Equal(t, len([]rune(c.in)), len([]rune(got)))
	}
}

func TestEncodeTemplate(t *testing.T) {
	enc := testEncoder(t, "F")

	in := "<html><head>{{protext}}</head><body><p>{{#protext}}ab{{/protext}}</p></body></html>"
	out := enc.EncodeTemplate(in)

	assert.NotContains(t, out, HeadMarker)
	assert.NotContains(t, out, OpenMarker)
	assert.NotContains(t, out, CloseMarker)
	assert.Contains(t, out, `<p><span class="protext">12</span></p>`)
	assert.Equal(t, 1, strings.Count(out, "@font-face"))
	assert.Contains(t, out, `url("protext/F.ttf")`)
	assert.Contains(t, out, `"protext_F", "Fallback Sans"`)
	assert.True(t, strings.HasPrefix(out, "<html><head><style>\n"))
}

func TestEncodeTemplateRegions(t *testing.T) {
	enc := testEncoder(t)

	cases := []struct{ in, out string }{
		{
			"{{#protext}}a{{/protext}} and {{#protext}}b{{/protext}}",
			`<span class="protext">1</span> and <span class="protext">2</span>`,
		},
		{
			"{{#protext}}a\nb\n{{/protext}}",
			"<span class=\"protext\">1\n2\n</span>",
		},
		{
			"{{#protext}}{{/protext}}",
			`<span class="protext"></span>`,
		},
		{
			"{{#protext}}a{{#protext}}b{{/protext}}",
			`<span class="protext">1{{#protext}}2</span>`,
		},
		{
			"unterminated {{#protext}}ab",
			"unterminated {{#protext}}ab",
		},
		{
			"ab {{/protext}} ab",
			"ab {{/protext}} ab",
		},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, enc.EncodeTemplate(c.in), "input %q", c.in)
	}
}

func TestEncodeTemplateIdempotent(t *testing.T) {
	enc := testEncoder(t, "F", "G")

	out := enc.EncodeTemplate("{{protext}}\n{{#protext}}abc{{/protext}}\n{{protext}}")
	assert.Equal(t, out, enc.EncodeTemplate(out))

	plain := "<p>abc</p>"
	assert.Equal(t, plain, enc.EncodeTemplate(plain))
}

func TestStyleTag(t *testing.T) {
	enc := testEncoder(t, "F1", "F2", "F3")

	tag := enc.StyleTag("../..")
	require.True(t, strings.HasPrefix(tag, "<style>\n"))
	require.True(t, strings.HasSuffix(tag, "\n</style>"))
	body := strings.TrimSuffix(strings.TrimPrefix(tag, "<style>\n"), "\n</style>")

	sheet, err := parser.Parse(body)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 4)

	for i, token := range []string{"F1", "F2", "F3"} {
		rule := sheet.Rules[i]
		assert.Equal(t, css.AtRule, rule.Kind)
		assert.Equal(t, "@font-face", rule.Name)
		require.Len(t, rule.Declarations, 2)
		assert.Equal(t, "src", rule.Declarations[0].Property)
		assert.Contains(t, rule.Declarations[0].Value, `"../../protext/`+token+`.ttf"`)
		assert.Equal(t, "font-family", rule.Declarations[1].Property)
		assert.Contains(t, rule.Declarations[1].Value, `"protext_`+token+`"`)
	}

	class := sheet.Rules[3]
	assert.Equal(t, css.QualifiedRule, class.Kind)
	assert.Equal(t, []string{".protext"}, class.Selectors)
	require.Len(t, class.Declarations, 1)
	families := strings.ReplaceAll(class.Declarations[0].Value, " ", "")
	assert.Equal(t, `"protext_F1","protext_F2","protext_F3","FallbackSans"`, families)
}

func TestCSSString(t *testing.T) {
	cases := []struct{ in, out string }{
		{"Lobster", `"Lobster"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"</style>", `"\3c /style\3e "`},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, cssString(c.in))
	}
}
