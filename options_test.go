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
	"errors"
	"testing"
)

func TestDefaultCharset(t *testing.T) {
	cs := DefaultCharset()
	if len(cs) != 62 {
		t.Fatalf("default charset has %d characters, want 62", len(cs))
	}
	if err := cs.check("test"); err != nil {
		t.Error(err)
	}
	if cs[0] != '1' || cs[9] != '0' || cs[10] != 'a' || cs[61] != 'Z' {
		t.Errorf("unexpected order: %s", cs)
	}
}

func TestParseCharset(t *testing.T) {
	cs := ParseCharset("aä€")
	if len(cs) != 3 {
		t.Fatalf("got %d characters, want 3", len(cs))
	}
	if cs.String() != "aä€" {
		t.Errorf("round trip gave %q", cs.String())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Options {
		return &Options{Font: "font.ttf", Destination: "build"}
	}

	cases := []struct {
		name   string
		modify func(*Options) *Options
		field  string
	}{
		{"valid", func(o *Options) *Options { return o }, ""},
		{"nil", func(*Options) *Options { return nil }, "options"},
		{"no font", func(o *Options) *Options { o.Font = ""; return o }, "font"},
		{"no destination", func(o *Options) *Options { o.Destination = ""; return o }, "destination"},
		{"no source", func(o *Options) *Options {
			o.Charsets = &Charsets{Target: DefaultCharset()}
			return o
		}, "charsets.source"},
		{"no target", func(o *Options) *Options {
			o.Charsets = &Charsets{Source: DefaultCharset()}
			return o
		}, "charsets.target"},
		{"target too small", func(o *Options) *Options {
			o.Charsets = &Charsets{Source: ParseCharset("abcd"), Target: ParseCharset("123")}
			return o
		}, "charsets"},
		{"duplicate target", func(o *Options) *Options {
			o.Charsets = &Charsets{Source: ParseCharset("ab"), Target: ParseCharset("113")}
			return o
		}, "charsets.target"},
		{"negative count", func(o *Options) *Options { o.Count = -1; return o }, "count"},
		{"bad family", func(o *Options) *Options { o.FontFamily = "a\nb"; return o }, "fontFamily"},
		{"custom charsets", func(o *Options) *Options {
			o.Charsets = &Charsets{Source: ParseCharset("abcd"), Target: ParseCharset("1234")}
			o.Count = 7
			o.FontFamily = "foo"
			return o
		}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.modify(valid()).Validate()
			if c.field == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var confErr *ConfigError
			if !errors.As(err, &confErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if confErr.Field != c.field {
				t.Errorf("error for field %q, want %q", confErr.Field, c.field)
			}
		})
	}
}

func TestOptionDefaults(t *testing.T) {
	opt := &Options{Font: "f", Destination: "d"}
	if n := opt.FileCount(); n != 1 {
		t.Errorf("FileCount() = %d, want 1", n)
	}
	source, target := opt.SourceTarget()
	if source.String() != DefaultCharset().String() || target.String() != DefaultCharset().String() {
		t.Error("default charsets not used")
	}

	opt.Count = 4
	if n := opt.FileCount(); n != 4 {
		t.Errorf("FileCount() = %d, want 4", n)
	}
}
