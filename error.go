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

// ConfigError indicates an invalid or missing option.
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return "protext: invalid option " + err.Field + ": " + err.Reason
}

// FontError indicates a problem with the source font, for example a missing
// glyph or a file which cannot be parsed.
type FontError struct {
	Font   string
	Reason string
	Err    error
}

func (err *FontError) Error() string {
	msg := "protext: font"
	if err.Font != "" {
		msg += " " + err.Font
	}
	msg += ": " + err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *FontError) Unwrap() error {
	return err.Err
}

// IOError indicates that reading or writing a file failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	return "protext: " + err.Op + " " + err.Path + ": " + err.Err.Error()
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// UsageError indicates that an operation was called with arguments which
// cannot work, for example streaming a file onto itself.
type UsageError struct {
	Reason string
}

func (err *UsageError) Error() string {
	return "protext: " + err.Reason
}
