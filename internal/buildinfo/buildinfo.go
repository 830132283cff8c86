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

// Package buildinfo reports the version of the protext command line tool.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// fontModule is the module which reads and writes the font files.
const fontModule = "seehuhn.de/go/sfnt"

// Short returns a one-line version string, for example
// "protext (seehuhn.de/go/protext v0.2.0)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	return format(toolName, info)
}

// Long returns the version string followed by the version of the font
// library, one item per line.
func Long(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	lines := []string{format(toolName, info)}
	for _, dep := range info.Deps {
		if dep.Path == fontModule {
			lines = append(lines, "  "+dep.Path+" "+dep.Version)
		}
	}
	lines = append(lines, "  "+info.GoVersion)
	return strings.Join(lines, "\n")
}

func format(toolName string, info *debug.BuildInfo) string {
	version := info.Main.Version
	if version != "" && version != "(devel)" {
		return toolName + " (" + info.Main.Path + " " + version + ")"
	}

	rev, dirty := revision(info.Settings)
	if rev == "" {
		return toolName
	}
	if dirty {
		rev += "+dirty"
	}
	return toolName + " (" + info.Main.Path + " " + rev + ")"
}

// revision extracts the abbreviated VCS revision from the build settings.
func revision(settings []debug.BuildSetting) (string, bool) {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	return rev, dirty
}
