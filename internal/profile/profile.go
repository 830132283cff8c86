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

// Package profile writes pprof profiles for the protext command line tool.
package profile

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"seehuhn.de/go/protext"
	"seehuhn.de/go/protext/internal/atomicfile"
)

// Start begins CPU profiling, if cpuprofile is non-empty.  The returned
// function stops CPU profiling and writes the heap profile to memprofile,
// if memprofile is non-empty.
func Start(cpuprofile, memprofile string) (stop func() error, err error) {
	var cpuFile *os.File
	if cpuprofile != "" {
		cpuFile, err = os.Create(cpuprofile)
		if err != nil {
			return nil, &protext.IOError{Op: "create", Path: cpuprofile, Err: err}
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			cpuFile.Close()
			return nil, fmt.Errorf("cannot start CPU profile: %w", err)
		}
		protext.Tracer().Debugf("writing CPU profile to %s", cpuprofile)
	}

	stop = func() error {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			err := cpuFile.Close()
			if err != nil {
				return &protext.IOError{Op: "write", Path: cpuprofile, Err: err}
			}
		}
		if memprofile == "" {
			return nil
		}

		runtime.GC()
		err := atomicfile.Write(memprofile, func(w io.Writer) error {
			return pprof.Lookup("heap").WriteTo(w, 0)
		})
		if err != nil {
			return &protext.IOError{Op: "write", Path: memprofile, Err: err}
		}
		return nil
	}
	return stop, nil
}
