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

// Protext generates re-keyed fonts and rewrites HTML templates so that the
// marked text can only be read with these fonts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"golang.org/x/term"

	"seehuhn.de/go/protext"
	"seehuhn.de/go/protext/compiler"
	"seehuhn.de/go/protext/encoder"
	"seehuhn.de/go/protext/internal/buildinfo"
	"seehuhn.de/go/protext/internal/profile"
)

// templateExt is removed from template names to form the output names.
const templateExt = ".tmpl"

type config struct {
	font       string
	dest       string
	count      int
	family     string
	source     string
	target     string
	stream     bool
	output     string
	trace      string
	text       string
	cpuprofile string
	memprofile string
	version    bool

	templates []string
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.version {
		fmt.Println(buildinfo.Long("protext"))
		return
	}

	setupTracing(cfg.trace)
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	flags := flag.NewFlagSet("protext", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.font, "font", "", "source font `file` or name of an installed font")
	flags.StringVar(&cfg.dest, "dest", "", "destination `directory`")
	flags.IntVar(&cfg.count, "count", 1, "number of font files to generate")
	flags.StringVar(&cfg.family, "family", "", "fallback font `family` for the style sheet")
	flags.StringVar(&cfg.source, "source", "", "source `characters` (default letters and digits)")
	flags.StringVar(&cfg.target, "target", "", "target `characters` (default letters and digits)")
	flags.BoolVar(&cfg.stream, "stream", false, "process templates without reading them into memory")
	flags.StringVar(&cfg.output, "o", "", "output `file` (only for a single template)")
	flags.StringVar(&cfg.trace, "trace", "error", "trace `level` (error, info or debug)")
	flags.StringVar(&cfg.text, "text", "", "print the encoded form of `string`")
	flags.StringVar(&cfg.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&cfg.memprofile, "memprofile", "", "write memory profile to `file`")
	flags.BoolVar(&cfg.version, "version", false, "print version information and exit")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "protext \u2014 obfuscate text in HTML documents\n")
		fmt.Fprintf(stderr, "%s\n\n", buildinfo.Short("protext"))
		fmt.Fprintf(stderr, "Usage:\n")
		fmt.Fprintf(stderr, "  protext -font <font> -dest <dir> [options] [template...]\n\n")
		fmt.Fprintf(stderr, "Arguments:\n")
		fmt.Fprintf(stderr, "  template   HTML template; x.html.tmpl is written to <dir>/x.html\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  protext -font DejaVuSans.ttf -dest public index.html.tmpl\n")
		fmt.Fprintf(stderr, "  protext -font Go-Regular.ttf -dest public -count 4 -stream -o public/a/b.html b.html.tmpl\n")
	}

	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}
	cfg.templates = flags.Args()

	if cfg.version {
		return cfg, nil
	}
	if cfg.font == "" || cfg.dest == "" {
		flags.Usage()
		return nil, &protext.UsageError{Reason: "-font and -dest are required"}
	}
	if cfg.output != "" && len(cfg.templates) != 1 {
		return nil, &protext.UsageError{Reason: "-o requires exactly one template"}
	}
	return cfg, nil
}

func setupTracing(level string) {
	tracer := logrusadapter.New()
	tracer.SetOutput(os.Stderr)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

func run(cfg *config, stdout io.Writer) error {
	stop, err := profile.Start(cfg.cpuprofile, cfg.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			protext.Tracer().Errorf("%v", err)
		}
	}()

	enc, err := compiler.Compile(cfg.options())
	if err != nil {
		return err
	}
	progress := isTerminal(stdout)
	if progress {
		fmt.Fprintf(stdout, "generated %d font files in %s\n",
			len(enc.Fonts()), filepath.Join(cfg.dest, protext.FontDir))
	}

	if cfg.text != "" {
		fmt.Fprintln(stdout, enc.EncodeText(cfg.text))
	}

	for _, tmpl := range cfg.templates {
		output := cfg.output
		if output == "" {
			output = outputName(tmpl, cfg.dest)
		}
		err := encodeOne(enc, tmpl, output, cfg.stream)
		if err != nil {
			return err
		}
		if progress {
			fmt.Fprintf(stdout, "%s -> %s\n", tmpl, output)
		}
	}
	return nil
}

func encodeOne(enc *encoder.Encoder, tmpl, output string, stream bool) error {
	if stream {
		return enc.EncodeStream(tmpl, output)
	}
	return enc.EncodeFile(tmpl, output)
}

// options converts the command line flags into compiler options.
// Unset character sets default to letters and digits.
func (cfg *config) options() *protext.Options {
	opt := &protext.Options{
		Font:        cfg.font,
		Destination: cfg.dest,
		Count:       cfg.count,
		FontFamily:  cfg.family,
	}
	if cfg.source != "" || cfg.target != "" {
		source := protext.DefaultCharset()
		if cfg.source != "" {
			source = protext.ParseCharset(cfg.source)
		}
		target := protext.DefaultCharset()
		if cfg.target != "" {
			target = protext.ParseCharset(cfg.target)
		}
		opt.Charsets = &protext.Charsets{Source: source, Target: target}
	}
	return opt
}

// outputName returns the default output file for a template:
// the base name of the template without the ".tmpl" extension, inside
// the destination directory.
func outputName(tmpl, dest string) string {
	base := strings.TrimSuffix(filepath.Base(tmpl), templateExt)
	return filepath.Join(dest, base)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
