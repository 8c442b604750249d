// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"

	"github.com/fmtlib/format-benchmark/common"
	"github.com/fmtlib/format-benchmark/common/log"
	"github.com/fmtlib/format-benchmark/driver"
	"github.com/fmtlib/format-benchmark/generator"
	"github.com/fmtlib/format-benchmark/harness"
)

const runLongDesc = `Generate the C++ project, build it once per configuration, method and
repetition, check that every binary prints the same output, and print a
reStructuredText table of the fastest compile time and the executable size
before and after stripping.

Arguments after the flags are passed to every compiler invocation, after the
configuration and method flags.`

type runCmd struct {
	gen      generator.Config
	sel      selection
	count    int
	cxx      string
	strip    string
	std      string
	include  string
	libDir   string
	cxxflags string
	quiet    bool
	printCmd bool
	clean    bool

	// out receives progress and results, os.Stdout if nil.
	out io.Writer
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Builds and measures every method." }
func (*runCmd) PrintUsage(w io.Writer, base string) {
	fmt.Fprintln(w, runLongDesc)
	fmt.Fprint(w, common.ConfigHelp)
	fmt.Fprintf(w, "\nUsage: %s run [flags] [compiler args...]\n", base)
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gen.Dir, "dir", ".", "directory to write the sources and the binary to")
	f.StringVar(&c.gen.Prefix, "prefix", generator.DefaultPrefix, "file name prefix of the generated sources and binary")
	f.IntVar(&c.gen.Units, "n", 100, "number of translation units")
	f.IntVar(&c.count, "count", 1, "the number of times to build each method; the fastest build is reported")
	f.StringVar(&c.cxx, "cxx", "", "C++ compiler (default: first non-ccache g++ in PATH)")
	f.StringVar(&c.strip, "strip", "strip", "the strip tool")
	f.StringVar(&c.std, "std", harness.DefaultStd, "C++ language standard")
	f.StringVar(&c.include, "I", ".", "include directory added ahead of all flags")
	f.StringVar(&c.libDir, "lib-dir", "fmt", "directory prepended to LD_LIBRARY_PATH when running the binaries")
	f.StringVar(&c.cxxflags, "cxxflags", "", "shell-quoted extra compiler arguments")
	f.BoolVar(&c.quiet, "quiet", false, "whether to suppress activity output on stderr (no effect on -shell)")
	f.BoolVar(&c.printCmd, "shell", false, "whether to print the commands being executed to stdout")
	f.BoolVar(&c.clean, "clean", false, "whether to remove the generated sources and binary afterwards")
	c.sel.setFlags(f)
}

func (c *runCmd) compiler() (*harness.Compiler, error) {
	tool := c.cxx
	if tool == "" {
		var err error
		tool, err = harness.FindCompiler("g++", os.Getenv("PATH"))
		if err != nil {
			return nil, err
		}
	}
	log.Printf("Using compiler %s", tool)
	include, err := filepath.Abs(c.include)
	if err != nil {
		return nil, err
	}
	return &harness.Compiler{
		Tool:       tool,
		Std:        c.std,
		IncludeDir: include,
	}, nil
}

func (c *runCmd) Run(args []string) error {
	log.SetCommandTrace(c.printCmd)
	log.SetActivityLog(!c.quiet)

	if err := generator.CheckPrefix(c.gen.Prefix); err != nil {
		return err
	}
	cfgFile, err := c.sel.load()
	if err != nil {
		return err
	}
	extra, err := shellquote.Split(c.cxxflags)
	if err != nil {
		return fmt.Errorf("parsing -cxxflags: %w", err)
	}
	extra = append(extra, args...)

	cc, err := c.compiler()
	if err != nil {
		return err
	}
	srcs, err := generator.Generate(&c.gen)
	if err != nil {
		return err
	}
	tc := &harness.Toolchain{
		Compiler:  cc,
		Strip:     c.strip,
		Sources:   srcs.Files(),
		Output:    c.gen.Output(),
		ExtraArgs: extra,
		ExecEnv:   common.NewEnvFromEnviron().PrependList("LD_LIBRARY_PATH", c.libDir),
	}
	if c.clean {
		defer func() {
			if err := c.gen.Clean(); err != nil {
				log.Error(err)
			}
			if err := os.Remove(tc.Output); err != nil && !os.IsNotExist(err) {
				log.Error(err)
			}
		}()
	}

	b := &driver.Benchmark{
		Configs: cfgFile.EnabledConfigs(),
		Methods: cfgFile.EnabledMethods(),
		Runs:    c.count,
		Out:     c.out,
	}
	if b.Out == nil {
		b.Out = os.Stdout
	}
	return b.Run(tc)
}
