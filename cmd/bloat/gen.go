// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/fmtlib/format-benchmark/common/log"
	"github.com/fmtlib/format-benchmark/generator"
)

const genLongDesc = `Generate the synthetic C++ project without building it.

Writes N translation units, a header declaring every generated function and
a main unit calling all of them. Files from an earlier generation with the
same prefix are removed first.`

type genCmd struct {
	gen   generator.Config
	quiet bool
}

func (*genCmd) Name() string     { return "gen" }
func (*genCmd) Synopsis() string { return "Generates the benchmark sources only." }
func (*genCmd) PrintUsage(w io.Writer, base string) {
	fmt.Fprintln(w, genLongDesc)
	fmt.Fprintf(w, "\nUsage: %s gen [flags]\n", base)
}

func (c *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.gen.Dir, "dir", ".", "directory to write the sources to")
	f.StringVar(&c.gen.Prefix, "prefix", generator.DefaultPrefix, "file name prefix of the generated sources")
	f.IntVar(&c.gen.Units, "n", 100, "number of translation units")
	f.BoolVar(&c.quiet, "quiet", false, "whether to suppress activity output on stderr")
}

func (c *genCmd) Run(args []string) error {
	log.SetActivityLog(!c.quiet)
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	if err := generator.CheckPrefix(c.gen.Prefix); err != nil {
		return err
	}
	_, err := generator.Generate(&c.gen)
	return err
}
