// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fmtlib/format-benchmark/common"
)

type configCmd struct {
	sel selection
	out io.Writer
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "Prints the effective configuration as TOML." }
func (*configCmd) PrintUsage(w io.Writer, base string) {
	fmt.Fprintln(w, "Print the configurations and methods run would use, after applying -config,")
	fmt.Fprintln(w, "-configs and -methods. The output is a valid -config file.")
	fmt.Fprint(w, common.ConfigHelp)
	fmt.Fprintf(w, "\nUsage: %s config [flags]\n", base)
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	c.sel.setFlags(f)
}

func (c *configCmd) Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	cfgFile, err := c.sel.load()
	if err != nil {
		return err
	}
	b, err := common.ConfigFileMarshalTOML(cfgFile)
	if err != nil {
		return err
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err = out.Write(b)
	return err
}
