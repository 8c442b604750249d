// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subcommands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fmtlib/format-benchmark/common"
)

const (
	usageHeader = `bloat %s: compile time and binary size of C++ formatting libraries

`
	usageTop = `bloat generates a synthetic C++ project of many translation units that all
format the same lines of text, compiles it once for each formatting method
(printf, IOStreams, fmt, tinyformat, Boost Format, ...), checks that every
resulting program prints identical output, and reports compile time and
executable size before and after stripping.

Usage: %s <subcommand> [subcommand flags] [subcommand args]

Subcommands:
`
)

var (
	base string
	cmds []*command
	out  io.Writer
)

func init() {
	base = filepath.Base(os.Args[0])
	out = os.Stderr
}

// SetOutput redirects usage and error messages, os.Stderr by default.
func SetOutput(w io.Writer) {
	out = w
}

type command struct {
	Command
	flags *flag.FlagSet
}

func (c *command) usage() {
	fmt.Fprintf(out, usageHeader, common.Version)
	c.PrintUsage(out, base)
	c.flags.PrintDefaults()
}

type Command interface {
	Name() string
	Synopsis() string
	PrintUsage(w io.Writer, base string)
	SetFlags(f *flag.FlagSet)
	Run(args []string) error
}

func Register(cmd Command) {
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	c := &command{
		Command: cmd,
		flags:   f,
	}
	f.Usage = func() {
		c.usage()
	}
	cmds = append(cmds, c)
}

func usage() {
	fmt.Fprintf(out, usageHeader, common.Version)
	fmt.Fprintf(out, usageTop, base)
	maxnamelen := 10
	for _, c := range cmds {
		if l := utf8.RuneCountInString(c.Name()); l > maxnamelen {
			maxnamelen = l
		}
	}
	for _, c := range cmds {
		fmt.Fprintf(out, "  %*s: %s\n", maxnamelen, c.Name(), c.Synopsis())
	}
}

// Run dispatches args (without the program name) to the registered
// subcommand and returns the process exit code.
func Run(args []string) int {
	if len(args) < 1 {
		usage()
		return 1
	}
	subcmd := args[0]
	if subcmd == "help" {
		if len(args) >= 2 {
			for _, cmd := range cmds {
				if cmd.Name() == args[1] {
					cmd.flags.SetOutput(out)
					cmd.usage()
					return 0
				}
			}
		}
		usage()
		return 0
	}
	var chosen *command
	for _, cmd := range cmds {
		if cmd.Name() == subcmd {
			chosen = cmd
			break
		}
	}
	if chosen == nil {
		fmt.Fprintf(out, "unknown subcommand: %q\n", subcmd)
		fmt.Fprintln(out)
		usage()
		return 1
	}
	chosen.flags.SetOutput(out)
	if err := chosen.flags.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if err := chosen.Run(chosen.flags.Args()); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return 1
	}
	return 0
}
