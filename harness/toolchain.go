// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import "github.com/fmtlib/format-benchmark/common"

// Toolchain builds, measures and runs the generated project. Every build
// overwrites the same Output binary.
type Toolchain struct {
	Compiler *Compiler

	// Strip is the strip tool, "strip" if empty.
	Strip string

	// Sources are the files passed to every compiler invocation.
	Sources []string

	// Output is the path of the produced binary.
	Output string

	// ExtraArgs are appended verbatim to every compiler command line.
	ExtraArgs []string

	// ExecEnv is the environment of the produced binary.
	ExecEnv *common.Env
}

// Build compiles the sources with flags followed by ExtraArgs.
func (t *Toolchain) Build(flags []string) (*Build, error) {
	all := make([]string, 0, len(flags)+len(t.ExtraArgs))
	all = append(all, flags...)
	all = append(all, t.ExtraArgs...)
	return t.Compiler.Compile(t.Output, t.Sources, all...)
}

func (t *Toolchain) Inspect() (*Sizes, error) {
	strip := t.Strip
	if strip == "" {
		strip = "strip"
	}
	return Inspect(t.Output, strip)
}

func (t *Toolchain) Execute() ([]byte, error) {
	return Execute(t.Output, t.ExecEnv)
}
