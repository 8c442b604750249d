// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness drives the external tools involved in one benchmark:
// the C++ compiler, the strip tool and the produced binary.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/fmtlib/format-benchmark/common"
	"github.com/fmtlib/format-benchmark/common/log"
)

// DefaultStd is the C++ language standard every unit is compiled with.
const DefaultStd = "c++17"

// FindCompiler searches the directories in pathList for an executable
// called name. Symlinks to ccache are skipped: a cached build would
// measure the cache, not the compiler.
func FindCompiler(name, pathList string) (string, error) {
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		filename := filepath.Join(dir, name)
		fi, err := os.Lstat(filename)
		if err != nil {
			continue
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(filename)
			if err != nil {
				continue
			}
			if filepath.Base(target) == "ccache" {
				log.Printf("Ignoring ccache link at %s", filename)
				continue
			}
		} else if fi.IsDir() {
			continue
		}
		return filename, nil
	}
	return "", fmt.Errorf("%s not found in PATH", name)
}

type Compiler struct {
	// Tool is the path of the compiler driver, e.g. /usr/bin/g++.
	Tool string

	// Std is the value of -std=, DefaultStd if empty.
	Std string

	// IncludeDir is added to the include path ahead of all other flags.
	IncludeDir string

	// Env is the compiler's environment, the process environment if nil.
	Env *common.Env
}

// Build holds the measurements of one compiler invocation.
type Build struct {
	// Time is the wall-clock duration of the invocation.
	Time time.Duration

	// CPUTime is the user+sys time of the compiler process and its
	// children, zero where unavailable.
	CPUTime time.Duration

	// PeakRSS is the maximum resident set size in bytes, zero where
	// unavailable.
	PeakRSS uint64

	// Output is what the compiler printed, typically warnings.
	Output []byte
}

// Command returns the command compiling sources into out. Flags follow
// the sources, in the order given.
func (c *Compiler) Command(out string, sources []string, flags ...string) *exec.Cmd {
	std := c.Std
	if std == "" {
		std = DefaultStd
	}
	args := []string{"-std=" + std, "-o", out}
	if c.IncludeDir != "" {
		args = append(args, "-I"+c.IncludeDir)
	}
	args = append(args, sources...)
	args = append(args, flags...)
	cmd := exec.Command(c.Tool, args...)
	if c.Env != nil {
		cmd.Env = c.Env.Collapse()
	}
	return cmd
}

// Compile runs the compiler once and times it. A stale out is removed
// first so a failed build can never be measured. Compiler output goes to
// the activity log on success and into the error on failure.
func (c *Compiler) Compile(out string, sources []string, flags ...string) (*Build, error) {
	if err := os.Remove(out); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	cmd := c.Command(out, sources, flags...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	log.TraceCommand(cmd)

	t0 := time.Now()
	err := cmd.Run()
	elapsed := time.Since(t0)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w. output:\n%s", out, err, output.Bytes())
	}
	b := &Build{Time: elapsed}
	if output.Len() != 0 {
		b.Output = output.Bytes()
		log.Print(output.String())
	}
	b.CPUTime, b.PeakRSS = processUsage(cmd.ProcessState)
	return b, nil
}
