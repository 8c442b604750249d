// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fmtlib/format-benchmark/common"
	"github.com/fmtlib/format-benchmark/common/log"
)

// output runs cmd and returns its standard output.
func output(cmd *exec.Cmd) ([]byte, error) {
	log.TraceCommand(cmd)
	// Use cmd.Output to get an ExitError with Stderr populated.
	out, err := cmd.Output()
	if ee, ok := err.(*exec.ExitError); ok {
		// ExitError includes stderr, but doesn't include it in Error.
		return out, fmt.Errorf("%s: %w. stderr:\n%s", filepath.Base(cmd.Path), err, ee.Stderr)
	}
	return out, err
}

// Sizes holds the size of a binary before and after stripping, in bytes.
type Sizes struct {
	Size     int64
	Stripped int64
}

func fileSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// Inspect measures binary, strips it in place with the strip tool, and
// measures it again.
func Inspect(binary, strip string) (*Sizes, error) {
	size, err := fileSize(binary)
	if err != nil {
		return nil, err
	}
	if _, err := output(exec.Command(strip, binary)); err != nil {
		return nil, err
	}
	stripped, err := fileSize(binary)
	if err != nil {
		return nil, err
	}
	return &Sizes{Size: size, Stripped: stripped}, nil
}

// Execute runs binary with env and returns everything it wrote to stdout.
// A non-zero exit status is an error.
func Execute(binary string, env *common.Env) ([]byte, error) {
	if !strings.ContainsRune(binary, filepath.Separator) {
		binary = "." + string(filepath.Separator) + binary
	}
	cmd := exec.Command(binary)
	if env != nil {
		cmd.Env = env.Collapse()
	}
	return output(cmd)
}
