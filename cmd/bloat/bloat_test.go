// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fmtlib/format-benchmark/common/log"
)

// fakeCxx writes a program printing a fixed line to the -o path and saves
// its own arguments next to itself.
const fakeCxx = `#!/bin/sh
printf '%s\n' "$@" > "$(dirname "$0")/args"
out=
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift;;
  esac
  shift
done
printf '#!/bin/sh\n# padding padding padding\necho formatted\n' > "$out"
chmod +x "$out"
`

const fakeStrip = `#!/bin/sh
printf '#!/bin/sh\necho formatted\n' > "$1"
`

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" || runtime.GOARCH == "wasm" {
		t.Skipf("skipping test: shell scripts not supported on %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("skipping test: no sh in PATH")
	}
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func newRunCmd(t *testing.T, dir string, args ...string) (*runCmd, []string) {
	t.Helper()
	c := &runCmd{}
	f := flag.NewFlagSet("run", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.SetFlags(f)
	if err := f.Parse(append([]string{"-dir", dir}, args...)); err != nil {
		t.Fatal(err)
	}
	return c, f.Args()
}

func TestRun(t *testing.T) {
	requireShell(t)
	tools := t.TempDir()
	work := t.TempDir()
	cxx := writeScript(t, tools, "c++", fakeCxx)
	strip := writeScript(t, tools, "strip", fakeStrip)
	t.Cleanup(func() { log.SetActivityLog(false) })

	c, args := newRunCmd(t, work,
		"-cxx", cxx, "-strip", strip, "-n", "3", "-count", "2",
		"-methods", "printf,fmt", "-cxxflags", "-DA='x y'", "-quiet",
		"--", "-DEXTRA")
	var out strings.Builder
	c.out = &out
	if err := c.Run(args); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if n := strings.Count(got, "Benchmarking optimized printf\n"); n != 2 {
		t.Errorf("printf benchmarked %d times, want 2:\n%s", n, got)
	}
	if strings.Contains(got, "IOStreams") {
		t.Errorf("unselected method was run:\n%s", got)
	}
	for _, want := range []string{"optimized Results:\n", "Method ", "printf ", "fmt "} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	b, err := os.ReadFile(filepath.Join(tools, "args"))
	if err != nil {
		t.Fatal(err)
	}
	cmdArgs := strings.Split(strings.TrimSpace(string(b)), "\n")
	tail := cmdArgs[len(cmdArgs)-3:]
	if strings.Join(tail, "|") != "-lfmt|-DA=x y|-DEXTRA" {
		t.Errorf("compiler args end in %q", tail)
	}
	for _, name := range []string{"_bloat_test_tmp_main.cc", "_bloat_test_tmp_all.h", "_bloat_test_tmp_002.cc", "_bloat_test_tmp_.out"} {
		if _, err := os.Stat(filepath.Join(work, name)); err != nil {
			t.Errorf("expected %s to be kept: %v", name, err)
		}
	}
}

func TestRunClean(t *testing.T) {
	requireShell(t)
	tools := t.TempDir()
	work := t.TempDir()
	cxx := writeScript(t, tools, "c++", fakeCxx)
	strip := writeScript(t, tools, "strip", fakeStrip)
	t.Cleanup(func() { log.SetActivityLog(false) })

	c, args := newRunCmd(t, work, "-cxx", cxx, "-strip", strip, "-n", "1", "-methods", "printf", "-quiet", "-clean")
	c.out = io.Discard
	if err := c.Run(args); err != nil {
		t.Fatal(err)
	}
	left, err := os.ReadDir(work)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range left {
		t.Errorf("%s left behind", e.Name())
	}
}

func TestRunCleanKeepsUserFiles(t *testing.T) {
	requireShell(t)
	tools := t.TempDir()
	work := t.TempDir()
	cxx := writeScript(t, tools, "c++", fakeCxx)
	strip := writeScript(t, tools, "strip", fakeStrip)
	t.Cleanup(func() { log.SetActivityLog(false) })

	user := []string{"abc.cc", "my_project.cc"}
	for _, name := range user {
		if err := os.WriteFile(filepath.Join(work, name), []byte("int x;\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	c, args := newRunCmd(t, work, "-cxx", cxx, "-strip", strip, "-n", "2", "-methods", "printf", "-quiet", "-clean", "-prefix", "a")
	c.out = io.Discard
	if err := c.Run(args); err != nil {
		t.Fatal(err)
	}
	left, err := os.ReadDir(work)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range left {
		names = append(names, e.Name())
	}
	if strings.Join(names, " ") != strings.Join(user, " ") {
		t.Errorf("got files %v after cleanup, want %v", names, user)
	}
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(func() { log.SetActivityLog(false) })
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"BadCxxflags", []string{"-cxx", "c++", "-cxxflags", "'unterminated", "-quiet"}, "-cxxflags"},
		{"UnknownMethod", []string{"-cxx", "c++", "-methods", "printf,cout", "-quiet"}, "unknown methods: cout"},
		{"EmptyPrefix", []string{"-cxx", "c++", "-prefix", "", "-quiet"}, "empty file name prefix"},
		{"GlobPrefix", []string{"-cxx", "c++", "-prefix", "*", "-quiet"}, "invalid file name prefix"},
		{"MissingConfig", []string{"-cxx", "c++", "-config", "does-not-exist.toml", "-quiet"}, "does-not-exist.toml"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, args := newRunCmd(t, t.TempDir(), tc.args...)
			c.out = io.Discard
			err := c.Run(args)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("got error %v, want one mentioning %q", err, tc.want)
			}
		})
	}
}

func TestConfigCmd(t *testing.T) {
	c := &configCmd{}
	f := flag.NewFlagSet("config", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse([]string{"-configs", "debug", "-methods", "fmt"}); err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	c.out = &out
	if err := c.Run(f.Args()); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{`name = "debug"`, `name = "fmt"`, `name = "printf"`, "disabled = true"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s:\n%s", want, got)
		}
	}
}
