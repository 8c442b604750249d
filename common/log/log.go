// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log provides the two output channels used by bloat: a shell-style
// trace of every external command on stdout, and an activity log on stderr.
package log

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

var (
	cmdLog, actLog *log.Logger
	cmdOn, actOn   = false, false
	envMap         map[string]string
)

func init() {
	cmdLog = log.New(os.Stdout, "[shell] ", 0)
	actLog = log.New(os.Stderr, "[bloat] ", 0)
	envMap = makeEnvironMap()
}

func makeEnvironMap() map[string]string {
	envmap := make(map[string]string)
	for _, e := range os.Environ() {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		envmap[k] = v
	}
	return envmap
}

func SetCommandTrace(on bool) {
	cmdOn = on
}

func SetActivityLog(on bool) {
	actOn = on
}

// filterAndQuoteEnviron drops variables inherited unchanged from the
// process environment so that a trace only shows the overrides.
func filterAndQuoteEnviron(env []string) []string {
	fenv := make([]string, 0, len(env))
	for _, e := range env {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		if ov, ok := envMap[k]; ok && ov == v {
			continue
		}
		fenv = append(fenv, fmt.Sprintf("%s=%s", k, shellquote.Join(v)))
	}
	return fenv
}

// CommandLine renders cmd as a line that could be pasted into a shell.
func CommandLine(cmd *exec.Cmd) string {
	sarg := shellquote.Join(cmd.Args...)
	if len(cmd.Env) == 0 {
		return sarg
	}
	senv := strings.Join(filterAndQuoteEnviron(cmd.Env), " ")
	if senv == "" {
		return sarg
	}
	return senv + " " + sarg
}

func TraceCommand(cmd *exec.Cmd) {
	if !cmdOn {
		return
	}
	if cmd.Dir != "" {
		cmdLog.Printf("pushd %s", cmd.Dir)
	}
	cmdLog.Print(CommandLine(cmd))
	if cmd.Dir != "" {
		cmdLog.Printf("popd")
	}
}

func CommandPrintf(format string, args ...interface{}) {
	if !cmdOn {
		return
	}
	cmdLog.Printf(format, args...)
}

func Printf(format string, args ...interface{}) {
	if !actOn {
		return
	}
	actLog.Printf(format, args...)
}

func Print(args ...interface{}) {
	if !actOn {
		return
	}
	actLog.Print(args...)
}

func Error(err error) {
	actLog.Printf("error: %v", err)
	if e, ok := err.(*exec.ExitError); ok && len(e.Stderr) != 0 {
		actLog.Printf("output:\n%s", string(e.Stderr))
	}
}
