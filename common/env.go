// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Env is an immutable, layered set of environment variables. Each call to
// Set produces a new layer that shadows its parent, so the compiler and the
// benchmark binary can derive their own environments from the same base.
type Env struct {
	parent *Env
	data   map[string]string
}

func varsToMap(vars ...string) (map[string]string, error) {
	env := make(map[string]string, len(vars))
	for _, v := range vars {
		k, val, ok := strings.Cut(v, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%q is not a valid environment variable", v)
		}
		env[k] = val
	}
	return env, nil
}

// NewEnvFromEnviron returns the process environment as an Env.
func NewEnvFromEnviron() *Env {
	return fromEnviron(os.Environ())
}

// fromEnviron keeps every well-formed entry of vars. Entries without a
// name, such as the per-drive =C:=C:\ variables on Windows, are skipped.
func fromEnviron(vars []string) *Env {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		k, val, ok := strings.Cut(v, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = val
	}
	return &Env{data: m}
}

func NewEnv(vars ...string) (*Env, error) {
	m, err := varsToMap(vars...)
	if err != nil {
		return nil, err
	}
	return &Env{data: m}, nil
}

func (e *Env) Set(vars ...string) (*Env, error) {
	m, err := varsToMap(vars...)
	if err != nil {
		return nil, err
	}
	return &Env{data: m, parent: e}, nil
}

func (e *Env) MustSet(vars ...string) *Env {
	env, err := e.Set(vars...)
	if err != nil {
		panic(err)
	}
	return env
}

func (e *Env) Lookup(name string) (string, bool) {
	for t := e; t != nil; t = t.parent {
		if v, ok := t.data[name]; ok {
			return v, true
		}
	}
	return "", false
}

// PrependList adds dir to the front of the list-valued variable name
// (e.g. LD_LIBRARY_PATH), creating it if it is unset or empty.
func (e *Env) PrependList(name, dir string) *Env {
	v, ok := e.Lookup(name)
	if ok && v != "" {
		dir = dir + string(os.PathListSeparator) + v
	}
	return e.MustSet(name + "=" + dir)
}

// Collapse flattens all layers into a sorted KEY=VALUE list suitable for
// exec.Cmd.Env.
func (e *Env) Collapse() []string {
	c := make(map[string]string)
	for t := e; t != nil; t = t.parent {
		for k, v := range t.data {
			if _, ok := c[k]; !ok {
				c[k] = v
			}
		}
	}
	env := make([]string, 0, len(c))
	for k, v := range c {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}
