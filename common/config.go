// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const ConfigHelp = `
The configuration format is TOML consisting of two array fields, 'config' and
'method'. Configurations are global build variants applied to every method;
methods are the formatting approaches under comparison. Each element of
either array consists of the following fields:
      name: a unique name for the entry (required)
     flags: compiler flags selecting the variant, e.g. preprocessor
            definitions, include paths and libraries to link (optional)
  disabled: skip this entry unless selected explicitly with -configs or
            -methods (optional)

Environment variables of the form $VAR in flags are expanded. If one of the
arrays is omitted the built-in list is used for it.

A configuration comparing two methods might look like:

[[config]]
  name = "optimized"
  flags = ["-O3", "-DNDEBUG"]

[[method]]
  name = "printf"

[[method]]
  name = "fmt"
  flags = ["-DUSE_FMT", "-Ifmt/include", "-Lfmt", "-lfmt"]
`

// Config is a global build variant such as an optimization level.
type Config struct {
	Name     string   `toml:"name"`
	Flags    []string `toml:"flags"`
	Disabled bool     `toml:"disabled,omitempty"`
}

// Method is one formatting approach under test, selected by the
// preprocessor and link flags it adds to the compiler command line.
type Method struct {
	Name     string   `toml:"name"`
	Flags    []string `toml:"flags"`
	Disabled bool     `toml:"disabled,omitempty"`
}

func (c *Config) name() string    { return c.Name }
func (c *Config) disable(d bool)  { c.Disabled = d }
func (c *Config) flags() []string { return c.Flags }
func (m *Method) name() string    { return m.Name }
func (m *Method) disable(d bool)  { m.Disabled = d }
func (m *Method) flags() []string { return m.Flags }

type entry interface {
	name() string
	disable(bool)
	flags() []string
}

type ConfigFile struct {
	Configs []*Config `toml:"config"`
	Methods []*Method `toml:"method"`
}

// DefaultConfigs is the built-in list of build variants.
func DefaultConfigs() []*Config {
	return []*Config{
		{Name: "optimized", Flags: []string{"-O3", "-DNDEBUG"}},
		{Name: "debug", Disabled: true},
	}
}

// DefaultMethods is the built-in list of formatting approaches, in report
// order. The first enabled method provides the reference output.
func DefaultMethods() []*Method {
	fmtLib := []string{"-Ifmt/include", "-Lfmt", "-lfmt"}
	return []*Method{
		{Name: "printf"},
		{Name: "printf+string", Flags: []string{"-DUSE_STRING"}},
		{Name: "IOStreams", Flags: []string{"-DUSE_IOSTREAMS"}},
		{Name: "fmt", Flags: append([]string{"-DUSE_FMT"}, fmtLib...)},
		{Name: "compiled_fmt", Flags: append([]string{"-DUSE_COMPILED_FMT"}, fmtLib...)},
		{Name: "tinyformat", Flags: []string{"-DUSE_TINYFORMAT"}},
		{Name: "Boost Format", Flags: []string{"-DUSE_BOOST"}},
		{Name: "Folly Format", Flags: []string{"-DUSE_FOLLY", "-lfolly", "-ldouble-conversion"}},
		{Name: "stb_sprintf", Flags: []string{"-DUSE_STB_SPRINTF"}},
		{Name: "pformat", Flags: []string{"-DUSE_PFORMAT"}},
	}
}

func DefaultConfigFile() *ConfigFile {
	return &ConfigFile{
		Configs: DefaultConfigs(),
		Methods: DefaultMethods(),
	}
}

// LoadConfigFile reads and validates a TOML configuration file. Arrays
// missing from the file are filled in from the defaults.
func LoadConfigFile(path string) (*ConfigFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %v", path, err)
	}
	var f ConfigFile
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", path, err)
	}
	if len(f.Configs) == 0 {
		f.Configs = DefaultConfigs()
	}
	if len(f.Methods) == 0 {
		f.Methods = DefaultMethods()
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.expandEnv()
	return &f, nil
}

func entries[T entry](s []T) []entry {
	es := make([]entry, len(s))
	for i, e := range s {
		es[i] = e
	}
	return es
}

func validate(kind string, es []entry) error {
	names := make(map[string]struct{})
	for i, e := range es {
		if e.name() == "" {
			return fmt.Errorf("%s at index %d is missing a name", kind, i)
		}
		if _, ok := names[e.name()]; ok {
			return fmt.Errorf("name of %s is not unique: %s", kind, e.name())
		}
		names[e.name()] = struct{}{}
		for _, f := range e.flags() {
			if strings.Contains(f, "~") {
				return fmt.Errorf("flag %q of %s %q contains ~, which is not expanded", f, kind, e.name())
			}
		}
	}
	return nil
}

// Validate checks that every configuration and method has a unique name.
func (f *ConfigFile) Validate() error {
	if err := validate("config", entries(f.Configs)); err != nil {
		return err
	}
	return validate("method", entries(f.Methods))
}

func (f *ConfigFile) expandEnv() {
	for _, c := range f.Configs {
		for i, s := range c.Flags {
			c.Flags[i] = os.ExpandEnv(s)
		}
	}
	for _, m := range f.Methods {
		for i, s := range m.Flags {
			m.Flags[i] = os.ExpandEnv(s)
		}
	}
}

func sel(kind string, es []entry, names []string) error {
	if len(names) == 0 {
		return nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = false
	}
	for _, e := range es {
		_, ok := want[e.name()]
		e.disable(!ok)
		if ok {
			want[e.name()] = true
		}
	}
	var unknown []string
	for _, n := range names {
		if !want[n] {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) != 0 {
		return fmt.Errorf("unknown %ss: %s", kind, strings.Join(unknown, ", "))
	}
	return nil
}

// Select enables exactly the named configurations and methods. An empty
// list leaves the corresponding Disabled fields untouched.
func (f *ConfigFile) Select(configs, methods []string) error {
	if err := sel("config", entries(f.Configs), configs); err != nil {
		return err
	}
	return sel("method", entries(f.Methods), methods)
}

func (f *ConfigFile) EnabledConfigs() []*Config {
	var cs []*Config
	for _, c := range f.Configs {
		if !c.Disabled {
			cs = append(cs, c)
		}
	}
	return cs
}

func (f *ConfigFile) EnabledMethods() []*Method {
	var ms []*Method
	for _, m := range f.Methods {
		if !m.Disabled {
			ms = append(ms, m)
		}
	}
	return ms
}

func ConfigFileMarshalTOML(f *ConfigFile) ([]byte, error) {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(f); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
