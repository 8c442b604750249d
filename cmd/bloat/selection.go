// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"strings"

	"github.com/fmtlib/format-benchmark/common"
)

type csvFlag []string

func (c *csvFlag) String() string {
	return strings.Join([]string(*c), ",")
}

func (c *csvFlag) Set(input string) error {
	*c = strings.Split(input, ",")
	return nil
}

// selection picks the configurations and methods to benchmark.
type selection struct {
	configFile string
	configs    csvFlag
	methods    csvFlag
}

func (s *selection) setFlags(f *flag.FlagSet) {
	f.StringVar(&s.configFile, "config", "", "TOML file describing configurations and methods (default: built-in list)")
	f.Var(&s.configs, "configs", "comma-separated list of configurations to run, enabling disabled ones")
	f.Var(&s.methods, "methods", "comma-separated list of methods to run, enabling disabled ones")
}

func (s *selection) load() (*common.ConfigFile, error) {
	cfgFile := common.DefaultConfigFile()
	if s.configFile != "" {
		var err error
		cfgFile, err = common.LoadConfigFile(s.configFile)
		if err != nil {
			return nil, err
		}
	}
	if err := cfgFile.Select(s.configs, s.methods); err != nil {
		return nil, err
	}
	return cfgFile, nil
}
