// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generator writes the synthetic C++ project that bloat compiles:
// a number of translation units instantiating the same formatting code, a
// header declaring every generated function and a main unit calling them.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fmtlib/format-benchmark/common/log"
)

// DefaultPrefix is prepended to every generated file name.
const DefaultPrefix = "_bloat_test_tmp_"

type Config struct {
	// Dir is the directory the sources are written to.
	Dir string

	// Prefix is prepended to every generated file name, DefaultPrefix if
	// empty. It may not contain path separators or glob metacharacters.
	Prefix string

	// Units is the number of translation units to generate.
	Units int
}

func (c *Config) prefix() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}

// Output returns the path of the binary built from the generated sources.
func (c *Config) Output() string {
	return filepath.Join(c.Dir, c.prefix()+".out")
}

// Clean removes the sources generated for c.
func (c *Config) Clean() error {
	return Clean(c.Dir, c.prefix())
}

// CheckPrefix reports whether prefix can name generated files.
func CheckPrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("empty file name prefix")
	}
	if strings.ContainsAny(prefix, `*?[\/`) || strings.ContainsRune(prefix, filepath.Separator) {
		return fmt.Errorf("invalid file name prefix %q: contains a path separator or glob metacharacter", prefix)
	}
	return nil
}

// Sources describes a generated project.
type Sources struct {
	// Main is the path of the unit defining main.
	Main string

	// Header is the path of the header declaring all generated functions.
	Header string

	// Units holds the paths of the generated translation units in index
	// order.
	Units []string

	// Funcs holds the names of all generated functions in call order.
	Funcs []string
}

// Files returns the source files to pass to the compiler.
func (s *Sources) Files() []string {
	return append([]string{s.Main}, s.Units...)
}

func unitSuffix(i int) string {
	return fmt.Sprintf("%03d", i)
}

// FuncName returns the name of formatting function group in unit i.
func FuncName(group string, i int) string {
	return funcPlaceholder + group + unitSuffix(i)
}

func mainName(prefix string) string   { return prefix + "main.cc" }
func headerName(prefix string) string { return prefix + "all.h" }

// isUnit reports whether name is a generated unit file for prefix.
func isUnit(name, prefix string) bool {
	idx, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return false
	}
	idx, ok = strings.CutSuffix(idx, ".cc")
	if !ok || len(idx) < 3 {
		return false
	}
	for _, r := range idx {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Clean removes files left in dir by a previous generation with the same
// prefix: numbered units, the main unit and the header. Other files are
// never touched.
func Clean(dir, prefix string) error {
	if err := CheckPrefix(prefix); err != nil {
		return err
	}
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && isUnit(e.Name(), prefix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	files = append(files, filepath.Join(dir, mainName(prefix)), filepath.Join(dir, headerName(prefix)))
	for _, f := range files {
		err := os.Remove(f)
		if err == nil {
			log.CommandPrintf("rm %s", f)
			continue
		}
		if !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// unit instantiates the template for translation unit i. The numeric
// placeholder is rewritten before the functions are renamed, so indices
// that contain the placeholder cannot leak into function names.
func unit(i int) string {
	text := strings.ReplaceAll(unitTemplate, numberPlaceholder, strconv.Itoa(i))
	for _, g := range groups {
		text = strings.ReplaceAll(text, funcPlaceholder+g, FuncName(g, i))
	}
	if i == 0 {
		text = "#define FIRST_FILE\n" + text
	}
	return text
}

// Generate writes cfg.Units translation units plus a header and a main unit
// into cfg.Dir, replacing any previously generated sources. Output is fully
// determined by cfg.
func Generate(cfg *Config) (*Sources, error) {
	if cfg.Units < 1 {
		return nil, fmt.Errorf("number of translation units must be positive, got %d", cfg.Units)
	}
	prefix := cfg.prefix()
	if err := Clean(cfg.Dir, prefix); err != nil {
		return nil, fmt.Errorf("removing old sources: %w", err)
	}

	s := &Sources{
		Main:   filepath.Join(cfg.Dir, mainName(prefix)),
		Header: filepath.Join(cfg.Dir, headerName(prefix)),
	}
	var main, header strings.Builder
	fmt.Fprintf(&main, "\n#include \"%s\"\n\nint main() {\n", headerName(prefix))
	for i := 0; i < cfg.Units; i++ {
		path := filepath.Join(cfg.Dir, prefix+unitSuffix(i)+".cc")
		if err := os.WriteFile(path, []byte(unit(i)), 0o644); err != nil {
			return nil, err
		}
		s.Units = append(s.Units, path)
		for _, g := range groups {
			name := FuncName(g, i)
			s.Funcs = append(s.Funcs, name)
			fmt.Fprintf(&main, "%s();\n", name)
			fmt.Fprintf(&header, "void %s();\n", name)
		}
	}
	main.WriteString("}\n")
	if err := os.WriteFile(s.Main, []byte(main.String()), 0o644); err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.Header, []byte(header.String()), 0o644); err != nil {
		return nil, err
	}
	log.Printf("Generated %d translation units, main in %s", cfg.Units, s.Main)
	return s, nil
}
