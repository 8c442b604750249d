// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver runs the benchmark loop: for every configuration it builds
// the generated project once per method and repetition, checks that every
// binary prints the same output, and reports the best compile time and the
// binary sizes of each method.
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/fmtlib/format-benchmark/common"
	"github.com/fmtlib/format-benchmark/common/log"
	"github.com/fmtlib/format-benchmark/harness"
	"github.com/fmtlib/format-benchmark/report"
)

// Toolchain builds, measures and runs the generated project.
// *harness.Toolchain is the real implementation.
type Toolchain interface {
	// Build compiles the project with the given configuration and method
	// flags.
	Build(flags []string) (*harness.Build, error)

	// Inspect returns the size of the last binary before and after
	// stripping it.
	Inspect() (*harness.Sizes, error)

	// Execute runs the last binary and returns its standard output.
	Execute() ([]byte, error)
}

// Result contains the measurements for one configuration and method.
type Result struct {
	Time         time.Duration
	Size         int64
	StrippedSize int64
	CPUTime      time.Duration
	PeakRSS      uint64
}

// SizeMismatchError reports a method whose binary size changed between
// repetitions, which means the build is not reproducible and its numbers
// cannot be trusted.
type SizeMismatchError struct {
	Config, Method string
	Old, New       Result
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch for %s %s: %d/%d bytes, previously %d/%d bytes (unstripped/stripped)",
		e.Config, e.Method, e.New.Size, e.New.StrippedSize, e.Old.Size, e.Old.StrippedSize)
}

type Benchmark struct {
	Configs []*common.Config
	Methods []*common.Method

	// Runs is the number of times every method is built; the fastest
	// build is reported.
	Runs int

	// Out receives progress lines and the results tables.
	Out io.Writer

	validator harness.Validator
}

// Run benchmarks every configuration in order, printing a table after each.
// The first binary built defines the output every other binary must print.
// Any failure aborts the run before the current configuration's table is
// printed.
func (b *Benchmark) Run(tc Toolchain) error {
	if len(b.Configs) == 0 {
		return fmt.Errorf("no configurations enabled")
	}
	if len(b.Methods) == 0 {
		return fmt.Errorf("no methods enabled")
	}
	for _, cfg := range b.Configs {
		results, err := b.RunConfig(tc, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(b.Out, "%s Results:\n", cfg.Name)
		if err := report.Comparison(b.measurements(results)).Write(b.Out); err != nil {
			return err
		}
	}
	return nil
}

// RunConfig benchmarks all methods under cfg and returns their merged
// results keyed by method name.
func (b *Benchmark) RunConfig(tc Toolchain, cfg *common.Config) (map[string]*Result, error) {
	runs := b.Runs
	if runs < 1 {
		runs = 1
	}
	results := make(map[string]*Result)
	for i := 0; i < runs; i++ {
		for _, m := range b.Methods {
			fmt.Fprintln(b.Out, "Benchmarking", cfg.Name, m.Name)
			res, err := b.runOnce(tc, cfg, m)
			if err != nil {
				return nil, err
			}
			old, ok := results[m.Name]
			if !ok {
				results[m.Name] = res
				continue
			}
			if err := merge(old, res); err != nil {
				err.Config, err.Method = cfg.Name, m.Name
				return nil, err
			}
		}
	}
	return results, nil
}

func (b *Benchmark) runOnce(tc Toolchain, cfg *common.Config, m *common.Method) (*Result, error) {
	flags := make([]string, 0, len(cfg.Flags)+len(m.Flags))
	flags = append(flags, cfg.Flags...)
	flags = append(flags, m.Flags...)

	build, err := tc.Build(flags)
	if err != nil {
		return nil, fmt.Errorf("build %s for %s: %w", m.Name, cfg.Name, err)
	}
	fmt.Fprintf(b.Out, "Compile time: %.2fs\n", build.Time.Seconds())
	if build.CPUTime != 0 {
		log.Printf("CPU time: %.2fs, peak RSS: %d KiB", build.CPUTime.Seconds(), report.ToKiB(int64(build.PeakRSS)))
	}

	sizes, err := tc.Inspect()
	if err != nil {
		return nil, fmt.Errorf("inspect %s for %s: %w", m.Name, cfg.Name, err)
	}
	fmt.Fprintf(b.Out, "Size: %d\n", sizes.Size)
	fmt.Fprintf(b.Out, "Stripped size: %d\n", sizes.Stripped)

	output, err := tc.Execute()
	if err != nil {
		return nil, fmt.Errorf("run %s for %s: %w", m.Name, cfg.Name, err)
	}
	if err := b.validator.Check(m.Name, output); err != nil {
		return nil, err
	}
	return &Result{
		Time:         build.Time,
		Size:         sizes.Size,
		StrippedSize: sizes.Stripped,
		CPUTime:      build.CPUTime,
		PeakRSS:      build.PeakRSS,
	}, nil
}

// merge folds a repeated measurement cur into old, keeping the fastest build.
// Sizes must not change between repetitions.
func merge(old, cur *Result) *SizeMismatchError {
	if cur.Size != old.Size || cur.StrippedSize != old.StrippedSize {
		return &SizeMismatchError{Old: *old, New: *cur}
	}
	if cur.Time < old.Time {
		old.Time = cur.Time
		old.CPUTime = cur.CPUTime
		old.PeakRSS = cur.PeakRSS
	}
	return nil
}

func (b *Benchmark) measurements(results map[string]*Result) []report.Measurement {
	ms := make([]report.Measurement, 0, len(b.Methods))
	for _, m := range b.Methods {
		r := results[m.Name]
		ms = append(ms, report.Measurement{
			Method:       m.Name,
			Time:         r.Time,
			Size:         r.Size,
			StrippedSize: r.StrippedSize,
		})
	}
	return ms
}
