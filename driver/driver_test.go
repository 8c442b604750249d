// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fmtlib/format-benchmark/common"
	"github.com/fmtlib/format-benchmark/driver"
	"github.com/fmtlib/format-benchmark/harness"
)

// method is the fake behaviour of one method, keyed by its last flag.
type method struct {
	times  []time.Duration // per build, the last one repeats
	sizes  []int64         // per build, the last one repeats
	output string
	fail   bool
}

type fakeToolchain struct {
	methods map[string]*method
	builds  [][]string
	counts  map[string]int
	current *method
	n       int
}

func newFake(methods map[string]*method) *fakeToolchain {
	return &fakeToolchain{methods: methods, counts: make(map[string]int)}
}

func pick[T any](s []T, i int) T {
	if i >= len(s) {
		return s[len(s)-1]
	}
	return s[i]
}

func (f *fakeToolchain) Build(flags []string) (*harness.Build, error) {
	f.builds = append(f.builds, append([]string(nil), flags...))
	key := flags[len(flags)-1]
	m, ok := f.methods[key]
	if !ok {
		return nil, fmt.Errorf("unknown method flag %q", key)
	}
	if m.fail {
		return nil, errors.New("exit status 1")
	}
	f.current, f.n = m, f.counts[key]
	f.counts[key]++
	return &harness.Build{Time: pick(m.times, f.n)}, nil
}

func (f *fakeToolchain) Inspect() (*harness.Sizes, error) {
	size := pick(f.current.sizes, f.n)
	return &harness.Sizes{Size: size, Stripped: size / 2}, nil
}

func (f *fakeToolchain) Execute() ([]byte, error) {
	return []byte(f.current.output), nil
}

const want = "a somefile.cpp\na somefile.cpp:0\n"

func methods(names ...string) []*common.Method {
	var ms []*common.Method
	for _, n := range names {
		ms = append(ms, &common.Method{Name: n, Flags: []string{"-DUSE_" + n}})
	}
	return ms
}

var optimized = &common.Config{Name: "optimized", Flags: []string{"-O3", "-DNDEBUG"}}

func TestRunKeepsFastestBuild(t *testing.T) {
	fake := newFake(map[string]*method{
		"-DUSE_printf": {times: []time.Duration{3 * time.Second, 2 * time.Second}, sizes: []int64{10240}, output: want},
		"-DUSE_fmt":    {times: []time.Duration{1 * time.Second, 4 * time.Second}, sizes: []int64{20480}, output: want},
	})
	var out strings.Builder
	b := &driver.Benchmark{
		Configs: []*common.Config{optimized},
		Methods: methods("printf", "fmt"),
		Runs:    2,
		Out:     &out,
	}
	results, err := b.RunConfig(fake, optimized)
	if err != nil {
		t.Fatal(err)
	}
	if got := results["printf"].Time; got != 2*time.Second {
		t.Errorf("printf: got %v, want 2s", got)
	}
	if got := results["fmt"].Time; got != 1*time.Second {
		t.Errorf("fmt: got %v, want 1s", got)
	}
	if r := results["fmt"]; r.Size != 20480 || r.StrippedSize != 10240 {
		t.Errorf("fmt: unexpected sizes %+v", r)
	}

	if len(fake.builds) != 4 {
		t.Fatalf("got %d builds, want 4", len(fake.builds))
	}
	// Repetitions are the outer loop, methods the inner one.
	order := []string{"-DUSE_printf", "-DUSE_fmt", "-DUSE_printf", "-DUSE_fmt"}
	for i, flags := range fake.builds {
		wantFlags := []string{"-O3", "-DNDEBUG", order[i]}
		if strings.Join(flags, " ") != strings.Join(wantFlags, " ") {
			t.Errorf("build %d: got flags %q, want %q", i, flags, wantFlags)
		}
	}
	for _, line := range []string{"Benchmarking optimized printf\n", "Compile time: 3.00s\n", "Size: 20480\n", "Stripped size: 10240\n"} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("progress output lacks %q:\n%s", line, out.String())
		}
	}
}

func TestRunPrintsTable(t *testing.T) {
	fake := newFake(map[string]*method{
		"-DUSE_printf": {times: []time.Duration{2540 * time.Millisecond}, sizes: []int64{53248}, output: want},
		"-DUSE_fmt":    {times: []time.Duration{5 * time.Second}, sizes: []int64{1536}, output: want},
	})
	var out strings.Builder
	b := &driver.Benchmark{
		Configs: []*common.Config{optimized},
		Methods: methods("printf", "fmt"),
		Out:     &out,
	}
	if err := b.Run(fake); err != nil {
		t.Fatal(err)
	}
	_, table, ok := strings.Cut(out.String(), "optimized Results:\n")
	if !ok {
		t.Fatalf("no results header in:\n%s", out.String())
	}
	wantTable := "" +
		"====== =============== ==================== ================== \n" +
		"Method Compile Time, s Executable size, KiB Stripped size, KiB \n" +
		"====== =============== ==================== ================== \n" +
		"printf             2.5                   52                 26 \n" +
		"fmt                5.0                    2                  1 \n" +
		"====== =============== ==================== ================== \n"
	if table != wantTable {
		t.Errorf("got table:\n%s\nwant:\n%s", table, wantTable)
	}
}

func TestRunOutputMismatch(t *testing.T) {
	fake := newFake(map[string]*method{
		"-DUSE_printf":    {times: []time.Duration{time.Second}, sizes: []int64{1024}, output: want},
		"-DUSE_IOStreams": {times: []time.Duration{time.Second}, sizes: []int64{1024}, output: strings.Replace(want, ":0", ":1", 1)},
	})
	var out strings.Builder
	b := &driver.Benchmark{
		Configs: []*common.Config{optimized},
		Methods: methods("printf", "IOStreams"),
		Out:     &out,
	}
	err := b.Run(fake)
	var me *harness.MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("expected *harness.MismatchError, got %v", err)
	}
	if me.Method != "IOStreams" || me.Reference != "printf" {
		t.Errorf("unexpected mismatch %+v", me)
	}
	if strings.Contains(out.String(), "Results:") {
		t.Errorf("table printed despite mismatch:\n%s", out.String())
	}
}

func TestRunSizeMismatch(t *testing.T) {
	fake := newFake(map[string]*method{
		"-DUSE_printf": {times: []time.Duration{time.Second}, sizes: []int64{1024}, output: want},
		"-DUSE_fmt":    {times: []time.Duration{time.Second}, sizes: []int64{4096, 4104}, output: want},
	})
	var out strings.Builder
	b := &driver.Benchmark{
		Configs: []*common.Config{optimized},
		Methods: methods("printf", "fmt"),
		Runs:    2,
		Out:     &out,
	}
	err := b.Run(fake)
	var se *driver.SizeMismatchError
	if !errors.As(err, &se) {
		t.Fatalf("expected *driver.SizeMismatchError, got %v", err)
	}
	if se.Config != "optimized" || se.Method != "fmt" || se.Old.Size != 4096 || se.New.Size != 4104 {
		t.Errorf("unexpected error %+v", se)
	}
	if strings.Contains(out.String(), "Results:") {
		t.Errorf("table printed despite size mismatch:\n%s", out.String())
	}
}

func TestRunBuildFailure(t *testing.T) {
	fake := newFake(map[string]*method{
		"-DUSE_printf": {times: []time.Duration{time.Second}, sizes: []int64{1024}, output: want},
		"-DUSE_boost":  {fail: true},
	})
	var out strings.Builder
	b := &driver.Benchmark{
		Configs: []*common.Config{optimized},
		Methods: methods("boost", "printf"),
		Out:     &out,
	}
	if err := b.Run(fake); err == nil || !strings.Contains(err.Error(), "build boost for optimized") {
		t.Fatalf("expected build failure, got %v", err)
	}
	if len(fake.builds) != 1 {
		t.Errorf("benchmark continued after a failed build: %d builds", len(fake.builds))
	}
}

func TestRunReferenceSpansConfigs(t *testing.T) {
	fake := newFake(map[string]*method{
		"-DUSE_printf": {times: []time.Duration{time.Second}, sizes: []int64{1024}, output: want},
	})
	debug := &common.Config{Name: "debug"}
	var out strings.Builder
	b := &driver.Benchmark{
		Configs: []*common.Config{optimized, debug},
		Methods: methods("printf"),
		Out:     &out,
	}
	if err := b.Run(fake); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "Results:"); n != 2 {
		t.Errorf("got %d tables, want 2", n)
	}

	fake.methods["-DUSE_printf"].output = "debug build prints something else\n"
	if err := b.Run(fake); err == nil {
		t.Error("expected the reference output to carry over to later runs")
	}
}

func TestRunNothingEnabled(t *testing.T) {
	var out strings.Builder
	b := &driver.Benchmark{Configs: []*common.Config{optimized}, Out: &out}
	if err := b.Run(newFake(nil)); err == nil {
		t.Error("expected an error with no methods")
	}
}
