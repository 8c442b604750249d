// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common_test

import (
	"os"
	"reflect"
	"testing"

	"github.com/fmtlib/format-benchmark/common"
)

func TestEnv(t *testing.T) {
	tryLookup := func(t *testing.T, env *common.Env, try, expect string) {
		t.Helper()
		if v, ok := env.Lookup(try); !ok {
			t.Fatalf("expected to find variable %q", try)
		} else if v != expect {
			t.Fatalf("expected value %q for %q, got %q", expect, try, v)
		}
	}
	tryBadLookup := func(t *testing.T, env *common.Env, try string) {
		t.Helper()
		if v, ok := env.Lookup(try); ok {
			t.Fatalf("expected to not find variable %q, got %q", try, v)
		}
	}

	env, err := common.NewEnv("CXX=g++", "LD_LIBRARY_PATH=/usr/local/lib")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	t.Run("BadCreate", func(t *testing.T) {
		if _, err := common.NewEnv("CXX", "A=1"); err == nil {
			t.Fatal("expected error due to bad input")
		}
		if _, err := common.NewEnv("=1"); err == nil {
			t.Fatal("expected error due to empty name")
		}
	})
	t.Run("BadSet", func(t *testing.T) {
		if _, err := env.Set("NOEQUALS"); err == nil {
			t.Fatal("expected error due to bad input")
		}
	})
	t.Run("Lookup", func(t *testing.T) {
		tryLookup(t, env, "CXX", "g++")
		tryBadLookup(t, env, "STRIP")
	})
	t.Run("Set", func(t *testing.T) {
		env2 := env.MustSet("CXX=clang++", "STRIP=llvm-strip")
		tryLookup(t, env2, "CXX", "clang++")
		tryLookup(t, env2, "STRIP", "llvm-strip")
		tryLookup(t, env2, "LD_LIBRARY_PATH", "/usr/local/lib")
		tryLookup(t, env, "CXX", "g++")
		tryBadLookup(t, env, "STRIP")
		want := []string{"CXX=clang++", "LD_LIBRARY_PATH=/usr/local/lib", "STRIP=llvm-strip"}
		if got := env2.Collapse(); !reflect.DeepEqual(got, want) {
			t.Fatalf("on collapse got %v, expected %v", got, want)
		}
	})
	t.Run("PrependList", func(t *testing.T) {
		sep := string(os.PathListSeparator)
		tryLookup(t, env.PrependList("LD_LIBRARY_PATH", "fmt"), "LD_LIBRARY_PATH", "fmt"+sep+"/usr/local/lib")
		tryLookup(t, env.PrependList("DYLD_LIBRARY_PATH", "fmt"), "DYLD_LIBRARY_PATH", "fmt")
		empty := env.MustSet("LD_LIBRARY_PATH=")
		tryLookup(t, empty.PrependList("LD_LIBRARY_PATH", "fmt"), "LD_LIBRARY_PATH", "fmt")
		tryLookup(t, env, "LD_LIBRARY_PATH", "/usr/local/lib")
	})
}
