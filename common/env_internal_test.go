// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"reflect"
	"testing"
)

func TestFromEnviron(t *testing.T) {
	env := fromEnviron([]string{`=C:=C:\work`, "=ExitCode=00000000", "PATH=/usr/bin", "BROKEN", "EMPTY="})
	want := []string{"EMPTY=", "PATH=/usr/bin"}
	if got := env.Collapse(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	got := env.PrependList("LD_LIBRARY_PATH", "fmt").Collapse()
	want = []string{"EMPTY=", "LD_LIBRARY_PATH=fmt", "PATH=/usr/bin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
