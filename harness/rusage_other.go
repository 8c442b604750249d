// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package harness

import (
	"os"
	"time"
)

func processUsage(*os.ProcessState) (time.Duration, uint64) {
	return 0, 0
}
