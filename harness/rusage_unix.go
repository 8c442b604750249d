// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package harness

import (
	"os"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// rssMultiplier converts ru_maxrss to bytes.
func rssMultiplier() uint64 {
	switch runtime.GOOS {
	case "darwin", "ios":
		return 1
	}
	return 1 << 10
}

func processUsage(ps *os.ProcessState) (time.Duration, uint64) {
	if ps == nil {
		return 0, 0
	}
	su, ok := ps.SysUsage().(*syscall.Rusage)
	if !ok || su == nil {
		return 0, 0
	}
	usage := fromStdUsage(su)
	cpu := unix.TimevalToNsec(usage.Utime) + unix.TimevalToNsec(usage.Stime)
	return time.Duration(cpu), uint64(usage.Maxrss) * rssMultiplier()
}

func fromStdUsage(su *syscall.Rusage) *unix.Rusage {
	return &unix.Rusage{
		Utime:  unix.Timeval{Sec: su.Utime.Sec, Usec: su.Utime.Usec},
		Stime:  unix.Timeval{Sec: su.Stime.Sec, Usec: su.Stime.Usec},
		Maxrss: su.Maxrss,
	}
}
