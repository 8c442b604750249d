// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

import (
	"bytes"
	"fmt"
)

// MismatchError reports a binary whose output differs from the reference.
type MismatchError struct {
	Method    string // method that produced the diverging output
	Reference string // method that produced the reference output
	Offset    int    // index of the first differing byte
	Got, Want int    // output lengths
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("output of %s doesn't match %s: first difference at byte %d (got %d bytes, want %d)",
		e.Method, e.Reference, e.Offset, e.Got, e.Want)
}

// Validator checks that every method prints exactly what the first one did.
// The zero value is ready to use.
type Validator struct {
	reference string
	expected  []byte
	set       bool
}

// Check records output as the reference on the first call, and afterwards
// returns a *MismatchError unless output equals the reference byte for byte.
func (v *Validator) Check(method string, output []byte) error {
	if !v.set {
		v.reference = method
		v.expected = append([]byte(nil), output...)
		v.set = true
		return nil
	}
	if bytes.Equal(output, v.expected) {
		return nil
	}
	off := 0
	for off < len(output) && off < len(v.expected) && output[off] == v.expected[off] {
		off++
	}
	return &MismatchError{
		Method:    method,
		Reference: v.reference,
		Offset:    off,
		Got:       len(output),
		Want:      len(v.expected),
	}
}

// Expected returns the reference output, or nil before the first Check.
func (v *Validator) Expected() []byte {
	return v.expected
}
