// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/tagchain/tagd/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes can be distinguished
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// sentinel errors must keep their class: the checkpoint fallback and
// the short code read path branch on IsErrNotFound
func TestSentinelClasses(t *testing.T) {
	if !fault.IsErrNotFound(fault.ErrKeyNotFound) {
		t.Errorf("ErrKeyNotFound is not a not-found error")
	}
	if !fault.IsErrNotFound(fault.ErrShortCodeNotFound) {
		t.Errorf("ErrShortCodeNotFound is not a not-found error")
	}
	if fault.IsErrNotFound(fault.ErrShortCodeExpired) {
		t.Errorf("ErrShortCodeExpired must not be a not-found error")
	}
	if !fault.IsErrProcess(fault.ErrCorruptRecord) {
		t.Errorf("ErrCorruptRecord is not a process error")
	}
}
