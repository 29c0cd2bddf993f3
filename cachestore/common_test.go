// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/tagchain/tagd/cachestore"
	"github.com/tagchain/tagd/storage"
)

// test files
const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test.leveldb"
)

// test configuration
const (
	trackedContract = "0x1234567890abcdef"
	startBlock      = 1000
)

var testConfiguration = cachestore.Configuration{
	TrackedContract: trackedContract,
	StartBlock:      startBlock,
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T, readOnly bool) {
	if !readOnly {
		removeFiles()
	}
	os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, readOnly)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = cachestore.Initialise(testConfiguration)
	if nil != err {
		t.Fatalf("cachestore initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = cachestore.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// close and reopen the store in read-only mode keeping the data
func reopenReadOnly(t *testing.T) {
	_ = cachestore.Finalise()
	storage.Finalise()
	setup(t, storage.ReadOnly)
}
