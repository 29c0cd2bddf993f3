// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagchain/tagd/configuration"
	"github.com/tagchain/tagd/fault"
)

type testDatabase struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type testConfiguration struct {
	DataDirectory   string       `gluamapper:"data_directory"`
	TrackedContract string       `gluamapper:"tracked_contract"`
	StartBlock      int64        `gluamapper:"start_block"`
	Database        testDatabase `gluamapper:"database"`
}

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.tracked_contract = "0xcafe"
M.start_block = 12000

M.database = {
    directory = "data",
    name = "tagd.leveldb",
}

return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration-test")
	assert.Nil(t, err, "tempdir error")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "tagd.conf")
	err = ioutil.WriteFile(fileName, []byte(sampleConfiguration), 0600)
	assert.Nil(t, err, "write error")

	var config testConfiguration
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "0xcafe", config.TrackedContract, "wrong tracked contract")
	assert.Equal(t, int64(12000), config.StartBlock, "wrong start block")
	assert.Equal(t, "data", config.Database.Directory, "wrong database directory")
	assert.Equal(t, "tagd.leveldb", config.Database.Name, "wrong database name")
}

func TestParseNotAPointer(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("irrelevant.conf", config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")
}

func TestParseMissingFile(t *testing.T) {
	var config testConfiguration
	err := configuration.ParseConfigurationFile("/nonexistant/tagd.conf", &config)
	assert.NotNil(t, err, "expected an error")
}
