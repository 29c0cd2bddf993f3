// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagchain/tagd/cachestore"
	"github.com/tagchain/tagd/storage"
)

func TestHashtagListEmpty(t *testing.T) {
	setup(t, storage.ReadWrite)
	defer teardown(t)

	// never written: empty list, never an error
	list, err := cachestore.HashtagList()
	assert.Nil(t, err, "get error")
	assert.Equal(t, []string{}, list, "expected an empty list")
}

func TestHashtagListSetGet(t *testing.T) {
	setup(t, storage.ReadWrite)
	defer teardown(t)

	err := cachestore.SetHashtagList([]byte(`["#gopher","#tagchain","#devops"]`))
	assert.Nil(t, err, "set error")

	list, err := cachestore.HashtagList()
	assert.Nil(t, err, "get error")
	assert.Equal(t, []string{"#gopher", "#tagchain", "#devops"}, list, "wrong list")

	// the read must be deterministic: no entries appear that were not set
	again, err := cachestore.HashtagList()
	assert.Nil(t, err, "get error")
	assert.Equal(t, list, again, "repeated reads differ")
}

func TestHashtagListCorrupt(t *testing.T) {
	setup(t, storage.ReadWrite)
	defer teardown(t)

	err := cachestore.SetHashtagList([]byte("** garbage **"))
	assert.Nil(t, err, "set error")

	// corruption degrades to empty, it must never fail the caller
	list, err := cachestore.HashtagList()
	assert.Nil(t, err, "get error")
	assert.Equal(t, []string{}, list, "expected an empty list")
}

func TestHashtagListNullValue(t *testing.T) {
	setup(t, storage.ReadWrite)
	defer teardown(t)

	err := cachestore.SetHashtagList([]byte("null"))
	assert.Nil(t, err, "set error")

	list, err := cachestore.HashtagList()
	assert.Nil(t, err, "get error")
	assert.Equal(t, []string{}, list, "expected an empty list")
}

func TestHashtagListKeyLayout(t *testing.T) {
	setup(t, storage.ReadWrite)
	defer teardown(t)

	serialised := []byte(`["#one"]`)
	err := cachestore.SetHashtagList(serialised)
	assert.Nil(t, err, "set error")

	// the value is stored verbatim under <contract>-hashtaglist
	value, err := storage.Store.Get([]byte(trackedContract + "-hashtaglist"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, serialised, value, "value was not stored verbatim")
}
