// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/tagchain/tagd/fault"
)

// Handle - access to the database
type Handle struct{}

// Element - a binary key/value pair
type Element struct {
	Key   []byte
	Value []byte
}

// Put - store a key/value bytes pair to the database
func (h *Handle) Put(key []byte, value []byte) error {
	storeData.RLock()
	defer storeData.RUnlock()
	if nil == storeData.db {
		return fault.ErrNotInitialised
	}
	return storeData.db.Put(key, value, nil)
}

// Delete - remove a key from the database
//
// succeeds even if the key does not exist
func (h *Handle) Delete(key []byte) error {
	storeData.RLock()
	defer storeData.RUnlock()
	if nil == storeData.db {
		return fault.ErrNotInitialised
	}
	return storeData.db.Delete(key, nil)
}

// Get - read a value for a given key
//
// fails with fault.ErrKeyNotFound if the key is absent, any other
// error is a genuine store failure
//
// this returns the actual element - copy the result if it must be preserved
func (h *Handle) Get(key []byte) ([]byte, error) {
	storeData.RLock()
	defer storeData.RUnlock()
	if nil == storeData.db {
		return nil, fault.ErrNotInitialised
	}
	value, err := storeData.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrKeyNotFound
	} else if nil != err {
		return nil, err
	}
	return value, nil
}

// Has - check if a key exists
func (h *Handle) Has(key []byte) (bool, error) {
	storeData.RLock()
	defer storeData.RUnlock()
	if nil == storeData.db {
		return false, fault.ErrNotInitialised
	}
	return storeData.db.Has(key, nil)
}
