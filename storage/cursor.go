// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/tagchain/tagd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	store    *Handle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor over all keys with a given prefix
func (h *Handle) NewFetchCursor(prefix []byte) *FetchCursor {
	return &FetchCursor{
		store:    h,
		maxRange: *ldb_util.BytesPrefix(prefix),
	}
}

// Seek - move cursor to a specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = key
	return cursor
}

// Fetch - return some elements starting from the current position
//
// the cursor is advanced past the last element returned, so repeated
// calls walk the whole range incrementally
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	storeData.RLock()
	defer storeData.RUnlock()
	if nil == storeData.db {
		return nil, fault.ErrNotInitialised
	}

	iter := storeData.db.NewIterator(&cursor.maxRange, nil)

	results := make([]Element, 0, count)
	n := 0
iterating:
	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key))
		copy(dataKey, key)

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Key:   dataKey,
			Value: dataValue,
		})
		n += 1
		if n >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n > 0 {
		// smallest key strictly after the last one returned
		lastKey := results[n-1].Key
		next := make([]byte, len(lastKey)+1)
		copy(next, lastKey)
		cursor.maxRange.Start = next
	}
	return results, err
}

// Map - run a function on all remaining elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	storeData.RLock()
	defer storeData.RUnlock()
	if nil == storeData.db {
		return fault.ErrNotInitialised
	}

	iter := storeData.db.NewIterator(&cursor.maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key))
		copy(dataKey, key)

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
