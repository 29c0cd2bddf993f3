// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore

import (
	"encoding/json"
	"time"

	"github.com/tagchain/tagd/fault"
	"github.com/tagchain/tagd/storage"
)

// ShortCodeEntry - the stored wrapper around a short code payload
type ShortCodeEntry struct {
	ShortCode  string          `json:"shortCode"`
	ValidUntil int64           `json:"validUntil"` // epoch milliseconds
	Payload    json.RawMessage `json:"payload"`
}

// SaveShortCode - store a payload under a short code for a bounded
// validity window
func SaveShortCode(shortCode string, validity time.Duration, payload json.RawMessage) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	entry := ShortCodeEntry{
		ShortCode:  shortCode,
		ValidUntil: nowMs() + int64(validity/time.Millisecond),
		Payload:    payload,
	}

	data, err := json.Marshal(entry)
	if nil != err {
		return err
	}

	return globalData.store.Put(shortCodeKey(shortCode), data)
}

// ReadShortCode - resolve a short code to its payload
//
// fails with fault.ErrShortCodeNotFound if no entry exists,
// fault.ErrCorruptRecord if the stored bytes cannot be parsed and
// fault.ErrShortCodeExpired if the validity window has elapsed; the
// caller receives a payload only for a live entry
func ReadShortCode(shortCode string) (json.RawMessage, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	data, err := globalData.store.Get(shortCodeKey(shortCode))
	if fault.ErrKeyNotFound == err {
		return nil, fault.ErrShortCodeNotFound
	} else if nil != err {
		return nil, err
	}

	var entry ShortCodeEntry
	err = json.Unmarshal(data, &entry)
	if nil != err {
		globalData.log.Errorf("short code: %q corrupt entry: %s", shortCode, err)
		return nil, fault.ErrCorruptRecord
	}

	// live iff validUntil >= now, no physical deletion on expiry
	if entry.ValidUntil < nowMs() {
		return nil, fault.ErrShortCodeExpired
	}

	return entry.Payload, nil
}

// DeleteShortCode - remove a short code entry
//
// succeeds whether or not the entry existed
func DeleteShortCode(shortCode string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	return globalData.store.Delete(shortCodeKey(shortCode))
}

// NewShortCodeCursor - a cursor over every stored short code entry
//
// entries are returned as raw key/value pairs in key order; the scan is
// incremental and restartable only by creating a new cursor
func NewShortCodeCursor() (*storage.FetchCursor, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	return globalData.store.NewFetchCursor([]byte(shortCodePrefix)), nil
}
