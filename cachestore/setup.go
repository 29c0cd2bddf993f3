// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tagchain/tagd/fault"
	"github.com/tagchain/tagd/storage"
)

// key namespace prefixes and suffixes
//
// this layout is a wire contract: the database written by this package
// must stay readable by every other deployment of the system
const (
	shortCodePrefix          = "shortcode-"
	lastBlockPrefix          = "lastblock-"
	hashtagListSuffix        = "-hashtaglist"
	transactionHistorySuffix = "-transactionHistory"
)

// Configuration - the injected settings for the cache layer
type Configuration struct {
	TrackedContract string `gluamapper:"tracked_contract" json:"tracked_contract"`
	StartBlock      int64  `gluamapper:"start_block" json:"start_block"`
}

// globals for this module
type globalDataType struct {
	sync.RWMutex

	log   *logger.L
	cfg   Configuration
	store *storage.Handle

	// set once during initialise
	initialised bool
}

var globalData globalDataType

// Initialise - setup the cache layer
//
// storage.Initialise must have been called first
func Initialise(cfg Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == storage.Store {
		return fault.ErrNotInitialised
	}

	globalData.log = logger.New("cachestore")
	globalData.log.Info("starting…")

	globalData.cfg = cfg
	globalData.store = storage.Store

	globalData.initialised = true

	return nil
}

// Finalise - shut down the cache layer
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.store = nil
	globalData.initialised = false

	return nil
}

// key for a short code entry
func shortCodeKey(shortCode string) []byte {
	return []byte(shortCodePrefix + shortCode)
}

// key for the tracked contract's block checkpoint
func lastBlockKey() []byte {
	return []byte(lastBlockPrefix + globalData.cfg.TrackedContract)
}

// key for the tracked contract's hashtag list
func hashtagListKey() []byte {
	return []byte(globalData.cfg.TrackedContract + hashtagListSuffix)
}

// key for a user's transaction history record
func transactionHistoryKey(pubkey string) []byte {
	return []byte(pubkey + transactionHistorySuffix)
}

// current time as epoch milliseconds
func nowMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
