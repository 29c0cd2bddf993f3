// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore

import (
	"strconv"

	"github.com/tagchain/tagd/fault"
)

// LastBlock - the last block number fully processed for the tracked
// contract
//
// if no checkpoint was ever stored the configured start block is
// returned instead; any store failure other than a definitive
// not-found propagates as an error
func LastBlock() (int64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	data, err := globalData.store.Get(lastBlockKey())
	if fault.ErrKeyNotFound == err {
		return globalData.cfg.StartBlock, nil
	} else if nil != err {
		return 0, err
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if nil != err {
		globalData.log.Errorf("checkpoint: corrupt value: %q", data)
		return 0, fault.ErrCheckpointCorrupt
	}

	return n, nil
}

// SetLastBlock - store the checkpoint for the tracked contract
func SetLastBlock(blockNumber int64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	data := strconv.FormatInt(blockNumber, 10)
	return globalData.store.Put(lastBlockKey(), []byte(data))
}
