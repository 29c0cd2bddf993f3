// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore

import (
	"encoding/json"

	"github.com/tagchain/tagd/fault"
)

// TransactionHistoryRecord - the per user transaction history
type TransactionHistoryRecord struct {
	Pubkey             string            `json:"pubkey"`
	LastUpdate         int64             `json:"lastUpdate"` // epoch milliseconds
	LastRead           int64             `json:"lastRead"`   // epoch milliseconds
	EndBlock           int64             `json:"endBlock"`
	TransactionHistory []json.RawMessage `json:"transactionHistory"`
}

// a record always exists conceptually: this is the value synthesised
// when nothing usable is stored for a pubkey
func defaultRecord(pubkey string) TransactionHistoryRecord {
	now := nowMs()
	return TransactionHistoryRecord{
		Pubkey:             pubkey,
		LastUpdate:         now,
		LastRead:           now,
		EndBlock:           globalData.cfg.StartBlock - 1,
		TransactionHistory: []json.RawMessage{},
	}
}

// SetTransactionHistory - store a fresh history record for a user
func SetTransactionHistory(pubkey string, endBlock int64, history []json.RawMessage) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if nil == history {
		history = []json.RawMessage{}
	}

	now := nowMs()
	record := TransactionHistoryRecord{
		Pubkey:             pubkey,
		LastUpdate:         now,
		LastRead:           now,
		EndBlock:           endBlock,
		TransactionHistory: history,
	}

	data, err := json.Marshal(record)
	if nil != err {
		return err
	}

	return globalData.store.Put(transactionHistoryKey(pubkey), data)
}

// TransactionHistory - the history record for a user
//
// four terminal outcomes:
//  1. nothing stored: the default record is returned, nothing is written
//  2. stored and parsable: the record is returned with lastRead
//     refreshed, the refreshed record is written back best-effort
//  3. stored but corrupt: the default record is returned with lastRead
//     refreshed, written back best-effort
//  4. any store failure other than not-found: the error propagates
//
// the write-back is advisory only; its failure is logged and never
// fails the read.  Two concurrent reads of the same pubkey can race on
// lastRead with last-write-wins, this is accepted.
func TransactionHistory(pubkey string) (TransactionHistoryRecord, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return TransactionHistoryRecord{}, fault.ErrNotInitialised
	}

	key := transactionHistoryKey(pubkey)

	data, err := globalData.store.Get(key)
	if fault.ErrKeyNotFound == err {
		// the default exists only in the response
		return defaultRecord(pubkey), nil
	} else if nil != err {
		return TransactionHistoryRecord{}, err
	}

	var record TransactionHistoryRecord
	err = json.Unmarshal(data, &record)
	if nil != err || "" == record.Pubkey {
		if nil != err {
			globalData.log.Errorf("transaction history: %q corrupt record: %s", pubkey, err)
		}
		record = defaultRecord(pubkey)
	}
	if nil == record.TransactionHistory {
		record.TransactionHistory = []json.RawMessage{}
	}

	record.LastRead = nowMs()

	// best-effort re-stamp, failure must not fail the read
	stamped, err := json.Marshal(record)
	if nil == err {
		err = globalData.store.Put(key, stamped)
	}
	if nil != err {
		globalData.log.Warnf("transaction history: %q re-stamp failed: %s", pubkey, err)
	}

	return record, nil
}

// DeleteTransactionHistory - remove a user's history record
//
// succeeds whether or not the record existed
func DeleteTransactionHistory(pubkey string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	return globalData.store.Delete(transactionHistoryKey(pubkey))
}
