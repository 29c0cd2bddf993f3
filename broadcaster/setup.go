// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package broadcaster

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/tagchain/tagd/background"
	"github.com/tagchain/tagd/cache"
	"github.com/tagchain/tagd/counter"
	"github.com/tagchain/tagd/fault"
)

// Configuration - the node connection settings
type Configuration struct {
	Node    string `gluamapper:"node" json:"node"`       // zmq endpoint, e.g. tcp://127.0.0.1:2130
	Timeout int    `gluamapper:"timeout" json:"timeout"` // reply timeout in milliseconds
}

const (
	defaultTimeout = 5 * time.Second
	queueSize      = 256
	dedupWindow    = time.Minute
)

// a single unit of work
type submission struct {
	txId   string
	packed []byte
	reply  chan<- error
}

// globals for this module
type globalDataType struct {
	sync.RWMutex

	log        *logger.L
	node       string
	timeout    time.Duration
	queue      chan submission
	recent     *cache.Pool
	background *background.T

	submitted counter.Counter
	succeeded counter.Counter
	failed    counter.Counter

	// set once during initialise
	initialised bool
}

var globalData globalDataType

// Initialise - start the submission worker
func Initialise(cfg Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("broadcaster")
	globalData.log.Info("starting…")

	globalData.node = cfg.Node
	globalData.timeout = defaultTimeout
	if cfg.Timeout > 0 {
		globalData.timeout = time.Duration(cfg.Timeout) * time.Millisecond
	}

	globalData.queue = make(chan submission, queueSize)
	globalData.recent = cache.NewPool(dedupWindow)

	processes := background.Processes{
		&sender{},
	}
	globalData.background = background.Start(processes, nil)

	globalData.initialised = true

	return nil
}

// Finalise - stop the submission worker
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.background.Stop()
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// Submit - queue a signed transaction for broadcast
//
// the returned channel receives exactly one value: nil on success or
// the failure; a duplicate txId within the dedup window is rejected
// immediately
func Submit(txId string, packed []byte) (<-chan error, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	if globalData.recent.Has(txId) {
		return nil, fault.ErrTransactionAlreadyQueued
	}
	globalData.recent.Put(txId, struct{}{})

	reply := make(chan error, 1)
	globalData.queue <- submission{
		txId:   txId,
		packed: packed,
		reply:  reply,
	}
	globalData.submitted.Increment()

	return reply, nil
}

// Statistics - submission counters
type Statistics struct {
	Submitted uint64 `json:"submitted"`
	Succeeded uint64 `json:"succeeded"`
	Failed    uint64 `json:"failed"`
}

// Stats - a snapshot of the submission counters
func Stats() Statistics {
	return Statistics{
		Submitted: globalData.submitted.Uint64(),
		Succeeded: globalData.succeeded.Uint64(),
		Failed:    globalData.failed.Uint64(),
	}
}
