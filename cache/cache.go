// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"sync"
	"time"
)

type item struct {
	object    interface{}
	expiresAt time.Time
}

// Pool - a set of expiring key/value entries
type Pool struct {
	sync.RWMutex
	items        map[string]item
	expiresAfter time.Duration
}

// NewPool - create a pool
//
// a zero expiresAfter makes entries permanent until deleted
func NewPool(expiresAfter time.Duration) *Pool {
	return &Pool{
		items:        make(map[string]item),
		expiresAfter: expiresAfter,
	}
}

// Put - store a value, restarting its expiry window
func (p *Pool) Put(key string, value interface{}) {
	p.Lock()
	defer p.Unlock()

	val := item{object: value}
	if p.expiresAfter > 0 {
		val.expiresAt = time.Now().Add(p.expiresAfter)
	}
	p.items[key] = val
}

// Get - fetch a value
//
// an expired entry is indistinguishable from a missing one and is
// dropped on access
func (p *Pool) Get(key string) (interface{}, bool) {
	p.Lock()
	defer p.Unlock()

	it, ok := p.items[key]
	if !ok {
		return nil, false
	}
	if expired(it.expiresAt) {
		delete(p.items, key)
		return nil, false
	}
	return it.object, true
}

// Has - check if a live entry exists
func (p *Pool) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Delete - remove an entry
func (p *Pool) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	delete(p.items, key)
}

// Size - number of entries including any not yet dropped expired ones
func (p *Pool) Size() int {
	p.RLock()
	defer p.RUnlock()

	return len(p.items)
}

func expired(exp time.Time) bool {
	return !exp.IsZero() && time.Since(exp) > 0
}
