// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cachestore - the persistence layer for tracked-contract data
//
// Four independent groups of operations share one underlying store
// through disjoint key namespaces:
//
//   short codes          - TTL bounded key->payload entries, expiry is
//                          lazy and checked only on read
//   block checkpoint     - last block number fully processed for the
//                          tracked contract, with a configured fallback
//                          when none has been stored yet
//   hashtag list         - one serialised list per tracked contract,
//                          corruption degrades to an empty list
//   transaction history  - per user record, re-stamped with a lastRead
//                          timestamp on every successful read and
//                          self-healing on corrupt stored data
//
// There is no cross-entity orchestration and no in-memory state beyond
// the injected configuration; every operation is an independent request
// against the store.
package cachestore
