// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk data store
//
// This maintains a single LevelDB database holding every persisted
// entity as a key->value pair.  Namespacing is done by the caller
// through textual key prefixes; this package only provides the flat
// get/put/delete/range-scan contract.
//
// Notes:
// 1. keys are arbitrary byte strings, ordered lexicographically
// 2. values are opaque byte strings, serialisation is the caller's concern
// 3. a get for an absent key fails with fault.ErrKeyNotFound so that
//    callers can distinguish absence from a store failure
// 4. range scans are performed through a FetchCursor which returns
//    elements incrementally and can resume from where it stopped
//
// Current key layout (written by the cachestore package):
//
//   shortcode-<code>              - short code entry (JSON)
//   lastblock-<contract>          - block checkpoint (decimal text)
//   <contract>-hashtaglist        - hashtag list (JSON array)
//   <pubkey>-transactionHistory   - transaction history record (JSON)
package storage
