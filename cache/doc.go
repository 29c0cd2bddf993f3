// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache - in-memory pool of expiring entries
//
// Expiry is lazy: an entry past its deadline behaves like a missing
// entry on access and is removed at that point.  There is no
// background sweeper.
package cache
