// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package broadcaster - forward signed transactions to a blockchain node
//
// A submission is a unit of work with exactly two outcomes: it either
// succeeds or fails, reported back on a per-submission channel.  A
// single background worker drains the queue and talks to the node over
// a ZeroMQ REQ socket.  Recently submitted transaction ids are
// remembered for a short window to drop duplicates.
package broadcaster
