// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrBroadcastFailed          = ProcessError("broadcast failed")
	ErrCheckpointCorrupt        = ProcessError("checkpoint value is corrupt")
	ErrCorruptRecord            = ProcessError("stored record is corrupt")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKeyNotFound              = NotFoundError("key not found")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrRequiredDataDirectory    = InvalidError("data directory is required")
	ErrShortCodeExpired         = InvalidError("short code expired")
	ErrShortCodeNotFound        = NotFoundError("short code not found")
	ErrTransactionAlreadyQueued = ExistsError("transaction already queued")
	ErrWrongNodeReply           = ProcessError("wrong reply from node")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
