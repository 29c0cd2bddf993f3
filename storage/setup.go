// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/tagchain/tagd/fault"
)

// Store - the handle to the single database
//
// only valid between Initialise and Finalise
var Store *Handle

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// store access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
var storeData struct {
	sync.RWMutex
	db *leveldb.DB
}

// Initialise - open up the database connection
//
// this must be called before the store is accessed
func Initialise(database string, readOnly bool) error {
	storeData.Lock()
	defer storeData.Unlock()

	if nil != storeData.db {
		return fault.ErrAlreadyInitialised
	}

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	// prevent readOnly from modifying the database
	if readOnly && version != currentDBVersion {
		db.Close()
		return fmt.Errorf("database is inconsistent: version: %d  current: %d", version, currentDBVersion)
	}

	// database was empty so tag as current version
	if 0 == version {
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return err
		}
	}

	storeData.db = db
	Store = &Handle{}

	return nil
}

// Finalise - close the database connection
func Finalise() {
	storeData.Lock()
	defer storeData.Unlock()

	if nil != storeData.db {
		storeData.db.Close()
		storeData.db = nil
	}
	Store = nil
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
