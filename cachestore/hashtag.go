// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2021 Tagchain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cachestore

import (
	"encoding/json"

	"github.com/tagchain/tagd/fault"
)

// SetHashtagList - store the serialised hashtag list verbatim
//
// the value is written unchanged; it is expected to be a JSON array of
// strings but this layer does not validate it
func SetHashtagList(serialisedList []byte) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	return globalData.store.Put(hashtagListKey(), serialisedList)
}

// HashtagList - the hashtag list for the tracked contract
//
// an absent or unparsable stored value yields an empty list, never an
// error; genuine store failures still propagate
func HashtagList() ([]string, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	data, err := globalData.store.Get(hashtagListKey())
	if fault.ErrKeyNotFound == err {
		return []string{}, nil
	} else if nil != err {
		return nil, err
	}

	var list []string
	err = json.Unmarshal(data, &list)
	if nil != err {
		globalData.log.Errorf("hashtag list: corrupt value: %s", err)
		return []string{}, nil
	}
	if nil == list {
		list = []string{}
	}

	return list, nil
}
