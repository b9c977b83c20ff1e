// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - committed state of one table
type PoolHandle struct {
	prefix byte
	store  *Store
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key ...[]byte) []byte {
	n := 1
	for _, k := range key {
		n += len(k)
	}
	prefixedKey := make([]byte, 1, n)
	prefixedKey[0] = p.prefix
	for _, k := range key {
		prefixedKey = append(prefixedKey, k...)
	}
	return prefixedKey
}

// read a value for a given key
//
// returns nil if not found or the database is closed
func (p *PoolHandle) Get(key []byte) []byte {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return nil
	}
	value, err := p.store.db.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Keys - all keys starting with the given bytes, prefix stripped
func (p *PoolHandle) Keys(start []byte) [][]byte {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.db {
		return nil
	}

	searchRange := ldb_util.BytesPrefix(p.prefixKey(start))
	iter := p.store.db.NewIterator(searchRange, nil)

	result := make([][]byte, 0, 8)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...
		result = append(result, dataKey)
	}
	iter.Release()
	err := iter.Error()
	logger.PanicIfError("pool.Keys", err)
	return result
}
