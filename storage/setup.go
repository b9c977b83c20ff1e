// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pay2msg/fault"
)

// storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Records      *PoolHandle `prefix:"R"`
	Balances     *PoolHandle `prefix:"B"`
	Closed       *PoolHandle `prefix:"C"`
	Transactions *PoolHandle `prefix:"T"`
	Inbox        *PoolHandle `prefix:"X"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Store - a ledger database
type Store struct {
	sync.RWMutex // guards db

	log      *logger.L
	db       *leveldb.DB
	readOnly bool
	rent     Rent
	locks    *lockTable
	pool     pools
}

// Open - open up the database
//
// the database is created if missing unless opened read only
func Open(database string, readOnly bool, rent Rent) (*Store, error) {
	log := logger.New("storage")

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrDatabaseVersion
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q is not initialised", database)
			return nil, fault.ErrDatabaseVersion
		}

		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return nil, err
		}
	}

	s := &Store{
		log:      log,
		db:       db,
		readOnly: readOnly,
		rent:     rent,
		locks:    newLockTable(),
	}

	err = s.setupPools()
	if nil != err {
		return nil, err
	}

	log.Infof("opened: %q  version: 0x%x  read only: %t", database, currentDBVersion, readOnly)
	log.Infof("rent: %d lamports per byte  overhead: %d bytes", rent.LamportsPerByte, rent.Overhead)

	ok = true // prevent db close
	return s, nil
}

// attach a handle to each field of the pools struct
func (s *Store) setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(s.pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&s.pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		p := &PoolHandle{
			prefix: prefixTag[0],
			store:  s,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

// Close - close the database
//
// transactions still open afterwards fail with ErrDatabaseIsNotSet
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if nil != s.db {
		s.db.Close()
		s.db = nil
		s.log.Info("closed")
	}
}

// Rent - the rent schedule of this store
func (s *Store) Rent() Rent {
	return s.rent
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
