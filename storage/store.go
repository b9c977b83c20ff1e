// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
)

// Load - committed contents of a record slot
func (s *Store) Load(a address.Address) ([]byte, error) {
	slot := s.pool.Records.Get(a[:])
	if nil == slot {
		return nil, fault.ErrRecordNotFound
	}
	if len(slot) < sizeHeaderLength {
		return nil, fault.ErrInvalidRecordSize
	}
	return slot[sizeHeaderLength:], nil
}

// Capacity - the fixed size of a committed record slot
func (s *Store) Capacity(a address.Address) (int, error) {
	slot := s.pool.Records.Get(a[:])
	if nil == slot {
		return 0, fault.ErrRecordNotFound
	}
	if len(slot) < sizeHeaderLength {
		return 0, fault.ErrInvalidRecordSize
	}
	return int(binary.BigEndian.Uint32(slot[:sizeHeaderLength])), nil
}

// Balance - committed lamports at an address
func (s *Store) Balance(a address.Address) uint64 {
	n, _ := s.pool.Balances.GetN(a[:])
	return n
}

// Indexed - committed inbox entries for a recipient in address order
func (s *Store) Indexed(recipient address.Address) []address.Address {
	keys := s.pool.Inbox.Keys(recipient[:])
	result := make([]address.Address, 0, len(keys))
	for _, k := range keys {
		var a address.Address
		if nil == address.FromBytes(&a, k[address.Length:]) {
			result = append(result, a)
		}
	}
	return result
}

// Fund - credit lamports to an address from outside the ledger
func (s *Store) Fund(a address.Address, amount uint64) error {
	tx, err := s.Begin(a)
	if nil != err {
		return err
	}

	err = tx.Credit(a, amount)
	if nil != err {
		tx.Abort()
		return err
	}

	err = tx.Commit()
	if nil != err {
		return err
	}
	s.log.Infof("fund: %s  amount: %d", a, amount)
	return nil
}
