// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
)

// MaxRecordSize - largest slot that can be allocated
const MaxRecordSize = 10240

const sizeHeaderLength = 4

// value stored in the closed and transaction pools
var presentMarker = []byte{0x01}

// Transaction - an atomic unit of work over a locked set of addresses
//
// nothing is visible to other readers until Commit; Abort (or a failed
// Commit) discards every staged change
type Transaction interface {
	CreateRecord(address.Address, int, address.Address) error
	LoadRecord(address.Address) ([]byte, error)
	WriteRecord(address.Address, []byte) error
	CloseRecord(address.Address, address.Address) error
	Transfer(address.Address, address.Address, uint64) error
	Balance(address.Address) (uint64, error)
	Credit(address.Address, uint64) error
	PutIndex(address.Address, address.Address) error
	DeleteIndex(address.Address, address.Address) error
	MarkTransaction([]byte) error
	Commit() error
	Abort()
}

type unitOfWork struct {
	sync.Mutex

	store  *Store
	batch  *leveldb.Batch
	cache  Cache
	locked []address.Address
	held   map[address.Address]struct{}
	closed bool
}

// Begin - start a transaction holding the given addresses exclusively
//
// blocks until every address is free
func (s *Store) Begin(addresses ...address.Address) (Transaction, error) {
	s.RLock()
	db := s.db
	s.RUnlock()

	if nil == db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if s.readOnly {
		return nil, fault.ErrDatabaseIsReadOnly
	}

	ordered := lockOrder(addresses)
	s.locks.acquire(ordered)

	held := make(map[address.Address]struct{}, len(ordered))
	for _, a := range ordered {
		held[a] = struct{}{}
	}

	return &unitOfWork{
		store:  s,
		batch:  new(leveldb.Batch),
		cache:  newCache(),
		locked: ordered,
		held:   held,
	}, nil
}

// the address must be one declared to Begin
func (u *unitOfWork) check(addresses ...address.Address) error {
	if u.closed {
		return fault.ErrTransactionClosed
	}
	for _, a := range addresses {
		if _, ok := u.held[a]; !ok {
			return fault.ErrAddressNotLocked
		}
	}
	return nil
}

// read through the staged changes to the database
func (u *unitOfWork) get(p *PoolHandle, key ...[]byte) ([]byte, error) {
	k := p.prefixKey(key...)

	value, deleted, found := u.cache.Get(string(k))
	if deleted {
		return nil, nil
	}
	if found {
		return value, nil
	}

	u.store.RLock()
	defer u.store.RUnlock()
	if nil == u.store.db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	value, err := u.store.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func (u *unitOfWork) put(p *PoolHandle, value []byte, key ...[]byte) {
	k := p.prefixKey(key...)
	u.cache.Set(dbPut, string(k), value)
	u.batch.Put(k, value)
}

func (u *unitOfWork) delete(p *PoolHandle, key ...[]byte) {
	k := p.prefixKey(key...)
	u.cache.Set(dbDelete, string(k), nil)
	u.batch.Delete(k)
}

func (u *unitOfWork) getBalance(a address.Address) (uint64, error) {
	buffer, err := u.get(u.store.pool.Balances, a[:])
	if nil != err {
		return 0, err
	}
	if nil == buffer {
		return 0, nil
	}
	if 8 != len(buffer) {
		logger.Panicf("storage: corrupt balance for: %s: %x", a, buffer)
	}
	return binary.BigEndian.Uint64(buffer), nil
}

// zero balances are not stored
func (u *unitOfWork) setBalance(a address.Address, amount uint64) {
	if 0 == amount {
		u.delete(u.store.pool.Balances, a[:])
		return
	}
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, amount)
	u.put(u.store.pool.Balances, buffer, a[:])
}

// move lamports between two held addresses
func (u *unitOfWork) move(from address.Address, to address.Address, amount uint64, short error) error {
	fromBalance, err := u.getBalance(from)
	if nil != err {
		return err
	}
	if fromBalance < amount {
		return short
	}
	if from == to || 0 == amount {
		return nil
	}

	toBalance, err := u.getBalance(to)
	if nil != err {
		return err
	}
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	u.setBalance(from, fromBalance-amount)
	u.setBalance(to, toBalance+amount)
	return nil
}

func (u *unitOfWork) getSlot(a address.Address) ([]byte, error) {
	slot, err := u.get(u.store.pool.Records, a[:])
	if nil != err {
		return nil, err
	}
	if nil == slot {
		return nil, fault.ErrRecordNotFound
	}
	if len(slot) < sizeHeaderLength {
		logger.Panicf("storage: corrupt record slot for: %s: %x", a, slot)
	}
	return slot, nil
}

// CreateRecord - allocate a zero filled slot of fixed size
//
// the payer funds the rent, which stays with the record until closed
func (u *unitOfWork) CreateRecord(a address.Address, size int, payer address.Address) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(a, payer)
	if nil != err {
		return err
	}
	if size <= 0 || size > MaxRecordSize {
		return fault.ErrCapacityExceeded
	}

	existing, err := u.get(u.store.pool.Records, a[:])
	if nil != err {
		return err
	}
	if nil != existing {
		return fault.ErrAddressInUse
	}
	closed, err := u.get(u.store.pool.Closed, a[:])
	if nil != err {
		return err
	}
	if nil != closed {
		return fault.ErrAddressInUse
	}

	rent, err := u.store.rent.MinimumBalance(size)
	if nil != err {
		return err
	}
	err = u.move(payer, a, rent, fault.ErrInsufficientFundsForRent)
	if nil != err {
		return err
	}

	slot := make([]byte, sizeHeaderLength+size)
	binary.BigEndian.PutUint32(slot[:sizeHeaderLength], uint32(size))
	u.put(u.store.pool.Records, slot, a[:])
	return nil
}

// LoadRecord - the full slot contents including zero padding
func (u *unitOfWork) LoadRecord(a address.Address) ([]byte, error) {
	u.Lock()
	defer u.Unlock()

	err := u.check(a)
	if nil != err {
		return nil, err
	}
	slot, err := u.getSlot(a)
	if nil != err {
		return nil, err
	}
	data := make([]byte, len(slot)-sizeHeaderLength)
	copy(data, slot[sizeHeaderLength:])
	return data, nil
}

// WriteRecord - replace the slot contents, never resizing it
func (u *unitOfWork) WriteRecord(a address.Address, data []byte) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(a)
	if nil != err {
		return err
	}
	slot, err := u.getSlot(a)
	if nil != err {
		return err
	}

	size := int(binary.BigEndian.Uint32(slot[:sizeHeaderLength]))
	if len(data) > size {
		return fault.ErrCapacityExceeded
	}

	newSlot := make([]byte, sizeHeaderLength+size)
	copy(newSlot, slot[:sizeHeaderLength])
	copy(newSlot[sizeHeaderLength:], data)
	u.put(u.store.pool.Records, newSlot, a[:])
	return nil
}

// CloseRecord - delete a record, its whole balance goes to refundTo
//
// the address stays reserved so CreateRecord can never reuse it
func (u *unitOfWork) CloseRecord(a address.Address, refundTo address.Address) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(a, refundTo)
	if nil != err {
		return err
	}
	_, err = u.getSlot(a)
	if nil != err {
		return err
	}

	remaining, err := u.getBalance(a)
	if nil != err {
		return err
	}
	err = u.move(a, refundTo, remaining, fault.ErrInsufficientFunds)
	if nil != err {
		return err
	}

	u.delete(u.store.pool.Records, a[:])
	u.put(u.store.pool.Closed, presentMarker, a[:])
	return nil
}

// Transfer - move lamports between held addresses
func (u *unitOfWork) Transfer(from address.Address, to address.Address, amount uint64) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(from, to)
	if nil != err {
		return err
	}
	return u.move(from, to, amount, fault.ErrInsufficientFunds)
}

// Balance - lamports at a held address including staged changes
func (u *unitOfWork) Balance(a address.Address) (uint64, error) {
	u.Lock()
	defer u.Unlock()

	err := u.check(a)
	if nil != err {
		return 0, err
	}
	return u.getBalance(a)
}

// Credit - add new lamports to a held address
func (u *unitOfWork) Credit(a address.Address, amount uint64) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(a)
	if nil != err {
		return err
	}
	if 0 == amount {
		return fault.ErrZeroAmount
	}
	balance, err := u.getBalance(a)
	if nil != err {
		return err
	}
	if balance+amount < balance {
		return fault.ErrBalanceOverflow
	}
	u.setBalance(a, balance+amount)
	return nil
}

// PutIndex - list a message in a recipient's inbox
func (u *unitOfWork) PutIndex(recipient address.Address, message address.Address) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(message)
	if nil != err {
		return err
	}
	u.put(u.store.pool.Inbox, []byte{}, recipient[:], message[:])
	return nil
}

// DeleteIndex - remove a message from a recipient's inbox
func (u *unitOfWork) DeleteIndex(recipient address.Address, message address.Address) error {
	u.Lock()
	defer u.Unlock()

	err := u.check(message)
	if nil != err {
		return err
	}
	u.delete(u.store.pool.Inbox, recipient[:], message[:])
	return nil
}

// MarkTransaction - record a signed transaction as applied
//
// fails if the link was committed before or is already staged here;
// identical transactions derive identical lock sets so two copies are
// never staged concurrently
func (u *unitOfWork) MarkTransaction(link []byte) error {
	u.Lock()
	defer u.Unlock()

	err := u.check()
	if nil != err {
		return err
	}
	if 0 == len(link) {
		return fault.ErrNotTransactionPack
	}
	existing, err := u.get(u.store.pool.Transactions, link)
	if nil != err {
		return err
	}
	if nil != existing {
		return fault.ErrTransactionAlreadyExists
	}
	u.put(u.store.pool.Transactions, presentMarker, link)
	return nil
}

// Commit - write every staged change in one atomic batch
//
// the locks are released whether or not the write succeeds
func (u *unitOfWork) Commit() error {
	u.Lock()
	defer u.Unlock()

	if u.closed {
		return fault.ErrTransactionClosed
	}
	defer u.finish()

	u.store.RLock()
	defer u.store.RUnlock()
	if nil == u.store.db {
		return fault.ErrDatabaseIsNotSet
	}

	err := u.store.db.Write(u.batch, nil)
	if nil != err {
		u.store.log.Criticalf("commit of %d changes failed: %s", u.batch.Len(), err)
		return err
	}
	u.store.log.Debugf("committed %d changes", u.batch.Len())
	return nil
}

// Abort - discard every staged change
func (u *unitOfWork) Abort() {
	u.Lock()
	defer u.Unlock()

	if u.closed {
		return
	}
	u.store.log.Debugf("aborted %d changes", u.batch.Len())
	u.finish()
}

func (u *unitOfWork) finish() {
	u.batch.Reset()
	u.cache.Clear()
	u.closed = true
	u.store.locks.release(u.locked)
}
