// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/storage"
	"github.com/bitmark-inc/pay2msg/transactionrecord"
)

// Ledger - the record store as seen by the handlers
type Ledger interface {
	Begin(...address.Address) (storage.Transaction, error)
	Load(address.Address) ([]byte, error)
	Balance(address.Address) uint64
	Indexed(address.Address) []address.Address
}

// Inbox - transaction handlers and queries
type Inbox struct {
	log     *logger.L
	ledger  Ledger
	deriver *address.Deriver
	now     func() time.Time
	testnet bool
}

// New - create the handlers over a ledger
func New(log *logger.L, ledger Ledger, deriver *address.Deriver, now func() time.Time, testnet bool) *Inbox {
	return &Inbox{
		log:     log,
		ledger:  ledger,
		deriver: deriver,
		now:     now,
		testnet: testnet,
	}
}

// Process - unpack a signed instruction and apply it
//
// returns the address of the profile or message record it acted on
func (inbox *Inbox) Process(packed transactionrecord.Packed) (address.Address, error) {
	tx, n, err := packed.Unpack(inbox.testnet)
	if nil != err {
		inbox.log.Debugf("unpack error: %s", err)
		return address.Address{}, err
	}
	if n != len(packed) {
		return address.Address{}, fault.ErrNotTransactionPack
	}

	switch t := tx.(type) {
	case *transactionrecord.RegisterProfile:
		return inbox.RegisterProfile(t)

	case *transactionrecord.UpdatePrice:
		return t.Profile, inbox.UpdatePrice(t)

	case *transactionrecord.SendMessage:
		return inbox.SendMessage(t)

	case *transactionrecord.ReadAndClaim:
		_, err := inbox.ReadAndClaim(t)
		return t.Message, err

	default:
		return address.Address{}, fault.ErrNotTransactionPack
	}
}

// check the signer is on this ledger's network and signed the instruction
//
// returns the link that marks the instruction as applied
func (inbox *Inbox) verifySigner(tx transactionrecord.Transaction, signer *account.Account) (transactionrecord.Link, error) {
	err := inbox.checkNetwork(signer)
	if nil != err {
		return transactionrecord.Link{}, err
	}
	packed, err := tx.Pack(signer)
	if nil != err {
		return transactionrecord.Link{}, err
	}
	return packed.MakeLink(), nil
}

func (inbox *Inbox) checkNetwork(accounts ...*account.Account) error {
	for _, acc := range accounts {
		if nil == acc || nil == acc.AccountInterface || acc.IsZero() {
			return fault.ErrInvalidOwner
		}
		if acc.IsTesting() != inbox.testnet {
			return fault.ErrWrongNetworkForPublicKey
		}
	}
	return nil
}

// log a rejected instruction
func (inbox *Inbox) rejected(name string, err error) {
	if fault.IsErrProcess(err) || fault.IsErrResource(err) {
		inbox.log.Warnf("%s: rejected: %s", name, err)
	} else {
		inbox.log.Debugf("%s: rejected: %s", name, err)
	}
}
