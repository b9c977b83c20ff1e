// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/record"
	"github.com/bitmark-inc/pay2msg/storage"
	"github.com/bitmark-inc/pay2msg/transactionrecord"
)

func TestRegisterProfile(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)

	a := register(t, f, owner, 100)

	expected, bump, err := f.deriver.Profile(owner.Account())
	assert.Nil(t, err, "derive")
	assert.Equal(t, expected, a, "profile address")

	info, err := f.inbox.Profile(owner.Account())
	assert.Nil(t, err, "query")
	assert.Equal(t, a, info.Address, "query address")
	assert.True(t, owner.Account().Equal(info.Owner), "owner")
	assert.Equal(t, uint64(100), info.Price, "price")
	assert.Equal(t, uint64(0), info.InboxCount, "inbox count")
	assert.Equal(t, uint64(0), info.ReceivedTotal, "received total")
	assert.Equal(t, testTime.Unix(), info.CreatedAt, "created at")
	assert.Equal(t, bump, info.Bump, "bump")
}

func TestRegisterProfileTwice(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)

	register(t, f, owner, 100)

	_, err := f.inbox.RegisterProfile(registerTx(t, owner, 5))
	assert.Equal(t, fault.ErrAlreadyRegistered, err, "second register")

	info, err := f.inbox.Profile(owner.Account())
	assert.Nil(t, err, "query")
	assert.Equal(t, uint64(100), info.Price, "price unchanged")
}

func TestRegisterProfileBadSignature(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)
	other := newKey(t)

	tx := &transactionrecord.RegisterProfile{
		Owner: owner.Account(),
		Price: 1,
	}
	tx.Signature = sign(t, other, tx)

	_, err := f.inbox.RegisterProfile(tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "signed by other key")

	_, err = f.inbox.Profile(owner.Account())
	assert.Equal(t, fault.ErrRecordNotFound, err, "profile created")
}

func TestRegisterProfileWrongNetwork(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner, err := account.NewPrivateKey(false, rand.Reader)
	assert.Nil(t, err, "generate")

	_, err = f.inbox.RegisterProfile(registerTx(t, owner, 1))
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "live key")
}

func TestRegisterProfileRent(t *testing.T) {
	f := setup(t, storage.Rent{LamportsPerByte: 2})
	owner := newKey(t)

	_, err := f.inbox.RegisterProfile(registerTx(t, owner, 1))
	assert.Equal(t, fault.ErrInsufficientFundsForRent, err, "unfunded owner")

	fund(t, f, owner, 2*record.ProfileSpace+10)
	a := register(t, f, owner, 1)

	assert.Equal(t, uint64(10), balance(f, owner), "owner after rent")
	assert.Equal(t, uint64(2*record.ProfileSpace), f.store.Balance(a), "profile holds rent")
}

func TestUpdatePrice(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)
	sender := newKey(t)

	a := register(t, f, owner, 100)
	fund(t, f, sender, 500)
	_, err := f.inbox.SendMessage(sendTx(t, sender, owner, 1, 100, "hi"))
	assert.Nil(t, err, "send")

	err = f.inbox.UpdatePrice(updateTx(t, owner, a, 1, 250))
	assert.Nil(t, err, "update")

	info, err := f.inbox.Profile(owner.Account())
	assert.Nil(t, err, "query")
	assert.Equal(t, uint64(250), info.Price, "new price")
	assert.Equal(t, uint64(1), info.InboxCount, "inbox count preserved")
	assert.Equal(t, testTime.Unix(), info.CreatedAt, "created at preserved")

	// the new price applies to the next message
	_, err = f.inbox.SendMessage(sendTx(t, sender, owner, 2, 100, "hi"))
	assert.Equal(t, fault.ErrUnderpriced, err, "old price")
}

func TestUpdatePriceNotOwner(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)
	attacker := newKey(t)

	a := register(t, f, owner, 100)

	err := f.inbox.UpdatePrice(updateTx(t, attacker, a, 1, 0))
	assert.Equal(t, fault.ErrUnauthorized, err, "non-owner update")

	info, err := f.inbox.Profile(owner.Account())
	assert.Nil(t, err, "query")
	assert.Equal(t, uint64(100), info.Price, "price unchanged")
}

func TestUpdatePriceMissingProfile(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)

	a, _, err := f.deriver.Profile(owner.Account())
	assert.Nil(t, err, "derive")

	err = f.inbox.UpdatePrice(updateTx(t, owner, a, 1, 1))
	assert.Equal(t, fault.ErrRecordNotFound, err, "unregistered")
}

func TestUpdatePriceWrongAddress(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)
	register(t, f, owner, 100)

	// a profile record copied to another address does not verify
	forged, _, err := f.deriver.Find([]byte("forged"))
	assert.Nil(t, err, "derive forged")

	profile := record.Profile{Owner: owner.Account(), Price: 100, Bump: 255}
	data, err := profile.Pack()
	assert.Nil(t, err, "pack")

	ownerAddress := address.FromAccount(owner.Account())
	tx, err := f.store.Begin(forged, ownerAddress)
	assert.Nil(t, err, "begin")
	assert.Nil(t, tx.CreateRecord(forged, record.ProfileSpace, ownerAddress), "create")
	assert.Nil(t, tx.WriteRecord(forged, data), "write")
	assert.Nil(t, tx.Commit(), "commit")

	err = f.inbox.UpdatePrice(updateTx(t, owner, forged, 1, 1))
	assert.Equal(t, fault.ErrAddressMismatch, err, "forged profile")
}

func TestRegisterProfileReplay(t *testing.T) {
	f := setup(t, storage.Rent{LamportsPerByte: 1})
	owner := newKey(t)
	fund(t, f, owner, 1000)

	tx := registerTx(t, owner, 100)
	_, err := f.inbox.RegisterProfile(tx)
	assert.Nil(t, err, "register")
	paid := balance(f, owner)

	_, err = f.inbox.RegisterProfile(tx)
	assert.Equal(t, fault.ErrAlreadyRegistered, err, "replayed register")
	assert.Equal(t, paid, balance(f, owner), "rent charged once")
}

func TestUpdatePriceReplay(t *testing.T) {
	f := setup(t, storage.Rent{})
	owner := newKey(t)
	a := register(t, f, owner, 100)

	cheap := updateTx(t, owner, a, 1, 0)
	err := f.inbox.UpdatePrice(cheap)
	assert.Nil(t, err, "lower price")

	err = f.inbox.UpdatePrice(updateTx(t, owner, a, 2, 500))
	assert.Nil(t, err, "raise price")

	// anyone holding the old signed instruction cannot roll the price back
	err = f.inbox.UpdatePrice(cheap)
	assert.Equal(t, fault.ErrTransactionAlreadyExists, err, "replayed update")

	info, err := f.inbox.Profile(owner.Account())
	assert.Nil(t, err, "query")
	assert.Equal(t, uint64(500), info.Price, "price kept")

	// the owner can return to an earlier price with a fresh nonce
	err = f.inbox.UpdatePrice(updateTx(t, owner, a, 3, 0))
	assert.Nil(t, err, "same price new nonce")

	info, err = f.inbox.Profile(owner.Account())
	assert.Nil(t, err, "query")
	assert.Equal(t, uint64(0), info.Price, "price restored by owner")
}
