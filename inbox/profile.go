// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/record"
	"github.com/bitmark-inc/pay2msg/transactionrecord"
)

// RegisterProfile - create the owner's profile with its initial price
//
// the owner pays the rent for the profile record
func (inbox *Inbox) RegisterProfile(tx *transactionrecord.RegisterProfile) (address.Address, error) {
	a, err := inbox.registerProfile(tx)
	if nil != err {
		inbox.rejected("RegisterProfile", err)
		return address.Address{}, err
	}
	inbox.log.Infof("RegisterProfile: owner: %s  profile: %s  price: %d", tx.Owner, a, tx.Price)
	return a, nil
}

func (inbox *Inbox) registerProfile(tx *transactionrecord.RegisterProfile) (address.Address, error) {
	link, err := inbox.verifySigner(tx, tx.Owner)
	if nil != err {
		return address.Address{}, err
	}

	profileAddress, bump, err := inbox.deriver.Profile(tx.Owner)
	if nil != err {
		return address.Address{}, err
	}
	owner := address.FromAccount(tx.Owner)

	t, err := inbox.ledger.Begin(profileAddress, owner)
	if nil != err {
		return address.Address{}, err
	}
	defer t.Abort()

	_, err = t.LoadRecord(profileAddress)
	if nil == err {
		return address.Address{}, fault.ErrAlreadyRegistered
	} else if fault.ErrRecordNotFound != err {
		return address.Address{}, err
	}

	err = t.CreateRecord(profileAddress, record.ProfileSpace, owner)
	if nil != err {
		return address.Address{}, err
	}

	profile := record.Profile{
		Owner:         tx.Owner,
		Price:         tx.Price,
		InboxCount:    0,
		ReceivedTotal: 0,
		CreatedAt:     inbox.now().Unix(),
		Bump:          bump,
	}
	err = writeProfile(t, profileAddress, &profile)
	if nil != err {
		return address.Address{}, err
	}

	err = t.MarkTransaction(link[:])
	if nil != err {
		return address.Address{}, err
	}

	err = t.Commit()
	if nil != err {
		return address.Address{}, err
	}
	return profileAddress, nil
}

// UpdatePrice - change the price on the owner's profile
//
// only the price changes, counters and creation time are preserved
func (inbox *Inbox) UpdatePrice(tx *transactionrecord.UpdatePrice) error {
	err := inbox.updatePrice(tx)
	if nil != err {
		inbox.rejected("UpdatePrice", err)
		return err
	}
	inbox.log.Infof("UpdatePrice: owner: %s  profile: %s  price: %d", tx.Owner, tx.Profile, tx.Price)
	return nil
}

func (inbox *Inbox) updatePrice(tx *transactionrecord.UpdatePrice) error {
	link, err := inbox.verifySigner(tx, tx.Owner)
	if nil != err {
		return err
	}

	t, err := inbox.ledger.Begin(tx.Profile)
	if nil != err {
		return err
	}
	defer t.Abort()

	data, err := t.LoadRecord(tx.Profile)
	if nil != err {
		return err
	}
	profile, err := record.UnpackProfile(data, inbox.testnet)
	if nil != err {
		return err
	}

	if !profile.Owner.Equal(tx.Owner) {
		return fault.ErrUnauthorized
	}

	err = inbox.deriver.Verify(tx.Profile, profile.Bump, address.ProfileSeeds(tx.Owner)...)
	if nil != err {
		return err
	}

	profile.Price = tx.Price
	err = writeProfile(t, tx.Profile, profile)
	if nil != err {
		return err
	}

	err = t.MarkTransaction(link[:])
	if nil != err {
		return err
	}

	return t.Commit()
}
