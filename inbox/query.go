// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/record"
)

// ProfileInfo - a committed profile and where it lives
type ProfileInfo struct {
	Address address.Address `json:"address"`
	Balance uint64          `json:"balance"`
	record.Profile
}

// MessageInfo - a committed message and where it lives
type MessageInfo struct {
	Address address.Address `json:"address"`
	Balance uint64          `json:"balance"`
	record.Message
}

// Profile - the committed profile of an owner
func (inbox *Inbox) Profile(owner *account.Account) (*ProfileInfo, error) {
	err := inbox.checkNetwork(owner)
	if nil != err {
		return nil, err
	}

	a, _, err := inbox.deriver.Profile(owner)
	if nil != err {
		return nil, err
	}
	data, err := inbox.ledger.Load(a)
	if nil != err {
		return nil, err
	}
	profile, err := record.UnpackProfile(data, inbox.testnet)
	if nil != err {
		return nil, err
	}

	info := &ProfileInfo{
		Address: a,
		Balance: inbox.ledger.Balance(a),
		Profile: *profile,
	}
	return info, nil
}

// Message - the committed message at an address
func (inbox *Inbox) Message(a address.Address) (*MessageInfo, error) {
	data, err := inbox.ledger.Load(a)
	if nil != err {
		return nil, err
	}
	message, err := record.UnpackMessage(data, inbox.testnet)
	if nil != err {
		return nil, err
	}

	info := &MessageInfo{
		Address: a,
		Balance: inbox.ledger.Balance(a),
		Message: *message,
	}
	return info, nil
}

// Inbox - unclaimed messages addressed to a recipient
func (inbox *Inbox) Inbox(recipient *account.Account) ([]*MessageInfo, error) {
	err := inbox.checkNetwork(recipient)
	if nil != err {
		return nil, err
	}

	indexed := inbox.ledger.Indexed(address.FromAccount(recipient))
	result := make([]*MessageInfo, 0, len(indexed))
	for _, a := range indexed {
		info, err := inbox.Message(a)
		if nil != err {

			// claimed between the index scan and the load
			inbox.log.Debugf("Inbox: skip: %s  error: %s", a, err)
			continue
		}
		result = append(result, info)
	}
	return result, nil
}

// Balance - committed lamports at an address
func (inbox *Inbox) Balance(a address.Address) uint64 {
	return inbox.ledger.Balance(a)
}
