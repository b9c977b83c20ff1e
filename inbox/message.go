// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package inbox

import (
	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/record"
	"github.com/bitmark-inc/pay2msg/storage"
	"github.com/bitmark-inc/pay2msg/transactionrecord"
)

// SendMessage - escrow a deposit and its content for a recipient
//
// the sender funds both the deposit and the rent of the message record
func (inbox *Inbox) SendMessage(tx *transactionrecord.SendMessage) (address.Address, error) {
	a, err := inbox.sendMessage(tx)
	if nil != err {
		inbox.rejected("SendMessage", err)
		return address.Address{}, err
	}
	inbox.log.Infof("SendMessage: sender: %s  recipient: %s  nonce: %d  amount: %d  message: %s", tx.Sender, tx.Recipient, tx.Nonce, tx.Amount, a)
	return a, nil
}

func (inbox *Inbox) sendMessage(tx *transactionrecord.SendMessage) (address.Address, error) {
	if len(tx.Content) > record.MaxContentLength {
		return address.Address{}, fault.ErrContentTooLong
	}

	link, err := inbox.verifySigner(tx, tx.Sender)
	if nil != err {
		return address.Address{}, err
	}
	err = inbox.checkNetwork(tx.Recipient)
	if nil != err {
		return address.Address{}, err
	}

	profileAddress, _, err := inbox.deriver.Profile(tx.Recipient)
	if nil != err {
		return address.Address{}, err
	}
	messageAddress, bump, err := inbox.deriver.Message(tx.Recipient, tx.Sender, tx.Nonce)
	if nil != err {
		return address.Address{}, err
	}
	sender := address.FromAccount(tx.Sender)

	t, err := inbox.ledger.Begin(sender, profileAddress, messageAddress)
	if nil != err {
		return address.Address{}, err
	}
	defer t.Abort()

	profile, err := inbox.loadProfile(t, profileAddress, tx.Recipient)
	if nil != err {
		return address.Address{}, err
	}

	if tx.Amount < profile.Price {
		return address.Address{}, fault.ErrUnderpriced
	}

	_, err = t.LoadRecord(messageAddress)
	if nil == err {
		return address.Address{}, fault.ErrAlreadyExists
	} else if fault.ErrRecordNotFound != err {
		return address.Address{}, err
	}

	// a claimed message leaves its address reserved
	err = t.CreateRecord(messageAddress, record.MessageMaxSpace, sender)
	if fault.ErrAddressInUse == err {
		return address.Address{}, fault.ErrAlreadyExists
	} else if nil != err {
		return address.Address{}, err
	}
	err = t.Transfer(sender, messageAddress, tx.Amount)
	if nil != err {
		return address.Address{}, err
	}

	message := record.Message{
		Sender:    tx.Sender,
		Recipient: tx.Recipient,
		Amount:    tx.Amount,
		CreatedAt: inbox.now().Unix(),
		Read:      false,
		Bump:      bump,
		Content:   tx.Content,
	}
	err = writeMessage(t, messageAddress, &message)
	if nil != err {
		return address.Address{}, err
	}

	if profile.InboxCount+1 < profile.InboxCount {
		return address.Address{}, fault.ErrCounterOverflow
	}
	profile.InboxCount += 1
	err = writeProfile(t, profileAddress, profile)
	if nil != err {
		return address.Address{}, err
	}

	err = t.PutIndex(address.FromAccount(tx.Recipient), messageAddress)
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
	return messageAddress, nil
}

// ReadAndClaim - release an escrowed deposit to its recipient
//
// the message record is closed and its rent also goes to the recipient;
// returns the amount released
func (inbox *Inbox) ReadAndClaim(tx *transactionrecord.ReadAndClaim) (uint64, error) {
	amount, err := inbox.readAndClaim(tx)
	if nil != err {
		inbox.rejected("ReadAndClaim", err)
		return 0, err
	}
	inbox.log.Infof("ReadAndClaim: recipient: %s  message: %s  amount: %d", tx.Recipient, tx.Message, amount)
	return amount, nil
}

func (inbox *Inbox) readAndClaim(tx *transactionrecord.ReadAndClaim) (uint64, error) {
	link, err := inbox.verifySigner(tx, tx.Recipient)
	if nil != err {
		return 0, err
	}

	profileAddress, _, err := inbox.deriver.Profile(tx.Recipient)
	if nil != err {
		return 0, err
	}
	recipient := address.FromAccount(tx.Recipient)

	t, err := inbox.ledger.Begin(tx.Message, recipient, profileAddress)
	if nil != err {
		return 0, err
	}
	defer t.Abort()

	data, err := t.LoadRecord(tx.Message)
	if nil != err {
		return 0, err
	}
	message, err := record.UnpackMessage(data, inbox.testnet)
	if nil != err {
		return 0, err
	}

	if !message.Recipient.Equal(tx.Recipient) {
		return 0, fault.ErrUnauthorized
	}

	seeds := address.MessageSeeds(tx.Recipient, message.Sender, tx.Nonce)
	err = inbox.deriver.Verify(tx.Message, message.Bump, seeds...)
	if nil != err {
		return 0, err
	}

	if message.Read {
		return 0, fault.ErrAlreadyClaimed
	}

	err = t.Transfer(tx.Message, recipient, message.Amount)
	if nil != err {
		return 0, err
	}

	profile, err := inbox.loadProfile(t, profileAddress, tx.Recipient)
	if nil != err {
		return 0, err
	}
	if profile.ReceivedTotal+message.Amount < profile.ReceivedTotal {
		return 0, fault.ErrCounterOverflow
	}
	profile.ReceivedTotal += message.Amount
	err = writeProfile(t, profileAddress, profile)
	if nil != err {
		return 0, err
	}

	message.Read = true
	err = writeMessage(t, tx.Message, message)
	if nil != err {
		return 0, err
	}

	err = t.CloseRecord(tx.Message, recipient)
	if nil != err {
		return 0, err
	}
	err = t.DeleteIndex(recipient, tx.Message)
	if nil != err {
		return 0, err
	}

	err = t.MarkTransaction(link[:])
	if nil != err {
		return 0, err
	}

	err = t.Commit()
	if nil != err {
		return 0, err
	}
	return message.Amount, nil
}

// load the profile at its derived address and confirm the stored bump
func (inbox *Inbox) loadProfile(t storage.Transaction, profileAddress address.Address, owner *account.Account) (*record.Profile, error) {
	data, err := t.LoadRecord(profileAddress)
	if nil != err {
		return nil, err
	}
	profile, err := record.UnpackProfile(data, inbox.testnet)
	if nil != err {
		return nil, err
	}
	if !profile.Owner.Equal(owner) {
		return nil, fault.ErrAddressMismatch
	}
	err = inbox.deriver.Verify(profileAddress, profile.Bump, address.ProfileSeeds(owner)...)
	if nil != err {
		return nil, err
	}
	return profile, nil
}

func writeProfile(t storage.Transaction, a address.Address, profile *record.Profile) error {
	data, err := profile.Pack()
	if nil != err {
		return err
	}
	return t.WriteRecord(a, data)
}

func writeMessage(t storage.Transaction, a address.Address, message *record.Message) error {
	data, err := message.Pack()
	if nil != err {
		return err
	}
	return t.WriteRecord(a, data)
}
