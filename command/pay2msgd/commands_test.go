// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/chain"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/inbox"
	"github.com/bitmark-inc/pay2msg/storage"
	"github.com/bitmark-inc/pay2msg/transactionrecord"
)

type commandFixture struct {
	log      *logger.L
	store    *storage.Store
	handlers *inbox.Inbox
	options  *Configuration
}

func setupCommands(t *testing.T) *commandFixture {
	database := filepath.Join(t.TempDir(), "test.leveldb")
	store, err := storage.Open(database, storage.ReadWrite, storage.Rent{})
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	t.Cleanup(store.Close)

	options := &Configuration{
		Chain:  chain.Testing,
		ledger: testLedger,
	}
	handlers := inbox.New(
		logger.New(logCategory),
		store,
		address.NewDeriver(testLedger),
		func() time.Time { return time.Unix(1600000000, 0) },
		true,
	)
	return &commandFixture{
		log:      logger.New(logCategory),
		store:    store,
		handlers: handlers,
		options:  options,
	}
}

func (f *commandFixture) run(t *testing.T, reply interface{}, arguments ...string) error {
	var out bytes.Buffer
	err := processDataCommand(&out, f.log, f.store, f.handlers, f.options, arguments)
	if nil == err && nil != reply {
		if jsonErr := json.Unmarshal(out.Bytes(), reply); nil != jsonErr {
			t.Fatalf("decode output: %q  error: %s", out.String(), jsonErr)
		}
	}
	return err
}

func TestSetupVersion(t *testing.T) {
	var out bytes.Buffer
	done, err := processSetupCommand(&out, "pay2msgd", "", []string{"version"})
	assert.True(t, done, "handled")
	assert.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out.String(), "version output")
}

func TestSetupHelp(t *testing.T) {
	var out bytes.Buffer
	done, err := processSetupCommand(&out, "pay2msgd", "", nil)
	assert.True(t, done, "handled")
	assert.Nil(t, err, "help")
	assert.Contains(t, out.String(), "usage: pay2msgd", "usage line")
	assert.Contains(t, out.String(), "display version string", "version description")
	assert.Contains(t, out.String(), "submit HEX", "submit command")
}

func TestSetupDeriveProfile(t *testing.T) {
	owner := newKey(t)

	var out bytes.Buffer
	done, err := processSetupCommand(&out, "pay2msgd", testLedger.String(), []string{"derive-profile", owner.Account().String()})
	assert.True(t, done, "handled")
	assert.Nil(t, err, "derive")

	var reply derivedAddress
	assert.Nil(t, json.Unmarshal(out.Bytes(), &reply), "decode")

	expected, bump, err := address.NewDeriver(testLedger).Profile(owner.Account())
	assert.Nil(t, err, "deriver")
	assert.Equal(t, expected, reply.Address, "address")
	assert.Equal(t, bump, reply.Bump, "bump")
}

func TestSetupDeriveMessage(t *testing.T) {
	recipient := newKey(t)
	sender := newKey(t)

	var out bytes.Buffer
	done, err := processSetupCommand(&out, "pay2msgd", testLedger.String(), []string{"dm", recipient.Account().String(), sender.Account().String(), "7"})
	assert.True(t, done, "handled")
	assert.Nil(t, err, "derive")

	var reply derivedAddress
	assert.Nil(t, json.Unmarshal(out.Bytes(), &reply), "decode")

	expected, bump, err := address.NewDeriver(testLedger).Message(recipient.Account(), sender.Account(), 7)
	assert.Nil(t, err, "deriver")
	assert.Equal(t, expected, reply.Address, "address")
	assert.Equal(t, bump, reply.Bump, "bump")
}

func TestSetupErrors(t *testing.T) {
	owner := newKey(t)
	var out bytes.Buffer

	_, err := processSetupCommand(&out, "pay2msgd", "", []string{"derive-profile", owner.Account().String()})
	assert.Equal(t, fault.ErrMissingParameters, err, "no ledger")

	_, err = processSetupCommand(&out, "pay2msgd", testLedger.String(), []string{"derive-profile"})
	assert.Equal(t, fault.ErrMissingParameters, err, "no owner")

	_, err = processSetupCommand(&out, "pay2msgd", testLedger.String(), []string{"derive-message", owner.Account().String(), owner.Account().String(), "-1"})
	assert.NotNil(t, err, "negative nonce")

	done, err := processSetupCommand(&out, "pay2msgd", "", []string{"no-such-command"})
	assert.True(t, done, "handled")
	assert.Equal(t, fault.ErrInvalidCommand, err, "unknown command")
}

func TestSetupDefersDataCommands(t *testing.T) {
	for _, command := range []string{"fund", "balance", "profile", "message", "inbox", "submit", "config-test"} {
		var out bytes.Buffer
		done, err := processSetupCommand(&out, "pay2msgd", "", []string{command})
		assert.False(t, done, "deferred: %s", command)
		assert.Nil(t, err, "deferred: %s", command)
		assert.Equal(t, 0, out.Len(), "no output: %s", command)
	}

	assert.True(t, isUpdateCommand([]string{"fund"}), "fund writes")
	assert.True(t, isUpdateCommand([]string{"submit"}), "submit writes")
	assert.False(t, isUpdateCommand([]string{"balance"}), "balance reads")
	assert.False(t, isUpdateCommand(nil), "no command")
}

func TestFundAndBalance(t *testing.T) {
	f := setupCommands(t)
	key := newKey(t)
	a := address.FromAccount(key.Account())

	var reply balanceReply
	err := f.run(t, &reply, "fund", key.Account().String(), "500")
	assert.Nil(t, err, "fund")
	assert.Equal(t, a, reply.Address, "funded address")
	assert.Equal(t, uint64(500), reply.Balance, "funded balance")

	err = f.run(t, &reply, "fund", a.String(), "25")
	assert.Nil(t, err, "fund by address")
	assert.Equal(t, uint64(525), reply.Balance, "second fund")

	reply = balanceReply{}
	err = f.run(t, &reply, "bal", key.Account().String())
	assert.Nil(t, err, "balance")
	assert.Equal(t, uint64(525), reply.Balance, "balance")

	assert.NotNil(t, f.run(t, nil, "fund", a.String(), "many"), "bad amount")
	assert.Equal(t, fault.ErrMissingParameters, f.run(t, nil, "balance"), "missing address")
	assert.Equal(t, fault.ErrInvalidCommand, f.run(t, nil, "transfer"), "unknown command")
}

func TestSubmitAndQuery(t *testing.T) {
	f := setupCommands(t)
	owner := newKey(t)
	sender := newKey(t)

	register := &transactionrecord.RegisterProfile{
		Owner: owner.Account(),
		Price: 100,
	}
	unsigned, err := register.Pack(owner.Account())
	assert.Equal(t, fault.ErrInvalidSignature, err, "unsigned pack")
	register.Signature = owner.Sign(unsigned)
	packed, err := register.Pack(owner.Account())
	assert.Nil(t, err, "signed pack")

	var submitted submitReply
	err = f.run(t, &submitted, "submit", hex.EncodeToString(packed))
	assert.Nil(t, err, "submit register")
	assert.Equal(t, "RegisterProfile", submitted.Type, "type")

	profileAddress, _, err := address.NewDeriver(testLedger).Profile(owner.Account())
	assert.Nil(t, err, "derive profile")
	assert.Equal(t, profileAddress, submitted.Address, "profile address")

	var profile inbox.ProfileInfo
	err = f.run(t, &profile, "profile", owner.Account().String())
	assert.Nil(t, err, "profile")
	assert.Equal(t, profileAddress, profile.Address, "profile query address")
	assert.Equal(t, uint64(100), profile.Price, "price")
	assert.True(t, owner.Account().Equal(profile.Owner), "owner")

	assert.Nil(t, f.run(t, nil, "fund", sender.Account().String(), "1000"), "fund sender")

	send := &transactionrecord.SendMessage{
		Sender:    sender.Account(),
		Recipient: owner.Account(),
		Nonce:     1,
		Amount:    150,
		Content:   []byte("hello"),
	}
	unsigned, _ = send.Pack(sender.Account())
	send.Signature = sender.Sign(unsigned)
	packed, err = send.Pack(sender.Account())
	assert.Nil(t, err, "signed pack")

	err = f.run(t, &submitted, "submit", hex.EncodeToString(packed))
	assert.Nil(t, err, "submit send")
	assert.Equal(t, "SendMessage", submitted.Type, "type")

	var message inbox.MessageInfo
	err = f.run(t, &message, "message", submitted.Address.String())
	assert.Nil(t, err, "message")
	assert.Equal(t, uint64(150), message.Amount, "amount")
	assert.Equal(t, uint64(150), message.Balance, "escrow")
	assert.Equal(t, []byte("hello"), message.Content, "content")

	var messages []*inbox.MessageInfo
	err = f.run(t, &messages, "inbox", owner.Account().String())
	assert.Nil(t, err, "inbox")
	if assert.Equal(t, 1, len(messages), "inbox size") {
		assert.Equal(t, submitted.Address, messages[0].Address, "inbox entry")
	}

	var balance balanceReply
	err = f.run(t, &balance, "balance", sender.Account().String())
	assert.Nil(t, err, "sender balance")
	assert.Equal(t, uint64(850), balance.Balance, "sender debited")

	err = f.run(t, nil, "submit", hex.EncodeToString(packed))
	assert.Equal(t, fault.ErrAlreadyExists, err, "resubmit")

	err = f.run(t, nil, "submit", "zz")
	assert.NotNil(t, err, "bad hex")

	err = f.run(t, nil, "profile", sender.Account().String())
	assert.Equal(t, fault.ErrRecordNotFound, err, "no profile")

	var cfg Configuration
	err = f.run(t, &cfg, "config-test")
	assert.Nil(t, err, "config test")
	assert.Equal(t, chain.Testing, cfg.Chain, "chain")
}
