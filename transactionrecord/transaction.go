// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	RegisterProfileTag = TagType(iota) // publish a price
	UpdatePriceTag     = TagType(iota) // change the published price
	SendMessageTag     = TagType(iota) // deposit into escrow
	ReadAndClaimTag    = TagType(iota) // release escrow to recipient

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Pack(account *account.Account) (Packed, error)
}

// byte sizes for various fields
const (
	maxContentLength   = 256
	maxSignatureLength = 1024
)

// RegisterProfile - create the signer's own profile
type RegisterProfile struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Price     uint64            `json:"price,string"` // lamports required per message
	Signature account.Signature `json:"signature"`    // hex: corresponds to owner
}

// UpdatePrice - change the price on an existing profile
type UpdatePrice struct {
	Owner     *account.Account  `json:"owner"`        // base58
	Profile   address.Address   `json:"profile"`      // base58: claimed profile address
	Price     uint64            `json:"price,string"` // new price
	Nonce     uint64            `json:"nonce,string"` // distinguishes repeated price changes
	Signature account.Signature `json:"signature"`    // hex: corresponds to owner
}

// SendMessage - deposit funds and content for a recipient
type SendMessage struct {
	Sender    *account.Account  `json:"sender"`        // base58
	Recipient *account.Account  `json:"recipient"`     // base58
	Nonce     uint64            `json:"nonce,string"`  // distinguishes repeated messages
	Amount    uint64            `json:"amount,string"` // lamports to escrow
	Content   []byte            `json:"content"`       // base64
	Signature account.Signature `json:"signature"`     // hex: corresponds to sender
}

// ReadAndClaim - recipient releases an escrowed deposit
type ReadAndClaim struct {
	Recipient *account.Account  `json:"recipient"`    // base58
	Message   address.Address   `json:"message"`      // base58: claimed message address
	Nonce     uint64            `json:"nonce,string"` // nonce used by the sender
	Signature account.Signature `json:"signature"`    // hex: corresponds to recipient
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *RegisterProfile, RegisterProfile:
		return "RegisterProfile", true

	case *UpdatePrice, UpdatePrice:
		return "UpdatePrice", true

	case *SendMessage, SendMessage:
		return "SendMessage", true

	case *ReadAndClaim, ReadAndClaim:
		return "ReadAndClaim", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed to its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
