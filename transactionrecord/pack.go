// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/util"
)

// pack RegisterProfile
//
// Pack Varint64(tag) followed by fields in order as struct above with
// signature last
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (register *RegisterProfile) Pack(signer *account.Account) (Packed, error) {
	if len(register.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == register.Owner || nil == signer {
		return nil, fault.ErrInvalidOwner
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(RegisterProfileTag))
	message = appendAccount(message, register.Owner)
	message = appendUint64(message, register.Price)

	// signature
	err := signer.CheckSignature(message, register.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, register.Signature), nil
}

// pack UpdatePrice
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (update *UpdatePrice) Pack(signer *account.Account) (Packed, error) {
	if len(update.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == update.Owner || nil == signer {
		return nil, fault.ErrInvalidOwner
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(UpdatePriceTag))
	message = appendAccount(message, update.Owner)
	message = appendAddress(message, update.Profile)
	message = appendUint64(message, update.Price)
	message = appendUint64(message, update.Nonce)

	// signature
	err := signer.CheckSignature(message, update.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, update.Signature), nil
}

// pack SendMessage
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (send *SendMessage) Pack(signer *account.Account) (Packed, error) {
	if len(send.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == send.Sender || nil == send.Recipient || nil == signer {
		return nil, fault.ErrInvalidOwner
	}
	if len(send.Content) > maxContentLength {
		return nil, fault.ErrContentTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(SendMessageTag))
	message = appendAccount(message, send.Sender)
	message = appendAccount(message, send.Recipient)
	message = appendUint64(message, send.Nonce)
	message = appendUint64(message, send.Amount)
	message = appendBytes(message, send.Content)

	// signature
	err := signer.CheckSignature(message, send.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, send.Signature), nil
}

// pack ReadAndClaim
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func (claim *ReadAndClaim) Pack(signer *account.Account) (Packed, error) {
	if len(claim.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == claim.Recipient || nil == signer {
		return nil, fault.ErrInvalidOwner
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(ReadAndClaimTag))
	message = appendAccount(message, claim.Recipient)
	message = appendAddress(message, claim.Message)
	message = appendUint64(message, claim.Nonce)

	// signature
	err := signer.CheckSignature(message, claim.Signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return appendBytes(message, claim.Signature), nil
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, acc *account.Account) Packed {
	data := acc.Bytes()
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a storage address to a buffer
//
// the field is prefixed by Varint64(length)
func appendAddress(buffer Packed, a address.Address) Packed {
	return appendBytes(buffer, a[:])
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
