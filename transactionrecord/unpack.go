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

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *transactionrecord.SendMessage:
func (record Packed) Unpack(testnet bool) (t Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.ErrNotTransactionPack
		}
	}()

	// never read beyond the visible part of the slice
	record = record[:len(record):len(record)]

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrNotTransactionPack
	}

unpack_switch:
	switch TagType(recordType) {

	case RegisterProfileTag:

		// owner public key
		owner, ownerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += ownerLength

		// price
		price, priceLength := util.FromVarint64(record[n:])
		if 0 == priceLength {
			break unpack_switch
		}
		n += priceLength

		// signature is remainder of record
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &RegisterProfile{
			Owner:     owner,
			Price:     price,
			Signature: signature,
		}
		return r, n, nil

	case UpdatePriceTag:

		// owner public key
		owner, ownerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += ownerLength

		// claimed profile address
		profile, profileLength, err := unpackAddress(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += profileLength

		// price
		price, priceLength := util.FromVarint64(record[n:])
		if 0 == priceLength {
			break unpack_switch
		}
		n += priceLength

		// nonce
		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		// signature
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &UpdatePrice{
			Owner:     owner,
			Profile:   profile,
			Price:     price,
			Nonce:     nonce,
			Signature: signature,
		}
		return r, n, nil

	case SendMessageTag:

		// sender public key
		sender, senderLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += senderLength

		// recipient public key
		recipient, recipientLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += recipientLength

		// nonce
		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		// amount
		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		// content (can be zero length)
		contentLength, contentOffset := util.ClippedVarint64(record[n:], 0, maxContentLength)
		if 0 == contentOffset {
			if _, count := util.FromVarint64(record[n:]); 0 != count {
				return nil, 0, fault.ErrContentTooLong
			}
			break unpack_switch
		}
		n += contentOffset
		content := make([]byte, contentLength)
		copy(content, record[n:n+contentLength])
		n += contentLength

		// signature
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &SendMessage{
			Sender:    sender,
			Recipient: recipient,
			Nonce:     nonce,
			Amount:    amount,
			Content:   content,
			Signature: signature,
		}
		return r, n, nil

	case ReadAndClaimTag:

		// recipient public key
		recipient, recipientLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += recipientLength

		// claimed message address
		message, messageLength, err := unpackAddress(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += messageLength

		// nonce
		nonce, nonceLength := util.FromVarint64(record[n:])
		if 0 == nonceLength {
			break unpack_switch
		}
		n += nonceLength

		// signature
		signature, signatureLength := unpackSignature(record[n:])
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &ReadAndClaim{
			Recipient: recipient,
			Message:   message,
			Nonce:     nonce,
			Signature: signature,
		}
		return r, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.ErrNotTransactionPack
}

// length prefixed account on the expected network
func unpackAccount(record []byte, testnet bool) (*account.Account, int, error) {
	accountLength, accountOffset := util.ClippedVarint64(record, 1, 8192)
	if 0 == accountOffset {
		return nil, 0, fault.ErrNotTransactionPack
	}
	n := accountOffset
	acc, err := account.AccountFromBytes(record[n : n+accountLength])
	if nil != err {
		return nil, 0, err
	}
	if acc.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	return acc, n + accountLength, nil
}

// length prefixed storage address
func unpackAddress(record []byte) (address.Address, int, error) {
	a := address.Address{}
	addressLength, addressOffset := util.ClippedVarint64(record, 1, 8192)
	if 0 == addressOffset {
		return a, 0, fault.ErrNotTransactionPack
	}
	n := addressOffset
	err := address.FromBytes(&a, record[n:n+addressLength])
	if nil != err {
		return a, 0, err
	}
	return a, n + addressLength, nil
}

// length prefixed signature, zero length if missing
func unpackSignature(record []byte) (account.Signature, int) {
	signatureLength, signatureOffset := util.ClippedVarint64(record, 1, maxSignatureLength)
	if 0 == signatureOffset {
		return nil, 0
	}
	n := signatureOffset
	signature := make(account.Signature, signatureLength)
	copy(signature, record[n:n+signatureLength])
	return signature, n + signatureLength
}
