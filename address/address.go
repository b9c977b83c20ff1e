// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a 32 byte storage location
//
// an identity's own balance lives at the address equal to its public key
type Address [Length]byte

// FromBytes - convert and validate a byte slice to an address
func FromBytes(address *Address, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrCannotDecodeAddress
	}
	copy(address[:], buffer)
	return nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	a := Address{}
	buffer, err := base58.Decode(s)
	if nil != err {
		return a, fault.ErrCannotDecodeAddress
	}
	err = FromBytes(&a, buffer)
	return a, err
}

// FromAccount - the balance address of an identity
func FromAccount(acc *account.Account) Address {
	a := Address{}
	copy(a[:], acc.PublicKeyBytes())
	return a
}

// Account - the identity whose public key is this address
func (address Address) Account(test bool) (*account.Account, error) {
	return account.AccountFromPublicKey(test, address[:])
}

// Compare - ordering used when locking sets of addresses
func (address Address) Compare(other Address) int {
	return bytes.Compare(address[:], other[:])
}

// IsZero - all bytes zero
func (address Address) IsZero() bool {
	return Address{} == address
}

// String - base58 text for use by the fmt package (for %s)
func (address Address) String() string {
	return base58.Encode(address[:])
}

// GoString - hex form for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// MarshalText - convert an address to base58 text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
