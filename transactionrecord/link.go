// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// LinkLength - number of bytes in a transaction link
const LinkLength = 32

// Link - the identity of a complete signed transaction
type Link [LinkLength]byte

// MakeLink - create a link from a packed record
//
// the signature is part of the packed bytes, so a link is only
// meaningful for a record that passed Pack or Unpack
func (record Packed) MakeLink() Link {
	return Link(sha3.Sum256(record))
}

// String - hex form of a link
func (link Link) String() string {
	return hex.EncodeToString(link[:])
}

// MarshalText - convert a link to its hex JSON form
func (link Link) MarshalText() ([]byte, error) {
	return []byte(link.String()), nil
}
