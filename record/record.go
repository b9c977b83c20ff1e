// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"

	"golang.org/x/crypto/sha3"
)

const (
	oneByteSize     = 1
	uint32ByteSize  = 4
	uint64ByteSize  = 8
	keyByteSize     = 32
	discriminatorSz = 8
)

// MaxContentLength - largest message body accepted
const MaxContentLength = 256

// discriminators
var (
	profileDiscriminator = discriminator("Profile")
	messageDiscriminator = discriminator("Message")
)

func discriminator(name string) []byte {
	d := sha3.Sum256([]byte("account:" + name))
	return d[:discriminatorSz]
}

// check the header of a packed record
func hasDiscriminator(buffer []byte, disc []byte) bool {
	return len(buffer) >= discriminatorSz && bytes.Equal(buffer[:discriminatorSz], disc)
}

// zero padding after a record is permitted, anything else is not
func isPadding(buffer []byte) bool {
	for _, b := range buffer {
		if 0 != b {
			return false
		}
	}
	return true
}
