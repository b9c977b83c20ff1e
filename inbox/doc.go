// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package inbox - the pay-to-contact escrow protocol
//
// A recipient registers a profile carrying a price.  A sender deposits
// at least that price into a message record whose address is derived
// from (recipient, sender, nonce).  The recipient later claims the
// deposit, which closes the message record and credits the recipient.
//
// Every handler verifies the signer, re-derives each address it touches
// from identity keys and applies its changes inside a single storage
// transaction, so either everything is written or nothing is.
package inbox
