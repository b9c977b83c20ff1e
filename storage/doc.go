// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the on-disk ledger state
//
// maintain separate pools of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++      = concatenation of byte data
// 3. address = 32 byte storage address
// 4. size    = big endian uint32 (4 bytes)
// 5. amount  = big endian uint64 (8 bytes)
// 6. link    = 32 byte transaction identity
//
// Records:
//
//   R ++ address               - fixed capacity record slot
//                                data: size ++ data (zero padded to size)
//
// Balances:
//
//   B ++ address               - lamports held at an address (absent if zero)
//                                data: amount
//
// Closed:
//
//   C ++ address               - address of a closed record, never reallocated
//                                data: 0x01
//
// Transactions:
//
//   T ++ link                  - sha3-256 of every applied signed transaction
//                                data: 0x01
//
// Inbox:
//
//   X ++ recipient ++ message  - live escrow messages for a recipient
//                                data: empty
//
// All changes go through a Transaction obtained from Store.Begin.  The
// transaction holds exclusive locks on a declared set of addresses,
// stages its writes in a LevelDB batch and commits them with a single
// atomic write.
package storage
