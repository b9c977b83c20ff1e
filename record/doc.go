// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - fixed layouts of the two persistent record types
//
//   Profile:
//     disc 8 ⧺ owner 32 ⧺ price 8 ⧺ inbox count 8 ⧺ received total 8 ⧺ created at 8 ⧺ bump 1
//
//   Message:
//     disc 8 ⧺ sender 32 ⧺ recipient 32 ⧺ amount 8 ⧺ created at 8 ⧺ read 1 ⧺ bump 1
//     ⧺ content length 4 ⧺ content (up to 256)
//
// all integers are big endian; disc is the first eight bytes of
// SHA3-256("account:<type>") so a record can never be decoded as the
// wrong type.  A message slot is always allocated at its maximum size;
// bytes beyond the content are zero.
package record
