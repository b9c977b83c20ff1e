// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Each error belongs to one class so callers can decide what to do
// without knowing every individual error:
//
//   InvalidError       - caller-correctable, nothing was changed
//   AuthorisationError - signer may not act on the record
//   ExistsError        - idempotence boundary, do not retry blindly
//   NotFoundError      - no live record at the address
//   ResourceError      - funds, counters or address space exhausted
//   ProcessError       - misuse of the store or setup failures
package fault
