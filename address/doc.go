// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic storage addresses
//
// every record in the ledger lives at an address computed from a
// short list of seeds (a tag plus identity keys), a one byte bump and
// the ledger key.  An address is only accepted if it falls outside the
// ed25519 point set, so no private key can ever sign for it and only
// the ledger itself can authorise changes to the record stored there.
package address
