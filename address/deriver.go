// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/fault"
)

// seed limits
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// tags fixing the record type into its address
const (
	ProfileTag = "profile"
	MessageTag = "message"
)

const derivationMarker = "ProgramDerivedAddress"

// Deriver - computes addresses owned by one ledger
type Deriver struct {
	ledger Address

	// reports whether a candidate could be an identity's public key
	signable func([]byte) bool
}

// NewDeriver - deriver for the ledger identified by the key
func NewDeriver(ledger Address) *Deriver {
	return &Deriver{
		ledger:   ledger,
		signable: IsSignable,
	}
}

// Ledger - the key this deriver binds into every address
func (d *Deriver) Ledger() Address {
	return d.ledger
}

// IsSignable - true if the bytes decode as a point on the ed25519 curve
func IsSignable(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// Create - the address for a set of seeds and a specific bump
func (d *Deriver) Create(seeds [][]byte, bump uint8) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.ErrInvalidSeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Address{}, fault.ErrInvalidSeeds
		}
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(d.ledger[:])
	h.Write([]byte(derivationMarker))

	a := Address{}
	copy(a[:], h.Sum(nil))

	if d.signable(a[:]) {
		return Address{}, fault.ErrSignableAddress
	}
	return a, nil
}

// Find - the canonical address for the seeds
//
// bumps are tried from 255 downwards and the first address outside
// the signable set wins
func (d *Deriver) Find(seeds ...[]byte) (Address, uint8, error) {
	for bump := 255; bump >= 0; bump -= 1 {
		a, err := d.Create(seeds, uint8(bump))
		switch err {
		case nil:
			return a, uint8(bump), nil
		case fault.ErrSignableAddress:
			continue
		default:
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrDerivationExhausted
}

// Verify - check a claimed address and stored bump against the seeds
//
// both the stored bump and the canonical bump must reproduce the claim
func (d *Deriver) Verify(claimed Address, bump uint8, seeds ...[]byte) error {
	a, err := d.Create(seeds, bump)
	if nil != err || a != claimed {
		return fault.ErrAddressMismatch
	}
	canonical, canonicalBump, err := d.Find(seeds...)
	if nil != err || canonical != claimed || canonicalBump != bump {
		return fault.ErrAddressMismatch
	}
	return nil
}

// Profile - address of the profile record belonging to an owner
func (d *Deriver) Profile(owner *account.Account) (Address, uint8, error) {
	return d.Find(ProfileSeeds(owner)...)
}

// Message - address of the escrow record for one deposit
func (d *Deriver) Message(recipient *account.Account, sender *account.Account, nonce uint64) (Address, uint8, error) {
	return d.Find(MessageSeeds(recipient, sender, nonce)...)
}

// ProfileSeeds - seed list for a profile address
func ProfileSeeds(owner *account.Account) [][]byte {
	return [][]byte{
		[]byte(ProfileTag),
		owner.PublicKeyBytes(),
	}
}

// MessageSeeds - seed list for a message address
func MessageSeeds(recipient *account.Account, sender *account.Account, nonce uint64) [][]byte {
	n := make([]byte, 8)
	binary.LittleEndian.PutUint64(n, nonce)
	return [][]byte{
		[]byte(MessageTag),
		recipient.PublicKeyBytes(),
		sender.PublicKeyBytes(),
		n,
	}
}
