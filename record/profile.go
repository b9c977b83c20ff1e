// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/fault"
)

// structure of the profile record
const (
	profileDiscStart  = 0
	profileDiscFinish = profileDiscStart + discriminatorSz

	profileOwnerStart  = profileDiscFinish
	profileOwnerFinish = profileOwnerStart + keyByteSize

	profilePriceStart  = profileOwnerFinish
	profilePriceFinish = profilePriceStart + uint64ByteSize

	profileInboxCountStart  = profilePriceFinish
	profileInboxCountFinish = profileInboxCountStart + uint64ByteSize

	profileReceivedStart  = profileInboxCountFinish
	profileReceivedFinish = profileReceivedStart + uint64ByteSize

	profileCreatedStart  = profileReceivedFinish
	profileCreatedFinish = profileCreatedStart + uint64ByteSize

	profileBumpStart  = profileCreatedFinish
	profileBumpFinish = profileBumpStart + oneByteSize

	// ProfileSpace - bytes allocated for a profile
	ProfileSpace = profileBumpFinish
)

// Profile - a recipient's published price and counters
type Profile struct {
	Owner         *account.Account `json:"owner"`
	Price         uint64           `json:"price"`
	InboxCount    uint64           `json:"inboxCount"`
	ReceivedTotal uint64           `json:"receivedTotal"`
	CreatedAt     int64            `json:"createdAt"`
	Bump          uint8            `json:"bump"`
}

// Pack - fixed size binary form
func (profile *Profile) Pack() ([]byte, error) {
	if nil == profile.Owner || account.ED25519 != profile.Owner.KeyType() {
		return nil, fault.ErrInvalidOwner
	}

	buffer := make([]byte, ProfileSpace)
	copy(buffer[profileDiscStart:profileDiscFinish], profileDiscriminator)
	copy(buffer[profileOwnerStart:profileOwnerFinish], profile.Owner.PublicKeyBytes())
	binary.BigEndian.PutUint64(buffer[profilePriceStart:profilePriceFinish], profile.Price)
	binary.BigEndian.PutUint64(buffer[profileInboxCountStart:profileInboxCountFinish], profile.InboxCount)
	binary.BigEndian.PutUint64(buffer[profileReceivedStart:profileReceivedFinish], profile.ReceivedTotal)
	binary.BigEndian.PutUint64(buffer[profileCreatedStart:profileCreatedFinish], uint64(profile.CreatedAt))
	buffer[profileBumpStart] = profile.Bump

	return buffer, nil
}

// UnpackProfile - decode a profile slot
//
// the owner key is tagged with the network of the ledger
func UnpackProfile(buffer []byte, testnet bool) (*Profile, error) {
	if len(buffer) < ProfileSpace || !hasDiscriminator(buffer, profileDiscriminator) {
		return nil, fault.ErrNotRecordPack
	}
	if !isPadding(buffer[ProfileSpace:]) {
		return nil, fault.ErrNotRecordPack
	}

	owner, err := account.AccountFromPublicKey(testnet, buffer[profileOwnerStart:profileOwnerFinish])
	if nil != err {
		return nil, err
	}

	profile := &Profile{
		Owner:         owner,
		Price:         binary.BigEndian.Uint64(buffer[profilePriceStart:profilePriceFinish]),
		InboxCount:    binary.BigEndian.Uint64(buffer[profileInboxCountStart:profileInboxCountFinish]),
		ReceivedTotal: binary.BigEndian.Uint64(buffer[profileReceivedStart:profileReceivedFinish]),
		CreatedAt:     int64(binary.BigEndian.Uint64(buffer[profileCreatedStart:profileCreatedFinish])),
		Bump:          buffer[profileBumpStart],
	}
	return profile, nil
}
