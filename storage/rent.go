// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/pay2msg/fault"
)

// Rent - minimum balance a record must hold for its slot
type Rent struct {
	LamportsPerByte uint64 `gluamapper:"lamports_per_byte" json:"lamports_per_byte"`
	Overhead        uint64 `gluamapper:"overhead" json:"overhead"`
}

// MinimumBalance - lamports needed to keep a slot of the given size
func (r Rent) MinimumBalance(size int) (uint64, error) {
	if size < 0 {
		return 0, fault.ErrInvalidRecordSize
	}
	bytes := r.Overhead + uint64(size)
	if bytes < r.Overhead {
		return 0, fault.ErrBalanceOverflow
	}
	if 0 == r.LamportsPerByte || 0 == bytes {
		return 0, nil
	}
	total := bytes * r.LamportsPerByte
	if total/r.LamportsPerByte != bytes {
		return 0, fault.ErrBalanceOverflow
	}
	return total, nil
}
