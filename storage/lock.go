// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"
	"sync"

	"github.com/bitmark-inc/pay2msg/address"
)

// per address exclusive locks
//
// entries are created on demand and removed when no transaction
// holds or waits for them
type lockTable struct {
	sync.Mutex
	entries map[address.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{
		entries: make(map[address.Address]*lockEntry),
	}
}

// sorted and without duplicates
func lockOrder(addresses []address.Address) []address.Address {
	sorted := make([]address.Address, len(addresses))
	copy(sorted, addresses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	n := 0
	for i, a := range sorted {
		if 0 == i || a != sorted[n-1] {
			sorted[n] = a
			n += 1
		}
	}
	return sorted[:n]
}

// lock in ascending address order so two transactions can never wait
// on each other
func (t *lockTable) acquire(ordered []address.Address) {
	for _, a := range ordered {
		t.Lock()
		e, ok := t.entries[a]
		if !ok {
			e = &lockEntry{}
			t.entries[a] = e
		}
		e.refs += 1
		t.Unlock()

		e.Lock()
	}
}

func (t *lockTable) release(ordered []address.Address) {
	for i := len(ordered) - 1; i >= 0; i -= 1 {
		a := ordered[i]

		t.Lock()
		e := t.entries[a]
		e.Unlock()
		e.refs -= 1
		if 0 == e.refs {
			delete(t.entries, a)
		}
		t.Unlock()
	}
}

// number of addresses currently tracked
func (t *lockTable) size() int {
	t.Lock()
	defer t.Unlock()
	return len(t.entries)
}
