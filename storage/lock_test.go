// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pay2msg/address"
)

func TestLockOrder(t *testing.T) {
	a := address.Address{1}
	b := address.Address{2}
	c := address.Address{3}

	ordered := lockOrder([]address.Address{c, a, b, a, c})
	assert.Equal(t, []address.Address{a, b, c}, ordered, "sorted unique")
	assert.Equal(t, 0, len(lockOrder(nil)), "empty")
}

func TestLockTableReleasesEntries(t *testing.T) {
	table := newLockTable()
	held := []address.Address{{1}, {2}}

	table.acquire(held)
	assert.Equal(t, 2, table.size(), "entries while held")

	acquired := make(chan struct{})
	go func() {
		table.acquire(held[1:])
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held address")
	case <-time.After(50 * time.Millisecond):
	}

	table.release(held)
	<-acquired
	assert.Equal(t, 1, table.size(), "entry kept for second holder")

	table.release(held[1:])
	assert.Equal(t, 0, table.size(), "entries after release")
}

func TestDisjointSetsDoNotBlock(t *testing.T) {
	table := newLockTable()
	table.acquire([]address.Address{{1}})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		table.acquire([]address.Address{{2}})
		table.release([]address.Address{{2}})
	}()
	wg.Wait()

	table.release([]address.Address{{1}})
	assert.Equal(t, 0, table.size(), "entries after release")
}
