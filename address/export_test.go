// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// SetSignable - replace the curve membership check
func (d *Deriver) SetSignable(f func([]byte) bool) {
	d.signable = f
}
