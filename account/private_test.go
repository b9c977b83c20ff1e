// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/fault"
)

func TestPrivateKeyRoundTrip(t *testing.T) {
	priv, err := account.NewPrivateKey(true, rand.Reader)
	assert.Nil(t, err, "generate")

	decoded, err := account.PrivateKeyFromBase58(priv.String())
	assert.Nil(t, err, "decode")
	assert.True(t, decoded.Test, "test flag")
	assert.True(t, bytes.Equal(priv.PrivateKey, decoded.PrivateKey), "private key bytes")
	assert.True(t, priv.Account().Equal(decoded.Account()), "same public key")
}

func TestPrivateKeySignature(t *testing.T) {
	priv, err := account.NewPrivateKey(false, rand.Reader)
	assert.Nil(t, err, "generate")

	message := []byte("pay to contact")
	signature := priv.Sign(message)

	acc := priv.Account()
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature([]byte("other"), signature), "wrong message")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")
}

func TestPrivateKeyIsNotAccount(t *testing.T) {
	priv, err := account.NewPrivateKey(false, rand.Reader)
	assert.Nil(t, err, "generate")

	_, err = account.AccountFromBase58(priv.String())
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key decoded as account")

	_, err = account.PrivateKeyFromBase58(priv.Account().String())
	assert.Equal(t, fault.ErrNotPrivateKey, err, "account decoded as private key")
}
