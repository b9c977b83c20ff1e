// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/pay2msg/chain"
	"github.com/bitmark-inc/pay2msg/fault"
)

func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "pay2msgd.conf")
	err := os.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, fmt.Sprintf(`
local M = {}
M.data_directory = "."
M.chain = "Testing"
M.ledger = "%s"
M.rent = {
    lamports_per_byte = 2,
    overhead = 64,
}
M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
    },
}
return M
`, testLedger))

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")

	dir := filepath.Dir(fileName)
	assert.Equal(t, chain.Testing, c.Chain, "chain lower cased")
	assert.True(t, c.IsTesting(), "testing chain")
	assert.Equal(t, testLedger, c.ledger, "ledger")
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "pay2msgd.log", c.Logging.File, "default log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "log level")
	assert.Equal(t, uint64(2), c.Rent.LamportsPerByte, "lamports per byte")
	assert.Equal(t, uint64(64), c.Rent.Overhead, "rent overhead")

	info, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory created")
	assert.True(t, info.IsDir(), "database directory is a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, fmt.Sprintf(`
return {
    data_directory = ".",
    ledger = "%s",
}
`, testLedger))

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")
	assert.Equal(t, chain.Live, c.Chain, "default chain")
	assert.False(t, c.IsTesting(), "live chain")
	assert.Equal(t, "live.leveldb", filepath.Base(c.Database.Name), "live database")
	assert.Equal(t, uint64(defaultLamportsPerByte), c.Rent.LamportsPerByte, "default lamports per byte")
	assert.Equal(t, uint64(defaultRentOverhead), c.Rent.Overhead, "default rent overhead")
}

func TestGetConfigurationErrors(t *testing.T) {
	fileName := writeConfiguration(t, fmt.Sprintf(`
return {
    data_directory = ".",
    chain = "bitmark",
    ledger = "%s",
}
`, testLedger))
	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidChain, err, "unknown chain")

	fileName = writeConfiguration(t, `
return {
    data_directory = ".",
    ledger = "0OIl",
}
`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "bad ledger")

	fileName = writeConfiguration(t, `
return {
    data_directory = ".",
}
`)
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "missing ledger")

	fileName = writeConfiguration(t, fmt.Sprintf(`
return {
    ledger = "%s",
}
`, testLedger))
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "missing data directory")

	fileName = writeConfiguration(t, fmt.Sprintf(`
return {
    data_directory = ".",
    ledger = "%s",
    database = {
        name = "sub/dir.leveldb",
    },
}
`, testLedger))
	_, err = getConfiguration(fileName)
	assert.NotNil(t, err, "database name with a path")
}
