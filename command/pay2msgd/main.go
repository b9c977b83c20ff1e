// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/inbox"
	"github.com/bitmark-inc/pay2msg/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "ledger", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		arguments = []string{"version"}
	} else if len(options["help"]) > 0 {
		arguments = []string{"help"}
	}

	// these commands do not require the configuration
	ledger := ""
	if len(options["ledger"]) > 0 {
		ledger = options["ledger"][0]
	}
	done, err := processSetupCommand(os.Stdout, program, ledger, arguments)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", program, err)
	}
	if done {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	log.Infof("chain: %s  ledger: %s", theConfiguration.Chain, theConfiguration.ledger)
	log.Infof("database: %q", theConfiguration.Database.Name)

	readOnly := storage.ReadOnly
	if isUpdateCommand(arguments) {
		readOnly = storage.ReadWrite
	}

	store, err := storage.Open(theConfiguration.Database.Name, readOnly, theConfiguration.Rent)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("%s: storage open error: %s", program, err)
	}
	defer store.Close()

	handlers := inbox.New(
		logger.New("inbox"),
		store,
		address.NewDeriver(theConfiguration.ledger),
		time.Now,
		theConfiguration.IsTesting(),
	)

	err = processDataCommand(os.Stdout, log, store, handlers, theConfiguration, arguments)
	if nil != err {
		log.Errorf("command: %v  error: %s", arguments, err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}
