// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/address"
	"github.com/bitmark-inc/pay2msg/fault"
	"github.com/bitmark-inc/pay2msg/inbox"
	"github.com/bitmark-inc/pay2msg/storage"
	"github.com/bitmark-inc/pay2msg/transactionrecord"
)

type derivedAddress struct {
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

type balanceReply struct {
	Address address.Address `json:"address"`
	Balance uint64          `json:"balance"`
}

type submitReply struct {
	Type    string          `json:"type"`
	Address address.Address `json:"address"`
}

// setup command handler
//
// commands that only derive addresses or display information,
// these cannot access the database or the configuration file
//
// returns true if the command was handled
func processSetupCommand(w io.Writer, program string, ledger string, arguments []string) (bool, error) {

	if 0 == len(arguments) {
		arguments = []string{"help"}
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "derive-profile", "dp":
		if 1 != len(arguments) {
			return true, fault.ErrMissingParameters
		}
		deriver, err := newDeriver(ledger)
		if nil != err {
			return true, err
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return true, err
		}
		a, bump, err := deriver.Profile(owner)
		if nil != err {
			return true, err
		}
		return true, printJSON(w, derivedAddress{Address: a, Bump: bump})

	case "derive-message", "dm":
		if 3 != len(arguments) {
			return true, fault.ErrMissingParameters
		}
		deriver, err := newDeriver(ledger)
		if nil != err {
			return true, err
		}
		recipient, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return true, err
		}
		sender, err := account.AccountFromBase58(arguments[1])
		if nil != err {
			return true, err
		}
		nonce, err := strconv.ParseUint(arguments[2], 10, 64)
		if nil != err {
			return true, err
		}
		a, bump, err := deriver.Message(recipient, sender, nonce)
		if nil != err {
			return true, err
		}
		return true, printJSON(w, derivedAddress{Address: a, Bump: bump})

	case "fund", "balance", "bal", "profile", "message", "msg", "inbox", "submit", "config-test", "cfg":
		return false, nil // defer processing until database is opened

	case "help", "h", "?":
		usage(w, program)

	default:
		fmt.Fprintf(w, "error: no such command: %q\n", command)
		usage(w, program)
		return true, fault.ErrInvalidCommand
	}

	// indicate processing complete and perform normal exit from main
	return true, nil
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--ledger=LEDGER] [--config-file=FILE] [[command|help] arguments...]\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                           (h)    - display this message\n\n")
	fmt.Fprintf(w, "  version                        (v)    - display version string\n\n")

	fmt.Fprintf(w, "  derive-profile OWNER           (dp)   - profile address of OWNER on --ledger\n")
	fmt.Fprintf(w, "  derive-message RCPT SNDR NONCE (dm)   - message address on --ledger\n")
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  config-test                    (cfg)  - just check the configuration file\n")
	fmt.Fprintf(w, "  fund ADDRESS LAMPORTS                 - credit an account or address\n")
	fmt.Fprintf(w, "  balance ADDRESS                (bal)  - lamports held at an account or address\n")
	fmt.Fprintf(w, "  profile OWNER                         - display the profile of OWNER\n")
	fmt.Fprintf(w, "  message ADDRESS                (msg)  - display an unclaimed message\n")
	fmt.Fprintf(w, "  inbox RECIPIENT                       - list unclaimed messages for RECIPIENT\n")
	fmt.Fprintf(w, "  submit HEX                            - apply a signed transaction\n")
	fmt.Fprintf(w, "\n")
}

// return true for commands that need a writable database
func isUpdateCommand(arguments []string) bool {
	if 0 == len(arguments) {
		return false
	}
	switch arguments[0] {
	case "fund", "submit":
		return true
	default:
		return false
	}
}

// data command handler
// the ledger database is open so these commands can access and/or
// change its records
func processDataCommand(w io.Writer, log *logger.L, store *storage.Store, handlers *inbox.Inbox, options *Configuration, arguments []string) error {

	if 0 == len(arguments) {
		return fault.ErrMissingParameters
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "config-test", "cfg":
		return printJSON(w, options)

	case "fund":
		if 2 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := parseAddress(arguments[0])
		if nil != err {
			return err
		}
		amount, err := strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			return err
		}
		err = store.Fund(a, amount)
		if nil != err {
			return err
		}
		log.Infof("funded: %s  amount: %d", a, amount)
		return printJSON(w, balanceReply{Address: a, Balance: store.Balance(a)})

	case "balance", "bal":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := parseAddress(arguments[0])
		if nil != err {
			return err
		}
		return printJSON(w, balanceReply{Address: a, Balance: handlers.Balance(a)})

	case "profile":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		info, err := handlers.Profile(owner)
		if nil != err {
			return err
		}
		return printJSON(w, info)

	case "message", "msg":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		a, err := address.FromBase58(arguments[0])
		if nil != err {
			return err
		}
		info, err := handlers.Message(a)
		if nil != err {
			return err
		}
		return printJSON(w, info)

	case "inbox":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		recipient, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		messages, err := handlers.Inbox(recipient)
		if nil != err {
			return err
		}
		return printJSON(w, messages)

	case "submit":
		if 1 != len(arguments) {
			return fault.ErrMissingParameters
		}
		packed, err := hex.DecodeString(arguments[0])
		if nil != err {
			return err
		}
		tx, _, err := transactionrecord.Packed(packed).Unpack(options.IsTesting())
		if nil != err {
			return err
		}
		name, _ := transactionrecord.RecordName(tx)
		a, err := handlers.Process(packed)
		if nil != err {
			return err
		}
		log.Infof("submitted: %s  address: %s", name, a)
		return printJSON(w, submitReply{Type: name, Address: a})

	default:
		return fault.ErrInvalidCommand
	}
}

// a base58 account is converted to its address, otherwise
// decode a plain base58 address
func parseAddress(s string) (address.Address, error) {
	acc, err := account.AccountFromBase58(s)
	if nil == err {
		return address.FromAccount(acc), nil
	}
	return address.FromBase58(s)
}

func newDeriver(ledger string) (*address.Deriver, error) {
	if "" == ledger {
		return nil, fault.ErrMissingParameters
	}
	a, err := address.FromBase58(ledger)
	if nil != err {
		return nil, err
	}
	return address.NewDeriver(a), nil
}

func printJSON(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
