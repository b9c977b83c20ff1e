// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressInUse             = ExistsError("address in use")
	ErrAddressMismatch          = AuthorisationError("address mismatch")
	ErrAddressNotLocked         = ProcessError("address not locked by transaction")
	ErrAlreadyClaimed           = ExistsError("message already claimed")
	ErrAlreadyExists            = ExistsError("message already exists")
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrAlreadyRegistered        = ExistsError("profile already registered")
	ErrBalanceOverflow          = ResourceError("balance overflow")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCannotDecodeAddress      = InvalidError("cannot decode address")
	ErrCapacityExceeded         = InvalidError("record capacity exceeded")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrContentTooLong           = InvalidError("content too long")
	ErrCounterOverflow          = ResourceError("counter overflow")
	ErrDatabaseIsNotSet         = ProcessError("database is not set")
	ErrDatabaseIsReadOnly       = ProcessError("database is read only")
	ErrDatabaseVersion          = ProcessError("incompatible database version")
	ErrDerivationExhausted      = ResourceError("address derivation exhausted")
	ErrInsufficientFunds        = ResourceError("insufficient funds")
	ErrInsufficientFundsForRent = ResourceError("insufficient funds for rent")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidCommand           = InvalidError("invalid command")
	ErrInvalidConfiguration     = InvalidError("configuration did not return a table")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidOwner             = InvalidError("invalid owner")
	ErrInvalidRecordSize        = InvalidError("invalid record size")
	ErrInvalidSeeds             = InvalidError("invalid seeds")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrMissingParameters        = InvalidError("missing parameters")
	ErrNotPrivateKey            = InvalidError("not a private key")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrNotRecordPack            = InvalidError("not a record pack")
	ErrNotTransactionPack       = InvalidError("not a transaction pack")
	ErrRecordNotFound           = NotFoundError("record not found")
	ErrSignableAddress          = InvalidError("address is a signable identity")
	ErrSignatureTooLong         = InvalidError("signature too long")
	ErrTransactionAlreadyExists = ExistsError("transaction already exists")
	ErrTransactionClosed        = ProcessError("transaction already closed")
	ErrUnauthorized             = AuthorisationError("unauthorized")
	ErrUnderpriced              = InvalidError("amount below required price")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
	ErrZeroAmount               = InvalidError("amount must be greater than zero")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e ResourceError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrResource(e error) bool      { _, ok := e.(ResourceError); return ok }
