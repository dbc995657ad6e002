// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AllocationInvariantViolation = InvalidError("bin allocation percentages must sum to 100")
	AlreadyInitialised           = ExistsError("already initialised")
	ArithmeticOverflow           = ProcessError("arithmetic overflow")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	DatabaseIsNotSet             = ProcessError("database is not set")
	DuplicateBinType             = InvalidError("duplicate bin type")
	FarmAlreadyExists            = ExistsError("farm already exists")
	FarmNotFound                 = NotFoundError("farm not found")
	IncompatibleDatabaseVersion  = InvalidError("incompatible database version")
	InsufficientBalance          = ProcessError("insufficient balance")
	InsufficientRewards          = ProcessError("insufficient rewards to compound")
	InvalidAddress               = InvalidError("invalid address")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidBinType               = InvalidError("invalid bin type")
	InvalidBinsCount             = InvalidError("invalid bins count")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidInstruction           = InvalidError("invalid instruction")
	InvalidIPAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidSchedule              = InvalidError("invalid schedule")
	InvalidSeed                  = InvalidError("invalid seed")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTimestamp             = InvalidError("timestamp outside of validity window")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NoPriceAvailable             = NotFoundError("no price available")
	NotAFarmRecord               = RecordError("not a farm record")
	NotAPositionRecord           = RecordError("not a position record")
	NotATokenAccountRecord       = RecordError("not a token account record")
	NotInitialised               = NotFoundError("not initialised")
	NotPublicKey                 = InvalidError("not a public key")
	NotTestingChain              = PermissionError("only allowed on a testing chain")
	PositionNotFound             = NotFoundError("position not found")
	RateLimiting                 = InvalidError("rate limiting")
	RecordHasTrailingData        = RecordError("record has trailing data")
	RecordTruncated              = LengthError("record is truncated")
	ReplayedInstruction          = ExistsError("instruction was already processed")
	TokenAccountNotFound         = NotFoundError("token account not found")
	TransactionAlreadyClosed     = ProcessError("transaction already closed")
	Unauthorized                 = PermissionError("unauthorized")
	UnknownRecordType            = RecordError("unknown record type")
	VaultAlreadyExists           = ExistsError("vault already exists")
	VaultNotInitialized          = NotFoundError("vault not initialized")
	WrongMint                    = InvalidError("token account mint does not match farm")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
