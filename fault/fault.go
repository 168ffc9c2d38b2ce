// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyStarted       = ExistsError("already started")
	ErrConfigDirPath        = InvalidError("config is not a folder")
	ErrEmptyTask            = InvalidError("task cannot be empty")
	ErrEmptyTree            = NotFoundError("tree is empty")
	ErrInvalidBurst         = InvalidError("rate limit burst must be positive")
	ErrInvalidDataDirectory = InvalidError("data directory is not valid")
	ErrInvalidEntry         = InvalidError("entry must be PRIORITY or PRIORITY:PAYLOAD")
	ErrInvalidExpiry        = InvalidError("result expiry must be at least one second")
	ErrInvalidLogger        = InvalidError("invalid logger")
	ErrInvalidPolicy        = InvalidError("policy must be minimum or maximum")
	ErrInvalidRateLimit     = InvalidError("rate limit cannot be negative")
	ErrInvalidRetries       = InvalidError("maximum retries must be at least one")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidWorkers       = InvalidError("workers must be at least one")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNotConfigTable       = InvalidError("configuration must return a table")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotPlainFileName     = InvalidError("file name must not contain a directory")
	ErrNotStarted           = NotFoundError("not started")
	ErrQueueClosed          = ProcessError("queue is closed")
	ErrRetriesExhausted     = ProcessError("task failed after all retries")
	ErrTaskContent          = ProcessError("task execution failed due to invalid content")
	ErrTreeCount            = ProcessError("tree node count is inconsistent")
	ErrTreeHeight           = ProcessError("tree node height is incorrect")
	ErrTreeOrdering         = ProcessError("tree keys are out of order")
	ErrTreeUnbalanced       = ProcessError("tree node is unbalanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
