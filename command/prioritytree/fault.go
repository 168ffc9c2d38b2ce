// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/prioritytree/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingKey    = fault.InvalidError("key is required")
	ErrMissingPolicy = fault.InvalidError("policy is required")
)
