// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// taskrunnerd - run the tasks listed in a Lua configuration file in
// priority order
//
// The configuration file is watched; tasks added to it while the
// program runs are queued as soon as the file is saved.  Removing the
// configuration file stops the program.
package main
