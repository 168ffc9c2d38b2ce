// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor - run named tasks in priority order, retrying each
// failed task a limited number of times
//
// Tasks are held in a synchronized priority queue keyed by their
// priority; tasks of equal priority keep their arrival order under
// the minimum policy.  Tasks can be drained synchronously with
// ProcessTasks or by a set of background workers between Start and
// Stop.  Every attempt waits on a rate limiter, and the outcome of each
// task is kept for a while so that it can be queried by name.
package executor
