// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue - a priority queue safe for concurrent use, built on
// a single AVL tree protected by one mutex
//
// Every public call holds the lock for its whole duration, so each
// operation is atomic with respect to the others.  PopWait blocks a
// consumer until an item is pushed, its context ends or the queue is
// closed.  Items still queued at Close can be drained afterwards.
package queue
