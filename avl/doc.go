// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree used as a priority ordered
// key/value store
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use a mutex to restrict access
//       (see the queue package for such a wrapper).
//
// Every node caches the height of its sub-tree; after any change to
// a child the height is recomputed and the node rebalanced on the way
// back up the recursion, so rotations lower in the tree are seen by
// all of the ancestors.
//
// Duplicate keys are allowed and are routed to the right, so equal
// keys are enumerated in insertion order.  The extraction policy is
// fixed when the tree is created and has no default:
//
//   PopMinimum - PopExtreme removes the lowest key (FIFO among equals)
//   PopMaximum - PopExtreme removes the highest key (LIFO among equals)
package avl
