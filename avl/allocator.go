// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 1 for a leaf
}

// allocate a new leaf node
func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 1,
	}
}

// release a node that has been spliced out of a tree; clear the links
// and data so that nothing it referenced is kept alive by a stray
// *Node held by a caller
func freeNode[K, V any](node *Node[K, V]) {
	var key K
	var value V
	node.left = nil
	node.right = nil
	node.key = key
	node.value = value
	node.height = 0
}
