// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// always adds a node: an equal key is placed after the existing ones,
// use Search first if keys must be unique
func (tree *Tree[K, V]) Insert(key K, value V) {
	tree.root = tree.insert(key, value, tree.root)
	tree.count += 1
}

// InsertEntries - insert each entry in turn
func (tree *Tree[K, V]) InsertEntries(entries ...Entry[K, V]) {
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
}

// internal routine for insert, returns the possibly updated root of
// the sub-tree
func (tree *Tree[K, V]) insert(key K, value V, p *Node[K, V]) *Node[K, V] {
	if nil == p { // insert new node
		return newNode(key, value)
	}

	if tree.compare(key, p.key) < 0 {
		p.left = tree.insert(key, value, p.left)
	} else { // equal keys go right
		p.right = tree.insert(key, value, p.right)
	}
	return tree.rebalance(p)
}
