// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/prioritytree/fault"
)

// PopExtreme - remove the highest priority item as selected by the
// tree's policy
//
// returns fault.ErrEmptyTree and leaves the tree unchanged if there
// is nothing to remove
func (tree *Tree[K, V]) PopExtreme() (K, V, error) {
	if nil == tree.root {
		var key K
		var value V
		return key, value, fault.ErrEmptyTree
	}

	var q *Node[K, V]
	if PopMinimum == tree.policy {
		tree.root, q = tree.popMinimum(tree.root)
	} else {
		tree.root, q = tree.popMaximum(tree.root)
	}
	tree.count -= 1

	key, value := q.key, q.value
	freeNode(q)
	return key, value, nil
}

// detach the leftmost node of the sub-tree p, returns the new root of
// the sub-tree and the detached node
//
// the detached node's links are left as they were, the caller must
// reset or free it
func (tree *Tree[K, V]) popMinimum(p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.left {
		return p.right, p
	}
	var q *Node[K, V]
	p.left, q = tree.popMinimum(p.left)

	// every ancestor is re-examined, a removal can shorten the
	// sub-tree by more than one local rotation restores
	return tree.rebalance(p), q
}

// mirror of popMinimum
func (tree *Tree[K, V]) popMaximum(p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p.right {
		return p.left, p
	}
	var q *Node[K, V]
	p.right, q = tree.popMaximum(p.right)
	return tree.rebalance(p), q
}

// Delete - removes a specific item from the tree, returns its value
//
// with duplicate keys only one of the matching nodes is removed
func (tree *Tree[K, V]) Delete(key K) (V, error) {
	root, q := tree.delete(key, tree.root)
	if nil == q {
		var value V
		return value, fault.ErrKeyNotFound
	}
	tree.root = root
	tree.count -= 1

	value := q.value
	freeNode(q)
	return value, nil
}

// internal delete routine, returns the new root of the sub-tree and
// the removed node (nil if key was not found)
func (tree *Tree[K, V]) delete(key K, p *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if nil == p { // key not in tree
		return nil, nil
	}

	var q *Node[K, V]
	switch c := tree.compare(key, p.key); {
	case c < 0:
		p.left, q = tree.delete(key, p.left)
	case c > 0:
		p.right, q = tree.delete(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, p
		}
		if nil == p.right {
			return p.left, p
		}

		// the in-order successor takes the place of p; the node
		// is moved rather than its data copied so that nodes held
		// by the caller stay valid
		right, r := tree.popMinimum(p.right)
		r.left = p.left
		r.right = right
		return tree.rebalance(r), p
	}
	if nil == q {
		return p, nil
	}
	return tree.rebalance(p), q
}
