// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/prioritytree/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Peek - the item that PopExtreme would return, without removing it
func (tree *Tree[K, V]) Peek() (K, V, error) {
	var p *Node[K, V]
	if PopMinimum == tree.policy {
		p = tree.First()
	} else {
		p = tree.Last()
	}
	if nil == p {
		var key K
		var value V
		return key, value, fault.ErrEmptyTree
	}
	return p.key, p.value, nil
}

// All - ascending in-order sequence of all items
//
// each range over the result starts a new walk from the current root;
// the tree must not be modified while a walk is in progress
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*Node[K, V], 0, tree.Height())
		p := tree.root
		for {
			for ; nil != p; p = p.left {
				stack = append(stack, p)
			}
			if 0 == len(stack) {
				return
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.right
		}
	}
}

// Backward - descending sequence, mirror of All
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := make([]*Node[K, V], 0, tree.Height())
		p := tree.root
		for {
			for ; nil != p; p = p.right {
				stack = append(stack, p)
			}
			if 0 == len(stack) {
				return
			}
			p = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(p.key, p.value) {
				return
			}
			p = p.left
		}
	}
}

// Entries - all items in ascending order as a slice
func (tree *Tree[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.count)
	for key, value := range tree.All() {
		entries = append(entries, Entry[K, V]{Key: key, Value: value})
	}
	return entries
}
