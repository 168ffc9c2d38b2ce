// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/prioritytree/fault"
)

// Search - find the value stored for a specific key
//
// the bool distinguishes a missing key from a stored zero value; with
// duplicate keys any one of the matching values may be returned
func (tree *Tree[K, V]) Search(key K) (V, bool) {
	p := tree.search(key)
	if nil == p {
		var value V
		return value, false
	}
	return p.value, true
}

// Get - like Search but reports a missing key as an error
func (tree *Tree[K, V]) Get(key K) (V, error) {
	value, found := tree.Search(key)
	if !found {
		return value, fault.ErrKeyNotFound
	}
	return value, nil
}

// Has - true if key is present
func (tree *Tree[K, V]) Has(key K) bool {
	return nil != tree.search(key)
}

func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
