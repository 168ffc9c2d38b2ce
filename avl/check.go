// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/prioritytree/fault"
)

// Check - verify the structure of the whole tree
//
// detects keys out of order, nodes out of balance, stale cached
// heights and a wrong node count
func (tree *Tree[K, V]) Check() error {
	n, err := checkNode(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrTreeCount
	}

	first := true
	var previous K
	for key := range tree.All() {
		if !first && tree.compare(previous, key) > 0 {
			return fault.ErrTreeOrdering
		}
		first = false
		previous = key
	}
	return nil
}

// internal: consistency checker, returns number of nodes in sub-tree
func checkNode[K, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	nl, err := checkNode(p.left)
	if nil != err {
		return 0, err
	}
	nr, err := checkNode(p.right)
	if nil != err {
		return 0, err
	}
	if p.height != 1+max(height(p.left), height(p.right)) {
		return 0, fault.ErrTreeHeight
	}
	if b := balanceFactor(p); b < -1 || b > 1 {
		return 0, fault.ErrTreeUnbalanced
	}
	return 1 + nl + nr, nil
}

// MaxHeight - the greatest height an AVL tree of n nodes can have,
// always below 1.4405*log2(n+2) - 0.3277
//
// the sparsest tree of height h holds N(h) = N(h-1) + N(h-2) + 1
// nodes, so this is the largest h with N(h) <= n
func MaxHeight(n int) int {
	h := 0
	for a, b := 0, 1; b <= n; a, b = b, a+b+1 {
		h += 1
	}
	return h
}
