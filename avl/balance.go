// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotation - the rebalancing case applied to a node
type Rotation int

// the four AVL cases
const (
	LeftLeft   Rotation = iota // single right rotation
	LeftRight                  // left child left, then node right
	RightRight                 // single left rotation
	RightLeft                  // right child right, then node left
)

// String - short name of the case
func (r Rotation) String() string {
	switch r {
	case LeftLeft:
		return "LL"
	case LeftRight:
		return "LR"
	case RightRight:
		return "RR"
	case RightLeft:
		return "RL"
	default:
		return "??"
	}
}

// Observer - called with the case and the key of the node that was
// out of balance, before it is rotated
type Observer[K any] func(rotation Rotation, key K)

// height of a possibly absent sub-tree
func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// balance factor of a possibly absent sub-tree
func balanceFactor[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute cached height from the children
func (p *Node[K, V]) update() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// right rotation: the left child becomes the root of the sub-tree
//
//	    y          x
//	   / \        / \
//	  x   c  ->  a   y
//	 / \            / \
//	a   b          b   c
func rotateRight[K, V any](y *Node[K, V]) *Node[K, V] {
	x := y.left
	y.left = x.right
	x.right = y
	y.update()
	x.update()
	return x
}

// left rotation: mirror of rotateRight
func rotateLeft[K, V any](x *Node[K, V]) *Node[K, V] {
	y := x.right
	x.right = y.left
	y.left = x
	x.update()
	y.update()
	return y
}

// refresh the height of p and restore the balance condition, returns
// the new root of the sub-tree
func (tree *Tree[K, V]) rebalance(p *Node[K, V]) *Node[K, V] {
	p.update()

	switch b := balanceFactor(p); {
	case b > 1:
		if balanceFactor(p.left) < 0 {
			tree.notify(LeftRight, p.key)
			p.left = rotateLeft(p.left)
		} else {
			tree.notify(LeftLeft, p.key)
		}
		return rotateRight(p)

	case b < -1:
		if balanceFactor(p.right) > 0 {
			tree.notify(RightLeft, p.key)
			p.right = rotateRight(p.right)
		} else {
			tree.notify(RightRight, p.key)
		}
		return rotateLeft(p)
	}
	return p
}

func (tree *Tree[K, V]) notify(rotation Rotation, key K) {
	if nil != tree.observer {
		tree.observer(rotation, key)
	}
}
