// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/prioritytree/fault"
)

// Policy - selects which end of the tree PopExtreme removes
type Policy int

// the zero value is deliberately not a policy
const (
	PopMinimum Policy = iota + 1 // lower key = higher priority
	PopMaximum                   // higher key = higher priority
)

// String - name of policy as used in configuration files
func (p Policy) String() string {
	switch p {
	case PopMinimum:
		return "minimum"
	case PopMaximum:
		return "maximum"
	default:
		return "invalid"
	}
}

// ParsePolicy - convert a configuration name into a policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimum", "min", "lowest":
		return PopMinimum, nil
	case "maximum", "max", "highest":
		return PopMaximum, nil
	default:
		return 0, fault.ErrInvalidPolicy
	}
}

func (p Policy) valid() bool {
	return PopMinimum == p || PopMaximum == p
}

// Entry - a key/value pair as produced by enumeration
type Entry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root     *Node[K, V]
	count    int
	policy   Policy
	compare  func(a, b K) int
	observer Observer[K]
}

// New - create an initially empty tree for a naturally ordered key
// type
func New[K constraints.Ordered, V any](policy Policy) *Tree[K, V] {
	return NewFunc[K, V](policy, compareOrdered[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative, zero or positive value as a is less than,
// equal to or greater than b
func NewFunc[K, V any](policy Policy, compare func(a, b K) int) *Tree[K, V] {
	if !policy.valid() {
		panic("avl: invalid policy")
	}
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		policy:  policy,
		compare: compare,
	}
}

// NaN compares equal to everything, so do not use it as a key
func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// SetObserver - register a callback for rebalancing events; nil
// removes it
func (tree *Tree[K, V]) SetObserver(observer Observer[K]) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - height of the tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

// Policy - the extraction policy fixed at creation
func (tree *Tree[K, V]) Policy() Policy {
	return tree.policy
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - drop all nodes
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - right child or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}
