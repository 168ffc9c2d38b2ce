// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queue

import (
	"context"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/prioritytree/avl"
	"github.com/bitmark-inc/prioritytree/fault"
)

// Queue - synchronized priority queue
type Queue[K, V any] struct {
	sync.Mutex
	tree    *avl.Tree[K, V]
	closed  bool
	waiting int
	wake    chan struct{} // closed to wake every waiting consumer
}

// New - create an empty queue for a naturally ordered key type
func New[K constraints.Ordered, V any](policy avl.Policy) *Queue[K, V] {
	return wrap(avl.New[K, V](policy))
}

// NewFunc - create an empty queue ordered by compare
func NewFunc[K, V any](policy avl.Policy, compare func(a, b K) int) *Queue[K, V] {
	return wrap(avl.NewFunc[K, V](policy, compare))
}

func wrap[K, V any](tree *avl.Tree[K, V]) *Queue[K, V] {
	return &Queue[K, V]{
		tree: tree,
		wake: make(chan struct{}),
	}
}

// must hold lock
func (q *Queue[K, V]) broadcast() {
	if 0 == q.waiting {
		return
	}
	close(q.wake)
	q.wake = make(chan struct{})
}

// SetObserver - pass rebalancing events of the underlying tree to
// observer, which is called with the queue locked
func (q *Queue[K, V]) SetObserver(observer avl.Observer[K]) {
	q.Lock()
	defer q.Unlock()
	q.tree.SetObserver(observer)
}

// Policy - the extraction policy of the queue
func (q *Queue[K, V]) Policy() avl.Policy {
	q.Lock()
	defer q.Unlock()
	return q.tree.Policy()
}

// Push - add an item
func (q *Queue[K, V]) Push(key K, value V) error {
	q.Lock()
	defer q.Unlock()

	if q.closed {
		return fault.ErrQueueClosed
	}
	q.tree.Insert(key, value)
	q.broadcast()
	return nil
}

// PushBatch - add all entries under a single lock, returns the number
// added
func (q *Queue[K, V]) PushBatch(entries []avl.Entry[K, V]) (int, error) {
	q.Lock()
	defer q.Unlock()

	if q.closed {
		return 0, fault.ErrQueueClosed
	}
	if 0 == len(entries) {
		return 0, nil
	}
	q.tree.InsertEntries(entries...)
	q.broadcast()
	return len(entries), nil
}

// Pop - remove the item selected by the policy, fault.ErrEmptyTree if
// there is none
func (q *Queue[K, V]) Pop() (K, V, error) {
	q.Lock()
	defer q.Unlock()
	return q.tree.PopExtreme()
}

// PopWait - as Pop but block while the queue is empty
//
// returns ctx.Err() if the context has ended, even when items are
// queued, or fault.ErrQueueClosed once the queue is both closed and
// empty
func (q *Queue[K, V]) PopWait(ctx context.Context) (K, V, error) {
	for {
		if err := ctx.Err(); nil != err {
			var key K
			var value V
			return key, value, err
		}

		q.Lock()
		if !q.tree.IsEmpty() {
			key, value, err := q.tree.PopExtreme()
			q.Unlock()
			return key, value, err
		}
		if q.closed {
			q.Unlock()
			var key K
			var value V
			return key, value, fault.ErrQueueClosed
		}
		wake := q.wake
		q.waiting += 1
		q.Unlock()

		select {
		case <-wake:
			q.Lock()
			q.waiting -= 1
			q.Unlock()
		case <-ctx.Done():
			q.Lock()
			q.waiting -= 1
			q.Unlock()
			var key K
			var value V
			return key, value, ctx.Err()
		}
	}
}

// Peek - the item Pop would return, without removing it
func (q *Queue[K, V]) Peek() (K, V, error) {
	q.Lock()
	defer q.Unlock()
	return q.tree.Peek()
}

// Search - value stored under key and whether it was found
func (q *Queue[K, V]) Search(key K) (V, bool) {
	q.Lock()
	defer q.Unlock()
	return q.tree.Search(key)
}

// Remove - take one item with the given key out of the queue
func (q *Queue[K, V]) Remove(key K) (V, error) {
	q.Lock()
	defer q.Unlock()
	return q.tree.Delete(key)
}

// Len - number of queued items
func (q *Queue[K, V]) Len() int {
	q.Lock()
	defer q.Unlock()
	return q.tree.Count()
}

// IsEmpty - true if nothing is queued
func (q *Queue[K, V]) IsEmpty() bool {
	q.Lock()
	defer q.Unlock()
	return q.tree.IsEmpty()
}

// Height - height of the underlying tree
func (q *Queue[K, V]) Height() int {
	q.Lock()
	defer q.Unlock()
	return q.tree.Height()
}

// Entries - snapshot of all items in ascending key order
func (q *Queue[K, V]) Entries() []avl.Entry[K, V] {
	q.Lock()
	defer q.Unlock()
	return q.tree.Entries()
}

// Close - refuse further pushes and release every waiting consumer;
// closing twice has no further effect
func (q *Queue[K, V]) Close() {
	q.Lock()
	defer q.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.broadcast()
}

// IsClosed - true after Close
func (q *Queue[K, V]) IsClosed() bool {
	q.Lock()
	defer q.Unlock()
	return q.closed
}
