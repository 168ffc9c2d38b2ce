// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package queue_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prioritytree/avl"
	"github.com/bitmark-inc/prioritytree/fault"
	"github.com/bitmark-inc/prioritytree/queue"
)

func TestPushPop(t *testing.T) {
	q := queue.New[int, string](avl.PopMinimum)
	assert.True(t, q.IsEmpty(), "new queue")
	assert.Equal(t, avl.PopMinimum, q.Policy(), "policy")

	for i, k := range []int{5, 3, 8, 1, 7} {
		assert.Nil(t, q.Push(k, string(rune('A'+i))), "push: %d", k)
	}
	assert.Equal(t, 5, q.Len(), "length")
	assert.LessOrEqual(t, q.Height(), avl.MaxHeight(5), "height")

	key, value, err := q.Peek()
	assert.Nil(t, err, "peek")
	assert.Equal(t, 1, key, "peek key")
	assert.Equal(t, "D", value, "peek value")

	key, value, err = q.Pop()
	assert.Nil(t, err, "pop")
	assert.Equal(t, 1, key, "pop key")
	assert.Equal(t, "D", value, "pop value")

	value, found := q.Search(7)
	assert.True(t, found, "search")
	assert.Equal(t, "E", value, "search value")

	value, err = q.Remove(8)
	assert.Nil(t, err, "remove")
	assert.Equal(t, "C", value, "removed value")
	_, err = q.Remove(8)
	assert.Equal(t, fault.ErrKeyNotFound, err, "remove twice")

	assert.Equal(t, []avl.Entry[int, string]{
		{Key: 3, Value: "B"},
		{Key: 5, Value: "A"},
		{Key: 7, Value: "E"},
	}, q.Entries(), "entries")
}

func TestPopEmpty(t *testing.T) {
	q := queue.New[int, int](avl.PopMaximum)
	_, _, err := q.Pop()
	assert.Equal(t, fault.ErrEmptyTree, err, "pop")
	_, _, err = q.Peek()
	assert.Equal(t, fault.ErrEmptyTree, err, "peek")
}

func TestPushBatch(t *testing.T) {
	q := queue.New[string, int](avl.PopMaximum)
	n, err := q.PushBatch([]avl.Entry[string, int]{
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
		{Key: "a", Value: 1},
	})
	assert.Nil(t, err, "batch")
	assert.Equal(t, 3, n, "batch count")

	n, err = q.PushBatch(nil)
	assert.Nil(t, err, "empty batch")
	assert.Equal(t, 0, n, "empty batch count")

	key, _, err := q.Pop()
	assert.Nil(t, err, "pop")
	assert.Equal(t, "c", key, "maximum first")
}

func TestNewFunc(t *testing.T) {
	type task struct {
		priority int
		name     string
	}
	q := queue.NewFunc[task, struct{}](avl.PopMinimum, func(a, b task) int {
		return a.priority - b.priority
	})
	q.Push(task{2, "two"}, struct{}{})
	q.Push(task{1, "one"}, struct{}{})
	key, _, err := q.Pop()
	assert.Nil(t, err, "pop")
	assert.Equal(t, "one", key.name, "order")
}

func TestClose(t *testing.T) {
	q := queue.New[int, int](avl.PopMinimum)
	q.Push(1, 1)
	q.Close()
	q.Close()
	assert.True(t, q.IsClosed(), "closed")

	assert.Equal(t, fault.ErrQueueClosed, q.Push(2, 2), "push after close")
	_, err := q.PushBatch([]avl.Entry[int, int]{{Key: 3, Value: 3}})
	assert.Equal(t, fault.ErrQueueClosed, err, "batch after close")

	// remaining items can still be drained
	key, _, err := q.PopWait(context.Background())
	assert.Nil(t, err, "drain")
	assert.Equal(t, 1, key, "drained key")

	_, _, err = q.PopWait(context.Background())
	assert.Equal(t, fault.ErrQueueClosed, err, "closed and empty")
}

func TestPopWaitBlocks(t *testing.T) {
	q := queue.New[int, string](avl.PopMinimum)

	result := make(chan string, 1)
	go func() {
		_, value, err := q.PopWait(context.Background())
		if nil != err {
			result <- err.Error()
			return
		}
		result <- value
	}()

	select {
	case r := <-result:
		t.Fatalf("returned before push: %q", r)
	case <-time.After(20 * time.Millisecond):
	}

	assert.Nil(t, q.Push(4, "four"), "push")

	select {
	case r := <-result:
		assert.Equal(t, "four", r, "value")
	case <-time.After(5 * time.Second):
		t.Fatal("waiter not woken")
	}
}

func TestPopWaitCancel(t *testing.T) {
	q := queue.New[int, int](avl.PopMinimum)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := q.PopWait(ctx)
	assert.Equal(t, context.DeadlineExceeded, err, "timeout")

	// the cancelled waiter must not swallow a later item
	q.Push(1, 1)
	assert.Equal(t, 1, q.Len(), "length")
}

func TestPopWaitCancelledLeavesItems(t *testing.T) {
	q := queue.New[int, string](avl.PopMinimum)
	assert.Nil(t, q.Push(1, "one"), "push")
	assert.Nil(t, q.Push(2, "two"), "push")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := q.PopWait(ctx)
	assert.Equal(t, context.Canceled, err, "cancelled")
	assert.Equal(t, 2, q.Len(), "nothing removed")

	key, value, err := q.PopWait(context.Background())
	assert.Nil(t, err, "live context")
	assert.Equal(t, 1, key, "key")
	assert.Equal(t, "one", value, "value")
}

func TestPopWaitClose(t *testing.T) {
	q := queue.New[int, int](avl.PopMinimum)

	var wg sync.WaitGroup
	errors := make([]error, 4)
	for i := range errors {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errors[i] = q.PopWait(context.Background())
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	q.Close()
	wg.Wait()

	for i, err := range errors {
		assert.Equal(t, fault.ErrQueueClosed, err, "waiter: %d", i)
	}
}

// many producers and consumers: every item is received exactly once
func TestConcurrent(t *testing.T) {
	const producers = 4
	const consumers = 4
	const items = 500

	q := queue.New[int, int](avl.PopMinimum)

	var received sync.Mutex
	values := make([]int, 0, producers*items)

	var consumed sync.WaitGroup
	for c := 0; c < consumers; c += 1 {
		consumed.Add(1)
		go func() {
			defer consumed.Done()
			for {
				_, value, err := q.PopWait(context.Background())
				if nil != err {
					return
				}
				received.Lock()
				values = append(values, value)
				received.Unlock()
			}
		}()
	}

	var produced sync.WaitGroup
	for p := 0; p < producers; p += 1 {
		produced.Add(1)
		go func(p int) {
			defer produced.Done()
			for i := 0; i < items; i += 1 {
				v := p*items + i
				q.Push(v%37, v)
			}
		}(p)
	}

	produced.Wait()
	q.Close()
	consumed.Wait()

	assert.True(t, q.IsEmpty(), "not drained")
	sort.Ints(values)
	assert.Equal(t, producers*items, len(values), "received count")
	for i, v := range values {
		if i != v {
			t.Fatalf("value: %d  expected: %d", v, i)
		}
	}
}

func TestObserver(t *testing.T) {
	q := queue.New[int, int](avl.PopMinimum)
	rotations := 0
	q.SetObserver(func(rotation avl.Rotation, key int) {
		rotations += 1
	})
	for i := 0; i < 3; i += 1 {
		q.Push(i, i)
	}
	assert.Equal(t, 1, rotations, "rotations")
}
