// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package limitedset

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// LimitedSet - remembers up to a fixed number of the most recently
// added items
type LimitedSet[K comparable] struct {
	sync.Mutex
	size  int
	cache *lru.Cache
}

// New - create a new limited set that holds up to 'n' items, nil if
// n is not positive
func New[K comparable](n int) *LimitedSet[K] {
	cache, err := lru.New(n)
	if nil != err {
		return nil
	}
	return &LimitedSet[K]{
		size:  n,
		cache: cache,
	}
}

// Add - add an item to the set, making it the most recent; returns
// false if it was already present
func (ls *LimitedSet[K]) Add(item K) bool {
	ls.Lock()
	defer ls.Unlock()

	if _, ok := ls.cache.Get(item); ok {
		return false
	}
	ls.cache.Add(item, struct{}{})
	return true
}

// Exists - check to see if item is in the set without changing its
// position
func (ls *LimitedSet[K]) Exists(item K) bool {
	ls.Lock()
	defer ls.Unlock()
	return ls.cache.Contains(item)
}

// Len - number of items currently held
func (ls *LimitedSet[K]) Len() int {
	ls.Lock()
	defer ls.Unlock()
	return ls.cache.Len()
}

// Size - maximum number of items held
func (ls *LimitedSet[K]) Size() int {
	return ls.size
}
