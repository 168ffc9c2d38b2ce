// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package limitedset_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prioritytree/limitedset"
)

func TestAddition(t *testing.T) {

	items := []string{
		"0123456789",
		"abcdefghijklmnopqrstuvwxyz",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"hijklmn",
		"opqrstu",
		"vwxyzab",
		"cdefghi",
		"jklmnop",
		"qrstuvw",
	}

	expected := []string{
		"opqrstu",
		"vwxyzab",
		"cdefghi",
		"jklmnop",
		"qrstuvw",
	}

	check(t, items, expected)

}

// add a list of items and check that exactly the expected ones remain
func check(t *testing.T, items []string, expected []string) {

	setSize := len(expected)

	s1 := limitedset.New[string](setSize)
	if nil == s1 {
		t.Fatalf("failed to create a limitedset of size: %d", setSize)
	}

	for _, d := range items {
		s1.Add(d)
	}

	assert.Equal(t, setSize, s1.Len(), "set length")

	present := make(map[string]struct{})
	for i, d := range expected {
		present[d] = struct{}{}
		assert.True(t, s1.Exists(d), "item[%d] missing: %q", i, d)
	}

	for i, d := range items {
		if _, ok := present[d]; ok {
			continue
		}
		assert.False(t, s1.Exists(d), "item[%d] present: %q", i, d)
	}
}

func TestPullToFront(t *testing.T) {

	items := []string{
		"0123456789",
		"abcdefghijklmnopqrstuvwxyz",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"abcdefg",
		"hijklmn",
		"abcdefg",
		"opqrstu",
		"abcdefg",
		"vwxyzab",
		"abcdefg",
		"cdefghi",
		"abcdefg",
		"jklmnop",
		"abcdefg",
		"abcdefg",
		"qrstuvw",
		"abcdefg",
		"xyzabcd",
	}

	expected := []string{
		"cdefghi",
		"jklmnop",
		"qrstuvw",
		"abcdefg",
		"xyzabcd",
	}

	check(t, items, expected)
}

func TestAddReportsNew(t *testing.T) {
	s := limitedset.New[int](3)
	assert.True(t, s.Add(1), "first add")
	assert.False(t, s.Add(1), "second add")
	assert.True(t, s.Add(2), "add 2")
	assert.True(t, s.Add(3), "add 3")

	// 1 was refreshed by the second add, so 2 is the oldest
	assert.False(t, s.Add(1), "refresh 1")
	assert.True(t, s.Add(4), "add 4")
	assert.False(t, s.Exists(2), "2 should be evicted")
	assert.True(t, s.Exists(1), "1 should remain")
	assert.Equal(t, 3, s.Size(), "size")
}

func TestInvalidSize(t *testing.T) {
	assert.Nil(t, limitedset.New[string](0), "zero size")
	assert.Nil(t, limitedset.New[string](-1), "negative size")
}

func TestConcurrentAdd(t *testing.T) {
	s := limitedset.New[string](1000)

	var wg sync.WaitGroup
	added := make([]int, 8)
	for g := 0; g < 8; g += 1 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i += 1 {
				if s.Add(fmt.Sprintf("item-%d", i)) {
					added[g] += 1
				}
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, n := range added {
		total += n
	}
	assert.Equal(t, 100, total, "each item reported new exactly once")
	assert.Equal(t, 100, s.Len(), "length")
}
