// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/prioritytree/avl"
	"github.com/bitmark-inc/prioritytree/fault"
)

// parse one PRIORITY or PRIORITY:PAYLOAD argument
func parseEntry(s string) (avl.Entry[int, string], error) {
	key, payload, _ := strings.Cut(s, ":")
	priority, err := strconv.Atoi(strings.TrimSpace(key))
	if nil != err {
		return avl.Entry[int, string]{}, fault.ErrInvalidEntry
	}
	return avl.Entry[int, string]{
		Key:   priority,
		Value: payload,
	}, nil
}

// build a tree from the command arguments, bad entries are reported
// on e and skipped
func buildTree(m *metadata, args []string) *avl.Tree[int, string] {
	tree := avl.New[int, string](m.policy)

	if m.verbose {
		tree.SetObserver(func(rotation avl.Rotation, key int) {
			fmt.Fprintf(m.e, "rotation: %s at: %d\n", rotation, key)
		})
	}

	for _, arg := range args {
		entry, err := parseEntry(arg)
		if nil != err {
			reportSkipped(m.e, arg, err)
			continue
		}
		tree.Insert(entry.Key, entry.Value)
	}
	return tree
}

func reportSkipped(e io.Writer, arg string, err error) {
	fmt.Fprintf(e, "skipping: %q  error: %s\n", arg, err)
}
