// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/prioritytree/avl"
	"github.com/bitmark-inc/prioritytree/fault"
)

type drainResult struct {
	Policy string                   `json:"policy"`
	Popped []avl.Entry[int, string] `json:"popped"`
}

func runDrain(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := buildTree(m, c.Args())

	result := drainResult{
		Policy: m.policy.String(),
		Popped: make([]avl.Entry[int, string], 0, tree.Count()),
	}

loop:
	for {
		key, value, err := tree.PopExtreme()
		switch err {
		case nil:
			result.Popped = append(result.Popped, avl.Entry[int, string]{Key: key, Value: value})
		case fault.ErrEmptyTree:
			break loop
		default:
			return err
		}
	}

	return printJson(m.w, result)
}
