// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/prioritytree/avl"
)

type listResult struct {
	Policy  string                   `json:"policy"`
	Count   int                      `json:"count"`
	Entries []avl.Entry[int, string] `json:"entries"`
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := buildTree(m, c.Args())

	result := listResult{
		Policy:  m.policy.String(),
		Count:   tree.Count(),
		Entries: tree.Entries(),
	}
	return printJson(m.w, result)
}
