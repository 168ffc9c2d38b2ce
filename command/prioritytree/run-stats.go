// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/prioritytree/avl"
)

type statsResult struct {
	Policy    string `json:"policy"`
	Count     int    `json:"count"`
	Height    int    `json:"height"`
	MaxHeight int    `json:"max_height"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree := buildTree(m, c.Args())

	result := statsResult{
		Policy:    m.policy.String(),
		Count:     tree.Count(),
		Height:    tree.Height(),
		MaxHeight: avl.MaxHeight(tree.Count()),
		Valid:     true,
	}
	if err := tree.Check(); nil != err {
		result.Valid = false
		result.Error = err.Error()
	}
	return printJson(m.w, result)
}
