// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type searchResult struct {
	Key   int    `json:"key"`
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("key") {
		return ErrMissingKey
	}
	key := c.Int("key")

	tree := buildTree(m, c.Args())
	value, found := tree.Search(key)

	return printJson(m.w, searchResult{
		Key:   key,
		Found: found,
		Value: value,
	})
}
