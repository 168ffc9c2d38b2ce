// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/prioritytree/avl"
)

type metadata struct {
	policy  avl.Policy
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "prioritytree"
	app.Usage = "build an AVL priority tree and inspect it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " trace every rebalancing rotation",
		},
		cli.StringFlag{
			Name:  "policy, p",
			Value: "",
			Usage: "*extraction `POLICY` [minimum|maximum]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "list",
			Usage:     "list entries in ascending key order",
			ArgsUsage: "ENTRY...",
			Action:    runList,
		},
		{
			Name:      "drain",
			Usage:     "remove every entry in policy order",
			ArgsUsage: "ENTRY...",
			Action:    runDrain,
		},
		{
			Name:      "search",
			Usage:     "look up a single key",
			ArgsUsage: "ENTRY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "key, k",
					Usage: "*priority to search for `N`",
				},
			},
			Action: runSearch,
		},
		{
			Name:      "draw",
			Usage:     "ASCII drawing of the tree",
			ArgsUsage: "ENTRY...",
			Action:    runDraw,
		},
		{
			Name:      "stats",
			Usage:     "size, height and consistency of the tree",
			ArgsUsage: "ENTRY...",
			Action:    runStats,
		},
		{
			Name:      "version",
			Usage:     "display prioritytree version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Metadata = map[string]interface{}{}

	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command || "help" == command || "h" == command || "" == command {
			return nil
		}

		p := c.GlobalString("policy")
		if "" == p {
			return ErrMissingPolicy
		}
		policy, err := avl.ParsePolicy(p)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			policy:  policy,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
