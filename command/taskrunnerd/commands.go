// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/prioritytree/configuration"
)

// setup command handler
//
// commands that do not need logging or a running executor, returns
// false if the program should continue to run
func processSetupCommand(w io.Writer, program string, arguments []string, configurationFile string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Fprintf(w, "%s\n", version)

	case "check", "c":
		if "" == configurationFile {
			fmt.Fprintf(w, "error: missing --config-file\n")
			exitwithstatus.Exit(1)
		}
		options, err := configuration.GetConfiguration(configurationFile)
		if nil != err {
			fmt.Fprintf(w, "configuration: %q  error: %s\n", configurationFile, err)
			exitwithstatus.Exit(1)
		}
		printJson(w, options)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Fprintf(w, "error: missing command\n")
		default:
			fmt.Fprintf(w, "error: no such command: %v\n", command)
		}

		fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Fprintf(w, "supported commands:\n\n")
		fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
		fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")
		fmt.Fprintf(w, "  check                      (c)      - read the configuration file and display it\n\n")
		fmt.Fprintf(w, "  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Fprintf(w, "                                        for convenience when passing script arguments\n")
		fmt.Fprintf(w, "\n")

		exitwithstatus.Exit(1)
	}
	return true
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
