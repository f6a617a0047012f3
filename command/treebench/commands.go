// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// command names and their aliases
const (
	commandRun     = "run"
	commandDump    = "dump"
	commandVersion = "version"
	commandHelp    = "help"
)

// normalise a command, returning the empty string if unknown
func parseCommand(arguments []string) (string, []string) {
	if 0 == len(arguments) {
		return commandRun, arguments
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "run", "start", "r":
		return commandRun, arguments
	case "dump", "d":
		return commandDump, arguments
	case "version", "v":
		return commandVersion, arguments
	case "help", "h", "?":
		return commandHelp, arguments
	default:
		return "", arguments
	}
}

// setup command handler
//
// commands that do not need the configuration file, returns true if
// the command was completely handled
func processSetupCommand(program string, command string, original string) bool {
	switch command {
	case commandRun, commandDump:
		return false // continue processing

	case commandVersion:
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case commandHelp:
		case "":
			if "" == original {
				fmt.Printf("error: missing command\n")
			} else {
				fmt.Printf("error: no such command: %v\n", original)
			}
		}
		usage(os.Stdout, program)
		if commandHelp != command {
			exitwithstatus.Exit(1)
		}
	}
	return true
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s [--help] [--verbose] [--quiet] [--format=table|json|yaml] --config-file=FILE [[command|help] arguments...]\n", program)

	fmt.Fprintf(w, "supported commands:\n\n")
	fmt.Fprintf(w, "  help                       (h)      - display this message\n\n")
	fmt.Fprintf(w, "  version                    (v)      - display version string\n\n")

	fmt.Fprintf(w, "  run                        (start)  - apply the configured workload to each strategy\n")
	fmt.Fprintf(w, "                                        and report the results, same as no arguments\n")
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "  dump [data]                (d)      - draw the tree built by the workload,\n")
	fmt.Fprintf(w, "                                        with \"data\" the values are also shown\n")
	fmt.Fprintf(w, "\n")
}
