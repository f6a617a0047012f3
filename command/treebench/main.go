// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstrees/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "no-color", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "format", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		usage(os.Stdout, program)
		exitwithstatus.Exit(0)
	}

	original := ""
	if len(arguments) > 0 {
		original = arguments[0]
	}
	command, arguments := parseCommand(arguments)

	// these commands don't require the configuration
	if processSetupCommand(program, command, original) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	format := formatTable
	if n := len(options["format"]); n > 0 {
		format, err = parseFormat(options["format"][n-1])
		if nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
	}

	if len(options["no-color"]) > 0 {
		color.NoColor = true
	}
	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	if verbose {
		if err := printJSON(os.Stdout, "configuration", masterConfiguration); nil != err {
			exitwithstatus.Message("%s: configuration output error: %s", program, err)
		}
	}

	// ------------------
	// start of real main
	// ------------------

	workloadLog := logger.New("workload")

	switch command {
	case commandDump:
		printData := len(arguments) > 0 && "data" == arguments[0]
		work, err := newWorkload(masterConfiguration, workloadLog)
		if nil != err {
			log.Criticalf("workload error: %s", err)
			exitwithstatus.Message("%s: workload error: %s", program, err)
		}
		if err := dump(os.Stdout, masterConfiguration, work, printData); nil != err {
			log.Criticalf("dump error: %s", err)
			exitwithstatus.Message("%s: dump failed with error: %s", program, err)
		}

	default:
		results, err := runAll(masterConfiguration, workloadLog)
		if nil != err {
			log.Criticalf("run error: %s", err)
			exitwithstatus.Message("%s: run failed with error: %s", program, err)
		}
		if quiet {
			return
		}
		if err := report(os.Stdout, format, results); nil != err {
			log.Criticalf("report error: %s", err)
			exitwithstatus.Message("%s: report failed with error: %s", program, err)
		}
	}
}
