// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstrees/bstree"
	"github.com/bitmark-inc/bstrees/configuration"
	"github.com/bitmark-inc/bstrees/fault"
)

// basic defaults (directories and files are relative to the
// "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultKeys      = 1000
	defaultSeed      = 1
	defaultPoolLimit = 1024

	defaultLogDirectory = "log"
	defaultLogFile      = "treebench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
	defaultStrategies = []string{
		bstree.UnbalancedName,
		bstree.AVLName,
		bstree.RedBlackName,
	}
)

// Configuration - the workload description
type Configuration struct {
	DataDirectory       string               `gluamapper:"data_directory" json:"data_directory" yaml:"data_directory"`
	Strategies          []string             `gluamapper:"strategies" json:"strategies" yaml:"strategies"`
	Keys                int                  `gluamapper:"keys" json:"keys" yaml:"keys"`
	Removes             int                  `gluamapper:"removes" json:"removes" yaml:"removes"`
	Seed                int64                `gluamapper:"seed" json:"seed" yaml:"seed"`
	Sequential          bool                 `gluamapper:"sequential" json:"sequential" yaml:"sequential"`
	Check               bool                 `gluamapper:"check" json:"check" yaml:"check"`
	CheckEveryOperation bool                 `gluamapper:"check_every_operation" json:"check_every_operation" yaml:"check_every_operation"`
	PoolLimit           int                  `gluamapper:"pool_limit" json:"pool_limit" yaml:"pool_limit"`
	Logging             logger.Configuration `gluamapper:"logging" json:"logging" yaml:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory:       defaultDataDirectory,
		Strategies:          nil, // filled after parsing
		Keys:                defaultKeys,
		Removes:             0,
		Seed:                defaultSeed,
		Sequential:          false,
		Check:               true,
		CheckEveryOperation: false,
		PoolLimit:           defaultPoolLimit,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    maps.Clone(defaultLogLevels),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if options.Keys <= 0 {
		return nil, fmt.Errorf("%w: keys: %d", fault.ErrInvalidCount, options.Keys)
	}
	if options.Removes < 0 {
		return nil, fmt.Errorf("%w: removes: %d", fault.ErrInvalidCount, options.Removes)
	}
	if options.Removes > options.Keys {
		return nil, fmt.Errorf("%w: removes: %d  keys: %d", fault.ErrTooManyRemoves, options.Removes, options.Keys)
	}
	if options.PoolLimit < 0 {
		options.PoolLimit = 0
	}
	if 0 == len(options.Strategies) {
		options.Strategies = append([]string{}, defaultStrategies...)
	}
	for _, name := range options.Strategies {
		if _, err := bstree.ParseStrategy(name); nil != err {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a simple name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ensureAbsolute - if path is not absolute, prepend directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
