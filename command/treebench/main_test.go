// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/fatih/color"
)

var testingDirName string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "treebench-testing")
	if nil != err {
		panic(fmt.Sprintf("temporary directory creation failed: %s", err))
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	color.NoColor = true

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// write a configuration into a fresh directory
func writeConfiguration(t *testing.T, source string) string {
	fileName := filepath.Join(t.TempDir(), "treebench.conf")
	if err := os.WriteFile(fileName, []byte(source), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
