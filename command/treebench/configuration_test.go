// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstrees/fault"
)

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return {}`)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	directory := filepath.Dir(fileName)
	assert.Equal(t, directory, conf.DataDirectory)
	assert.Equal(t, []string{"unbalanced", "avl", "red-black"}, conf.Strategies)
	assert.Equal(t, defaultKeys, conf.Keys)
	assert.Equal(t, 0, conf.Removes)
	assert.True(t, conf.Check)
	assert.False(t, conf.CheckEveryOperation)
	assert.Equal(t, defaultPoolLimit, conf.PoolLimit)
	assert.Equal(t, filepath.Join(directory, defaultLogDirectory), conf.Logging.Directory)
	assert.Equal(t, defaultLogFile, conf.Logging.File)
	assert.Equal(t, defaultLogSize, conf.Logging.Size)
	assert.Equal(t, defaultLogCount, conf.Logging.Count)
	assert.Equal(t, "critical", conf.Logging.Levels[logger.DefaultTag])
	assert.DirExists(t, conf.Logging.Directory)
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.strategies = { "avl", "rb" }
M.keys = 64
M.removes = 32
M.seed = 99
M.sequential = true
M.check_every_operation = true
M.pool_limit = 8
M.logging = {
    file = "bench.log",
    levels = { DEFAULT = "info", workload = "debug" },
}
return M
`)

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, []string{"avl", "rb"}, conf.Strategies)
	assert.Equal(t, 64, conf.Keys)
	assert.Equal(t, 32, conf.Removes)
	assert.Equal(t, int64(99), conf.Seed)
	assert.True(t, conf.Sequential)
	assert.True(t, conf.CheckEveryOperation)
	assert.Equal(t, 8, conf.PoolLimit)
	assert.Equal(t, "bench.log", conf.Logging.File)
	assert.Equal(t, "info", conf.Logging.Levels[logger.DefaultTag])
	assert.Equal(t, "debug", conf.Logging.Levels["workload"])
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		source   string
		expected error
	}{
		{`return { keys = 0 }`, fault.ErrInvalidCount},
		{`return { removes = -1 }`, fault.ErrInvalidCount},
		{`return { keys = 10, removes = 11 }`, fault.ErrTooManyRemoves},
		{`return { strategies = { "avl", "splay" } }`, fault.ErrInvalidStrategy},
		{`return 42`, fault.ErrConfigurationNotTable},
	}

	for i, item := range items {
		_, err := getConfiguration(writeConfiguration(t, item.source))
		assert.ErrorIs(t, err, item.expected, "item: %d", i)
	}

	_, err := getConfiguration(writeConfiguration(t, `return { logging = { file = "sub/bench.log" } }`))
	assert.Error(t, err)

	_, err = getConfiguration(filepath.Join(t.TempDir(), "absent.conf"))
	assert.ErrorIs(t, err, fault.ErrNotFoundConfigFile)
}
