// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prioritytree/configuration"
	"github.com/bitmark-inc/prioritytree/executor"
	"github.com/bitmark-inc/prioritytree/fault"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.pidfile = "taskrunnerd.pid"
M.remembered_tasks = 50

M.executor = {
    policy = "maximum",
    max_retries = 5,
    workers = 2,
    rate_limit = 10.5,
    burst = 3,
    result_expiry = 60,
}

M.tasks = {
    { priority = 3, name = "backup" },
    { priority = 9, name = "alert" },
}

M.logging = {
    directory = "logs",
    file = "runner.log",
    size = 2048,
    count = 4,
    levels = {
        executor = "debug",
    },
}

return M
`

func writeFile(t *testing.T, contents string) string {
	directory := t.TempDir()
	fileName := filepath.Join(directory, "taskrunnerd.conf")
	if err := os.WriteFile(fileName, []byte(contents), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeFile(t, fullConfiguration)
	directory := filepath.Dir(fileName)

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("get configuration error: %s", err)
	}

	assert.Equal(t, filepath.Clean(directory), options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(directory, "taskrunnerd.pid"), options.PidFile, "pid file")
	assert.Equal(t, 50, options.RememberedTasks, "remembered tasks")

	assert.Equal(t, executor.Configuration{
		Policy:       "maximum",
		MaxRetries:   5,
		Workers:      2,
		RateLimit:    10.5,
		Burst:        3,
		ResultExpiry: 60,
	}, options.Executor, "executor")

	assert.Equal(t, []executor.Task{
		{Priority: 3, Name: "backup"},
		{Priority: 9, Name: "alert"},
	}, options.Tasks, "tasks")

	assert.Equal(t, filepath.Join(directory, "logs"), options.Logging.Directory, "log directory")
	assert.Equal(t, "runner.log", options.Logging.File, "log file")
	assert.Equal(t, 2048, options.Logging.Size, "log size")
	assert.Equal(t, 4, options.Logging.Count, "log count")
	assert.Equal(t, "debug", options.Logging.Levels["executor"], "executor level")
	assert.Equal(t, "info", options.Logging.Levels["main"], "default level kept")

	info, err := os.Stat(options.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestDefaults(t *testing.T) {
	fileName := writeFile(t, `return { data_directory = "." }`)
	directory := filepath.Dir(fileName)

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("get configuration error: %s", err)
	}

	assert.Equal(t, "", options.PidFile, "no pid file by default")
	assert.Equal(t, 1000, options.RememberedTasks, "remembered tasks")
	assert.Equal(t, executor.DefaultConfiguration(), options.Executor, "executor")
	assert.Empty(t, options.Tasks, "tasks")
	assert.Equal(t, filepath.Join(directory, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "taskrunnerd.log", options.Logging.File, "log file")

	for _, channel := range []string{"main", "executor", "watcher", "reloader"} {
		assert.Equal(t, "info", options.Logging.Levels[channel], "channel: %s", channel)
	}
}

func TestInvalidDataDirectory(t *testing.T) {
	fileName := writeFile(t, `return { }`)
	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidDataDirectory, err, "blank data directory")

	notDirectory := writeFile(t, `return { }`)
	fileName = writeFile(t, `return { data_directory = "`+notDirectory+`" }`)
	_, err = configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrConfigDirPath, err, "file as data directory")
}

func TestLogFileWithPath(t *testing.T) {
	fileName := writeFile(t, `return { data_directory = ".", logging = { file = "sub/runner.log" } }`)
	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrNotPlainFileName, err, "log file with a directory")
}

func TestParseConfigurationFile(t *testing.T) {
	type simple struct {
		Name  string `gluamapper:"name"`
		Count int    `gluamapper:"count"`
	}

	fileName := writeFile(t, `
local name = "from-" .. "lua"
return { name = name, count = 2 * 21, ignored = true }
`)

	var s simple
	assert.Nil(t, configuration.ParseConfigurationFile(fileName, &s), "parse")
	assert.Equal(t, simple{Name: "from-lua", Count: 42}, s, "decoded")

	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, s), "not a pointer")
	var n int
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n), "not a struct")

	notTable := writeFile(t, `return 7`)
	assert.Equal(t, fault.ErrNotConfigTable, configuration.ParseConfigurationFile(notTable, &s), "not a table")

	broken := writeFile(t, `return {`)
	assert.NotNil(t, configuration.ParseConfigurationFile(broken, &s), "syntax error")

	assert.NotNil(t, configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing"), &s), "missing file")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/file", configuration.EnsureAbsolute("/data", "file"), "relative")
	assert.Equal(t, "/abs/file", configuration.EnsureAbsolute("/data", "/abs/file"), "absolute")
	assert.Equal(t, "/data/file", configuration.EnsureAbsolute("/data", "./sub/../file"), "cleaned")
}
