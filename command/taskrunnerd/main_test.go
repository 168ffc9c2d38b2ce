// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// write a configuration holding the given Lua task list into a fresh
// directory, returns the file name
func writeConfiguration(t *testing.T, directory string, tasks string) string {
	if "" == directory {
		directory = t.TempDir()
	}
	fileName := filepath.Join(directory, "taskrunnerd.conf")
	contents := `
return {
    data_directory = ".",
    remembered_tasks = 10,
    tasks = ` + tasks + `,
}
`
	if err := os.WriteFile(fileName, []byte(contents), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
