// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/prioritytree/configuration"
)

func TestVersionCommand(t *testing.T) {
	w := &bytes.Buffer{}
	assert.True(t, processSetupCommand(w, "taskrunnerd", []string{"version"}, ""), "handled")
	assert.Equal(t, version+"\n", w.String(), "version")
}

func TestStartCommand(t *testing.T) {
	w := &bytes.Buffer{}
	assert.False(t, processSetupCommand(w, "taskrunnerd", []string{"run"}, ""), "continue")
	assert.Equal(t, 0, w.Len(), "no output")
}

func TestCheckCommand(t *testing.T) {
	fileName := writeConfiguration(t, "", `{ { priority = 2, name = "report" } }`)

	w := &bytes.Buffer{}
	assert.True(t, processSetupCommand(w, "taskrunnerd", []string{"check"}, fileName), "handled")

	var options configuration.Configuration
	assert.Nil(t, json.Unmarshal(w.Bytes(), &options), "json")
	assert.Equal(t, 10, options.RememberedTasks, "remembered")
	assert.Equal(t, 1, len(options.Tasks), "tasks")
	assert.Equal(t, "report", options.Tasks[0].Name, "task name")
}
