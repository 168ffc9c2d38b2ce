// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"context"
	"strings"

	"github.com/bitmark-inc/prioritytree/fault"
)

//go:generate mockgen -source=task.go -destination=mocks/runner.go -package=mocks

// Task - a named unit of work
type Task struct {
	Priority int    `gluamapper:"priority" json:"priority"`
	Name     string `gluamapper:"name" json:"name"`
}

// Runner - performs a single attempt of a task
type Runner interface {
	Run(ctx context.Context, task Task) error
}

// RunnerFunc - adapt an ordinary function to a Runner
type RunnerFunc func(ctx context.Context, task Task) error

// Run - call f
func (f RunnerFunc) Run(ctx context.Context, task Task) error {
	return f(ctx, task)
}

// CheckContent - a runner that only inspects the task name, any name
// containing "Fail" is rejected
var CheckContent Runner = RunnerFunc(func(ctx context.Context, task Task) error {
	if "" == strings.TrimSpace(task.Name) {
		return fault.ErrEmptyTask
	}
	if strings.Contains(task.Name, "Fail") {
		return fault.ErrTaskContent
	}
	return nil
})

// Result - outcome of a processed task
type Result struct {
	Task      Task   `json:"task"`
	Attempts  int    `json:"attempts"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`
}

// Summary - counts of processed tasks
type Summary struct {
	Processed uint64 `json:"processed"`
	Succeeded uint64 `json:"succeeded"`
	Failed    uint64 `json:"failed"`
}
