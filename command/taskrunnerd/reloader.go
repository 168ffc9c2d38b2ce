// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/prioritytree/configuration"
	"github.com/bitmark-inc/prioritytree/executor"
	"github.com/bitmark-inc/prioritytree/limitedset"
)

const (
	reloaderLoggerPrefix = "reloader"
	settleTime           = 200 * time.Millisecond
)

// taskAdder - the part of the executor used for queueing
type taskAdder interface {
	AddTask(priority int, name string) error
}

type reloader struct {
	log      *logger.L
	fileName string
	settle   time.Duration
	tasks    taskAdder
	seen     *limitedset.LimitedSet[string]
	removed  chan struct{}
}

func newReloader(fileName string, remembered int, tasks taskAdder, log *logger.L) *reloader {
	return &reloader{
		log:      log,
		fileName: fileName,
		settle:   settleTime,
		tasks:    tasks,
		seen:     limitedset.New[string](remembered),
		removed:  make(chan struct{}),
	}
}

// queue every task whose name has not been seen recently, returns the
// number queued
func (r *reloader) enqueue(tasks []executor.Task) int {
	n := 0
	for _, task := range tasks {
		if r.seen.Exists(task.Name) {
			r.log.Debugf("already queued: %q", task.Name)
			continue
		}
		if err := r.tasks.AddTask(task.Priority, task.Name); nil != err {
			r.log.Warnf("task: %q  error: %s", task.Name, err)
			continue
		}
		r.seen.Add(task.Name)
		n += 1
	}
	return n
}

// re-read the configuration file and queue any new tasks
func (r *reloader) reload() (int, error) {
	options, err := configuration.GetConfiguration(r.fileName)
	if nil != err {
		return 0, err
	}
	return r.enqueue(options.Tasks), nil
}

// Run - background process reacting to file watcher events
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	channel := args.(WatcherChannel)

	r.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-channel.change:
			// allow an editor to finish writing
			select {
			case <-shutdown:
				break loop
			case <-time.After(r.settle):
			}

			n, err := r.reload()
			if nil != err {
				r.log.Errorf("failed to read configuration from: %s  error: %s", r.fileName, err)
				continue loop
			}
			r.log.Infof("reload queued: %d new tasks", n)

		case <-channel.remove:
			r.log.Warn("configuration file removed")
			close(r.removed)
			break loop
		}
	}

	r.log.Info("stopped")
}
