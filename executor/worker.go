// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"context"

	"github.com/bitmark-inc/prioritytree/background"
	"github.com/bitmark-inc/prioritytree/fault"
)

type worker struct {
	id int
	e  *Executor
}

// Run - process tasks as they arrive until shutdown
func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.e.log

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
		case <-ctx.Done():
		}
		cancel()
	}()

	log.Debugf("worker: %d starting", w.id)

loop:
	for {
		_, task, err := w.e.queue.PopWait(ctx)
		switch err {
		case nil:
			if _, err := w.e.process(ctx, task); nil != err {
				log.Debugf("worker: %d  task: %q not started: %s", w.id, task.Name, err)
				break loop
			}
		case fault.ErrQueueClosed, context.Canceled:
			break loop
		default:
			log.Errorf("worker: %d  error: %s", w.id, err)
			break loop
		}
	}

	log.Debugf("worker: %d stopped", w.id)
}

// Start - run the configured number of background workers
func (e *Executor) Start() error {
	e.Lock()
	defer e.Unlock()

	if nil != e.background {
		return fault.ErrAlreadyStarted
	}
	if e.queue.IsClosed() {
		return fault.ErrQueueClosed
	}

	processes := make(background.Processes, e.workers)
	for i := range processes {
		processes[i] = &worker{
			id: i,
			e:  e,
		}
	}
	e.background = background.Start(processes, nil)
	e.log.Infof("started: %d workers", e.workers)
	return nil
}

// Stop - stop the background workers and wait for them to finish,
// queued tasks remain queued
func (e *Executor) Stop() error {
	e.Lock()
	defer e.Unlock()

	if nil == e.background {
		return fault.ErrNotStarted
	}
	e.background.Stop()
	e.background = nil
	e.log.Info("stopped")
	return nil
}

// Close - permanent shutdown: stop any workers and refuse new tasks,
// tasks still queued are left in place
func (e *Executor) Close() {
	e.Lock()
	defer e.Unlock()

	if nil != e.background {
		e.background.Stop()
		e.background = nil
	}
	e.queue.Close()
	e.log.Infof("closed with: %d tasks pending", e.queue.Len())
}
