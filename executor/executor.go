// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"
	cache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/prioritytree/avl"
	"github.com/bitmark-inc/prioritytree/background"
	"github.com/bitmark-inc/prioritytree/fault"
	"github.com/bitmark-inc/prioritytree/queue"
)

// Executor - priority ordered task runner
type Executor struct {
	sync.Mutex // protects workers

	log        *logger.L
	runner     Runner
	maxRetries int
	workers    int
	limiter    *rate.Limiter
	queue      *queue.Queue[int, Task]
	results    *cache.Cache
	background *background.T

	processed atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// New - create an executor, log must not be nil
func New(configuration Configuration, runner Runner, log *logger.L) (*Executor, error) {
	if nil == log {
		return nil, fault.ErrInvalidLogger
	}

	policy, err := configuration.validate()
	if nil != err {
		log.Errorf("invalid configuration: %+v  error: %s", configuration, err)
		return nil, err
	}

	limit := rate.Inf
	if configuration.RateLimit > 0 {
		limit = rate.Limit(configuration.RateLimit)
	}

	expiry := configuration.resultExpiry()
	e := &Executor{
		log:        log,
		runner:     runner,
		maxRetries: configuration.MaxRetries,
		workers:    configuration.Workers,
		limiter:    rate.NewLimiter(limit, max(configuration.Burst, 1)),
		queue:      queue.New[int, Task](policy),
		results:    cache.New(expiry, 2*expiry),
	}
	e.queue.SetObserver(func(rotation avl.Rotation, priority int) {
		log.Tracef("rebalance: %s at priority: %d", rotation, priority)
	})

	log.Infof("policy: %s  max retries: %d  workers: %d", policy, e.maxRetries, e.workers)
	return e, nil
}

// AddTask - queue a task, names that are blank are rejected
func (e *Executor) AddTask(priority int, name string) error {
	if "" == strings.TrimSpace(name) {
		e.log.Error("invalid task: task cannot be empty")
		return fault.ErrEmptyTask
	}
	task := Task{
		Priority: priority,
		Name:     name,
	}
	if err := e.queue.Push(priority, task); nil != err {
		e.log.Errorf("task: %q  error: %s", name, err)
		return err
	}
	e.log.Infof("task: %q  priority: %d added to the queue", name, priority)
	return nil
}

// AddTasks - queue several tasks under one lock, returns the number
// accepted
func (e *Executor) AddTasks(tasks []Task) int {
	entries := make([]avl.Entry[int, Task], 0, len(tasks))
	for _, task := range tasks {
		if "" == strings.TrimSpace(task.Name) {
			e.log.Warnf("skipping empty task at priority: %d", task.Priority)
			continue
		}
		entries = append(entries, avl.Entry[int, Task]{Key: task.Priority, Value: task})
	}
	n, err := e.queue.PushBatch(entries)
	if nil != err {
		e.log.Errorf("add tasks error: %s", err)
		return 0
	}
	e.log.Infof("added: %d of %d tasks", n, len(tasks))
	return n
}

// Tasks - pending tasks in the order they would be processed
func (e *Executor) Tasks() []Task {
	entries := e.queue.Entries()
	tasks := make([]Task, len(entries))
	if avl.PopMaximum == e.queue.Policy() {
		for i, entry := range entries {
			tasks[len(entries)-1-i] = entry.Value
		}
	} else {
		for i, entry := range entries {
			tasks[i] = entry.Value
		}
	}
	return tasks
}

// Pending - number of queued tasks
func (e *Executor) Pending() int {
	return e.queue.Len()
}

// ProcessTasks - run every queued task in the calling goroutine
//
// stops early with ctx.Err() if the context ends; the task in
// progress is then recorded as failed unless no attempt was made, in
// which case it goes back to the queue
func (e *Executor) ProcessTasks(ctx context.Context) (Summary, error) {
	summary := Summary{}

	if e.queue.IsEmpty() {
		e.log.Info("no tasks to process")
		return summary, nil
	}

	for {
		if err := ctx.Err(); nil != err {
			e.log.Warnf("processing interrupted: %s", err)
			return summary, err
		}

		_, task, err := e.queue.Pop()
		if fault.ErrEmptyTree == err {
			break
		}
		if nil != err {
			return summary, err
		}

		result, err := e.process(ctx, task)
		if nil != err {
			e.log.Warnf("processing interrupted: %s", err)
			return summary, err
		}
		summary.Processed += 1
		if result.Succeeded {
			summary.Succeeded += 1
		} else {
			summary.Failed += 1
		}
	}

	e.log.Infof("processing complete: total tasks processed: %d", summary.Processed)
	return summary, nil
}

// run one task with retries, record and return its result
//
// an error means the task was never attempted and has been queued
// again
func (e *Executor) process(ctx context.Context, task Task) (Result, error) {
	result := Result{
		Task: task,
	}

	var err error
retry_loop:
	for result.Attempts < e.maxRetries {
		if err = e.limiter.Wait(ctx); nil != err {
			if 0 == result.Attempts && e.requeue(task) {
				return result, err
			}
			break retry_loop
		}
		result.Attempts += 1

		e.log.Infof("processing task: %q", task.Name)
		err = e.runner.Run(ctx, task)
		if nil == err {
			e.log.Infof("task: %q processed successfully", task.Name)
			result.Succeeded = true
			break retry_loop
		}
		e.log.Errorf("task: %q  error: %s  retry: %d/%d", task.Name, err, result.Attempts, e.maxRetries)
	}

	e.processed.Add(1)
	if result.Succeeded {
		e.succeeded.Add(1)
	} else {
		if nil == err {
			err = fault.ErrRetriesExhausted
		}
		result.Error = err.Error()
		e.failed.Add(1)
		e.log.Errorf("task: %q failed after: %d attempts  error: %s", task.Name, result.Attempts, err)
	}

	e.results.Set(task.Name, result, cache.DefaultExpiration)
	return result, nil
}

// put back a task that was popped but never attempted
func (e *Executor) requeue(task Task) bool {
	if err := e.queue.Push(task.Priority, task); nil != err {
		e.log.Errorf("task: %q  requeue error: %s", task.Name, err)
		return false
	}
	e.log.Infof("task: %q returned to the queue", task.Name)
	return true
}

// Result - outcome of a recently processed task
func (e *Executor) Result(name string) (Result, bool) {
	item, found := e.results.Get(name)
	if !found {
		return Result{}, false
	}
	result, ok := item.(Result)
	return result, ok
}

// Stats - totals since the executor was created
func (e *Executor) Stats() Summary {
	return Summary{
		Processed: e.processed.Load(),
		Succeeded: e.succeeded.Load(),
		Failed:    e.failed.Load(),
	}
}
