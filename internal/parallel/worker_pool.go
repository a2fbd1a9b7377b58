// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel runs segmentation over many files with a bounded worker
// pool.
package parallel

import (
	"context"
	"sync"
	"time"

	"clause-scan/internal/config"
	"clause-scan/internal/core"
	"clause-scan/internal/extract"
	"clause-scan/internal/observability"
	"clause-scan/internal/segment"
)

// Job represents one file segmentation task
type Job struct {
	FilePath string
	Options  config.Options
}

// Result represents one file's segmentation outcome
type Result struct {
	FilePath string
	Result   *segment.SegmentationResult
	Error    error
	Duration time.Duration
}

// WorkerPool manages parallel file segmentation
type WorkerPool struct {
	workers   int
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	segmenter *core.Segmenter
	observer  *observability.StandardObserver
}

// NewWorkerPool creates a worker pool sharing one segmenter across workers.
func NewWorkerPool(workers int, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workers:   workers,
		jobs:      make(chan Job, workers*2),
		results:   make(chan Result, workers*2),
		ctx:       ctx,
		cancel:    cancel,
		segmenter: core.NewSegmenter(observer),
		observer:  observer,
	}
}

// Start initializes worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Submit adds a job to the queue. It blocks when the queue is full and
// returns early if the pool was stopped.
func (wp *WorkerPool) Submit(job Job) {
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// Close signals that no further jobs will be submitted. Results can still
// be drained afterwards.
func (wp *WorkerPool) Close() {
	close(wp.jobs)
	go func() {
		wp.wg.Wait()
		close(wp.results)
	}()
}

// Stop cancels outstanding work.
func (wp *WorkerPool) Stop() {
	wp.cancel()
}

// Results returns the result channel; it is closed after Close once all
// submitted jobs have finished.
func (wp *WorkerPool) Results() <-chan Result {
	return wp.results
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for job := range wp.jobs {
		select {
		case <-wp.ctx.Done():
			return
		default:
		}
		wp.results <- wp.process(job)
	}
}

func (wp *WorkerPool) process(job Job) Result {
	start := time.Now()
	finish := wp.observer.StartTiming("parallel", "process_file")

	doc, err := extract.FromFile(job.FilePath)
	if err != nil {
		finish(false, map[string]any{"file": job.FilePath})
		return Result{FilePath: job.FilePath, Error: err, Duration: time.Since(start)}
	}

	result := wp.segmenter.Segment(doc.Text, doc.Pages, job.Options)
	finish(true, map[string]any{"file": job.FilePath, "clause_count": len(result.Clauses)})

	return Result{
		FilePath: job.FilePath,
		Result:   result,
		Duration: time.Since(start),
	}
}
