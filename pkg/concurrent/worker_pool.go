package concurrent

import (
	"context"
	"runtime"
	"sync"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) G

// Result is the output of one job together with the position the job was submitted at.
type Result[G any] struct {
	Index int
	Value G
}

type job[T any] struct {
	index int
	value T
}

// WorkerPool runs a fixed number of goroutines over a job queue. Jobs are numbered in
// submission order so results can be put back in that order. AddJob must be called from a
// single goroutine.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan job[T]
	results    chan Result[G]
	submitted  int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool; numWorkers <= 0 means one worker per available CPU. Results are
// buffered up to jobQueueSize, so callers that collect after Wait must size it to the number of jobs.
func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan job[T], jobQueueSize),
		results:    make(chan Result[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(ctx context.Context, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for j := range wp.jobQueue {
		wp.results <- Result[G]{Index: j.index, Value: jobFunc(ctx, j.value)}
	}
}

func (wp *WorkerPool[T, G]) Start(ctx context.Context, jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, jobFunc)
	}
}

func (wp *WorkerPool[T, G]) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(value T) {
	wp.jobQueue <- job[T]{index: wp.submitted, value: value}
	wp.submitted++
}

func (wp *WorkerPool[T, G]) CollectResults() chan Result[G] {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Map runs jobFunc over jobs on a pool of numWorkers goroutines and returns the outputs in job
// order. jobFunc is expected to observe ctx itself.
func Map[T any, G any](ctx context.Context, numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(ctx, jobFunc)
	for _, j := range jobs {
		wp.AddJob(j)
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(jobs))
	for res := range wp.CollectResults() {
		out[res.Index] = res.Value
	}
	return out
}
