// Package parallel provides the worker pool used to fan per-source
// betweenness accumulations across CPUs.
package parallel

import (
	"runtime"
	"sync"

	"github.com/antonyPJ/analise-redes-viarias-bsb/pkg/logging"
)

// WorkerPool manages a fixed set of worker goroutines consuming tasks from
// a shared queue.
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // protects taskQueue from close during Submit
	closed    bool
}

// NewWorkerPool creates a pool with the given number of workers. A count
// of zero or less uses one worker per CPU.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// Workers returns the pool size.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		// A panicking task must not take the worker down with it.
		func() {
			defer func() {
				if r := recover(); r != nil {
					logging.ErrorLog("worker panic recovered",
						logging.Component("parallel"),
						logging.Any("panic", r))
				}
			}()
			task()
		}()
	}
}

// Submit queues a task. Returns false if the pool has been closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Close shuts the queue and waits for the workers to drain it. Safe to
// call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
