// Package parallel runs independent jobs on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool hands jobs to its workers. A pool of one worker runs every job inline
// in the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	close   func()
	workers int
}

// Start launches numWorkers workers; numWorkers < 1 means one per CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		close:   func() {},
		workers: numWorkers,
	}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Go queues f, blocking while every worker is busy and the queue is full.
// Go must not be called after Wait.
func (p *Pool) Go(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting jobs and returns once all queued jobs are done.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
