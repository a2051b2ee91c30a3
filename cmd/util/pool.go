package cmdutil

import (
	"sync"

	"github.com/gammazero/workerpool"
)

// Pool runs submitted tasks on a bounded number of workers and lets the
// caller wait for all of them. A task counts as done once its function
// returns.
type Pool struct {
	wp *workerpool.WorkerPool
	wg *sync.WaitGroup
}

// NewPool creates a pool with the given number of workers. Values below 1
// are treated as 1.
func NewPool(parallel int) Pool {
	if parallel < 1 {
		parallel = 1
	}
	return Pool{wp: workerpool.New(parallel), wg: &sync.WaitGroup{}}
}

// Submit adds a new task to the pool.
func (p Pool) Submit(f func()) {
	p.wg.Add(1)
	p.wp.Submit(func() {
		defer p.wg.Done()
		f()
	})
}

// Finish waits for every submitted task to return, then shuts down the
// worker pool.
func (p Pool) Finish() {
	p.wg.Wait()
	p.wp.StopWait()
}
