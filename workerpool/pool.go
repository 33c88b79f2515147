// SPDX-License-Identifier: MIT

package workerpool

import (
	"fmt"
	"runtime"
	"sync"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// reused until Close.
type Pool struct {
	numWorkers int

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*future // FIFO of jobs not yet picked up
	closed bool

	workers   sync.WaitGroup
	closeOnce sync.Once
}

var _ Submitter = (*Pool)(nil)

// future is the Handle of a single job. done is closed exactly once,
// after value/err are written.
type future struct {
	job   Job
	done  chan struct{}
	value float64
	err   error
}

// New creates a pool with numWorkers workers, spawned immediately.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{numWorkers: numWorkers}
	p.cond = sync.NewCond(&p.mu)

	p.workers.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return p.numWorkers }

// Pending returns the number of queued jobs no worker has picked up yet.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.queue)
}

// Submit enqueues job and returns its handle without waiting for a worker.
// After Close, or for a nil job, the returned handle is already failed.
func (p *Pool) Submit(job Job) Handle {
	f := &future{job: job, done: make(chan struct{})}
	if job == nil {
		f.finish(0, ErrNilJob)
		return f
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		f.finish(0, ErrPoolClosed)
		return f
	}
	p.queue = append(p.queue, f)
	p.mu.Unlock()
	p.cond.Signal()

	return f
}

// Close stops accepting jobs, lets the workers drain the queue and waits
// for them to exit. Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		p.cond.Broadcast()
	})
	p.workers.Wait()
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 { // closed and drained
			p.mu.Unlock()
			return
		}
		f := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		p.mu.Unlock()

		f.run()
	}
}

// run executes the job, converting a panic into ErrJobPanic.
func (f *future) run() {
	var (
		value float64
		err   error
	)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrJobPanic, r)
		}
		f.finish(value, err)
	}()
	value, err = f.job()
}

func (f *future) finish(value float64, err error) {
	f.value, f.err = value, err
	close(f.done)
}

// Await blocks until the job completed.
func (f *future) Await() (float64, error) {
	<-f.done
	return f.value, f.err
}
