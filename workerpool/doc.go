// SPDX-License-Identifier: MIT

// Package workerpool provides a persistent, reusable pool of worker
// goroutines that run submitted jobs and hand back their results through
// handles.
//
// A Pool is created once by its owner and shared by reference with any
// number of consumers; consumers only Submit and Await, they never size or
// close the pool.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	h := pool.Submit(func() (float64, error) { return 6 * 7, nil })
//	v, err := h.Await()
//
// Guarantees:
//   - Submit never blocks on worker availability (the queue is unbounded).
//   - Jobs start in FIFO order; completion order is unspecified.
//   - A panicking job does not kill its worker; the panic surfaces as
//     ErrJobPanic from Await.
//   - Close drains the queue: every job submitted before Close completes.
package workerpool
