// SPDX-License-Identifier: MIT

package workerpool

// Job is a unit of work producing one scalar.
type Job func() (float64, error)

// Handle is the caller's side of a submitted Job.
type Handle interface {
	// Await blocks until the job finished and returns its result.
	// It may be called any number of times, from any goroutine.
	Await() (float64, error)
}

// Submitter is the capability set a consumer needs from a pool.
// Implementations must make Submit safe for concurrent use.
type Submitter interface {
	// Submit schedules job and returns immediately.
	Submit(job Job) Handle
}
