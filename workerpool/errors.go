// SPDX-License-Identifier: MIT

package workerpool

import "errors"

var (
	// ErrPoolClosed is reported by the handle of a job submitted after Close.
	ErrPoolClosed = errors.New("workerpool: pool is closed")

	// ErrJobPanic wraps a panic recovered while running a job.
	ErrJobPanic = errors.New("workerpool: job panicked")

	// ErrNilJob is reported by the handle of a nil job.
	ErrNilJob = errors.New("workerpool: nil job")
)
