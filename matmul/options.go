// SPDX-License-Identifier: MIT

// Package matmul: functional configuration of the Engine.
//
// Each strategy (generator, processor, assembler) is injected as a plain
// value; there is no registry and no reflection. Option constructors panic
// only on nonsensical values (nil strategies), which are programmer errors.
package matmul

import (
	"io"
	"log/slog"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilGenerator = "matmul: WithGenerator: generator must be non-nil"
	panicNilProcessor = "matmul: WithProcessor: processor must be non-nil"
	panicNilAssembler = "matmul: WithAssembler: assembler must be non-nil"
	panicNilLogger    = "matmul: WithLogger: logger must be non-nil"
)

// Option mutates Engine options. Safe to apply repeatedly; the last one wins.
type Option func(*Options)

// Options stores the effective Engine configuration.
// A nil processor means "PoolProcessor over the pool given to New".
type Options struct {
	generator TaskGenerator
	processor TaskProcessor
	assembler ResultAssembler
	logger    *slog.Logger
}

// defaultOptions returns the zero-configuration setup:
// RowMajor generator, DenseAssembler, discarding logger.
func defaultOptions() Options {
	return Options{
		generator: RowMajor{},
		assembler: DenseAssembler{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithGenerator replaces the RowMajor task generator.
// A replacement must keep the row-major contract documented on TaskGenerator.
func WithGenerator(g TaskGenerator) Option {
	if g == nil {
		panic(panicNilGenerator)
	}
	return func(o *Options) { o.generator = g }
}

// WithProcessor replaces the pool-backed processor (e.g. with a fake in tests).
// When set, New accepts a nil pool.
func WithProcessor(p TaskProcessor) Option {
	if p == nil {
		panic(panicNilProcessor)
	}
	return func(o *Options) { o.processor = p }
}

// WithAssembler replaces DenseAssembler (e.g. with FlatAssembler).
func WithAssembler(a ResultAssembler) Option {
	if a == nil {
		panic(panicNilAssembler)
	}
	return func(o *Options) { o.assembler = a }
}

// WithLogger routes Engine debug records to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}
