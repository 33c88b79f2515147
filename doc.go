// Package parmul multiplies chains of dense matrices by spreading every
// output cell's dot product across a caller-owned pool of workers.
//
// 🚀 What is parmul?
//
//	A small, dependency-light engine that brings together:
//		• Matrix capability set: row/column readers, dense and flat storage, gonum adapter
//		• Worker pool: long-lived goroutines, non-blocking submit, ordered await
//		• Engine: cell-task generation, batch dispatch, row-major reassembly
//		• Chains: shape validation up front, then a left fold of pair products
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/     — Matrix / LeftOperand / RightOperand, Dense, Flat, Gonum, Copy, AllClose
//	workerpool/ — Pool with Submit(Job) Handle and Handle.Await()
//	matmul/     — Validate, CellTask, RowMajor, PoolProcessor, assemblers, Engine, Multiply
//
// and a command-line front end in cmd/parmul.
//
// Quick example:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matmul.Multiply(pool, a, b) // [[19, 22], [43, 50]]
//
// The pool is borrowed, never owned: one pool can serve many concurrent
// Multiply calls, and the caller closes it once.
//
//	go get github.com/katalvlaran/parmul
package parmul
