// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/parmul/matmul"
	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/workerpool"
)

const (
	verifyRTol = 1e-9
	verifyATol = 1e-12
)

var (
	errAssembler = errors.New("--assembler must be dense or flat")
	errVerify    = errors.New("result differs from the gonum reference")
)

type multiplyFlags struct {
	input     inputFlags
	verify    bool
	assembler string
	quiet     bool
}

func newMultiplyCmd(g *globalFlags) *cobra.Command {
	f := &multiplyFlags{}
	cmd := &cobra.Command{
		Use:     "multiply",
		Short:   "Multiply a chain of matrices left to right",
		Aliases: []string{"m"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMultiply(cmd, g, f)
		},
	}
	cmd.Flags().StringVarP(&f.input.path, "input", "i", "", "YAML or JSON file with a matrices: list")
	cmd.Flags().StringArrayVarP(&f.input.shapes, "shape", "s", nil, "random matrix of shape RxC (repeatable)")
	cmd.Flags().Int64Var(&f.input.seed, "seed", 1, "seed for random matrices; matrix i uses seed+i")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check the result against gonum's product")
	cmd.Flags().StringVar(&f.assembler, "assembler", "dense", "result layout: dense or flat")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "print only the shape of the result")

	return cmd
}

// assemblerFor maps the --assembler value to an engine option.
func assemblerFor(name string) (matmul.Option, error) {
	switch name {
	case "dense", "":
		return matmul.WithAssembler(matmul.DenseAssembler{}), nil
	case "flat":
		return matmul.WithAssembler(matmul.FlatAssembler{}), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, errAssembler)
	}
}

func runMultiply(cmd *cobra.Command, g *globalFlags, f *multiplyFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), g.verbose)
	ms, err := f.input.load()
	if err != nil {
		return err
	}
	asm, err := assemblerFor(f.assembler)
	if err != nil {
		return err
	}

	pool := workerpool.New(g.workers)
	defer pool.Close()

	engine, err := matmul.New(pool, asm, matmul.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("multiply", "matrices", len(ms), "workers", pool.NumWorkers())

	start := time.Now()
	out, err := engine.MultiplySequence(ms...)
	if err != nil {
		return err
	}
	logger.Info("done", "shape", shapeOf(out), "elapsed", time.Since(start))

	if f.verify {
		if err = verify(ms, out); err != nil {
			return err
		}
		logger.Info("verified against gonum")
	}

	w := cmd.OutOrStdout()
	if f.quiet {
		_, err = fmt.Fprintln(w, shapeOf(out))
		return err
	}
	_, err = fmt.Fprint(w, fmtMatrix(out))

	return err
}

// fmtMatrix prints any result backend in the Dense row format.
func fmtMatrix(m matrix.Matrix) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	d, err := matrix.Copy(m)
	if err != nil {
		return err.Error() + "\n"
	}

	return d.String()
}

// verify recomputes the chain with gonum and compares it to got.
func verify(ms []matrix.Matrix, got matrix.Matrix) error {
	ref, err := gonumProduct(ms)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	want, err := matrix.NewGonum(ref)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	ok, err := matrix.AllClose(got, want, verifyRTol, verifyATol)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !ok {
		return errVerify
	}

	return nil
}

// gonumProduct folds ms with mat.Dense.Mul.
func gonumProduct(ms []matrix.Matrix) (*mat.Dense, error) {
	acc, err := matrix.ToGonum(ms[0])
	if err != nil {
		return nil, err
	}
	for _, m := range ms[1:] {
		next, err := matrix.ToGonum(m)
		if err != nil {
			return nil, err
		}
		var prod mat.Dense
		prod.Mul(acc, next)
		acc = &prod
	}

	return acc, nil
}
