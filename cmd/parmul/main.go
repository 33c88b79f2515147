// SPDX-License-Identifier: MIT

// Command parmul multiplies chains of matrices on a worker pool.
//
//	parmul multiply --shape 64x32 --shape 32x48 --workers 8 --verify
//	parmul multiply --input chain.yaml --assembler flat
//	parmul validate --input chain.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "parmul: "+err.Error())
		os.Exit(1)
	}
}
