// SPDX-License-Identifier: MIT
// Package sparse_test: runnable examples for the assembly pipeline.
package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/extsparse/sparse"
)

// ExampleLNK demonstrates incremental assembly: inserts in any order,
// overwrites, and the read contract.
func ExampleLNK() {
	l, _ := sparse.NewLNK(3, 3)

	_ = l.Set(0, 0, 10) // first entry of column 0 fills the head slot
	_ = l.Set(1, 0, 20) // second entry chains behind it
	_ = l.Set(0, 0, 99) // overwrite updates in place

	v00, _ := l.At(0, 0)
	v10, _ := l.At(1, 0)
	v22, _ := l.At(2, 2) // never written: reads as zero
	fmt.Println(v00, v10, v22, l.NNZ())

	// Output:
	// 99 20 0 2
}

// ExampleLNK_ToCSC shows the construction→compression hand-off and a
// compressed matrix-vector product.
func ExampleLNK_ToCSC() {
	l, _ := sparse.NewLNK(2, 2)
	_ = l.Add(0, 0, 1)
	_ = l.Add(1, 0, 2)
	_ = l.Add(1, 1, 3)

	c, _ := l.ToCSC()
	y, _ := c.MatVec([]float64{10, 100})
	fmt.Println(c.NNZ(), y)

	// Output:
	// 3 [10 320]
}

// ExampleExtendable walks the flush cycle: pending writes, Flush, then cheap
// in-place updates on the compressed part.
func ExampleExtendable() {
	e, _ := sparse.NewExtendable(2, 2)

	_ = e.Add(0, 0, 1.5) // collects in the pending part
	_ = e.Flush()        // merge pending into compressed
	_ = e.Add(0, 0, 0.5) // now an in-place compressed update

	v, _ := e.At(0, 0)
	fmt.Println(v, e.NNZ())

	// Output:
	// 2 1
}

// ExampleSum adds two matrices entrywise through the shared Reader surface.
func ExampleSum() {
	a, _ := sparse.NewLNK(2, 2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(1, 1, 2)

	b, _ := sparse.NewLNK(2, 2)
	_ = b.Set(1, 1, 3)

	s, _ := sparse.Sum(a, b)
	v, _ := s.At(1, 1)
	fmt.Println(v)

	// Output:
	// 5
}
