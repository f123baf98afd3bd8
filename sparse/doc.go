// SPDX-License-Identifier: MIT

// Package sparse provides mutable and compressed sparse matrix formats with
// explicit, deterministic conversion between them.
//
// 🚀 What is sparse?
//
//	Sparse matrix assembly (finite elements, graph Laplacians, incremental
//	accumulation pipelines) wants cheap, order-independent inserts; numerical
//	kernels want a fixed, sorted layout. This package keeps the two concerns
//	in separate types and makes the hand-off explicit:
//	  • LNK        — per-column linked lists over three parallel slices;
//	                 Set/Add are O(column population), growth is amortized O(1)
//	  • CSC        — compressed sparse column; At is O(log nnz(col)),
//	                 MatVec is O(nnz)
//	  • Extendable — a CSC plus a pending LNK; updates to existing entries go
//	                 straight into the CSC, new entries collect in the LNK
//	                 until Flush merges them in one pass
//
// ✨ Key properties:
//   - Append-only: entries can be overwritten or accumulated, never removed
//   - One small Reader interface is the only coupling between formats
//   - Sentinel errors (errors.Is) for every user-triggered failure;
//     no panics on user input
//   - No internal locking: serialize external access to a mutating instance
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/extsparse/sparse"
//
//	l, _ := sparse.NewLNK(1000, 1000, sparse.WithCapacityHint(5000))
//	for _, e := range entries {
//	    _ = l.Add(e.I, e.J, e.V) // accumulate in any order
//	}
//	c, _ := l.ToCSC()        // compress once, when assembly is done
//	y, _ := c.MatVec(x)      // y = A·x
//
// Performance:
//
//   - LNK.Set/Add: O(entries in the column); N inserts use O(N) slots total
//   - LNK.ToCSC:   O(nnz · log(max column population)) due to per-column sort
//   - CSC.MatVec:  O(nnz), fixed j→k loop order
//
// See example_test.go for runnable walkthroughs.
package sparse
