// Package extsparse is an in-memory toolkit for building sparse matrices
// incrementally — insert entries one at a time, in any order, then compress
// into a fixed column format for numerical use.
//
// 🚀 What is extsparse?
//
//	A small, deterministic library built around one idea: construction and
//	computation want different storage. extsparse gives each phase its own
//	representation and cheap, explicit conversion between them:
//		• LNK        — linked-list sparse matrix, O(1) amortized inserts
//		• CSC        — compressed sparse column, binary-search reads & MatVec
//		• Extendable — CSC + pending LNK facade with an explicit Flush step
//		• Glue       — entrywise Sum, norms, conversions between the formats
//
// ✨ Why choose extsparse?
//
//   - Predictable – sentinel errors, fixed loop orders, no hidden state
//   - Honest costs – every operation documents its complexity trade-off
//   - Pure Go – no cgo, no runtime deps beyond the standard library
//   - Narrow surface – formats interoperate through one small Reader interface
//
// Everything lives under a single subpackage:
//
//	sparse/ — LNK, CSC, Extendable, conversions, entrywise ops & norms
//
// Quick sketch of the construction pipeline:
//
//	NewLNK ──Set/Add──▶ LNK ──ToCSC──▶ CSC ──MatVec──▶ y
//
// Dive into sparse/doc.go and the package examples for usage patterns.
//
//	go get github.com/katalvlaran/extsparse/sparse
package extsparse
