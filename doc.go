// Package lvsort is a small, generic library of classic in-memory search and
// sort algorithms over mutable, index-addressable sequences.
//
// 🚀 What is inside?
//
//	• sequence/ — the Sequence[T] capability (Len/At/Set), the Slice[T]
//	              adapter and the shared three-way Compare
//	• search/   — binary search with Exact, Floor and Ceil modes
//	• sorting/  — Selection, Bubble, Merge, Quick and Radix sort
//
// ✨ Why lvsort?
//
//   - Generic – constraints.Ordered for plain values, CompareFunc for anything
//   - Predictable – no hidden allocation beyond Merge/Radix scratch buffers,
//     reproducible Quick pivots through explicit seeds
//   - Honest errors – nil inputs and negative radix keys are reported through
//     sentinel errors, never by panicking deep inside an algorithm
//   - Observable – optional zap logging and per-pass hooks
//
// Quick example:
//
//	xs := []int{5, 3, 1, 4, 2}
//	_ = sorting.Merge(sequence.Of(xs))    // xs == [1 2 3 4 5]
//	i, _ := search.BinarySearch(sequence.Of(xs), 4) // i == 3
//
//	go get github.com/katalvlaran/lvsort
package lvsort
