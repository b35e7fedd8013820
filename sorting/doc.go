// Package sorting provides in-place ascending sorts over a sequence.Sequence.
//
// 🚀 Algorithms:
//
//	| function  | time (avg / worst)   | extra space | stable |
//	|-----------|----------------------|-------------|--------|
//	| Selection | O(n²) / O(n²)        | O(1)        | no     |
//	| Bubble    | O(n²) / O(n²)        | O(1)        | no*    |
//	| Merge     | O(n log n)           | O(n)        | yes    |
//	| Quick     | O(n log n) / O(n²)   | O(log n)    | no     |
//	| Radix     | O(d·n)               | O(n)        | yes    |
//
//	* Bubble only swaps strictly out-of-order neighbours, but callers must
//	  not rely on that; only Merge and Radix promise stability.
//
//	d is the number of decimal digits of the largest key.
//
// ✨ Contract:
//   - Every sort rewrites its input in place and never changes its length.
//   - Empty input is a valid no-op; nil sequences and nil comparators are
//     reported as errors (sequence.ErrNilSequence / sequence.ErrNilCompare).
//   - Plain variants use sequence.Compare; ...Func variants take a
//     sequence.CompareFunc for arbitrary element types.
//   - Radix accepts only non-negative integers and rejects negative keys
//     with ErrNegativeKey before touching the input.
//
// ⚙️ Options:
//
//	sorting.Quick(s, sorting.WithSeed(42))         // reproducible pivots
//	sorting.Bubble(s, sorting.WithEarlyExit())     // stop after a clean pass
//	sorting.Radix(s, sorting.WithLogger(logger))   // zap Debug trace
//	sorting.Radix(s, sorting.WithOnPass(fn))       // per-digit callback
//
// Options that do not apply to an algorithm are ignored by it.
package sorting
