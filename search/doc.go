// Package search implements binary search with exact, floor and ceil
// semantics over an ascending sequence.Sequence.
//
// 🚀 What does it answer?
//
//	Given an ascending sequence S and a target v:
//	  • BinarySearch — an index i with S[i] == v
//	  • Floor        — an exact match, else the greatest i with S[i] < v
//	  • Ceil         — an exact match, else the least i with S[i] > v
//
//	All three share one low/high/mid bisection loop (Search with a Mode);
//	the named functions are thin wrappers over it.
//
// ✨ Contract:
//   - Not found ⇒ (NotFound, ErrNotFound).
//   - nil sequence ⇒ ErrNilSequence; nil comparator ⇒ ErrNilCompare.
//   - Duplicates: any matching index may be returned.
//   - Unsorted input is a precondition violation: the result is unspecified
//     but the call never panics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsort/search"
//
//	s := sequence.Of([]int{1, 3, 5, 7, 9})
//	i, err := search.Floor(s, 4) // i == 1 (value 3)
//
// Complexity: O(log n) time, O(1) space for every function.
package search
