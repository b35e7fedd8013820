// Package sequence defines the index-addressable container every lvsort
// algorithm operates on, together with the ordering primitives they share.
//
// 🚀 What is a Sequence?
//
//	A Sequence[T] is an ordered, mutable, finite container addressed by a
//	zero-based position. It supports three O(1) operations:
//	  • Len()        — number of elements (never changes during a call)
//	  • At(i)        — read element i
//	  • Set(i, v)    — overwrite element i
//
//	No lvsort operation grows or shrinks a Sequence. Searches only read it,
//	sorts rewrite it in place.
//
// ✨ Key pieces:
//   - Slice[T] — the canonical implementation over a plain Go slice
//   - Of(xs)   — wrap an existing slice without copying
//   - Swap     — exchange two positions through the interface
//   - Compare  — total three-way order for constraints.Ordered types
//   - CompareFunc[T] — caller-supplied three-way comparator
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvsort/sequence"
//
//	xs := []int{5, 3, 1}
//	s := sequence.Of(xs)   // shares the backing array with xs
//	sequence.Swap[int](s, 0, 2) // xs is now [1 3 5]
package sequence
