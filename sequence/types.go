package sequence

// Sequence is an ordered, mutable, fixed-length container addressed by
// zero-based position. Implementations must make Len, At and Set O(1).
//
// At and Set are only ever called with 0 <= i < Len(); implementations are
// free to panic outside that range, as a Go slice does.
type Sequence[T any] interface {
	// Len reports the number of elements.
	Len() int
	// At returns the element at position i.
	At(i int) T
	// Set overwrites the element at position i with v.
	Set(i int, v T)
}

// CompareFunc is a three-way comparator: negative when a < b, zero when
// a == b, positive when a > b. It must describe a consistent total order.
type CompareFunc[T any] func(a, b T) int

// Slice adapts a Go slice to Sequence. The zero value (nil slice) is a valid
// empty sequence.
type Slice[T any] []T

// Of wraps xs as a Sequence without copying; writes through the returned
// value are visible in xs.
func Of[T any](xs []T) Slice[T] {
	return Slice[T](xs)
}

// Len reports len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Set assigns s[i] = v.
func (s Slice[T]) Set(i int, v T) { s[i] = v }

// Swap exchanges s[i] and s[j] directly on the backing array.
func (s Slice[T]) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// swapper is implemented by sequences that can exchange two positions
// without two round-trips through At/Set.
type swapper interface {
	Swap(i, j int)
}

// Swap exchanges the elements at positions i and j of s.
// If s has its own Swap method it is used; otherwise the exchange is done
// with two At and two Set calls.
//
// Complexity: O(1).
func Swap[T any](s Sequence[T], i, j int) {
	if i == j {
		return
	}
	if sw, ok := s.(swapper); ok {
		sw.Swap(i, j)
		return
	}
	tmp := s.At(i)
	s.Set(i, s.At(j))
	s.Set(j, tmp)
}

// ToSlice copies the contents of s into a freshly allocated slice.
// A nil s yields nil.
//
// Complexity: O(n) time, O(n) space.
func ToSlice[T any](s Sequence[T]) []T {
	if s == nil {
		return nil
	}
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
