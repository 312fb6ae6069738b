package vec

// ReserveHint is an opaque capacity request produced by Reserve and
// consumed only by the WithCapacity constructor.
type ReserveHint struct {
	n int
}

// Reserve wraps a capacity request for WithCapacity.
func Reserve(n int) ReserveHint {
	return ReserveHint{n: n}
}

// WithCapacity returns an empty vector whose storage is pre-allocated
// to the hinted capacity.
func WithCapacity[T any](hint ReserveHint) *Vector[T] {
	v := New[T]()
	v.Reserve(hint.n)
	return v
}
