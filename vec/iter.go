package vec

import "iter"

// Values returns a forward traversal over the present elements. Each
// call to the returned sequence restarts from index 0.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.items.Slots()[:v.size] {
			if !yield(e) {
				return
			}
		}
	}
}

// Refs returns a forward traversal yielding each index together with a
// pointer to its element, for in-place mutation. Growing or inserting
// during the traversal is a caller error.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		slots := v.items.Slots()
		for i := 0; i < v.size; i++ {
			if !yield(i, &slots[i]) {
				return
			}
		}
	}
}

// Slice returns the present elements as a view over the vector's
// storage, valid until the next reallocation.
func (v *Vector[T]) Slice() []T {
	return v.items.Slots()[:v.size]
}
