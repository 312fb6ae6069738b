// Package vec implements a resizable contiguous sequence of
// homogeneous elements with amortized constant-time append, manual
// capacity control and deep-copy value semantics. The element storage
// is an exclusively owned mem.Block that the vector swaps out whenever
// it has to grow.
package vec

import (
	"github.com/cockroachdb/errors"

	"github.com/wilhasse/simple-vector-go/mem"
	"github.com/wilhasse/simple-vector-go/ut"
)

// ErrOutOfRange is returned by At when the index is not within the
// present elements.
var ErrOutOfRange = errors.New("vec: index out of range")

// Vector is a dynamic array of T. The zero value is an empty vector
// ready for use.
//
// A vector exclusively owns its storage; it is not safe for concurrent
// use, and callers needing shared access must synchronize externally.
// Pointers and views into the storage (Ref, At, Insert, Slice, Refs)
// stay valid only until the next reallocation: a growing Reserve or
// Resize, any Insert, or a PushBack that hits the capacity.
type Vector[T any] struct {
	items mem.Block[T]
	size  int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector of n zero-valued elements, capacity n.
func WithSize[T any](n int) *Vector[T] {
	ut.Assert(n >= 0, "n >= 0")
	return &Vector[T]{items: mem.NewBlock[T](n), size: n}
}

// Repeat returns a vector of n copies of value, capacity n.
func Repeat[T any](n int, value T) *Vector[T] {
	v := WithSize[T](n)
	slots := v.items.Slots()
	for i := range slots {
		slots[i] = value
	}
	return v
}

// Of returns a vector holding elems in order, capacity len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := WithSize[T](len(elems))
	copy(v.items.Slots(), elems)
	return v
}

// Clone returns a deep copy: fresh storage sized to the receiver's
// capacity, present elements copied in order.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{items: mem.NewBlock[T](v.Cap()), size: v.size}
	copy(out.items.Slots(), v.items.Slots()[:v.size])
	return out
}

// Move returns a vector that takes over src's storage and size. src is
// left empty with no storage. Never fails.
func Move[T any](src *Vector[T]) *Vector[T] {
	out := New[T]()
	out.items.Swap(&src.items)
	out.size = src.size
	src.size = 0
	return out
}

// CopyFrom replaces the receiver's contents with a deep copy of rhs.
// The copy is built in a temporary and swapped in, so a failure while
// building it leaves the receiver untouched. Self-assignment is a
// no-op.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Swap(rhs.Clone())
}

// MoveFrom exchanges contents with rhs, leaving the receiver's former
// contents behind in rhs. Self-assignment performs no exchange.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Swap(rhs)
}

// Len returns the number of present elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots backed by storage.
func (v *Vector[T]) Cap() int {
	return v.items.Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at index i. The caller guarantees i < Len().
func (v *Vector[T]) Get(i int) T {
	ut.Assert(i >= 0 && i < v.size, "i < size")
	return v.items.Slots()[i]
}

// Set stores value at index i. The caller guarantees i < Len().
func (v *Vector[T]) Set(i int, value T) {
	ut.Assert(i >= 0 && i < v.size, "i < size")
	v.items.Slots()[i] = value
}

// Ref returns a pointer to the element at index i. The caller
// guarantees i < Len().
func (v *Vector[T]) Ref(i int) *T {
	ut.Assert(i >= 0 && i < v.size, "i < size")
	return &v.items.Slots()[i]
}

// At returns a pointer to the element at index i, or an error wrapping
// ErrOutOfRange when i is not within the present elements.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, v.size)
	}
	return &v.items.Slots()[i], nil
}

// Clear drops all elements in O(1), keeping storage and capacity.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve grows the storage to exactly newCap slots, relocating the
// present elements into a fresh block; the slots past them are
// zero-valued. No-op when newCap does not exceed the current capacity.
func (v *Vector[T]) Reserve(newCap int) {
	if newCap <= v.Cap() {
		return
	}
	fresh := mem.NewBlock[T](newCap)
	copy(fresh.Slots(), v.items.Slots()[:v.size])
	v.items.Swap(&fresh)
	fresh.Release()
}

// Resize sets the element count to n. Growing within the capacity
// zeroes the newly exposed slots; growing past it reallocates to
// max(n, 2*Cap()). Shrinking is purely logical: storage is kept and
// the vacated slots are left as they are.
func (v *Vector[T]) Resize(n int) {
	ut.Assert(n >= 0, "n >= 0")
	switch {
	case n == v.size:
		return
	case n <= v.Cap():
		if n > v.size {
			slots := v.items.Slots()
			var zero T
			for i := v.size; i < n; i++ {
				slots[i] = zero
			}
		}
	default:
		v.Reserve(max(n, 2*v.Cap()))
	}
	v.size = n
}

// grownCap is the append growth policy: 1 from empty, else doubling.
func (v *Vector[T]) grownCap() int {
	if c := v.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// PushBack appends value, doubling the capacity when full. Amortized
// O(1).
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.Cap() {
		v.Reserve(v.grownCap())
	}
	v.items.Slots()[v.size] = value
	v.size++
}

// Insert places value at index i, shifting the elements from i one
// slot right; i == Len() appends. The sequence always relocates into a
// fresh block, of doubled capacity when the vector was full. Returns a
// pointer to the inserted element. O(Len()).
func (v *Vector[T]) Insert(i int, value T) *T {
	ut.Assert(i >= 0 && i <= v.size, "i <= size")
	newCap := v.Cap()
	if v.size == newCap {
		newCap = v.grownCap()
	}
	fresh := mem.NewBlock[T](newCap)
	old := v.items.Slots()
	dst := fresh.Slots()
	copy(dst, old[:i])
	dst[i] = value
	copy(dst[i+1:], old[i:v.size])
	v.items.Swap(&fresh)
	fresh.Release()
	v.size++
	return &v.items.Slots()[i]
}

// PopBack removes the last element, resetting its slot to the zero
// value. The caller guarantees the vector is non-empty.
func (v *Vector[T]) PopBack() {
	ut.Assert(v.size > 0, "size > 0")
	v.size--
	var zero T
	v.items.Slots()[v.size] = zero
}

// Erase removes the element at index i, shifting the elements after it
// one slot left; the erased position's successor ends up at index i.
// The caller guarantees the vector is non-empty and i < Len().
func (v *Vector[T]) Erase(i int) {
	ut.Assert(v.size > 0, "size > 0")
	ut.Assert(i >= 0 && i < v.size, "i < size")
	slots := v.items.Slots()
	copy(slots[i:], slots[i+1:v.size])
	v.size--
	var zero T
	slots[v.size] = zero
}

// Swap exchanges storage, size and capacity with other in O(1). Never
// fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
}
