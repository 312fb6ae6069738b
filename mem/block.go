package mem

// Block owns a contiguous run of element slots. Exactly one live owner
// holds a given run at a time; ownership moves wholesale via Swap.
type Block[T any] struct {
	slots []T
}

// NewBlock allocates a block of n zero-valued slots. n <= 0 yields an
// empty block with no storage.
func NewBlock[T any](n int) Block[T] {
	if n <= 0 {
		return Block[T]{}
	}
	return Block[T]{slots: make([]T, n)}
}

// Len returns the number of slots backed by storage.
func (b *Block[T]) Len() int {
	return len(b.slots)
}

// Slots returns the raw slot window. Swap and Release invalidate it.
func (b *Block[T]) Slots() []T {
	return b.slots
}

// Swap exchanges storage ownership with other in O(1).
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// Release drops the storage. The runtime reclaims the slots once no
// window over them remains.
func (b *Block[T]) Release() {
	b.slots = nil
}
