package vec_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wilhasse/simple-vector-go/vec"
)

// nextCap mirrors the append growth policy.
func nextCap(c int) int {
	if c == 0 {
		return 1
	}
	return 2 * c
}

func TestVectorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("appends keep size exact and capacity doubling", prop.ForAll(
		func(xs []int) bool {
			v := vec.New[int]()
			wantCap := 0
			for n, x := range xs {
				if v.Len() == v.Cap() {
					wantCap = nextCap(v.Cap())
				}
				v.PushBack(x)
				if v.Len() != n+1 || v.Cap() != wantCap || v.Cap() < v.Len() {
					return false
				}
			}
			for i, x := range xs {
				if v.Get(i) != x {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("insert then erase at the same index restores the sequence", prop.ForAll(
		func(xs []int, seed int) bool {
			v := vec.Of(xs...)
			i := seed % (len(xs) + 1)
			v.Insert(i, 12345)
			v.Erase(i)
			return vec.Equal(v, vec.Of(xs...))
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 1<<30),
	))

	properties.Property("mutating a clone never touches the original", prop.ForAll(
		func(xs []int, y int) bool {
			orig := vec.Of(xs...)
			cp := orig.Clone()
			cp.PushBack(y)
			for i := 0; i < cp.Len()-1; i++ {
				cp.Set(i, y)
			}
			return vec.Equal(orig, vec.Of(xs...))
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))

	properties.Property("reserve at or below capacity changes nothing", prop.ForAll(
		func(xs []int, seed int) bool {
			v := vec.Of(xs...)
			before := v.Cap()
			v.Reserve(seed % (before + 1))
			return v.Cap() == before && vec.Equal(v, vec.Of(xs...))
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 1<<30),
	))

	properties.TestingRun(t)
}
