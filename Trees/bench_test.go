package Trees

import (
	"math/rand"
	"testing"
)

const size = 1 << 15

func BenchmarkRBTree_Insert(b *testing.B) {
	for range b.N {
		tree := New[int]()
		for _, j := range rand.Perm(size) {
			tree.Insert(j)
		}
	}
}

func BenchmarkRBTree_Remove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tree := New[int]()
		for _, j := range rand.Perm(size) {
			tree.Insert(j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			tree.Remove(j)
		}
	}
}

func BenchmarkRBTree_Has(b *testing.B) {
	tree := New[int]()
	for _, j := range rand.Perm(size) {
		tree.Insert(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sideEff = tree.Has(i & (size - 1))
	}
}

var sideEff bool

func BenchmarkBuildBalanced(b *testing.B) {
	a := make([]int, size)
	for i := range a {
		a[i] = i
	}
	b.ResetTimer()
	for range b.N {
		tree := BuildBalanced(a)
		sideEff = tree.Size() == size
	}
}

func BenchmarkRBTree_All(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree := New[int]()
		for _, j := range rand.Perm(size / 2) {
			tree.Insert(j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				tree.Remove(j)
			}
		}
		for _, j := range rand.Perm(size / 2) {
			tree.Insert(j + size)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				tree.Insert(j)
			}
		}
	}
}
