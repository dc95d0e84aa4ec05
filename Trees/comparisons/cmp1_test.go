package comparisons

import (
	"math/rand"
	"testing"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/tidegrove/go-collections/Trees"
)

// Ordered competitors: gods' red-black tree, GoLLRB's left-leaning
// red-black tree, and google's B-tree, on the same insert-then-query
// workload.
const (
	elementNum0 = 1 << 15
	degree      = 32
)

var rg = *rand.New(rand.NewSource(0))

func workload() []int {
	a := rg.Perm(elementNum0)
	return a
}

func Benchmark1RBTree(b *testing.B) {
	a := workload()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		M := Trees.New[int]()
		for _, v := range a {
			M.Insert(v)
		}
		for _, v := range a {
			if !M.Has(v) {
				b.Error("key doesn't exist")
			}
		}
	}
}

func Benchmark1Gods(b *testing.B) {
	a := workload()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		M := rbt.NewWithIntComparator()
		for _, v := range a {
			M.Put(v, v)
		}
		for _, v := range a {
			if _, found := M.Get(v); !found {
				b.Error("key doesn't exist")
			}
		}
	}
}

func Benchmark1LLRB(b *testing.B) {
	a := workload()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		M := llrb.New()
		for _, v := range a {
			M.ReplaceOrInsert(llrb.Int(v))
		}
		for _, v := range a {
			if !M.Has(llrb.Int(v)) {
				b.Error("key doesn't exist")
			}
		}
	}
}

func Benchmark1BTree(b *testing.B) {
	a := workload()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		M := btree.New(degree)
		for _, v := range a {
			M.ReplaceOrInsert(btree.Int(v))
		}
		for _, v := range a {
			if !M.Has(btree.Int(v)) {
				b.Error("key doesn't exist")
			}
		}
	}
}

// Correctness cross-check: the in-order sequence must agree with gods'
// red-black tree under the same random mutations.
func Test1AgainstGods(t *testing.T) {
	M := Trees.New[int]()
	R := rbt.NewWithIntComparator()
	for range 20000 {
		v := rg.Intn(8192)
		if rg.Intn(3) == 0 {
			// both have set semantics only on the reference side, so
			// remove until absent to keep multisets equal
			for M.Remove(v) {
			}
			R.Remove(v)
		} else if _, in := R.Get(v); !in {
			M.Insert(v)
			R.Put(v, v)
		}
	}
	if M.Corrupt() {
		t.Fatal("tree is corrupt")
	}
	keys := R.Keys()
	i := 0
	M.InOrder(func(v int, _ Trees.Color) bool {
		if i >= len(keys) || keys[i].(int) != v {
			t.Fatalf("inorder diverges at %d: %v", i, v)
		}
		i++
		return true
	})
	if i != len(keys) {
		t.Fatalf("tree has %d keys, reference has %d", i, len(keys))
	}
}
