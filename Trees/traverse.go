package Trees

import (
	"github.com/tidegrove/go-collections/Queues"
	"github.com/tidegrove/go-collections/Stacks"
)

// InOrder [Tree.InOrder]. Recursive.
// Visits left subtree, node, right subtree, so values arrive in ascending
// order; this is the correctness oracle for the whole structure.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) InOrder(f func(T, Color) bool) {
	var g func(*Node[T]) bool
	g = func(n *Node[T]) bool {
		return n == u.nilNode || g(n.l) && f(n.v, n.c) && g(n.r)
	}
	g(u.root)
}

// PreOrder visits node, left subtree, right subtree. Recursive.
// f returning false stops the traversal early.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) PreOrder(f func(T, Color) bool) {
	var g func(*Node[T]) bool
	g = func(n *Node[T]) bool {
		return n == u.nilNode || f(n.v, n.c) && g(n.l) && g(n.r)
	}
	g(u.root)
}

// PostOrder visits left subtree, right subtree, node. Recursive.
// f returning false stops the traversal early.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) PostOrder(f func(T, Color) bool) {
	var g func(*Node[T]) bool
	g = func(n *Node[T]) bool {
		return n == u.nilNode || g(n.l) && g(n.r) && f(n.v, n.c)
	}
	g(u.root)
}

// DFSIterative visits nodes in pre-order without recursion, keeping the
// pending right subtrees on a Stacks.Stack. The right child is pushed
// before the left so the left is popped first. When f returns false the
// walk halts and the node it halted on is returned; a completed walk
// returns nil.
// Equivalent to DFSRecursive; the stack never holds more than D+1 nodes.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) DFSIterative(f func(*Node[T]) bool) *Node[T] {
	if u.root == u.nilNode {
		return nil
	}
	st := Stacks.MakeArrayStack[*Node[T]](u.Height() + 1)
	st.Push(u.root)
	for !st.Empty() {
		n, _ := st.Pop()
		if !f(n) {
			return n
		}
		if n.r != u.nilNode {
			st.Push(n.r)
		}
		if n.l != u.nilNode {
			st.Push(n.l)
		}
	}
	return nil
}

// DFSRecursive is DFSIterative implemented through recursion; same visit
// order, same halting contract.
// Time: O(n); Space: O(D)
func (u *RBTree[T]) DFSRecursive(f func(*Node[T]) bool) *Node[T] {
	var g func(*Node[T]) *Node[T]
	g = func(n *Node[T]) *Node[T] {
		if n == u.nilNode {
			return nil
		}
		if !f(n) {
			return n
		}
		if m := g(n.l); m != nil {
			return m
		}
		return g(n.r)
	}
	return g(u.root)
}

// BFS visits nodes level by level, keeping the frontier on a Queues.Queue.
// Same halting contract as DFSIterative. The queue never holds more than
// the widest level of the tree.
// Time: O(n); Space: O(Width)
func (u *RBTree[T]) BFS(f func(*Node[T]) bool) *Node[T] {
	if u.root == u.nilNode {
		return nil
	}
	q := Queues.MakeArrayQueue[*Node[T]](8)
	q.Push(u.root)
	for !q.Empty() {
		n, _ := q.Pop()
		if !f(n) {
			return n
		}
		if n.l != u.nilNode {
			q.Push(n.l)
		}
		if n.r != u.nilNode {
			q.Push(n.r)
		}
	}
	return nil
}

// FindDFSIterative returns the first node holding v in iterative pre-order,
// or nil. Visitation order is search order, not shortest path; use Search
// for the O(D) lookup.
func (u *RBTree[T]) FindDFSIterative(v T) *Node[T] {
	return u.DFSIterative(func(n *Node[T]) bool { return n.v != v })
}

// FindDFSRecursive returns the first node holding v in recursive pre-order,
// or nil.
func (u *RBTree[T]) FindDFSRecursive(v T) *Node[T] {
	return u.DFSRecursive(func(n *Node[T]) bool { return n.v != v })
}

// FindBFS returns the first node holding v in level order, or nil.
func (u *RBTree[T]) FindBFS(v T) *Node[T] {
	return u.BFS(func(n *Node[T]) bool { return n.v != v })
}

// Height of the tree: the number of nodes on the longest root-sentinel
// path, 0 for an empty tree. Recursive.
// Time: O(n)
func (u *RBTree[T]) Height() uint {
	var g func(*Node[T]) uint
	g = func(n *Node[T]) uint {
		if n == u.nilNode {
			return 0
		}
		return 1 + max(g(n.l), g(n.r))
	}
	return g(u.root)
}

// BlackHeight counts the Black nodes on the leftmost path from the root
// down to (and including) a sentinel. Property 4 guarantees every other
// root-sentinel path counts the same, so a single path suffices.
// Time: O(D)
func (u *RBTree[T]) BlackHeight() uint {
	var h uint = 1 // the sentinel itself
	for n := u.root; n != u.nilNode; n = n.l {
		if n.c == Black {
			h++
		}
	}
	return h
}

// Count the nodes by recursive summation. Always equals Size; Size is the
// O(1) bookkept counter, Count recomputes from the structure.
// Time: O(n)
func (u *RBTree[T]) Count() uint {
	var g func(*Node[T]) uint
	g = func(n *Node[T]) uint {
		if n == u.nilNode {
			return 0
		}
		return 1 + g(n.l) + g(n.r)
	}
	return g(u.root)
}

// Width is the maximum number of nodes on any single level, counting each
// level separately.
// Time: O(n*D)
func (u *RBTree[T]) Width() uint {
	var level func(*Node[T], uint) uint
	level = func(n *Node[T], d uint) uint {
		if n == u.nilNode {
			return 0
		}
		if d == 1 {
			return 1
		}
		return level(n.l, d-1) + level(n.r, d-1)
	}
	var w uint
	for d, h := uint(1), u.Height(); d <= h; d++ {
		w = max(w, level(u.root, d))
	}
	return w
}

// LCA returns the deepest node whose value lies between a and b inclusive
// with both lookup paths passing through it: descend left while both
// values are smaller than the current node, right while both are greater.
// This exploits the search-tree ordering and is only meaningful here; the
// result is a genuine lowest common ancestor when both values are present.
// Returns nil for an empty tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) LCA(a, b T) *Node[T] {
	if b < a {
		a, b = b, a
	}
	for n := u.root; n != u.nilNode; {
		if b < n.v {
			n = n.l
		} else if a > n.v {
			n = n.r
		} else {
			return n
		}
	}
	return nil
}
