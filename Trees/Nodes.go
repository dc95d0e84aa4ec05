package Trees

import "golang.org/x/exp/constraints"

// Color of a node in the RBTree.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// A node in the RBTree. Nodes are owned by their tree; handles obtained
// from Search, Insert, or the traversal receivers are non-owning and stay
// valid until the node is deleted or the tree is Cleared.
// The zero value is meaningless.
type Node[T constraints.Ordered] struct {
	v       T
	c       Color
	l, r, p *Node[T]
}

// Value held at this node.
func (n *Node[T]) Value() T {
	return n.v
}

// Color of this node.
func (n *Node[T]) Color() Color {
	return n.c
}

// min returns the leftmost node of the subtree rooting at n, or the
// sentinel if n is the sentinel.
func (u *RBTree[T]) min(n *Node[T]) *Node[T] {
	for n.l != u.nilNode {
		n = n.l
	}
	return n
}

// max returns the rightmost node of the subtree rooting at n, or the
// sentinel if n is the sentinel.
func (u *RBTree[T]) max(n *Node[T]) *Node[T] {
	for n.r != u.nilNode {
		n = n.r
	}
	return n
}

// live reports whether n is currently a node of u. It walks parent
// references upward: every live node reaches u.root, while deleted or
// foreign handles end in nil or in a self-parented sentinel.
func (u *RBTree[T]) live(n *Node[T]) bool {
	for ; n != nil && n != u.nilNode; n = n.p {
		if n == u.root {
			return true
		}
		if n.p == n {
			return false
		}
	}
	return false
}
