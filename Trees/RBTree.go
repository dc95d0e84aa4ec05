package Trees

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// RBTree is a binary search tree with equal values allowed. It maintains
// balance through the red-black properties:
//  1. every node is Red or Black;
//  2. the root and the sentinel are Black;
//  3. a Red node never has a Red child;
//  4. every path from a node down to a descendant sentinel passes through
//     the same number of Black nodes;
//  5. the in-order sequence of values is non-decreasing.
//
// Together these bound the height D of the tree by 2*log2(n+1), so all
// single-element receivers run in O(D)=O(log n).
// This struct holds a root and a per-tree sentinel node used as nil
// everywhere; absent children and the parent of the root are the sentinel,
// never Go nil. The sentinel's value is meaningless and its color is Black.
// None of the receivers are safe for concurrent use; the caller coordinates
// access.
type RBTree[T constraints.Ordered] struct {
	root    *Node[T]
	nilNode *Node[T] // sentinel, follows the description in Node
	sz      uint
}

// New returns an empty RBTree satisfying the above definitions for the
// sentinel and root. RBTree shouldn't be created directly using struct
// literal.
func New[T constraints.Ordered]() *RBTree[T] {
	z := new(Node[T])
	z.c = Black
	z.l, z.r, z.p = z, z, z
	return &RBTree[T]{z, z, 0}
}

// Build builds an RBTree from the given slice recursively, picking the
// middle element of each half as a subtree root. This is faster than
// repeatedly calling Insert and the result is height-balanced, but only
// the root is recolored Black: interior nodes keep the Red that new nodes
// are created with, so the result is NOT a valid red-black coloring and
// Corrupt will report it. Use BuildBalanced when later Inserts or Deletes
// will follow.
// The given slice must be sorted in ascending order (equal neighbors are
// fine); Build panics with InvalidSliceError otherwise.
// Time: O(n).
func Build[T constraints.Ordered](sli []T) *RBTree[T] {
	u := build(sli, func(byte) Color { return Red })
	u.root.c = Black
	return u
}

// BuildBalanced is Build plus a coloring pass: nodes on the bottommost
// level are Red and every other node is Black. Because the middle split
// fills every level except possibly the last, this establishes all the
// red-black properties, so the result behaves exactly like a tree built
// by repeated Insert.
// The given slice must be sorted in ascending order; BuildBalanced panics
// with InvalidSliceError otherwise.
// Time: O(n).
func BuildBalanced[T constraints.Ordered](sli []T) *RBTree[T] {
	maxd := byte(bits.Len(uint(len(sli))))
	u := build(sli, func(d byte) Color {
		if d == maxd {
			return Red
		}
		return Black
	})
	u.root.c = Black
	return u
}

func build[T constraints.Ordered](sli []T, color func(depth byte) Color) *RBTree[T] {
	for i := 1; i < len(sli); i++ {
		if sli[i] < sli[i-1] {
			panic(InvalidSliceError[T]{sli[i-1], sli[i]})
		}
	}
	u := New[T]()
	var f func([]T, *Node[T], byte) *Node[T]
	f = func(s []T, p *Node[T], d byte) *Node[T] {
		if len(s) == 0 {
			return u.nilNode
		}
		mid := len(s) >> 1
		n := &Node[T]{v: s[mid], c: color(d), p: p}
		n.l = f(s[:mid], n, d+1)
		n.r = f(s[mid+1:], n, d+1)
		return n
	}
	u.root = f(sli, u.nilNode, 1)
	u.sz = uint(len(sli))
	return u
}

// Size returns the size of the tree.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) Size() uint {
	return u.sz
}

// leftRotate moves x's right child above x, x becoming its left child and
// x's former right-left subtree becoming x's right subtree. In-order
// sequence and colors are untouched; only the three links around the pivot
// change. x.r mustn't be the sentinel.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) leftRotate(x *Node[T]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilNode {
		y.l.p = x
	}
	y.p = x.p
	if x.p == u.nilNode {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

// rightRotate is the mirror of leftRotate. y.l mustn't be the sentinel.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rightRotate(y *Node[T]) {
	x := y.l
	y.l = x.r
	if x.r != u.nilNode {
		x.r.p = y
	}
	x.p = y.p
	if y.p == u.nilNode {
		u.root = x
	} else if y == y.p.r {
		y.p.r = x
	} else {
		y.p.l = x
	}
	x.r = y
	y.p = x
}

// Insert [Tree.Insert].
// The new node starts Red so property 4 holds by construction; the fixup
// loop repairs any Red-Red edge it introduced.
// Time: O(D), at most 2 rotations.
func (u *RBTree[T]) Insert(v T) *Node[T] {
	y := u.nilNode
	for x := u.root; x != u.nilNode; {
		y = x
		if v < x.v {
			x = x.l
		} else {
			x = x.r // equal values go right
		}
	}
	z := &Node[T]{v: v, c: Red, l: u.nilNode, r: u.nilNode, p: y}
	if y == u.nilNode {
		u.root = z
	} else if v < y.v {
		y.l = z
	} else {
		y.r = z
	}
	u.insertFixup(z)
	u.sz++
	return z
}

// insertFixup restores properties 2 and 3 after linking the Red node z.
// The loop invariant is: z is Red, and the only possible violation is
// either z.p being Red or the root being Red.
func (u *RBTree[T]) insertFixup(z *Node[T]) {
	for z.p.c == Red {
		if z.p == z.p.p.l {
			if y := z.p.p.r; y.c == Red {
				// case 1: Red uncle, push the violation two levels up
				z.p.c = Black
				y.c = Black
				z.p.p.c = Red
				z = z.p.p
			} else {
				if z == z.p.r {
					// case 2: triangle, rotate into a line
					z = z.p
					u.leftRotate(z)
				}
				// case 3: line, recolor and rotate the grandparent
				z.p.c = Black
				z.p.p.c = Red
				u.rightRotate(z.p.p)
			}
		} else {
			if y := z.p.p.l; y.c == Red {
				z.p.c = Black
				y.c = Black
				z.p.p.c = Red
				z = z.p.p
			} else {
				if z == z.p.l {
					z = z.p
					u.rightRotate(z)
				}
				z.p.c = Black
				z.p.p.c = Red
				u.leftRotate(z.p.p)
			}
		}
	}
	u.root.c = Black // case 1 may have colored the root Red
}

// transplant replaces the subtree rooted at a with the subtree rooted at
// b, rewiring b.p and the child link of a.p (or root). a's own links are
// left alone; the caller finishes the surgery.
func (u *RBTree[T]) transplant(a, b *Node[T]) {
	if a.p == u.nilNode {
		u.root = b
	} else if a == a.p.l {
		a.p.l = b
	} else {
		a.p.r = b
	}
	b.p = a.p
}

// Delete [Tree.Delete].
// The node spliced out is n itself when n has at most one real child,
// otherwise n's in-order successor, which then takes over n's position,
// children, and color, so all other handles stay valid. Removing a Black
// node breaks property 4 for the displaced subtree and deleteFixup
// repairs it.
// Time: O(D), at most 3 rotations.
func (u *RBTree[T]) Delete(n *Node[T]) error {
	if !u.live(n) {
		return &InvalidHandleError{}
	}
	y := n
	yc := y.c
	var x *Node[T]
	if n.l == u.nilNode {
		x = n.r
		u.transplant(n, n.r)
	} else if n.r == u.nilNode {
		x = n.l
		u.transplant(n, n.l)
	} else {
		y = u.min(n.r)
		yc = y.c
		x = y.r
		if y.p == n {
			x.p = y // x may be the sentinel, fixup needs its parent
		} else {
			u.transplant(y, y.r)
			y.r = n.r
			y.r.p = y
		}
		u.transplant(n, y)
		y.l = n.l
		y.l.p = y
		y.c = n.c
	}
	if yc == Black {
		u.deleteFixup(x)
	}
	// the splice may have reparented the sentinel; live needs it self-parented
	u.nilNode.p = u.nilNode
	n.l, n.r, n.p = nil, nil, nil // invalidate the handle
	u.sz--
	return nil
}

// deleteFixup pushes the extra blackness carried by x up the tree until
// it lands on a Red node or the root; w is x's sibling throughout.
func (u *RBTree[T]) deleteFixup(x *Node[T]) {
	for x != u.root && x.c == Black {
		if x == x.p.l {
			w := x.p.r
			if w.c == Red {
				// case 1: Red sibling, rotate to get a Black one
				w.c = Black
				x.p.c = Red
				u.leftRotate(x.p)
				w = x.p.r
			}
			if w.l.c == Black && w.r.c == Black {
				// case 2: both nephews Black, move the deficiency up
				w.c = Red
				x = x.p
			} else {
				if w.r.c == Black {
					// case 3: far nephew Black, rotate it Red
					w.l.c = Black
					w.c = Red
					u.rightRotate(w)
					w = x.p.r
				}
				// case 4: far nephew Red, terminal
				w.c = x.p.c
				x.p.c = Black
				w.r.c = Black
				u.leftRotate(x.p)
				x = u.root
			}
		} else {
			w := x.p.l
			if w.c == Red {
				w.c = Black
				x.p.c = Red
				u.rightRotate(x.p)
				w = x.p.l
			}
			if w.r.c == Black && w.l.c == Black {
				w.c = Red
				x = x.p
			} else {
				if w.l.c == Black {
					w.r.c = Black
					w.c = Red
					u.leftRotate(w)
					w = x.p.l
				}
				w.c = x.p.c
				x.p.c = Black
				w.l.c = Black
				u.rightRotate(x.p)
				x = u.root
			}
		}
	}
	x.c = Black
}

// Remove [Tree.Remove].
// It is a wrapper for Search and Delete.
// Time: O(D)
func (u *RBTree[T]) Remove(v T) bool {
	n := u.Search(v)
	if n == nil {
		return false
	}
	return u.Delete(n) == nil
}

// Search [Tree.Search].
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Search(v T) *Node[T] {
	for cur := u.root; cur != u.nilNode; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	return u.Search(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	n := u.min(u.root)
	return n.v, n != u.nilNode
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	n := u.max(u.root)
	return n.v, n != u.nilNode
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilNode
	for cur != u.nilNode {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilNode
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilNode
	for cur != u.nilNode {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilNode
}

// Clear detaches every node in post-order, children before parents, and
// resets the tree to empty. Handles into the tree become dead: Delete on
// them reports InvalidHandleError. Detached subtrees hold no links into
// the tree so they can be collected independently.
// Time: O(n)
func (u *RBTree[T]) Clear() {
	var f func(*Node[T])
	f = func(n *Node[T]) {
		if n != u.nilNode {
			f(n.l)
			f(n.r)
			n.l, n.r, n.p = nil, nil, nil
		}
	}
	f(u.root)
	u.root = u.nilNode
	u.sz = 0
}
