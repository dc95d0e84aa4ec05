package Trees

// Corrupt [Tree.Corrupt]. Recursive.
// Checks every red-black property plus link consistency: the sentinel and
// root are Black, no Red node has a Red child, every node's subtrees agree
// on their Black count, children point back at their parent, and the
// in-order values are non-decreasing. Intended for tests and debugging,
// not for hot paths; a tree only mutated through the exported receivers
// never becomes corrupt. Trees made by Build are reported corrupt by
// design; see Build.
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	if u.nilNode.c != Black || u.root.c != Black {
		return true
	}
	_, ok := u.audit(u.root)
	return !ok
}

// audit returns the Black count of every path from n to a descendant
// sentinel and whether the subtree at n upholds the properties.
func (u *RBTree[T]) audit(n *Node[T]) (uint, bool) {
	if n == u.nilNode {
		return 1, true
	}
	if n.c == Red && (n.l.c == Red || n.r.c == Red) {
		return 0, false
	}
	if n.l != u.nilNode && (n.l.p != n || n.v < n.l.v) {
		return 0, false
	}
	if n.r != u.nilNode && (n.r.p != n || n.r.v < n.v) {
		return 0, false
	}
	lb, lok := u.audit(n.l)
	rb, rok := u.audit(n.r)
	if !lok || !rok || lb != rb {
		return 0, false
	}
	if n.c == Black {
		lb++
	}
	return lb, true
}
