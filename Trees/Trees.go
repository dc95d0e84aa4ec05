package Trees

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// Tree represents A tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined. However, depending on
// specific implementations, the value of x might have A meaning, but it's
// advised that x not to be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T constraints.Ordered] interface {
	//Insert v to the Tree, returning A handle to the new node. Equal
	//values are allowed; they are routed to the right subtree.
	Insert(v T) *Node[T]
	//Delete the node n obtained from Search or Insert. Returns
	//InvalidHandleError if n isn't A live node of this tree.
	Delete(n *Node[T]) error
	//Remove one occurrence of v from the Tree. Returning true if successful,
	//false otherwise.
	Remove(v T) bool
	//Search for v, returning A handle to A node holding it, or nil if
	//v isn't in the tree.
	Search(v T) *Node[T]
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder visits every element in ascending order together with the
	//color of its node. f returning false stops the traversal early.
	InOrder(f func(T, Color) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or color at some node violates the properties of that specific
	//implementation. This is to be distinguished from whether the tree
	//is balanced or not.
	Corrupt() bool
}

// InvalidHandleError is returned by Delete when the given node isn't
// currently part of the receiver tree: nil handles, handles already
// deleted, handles from Cleared trees, and handles of other trees.
type InvalidHandleError struct {
}

func (e *InvalidHandleError) Error() string {
	return "node handle is not a live node of this tree."
}

// InvalidSliceError is the panic value of Build and BuildBalanced when
// the given slice isn't sorted in ascending order.
type InvalidSliceError[T constraints.Ordered] struct {
	Prev, Cur T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not sorted: %v followed by %v.", e.Prev, e.Cur)
}
