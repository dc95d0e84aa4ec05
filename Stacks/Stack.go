package Stacks

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

type ArrayStack[T any] interface {
	Stack[T]
	Shrink()
	Clear()
	Size() uint
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
