package Stacks

type arrStack[T any] struct {
	content []T
}

func MakeArrayStack[T any](initCap uint) ArrayStack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (this arrStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this arrStack[T]) Size() uint {
	return uint(len(this.content))
}

func (this *arrStack[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}

func (this *arrStack[T]) Shrink() {
	nc := make([]T, len(this.content))
	copy(nc, this.content)
	this.content = nc
}

func (this *arrStack[T]) Push(item T) {
	this.content = append(this.content, item)
}

func (this *arrStack[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyStackError{}
	} else {
		t := this.content[len(this.content)-1]
		this.content[len(this.content)-1] = *new(T)
		this.content = this.content[:len(this.content)-1]
		return t, nil
	}
}

func (this arrStack[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[len(this.content)-1]
	}
}
