package Stacks

import (
	"errors"
	"testing"
)

func TestArrayStack_LIFO(t *testing.T) {
	s := MakeArrayStack[int](2)
	if !s.Empty() {
		t.Error("new stack isn't empty")
	}
	for i := range 100 {
		s.Push(i)
	}
	if s.Size() != 100 {
		t.Errorf("size is %d, want 100", s.Size())
	}
	if s.Peek() != 99 {
		t.Errorf("peek is %d, want 99", s.Peek())
	}
	for i := 99; i >= 0; i-- {
		v, e := s.Pop()
		if e != nil || v != i {
			t.Fatalf("pop gave (%d, %v), want (%d, nil)", v, e, i)
		}
	}
	if !s.Empty() {
		t.Error("drained stack isn't empty")
	}
}

func TestArrayStack_Underflow(t *testing.T) {
	s := MakeArrayStack[int](0)
	var ese *EmptyStackError
	if _, e := s.Pop(); !errors.As(e, &ese) {
		t.Errorf("pop on empty gave %v, want EmptyStackError", e)
	}
	if s.Peek() != 0 {
		t.Error("peek on empty isn't the zero value")
	}
}

func TestArrayStack_ClearShrink(t *testing.T) {
	s := MakeArrayStack[int](0)
	for i := range 10 {
		s.Push(i)
	}
	s.Shrink()
	if s.Size() != 10 || s.Peek() != 9 {
		t.Error("shrink lost content")
	}
	s.Clear()
	if !s.Empty() {
		t.Error("cleared stack isn't empty")
	}
	s.Push(1)
	if v, _ := s.Pop(); v != 1 {
		t.Error("stack unusable after Clear")
	}
}
