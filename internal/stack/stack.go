// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package stack implements a simple generic LIFO stack.
package stack

import "slices"

// A Stack is a LIFO sequence of values. A zero Stack is empty and ready for
// use.
type Stack[T any] struct {
	items []T
}

// NewWithCapacity reduces allocations when approximate stack size is known.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds elements in order with the last element at the top.
func (s *Stack[T]) Push(items ...T) { s.items = append(s.items, items...) }

// Pop removes and returns the top element, reporting false if s is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items = s.items[:last]
	return item, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// PeekRef allows modifying the top element in place.
// It returns nil if s is empty.
func (s *Stack[T]) PeekRef() *T {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

// IsEmpty reports whether s has no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// ToSlice orders from bottom to top of the stack.
func (s *Stack[T]) ToSlice() []T { return slices.Clone(s.items) }
