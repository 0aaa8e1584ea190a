// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package stack provides LIFO stacks.
package stack

import (
	"cmp"

	"cloudeng.io/dsa/container/queue"
)

// Stack is a LIFO stack stored in a slice. The zero value is an
// empty stack.
type Stack[T any] struct {
	items []T
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push pushes v onto the top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top of the stack.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]
	return v, true
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

type minEntry[T cmp.Ordered] struct {
	val, min T
}

// MinStack is a stack that also returns its minimum element in O(1).
// Each entry records the minimum of itself and all of the entries
// below it.
type MinStack[T cmp.Ordered] struct {
	entries Stack[minEntry[T]]
}

// Len returns the number of elements in the stack.
func (s *MinStack[T]) Len() int {
	return s.entries.Len()
}

// Push pushes v onto the top of the stack.
func (s *MinStack[T]) Push(v T) {
	m := v
	if top, ok := s.entries.Peek(); ok {
		m = min(v, top.min)
	}
	s.entries.Push(minEntry[T]{val: v, min: m})
}

// Pop removes and returns the top of the stack.
func (s *MinStack[T]) Pop() (T, bool) {
	e, ok := s.entries.Pop()
	return e.val, ok
}

// Top returns the top of the stack.
func (s *MinStack[T]) Top() (T, bool) {
	e, ok := s.entries.Peek()
	return e.val, ok
}

// Min returns the minimum element in the stack.
func (s *MinStack[T]) Min() (T, bool) {
	e, ok := s.entries.Peek()
	return e.min, ok
}

// QueueStack is a stack implemented using a single FIFO queue. Push is
// O(1), Pop and Top are O(n) since they rotate all but the last element
// to the back of the queue.
type QueueStack[T any] struct {
	q queue.Linked[T]
}

// Len returns the number of elements in the stack.
func (s *QueueStack[T]) Len() int {
	return s.q.Len()
}

// IsEmpty returns true if the stack has no elements.
func (s *QueueStack[T]) IsEmpty() bool {
	return s.q.Len() == 0
}

// Push pushes v onto the top of the stack in O(1).
func (s *QueueStack[T]) Push(v T) {
	s.q.Enqueue(v)
}

// rotate moves all but the most recently pushed element to the back
// of the queue, leaving it at the front.
func (s *QueueStack[T]) rotate() {
	for i := 0; i < s.q.Len()-1; i++ {
		v, _ := s.q.Dequeue()
		s.q.Enqueue(v)
	}
}

// Pop removes and returns the top of the stack.
func (s *QueueStack[T]) Pop() (T, bool) {
	s.rotate()
	return s.q.Dequeue()
}

// Top returns the top of the stack without removing it.
func (s *QueueStack[T]) Top() (T, bool) {
	s.rotate()
	v, ok := s.q.Dequeue()
	if ok {
		s.q.Enqueue(v)
	}
	return v, ok
}
