// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package queue provides FIFO queues: a singly linked queue and a
// double ended queue backed by a growable circular buffer.
package queue

import "iter"

type linkedItem[T any] struct {
	next *linkedItem[T]
	T    T
}

// Linked is a FIFO queue implemented as a singly linked list with
// pointers to both ends. The zero value is an empty queue.
type Linked[T any] struct {
	left  *linkedItem[T] // front, next to be dequeued.
	right *linkedItem[T] // back, most recently enqueued.
	len   int
}

// Len returns the number of elements in the queue.
func (q *Linked[T]) Len() int {
	return q.len
}

// Enqueue adds v to the back of the queue.
func (q *Linked[T]) Enqueue(v T) {
	n := &linkedItem[T]{T: v}
	if q.right != nil {
		q.right.next = n
	} else {
		q.left = n
	}
	q.right = n
	q.len++
}

// Dequeue removes and returns the element at the front of the queue.
func (q *Linked[T]) Dequeue() (T, bool) {
	if q.left == nil {
		var zero T
		return zero, false
	}
	n := q.left
	q.left = n.next
	if q.left == nil {
		q.right = nil
	}
	q.len--
	return n.T, true
}

// Peek returns the element at the front of the queue without removing it.
func (q *Linked[T]) Peek() (T, bool) {
	if q.left == nil {
		var zero T
		return zero, false
	}
	return q.left.T, true
}

// Forward returns an iterator over the queue from front to back.
func (q *Linked[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.left; n != nil; n = n.next {
			if !yield(n.T) {
				return
			}
		}
	}
}
