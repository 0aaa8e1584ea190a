// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

import "iter"

// Deque provides a double ended queue using a circular buffer that
// doubles in size as needed. The zero value is an empty deque.
type Deque[T any] struct {
	storage []T
	head    int // index of the first element.
	used    int
}

// NewDeque creates a new deque with the specified initial capacity.
func NewDeque[T any](size int) *Deque[T] {
	if size <= 0 {
		size = 1
	}
	return &Deque[T]{
		storage: make([]T, size),
	}
}

// Len returns the current number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.used
}

// Cap returns the current capacity of the deque.
func (d *Deque[T]) Cap() int {
	return len(d.storage)
}

func (d *Deque[T]) index(i int) int {
	return (d.head + i) % len(d.storage)
}

// copyTo copies the elements, in order, to the start of n.
func (d *Deque[T]) copyTo(n []T) {
	if d.head+d.used <= len(d.storage) {
		copy(n, d.storage[d.head:d.head+d.used])
		return
	}
	c := copy(n, d.storage[d.head:])
	copy(n[c:], d.storage[:d.used-c])
}

func (d *Deque[T]) grow() {
	n := make([]T, max(2*len(d.storage), 1))
	d.copyTo(n)
	d.head = 0
	d.storage = n
}

// PushBack appends v to the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	if d.used == len(d.storage) {
		d.grow()
	}
	d.storage[d.index(d.used)] = v
	d.used++
}

// PushFront prepends v to the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	if d.used == len(d.storage) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.storage)) % len(d.storage)
	d.storage[d.head] = v
	d.used++
}

// PopFront removes and returns the element at the front of the deque.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.used == 0 {
		return zero, false
	}
	v := d.storage[d.head]
	d.storage[d.head] = zero
	d.head = d.index(1)
	d.used--
	return v, true
}

// PopBack removes and returns the element at the back of the deque.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.used == 0 {
		return zero, false
	}
	i := d.index(d.used - 1)
	v := d.storage[i]
	d.storage[i] = zero
	d.used--
	return v, true
}

// Front returns the element at the front of the deque.
func (d *Deque[T]) Front() (T, bool) {
	if d.used == 0 {
		var zero T
		return zero, false
	}
	return d.storage[d.head], true
}

// Back returns the element at the back of the deque.
func (d *Deque[T]) Back() (T, bool) {
	if d.used == 0 {
		var zero T
		return zero, false
	}
	return d.storage[d.index(d.used-1)], true
}

// All returns an iterator over the deque from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range d.used {
			if !yield(d.storage[d.index(i)]) {
				return
			}
		}
	}
}

// Compact reduces the storage used by the deque to the minimum
// necessary to store its current contents.
func (d *Deque[T]) Compact() {
	if d.used == 0 {
		d.storage = make([]T, 1)
		d.head = 0
		return
	}
	n := make([]T, d.used)
	d.copyTo(n)
	d.head = 0
	d.storage = n
}
