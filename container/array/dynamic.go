// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package array provides a dynamic array that manages its own capacity
// and routines for operating on fixed capacity, static, arrays.
package array

import "iter"

type options struct {
	capacity int
}

// Option represents an option to NewDynamic.
type Option func(*options)

// WithCapacity sets the initial capacity, the default is 2.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// Dynamic is an array whose capacity doubles whenever an element is
// appended to a full array.
type Dynamic[T any] struct {
	storage []T // len(storage) is the capacity.
	length  int
}

// NewDynamic creates a new, empty, array.
func NewDynamic[T any](opts ...Option) *Dynamic[T] {
	o := options{capacity: 2}
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity <= 0 {
		o.capacity = 1
	}
	return &Dynamic[T]{
		storage: make([]T, o.capacity),
	}
}

// Len returns the number of elements in the array.
func (d *Dynamic[T]) Len() int {
	return d.length
}

// Cap returns the number of elements the array can hold before it
// must grow.
func (d *Dynamic[T]) Cap() int {
	return len(d.storage)
}

func (d *Dynamic[T]) grow(size int) {
	n := make([]T, size)
	copy(n, d.storage[:d.length])
	d.storage = n
}

// PushBack appends v, doubling the capacity if the array is full.
func (d *Dynamic[T]) PushBack(v T) {
	if d.length == len(d.storage) {
		d.grow(max(2*len(d.storage), 1))
	}
	d.storage[d.length] = v
	d.length++
}

// PopBack removes and returns the last element. The capacity is
// unchanged.
func (d *Dynamic[T]) PopBack() (T, bool) {
	var zero T
	if d.length == 0 {
		return zero, false
	}
	d.length--
	v := d.storage[d.length]
	d.storage[d.length] = zero
	return v, true
}

// Get returns the element at index i.
func (d *Dynamic[T]) Get(i int) (T, bool) {
	if i < 0 || i >= d.length {
		var zero T
		return zero, false
	}
	return d.storage[i], true
}

// Set overwrites the element at index i, it returns false if i is
// not the index of an existing element.
func (d *Dynamic[T]) Set(i int, v T) bool {
	if i < 0 || i >= d.length {
		return false
	}
	d.storage[i] = v
	return true
}

// All returns an iterator over the elements of the array.
func (d *Dynamic[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.storage[:d.length] {
			if !yield(v) {
				return
			}
		}
	}
}
