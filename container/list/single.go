// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "iter"

// Single provides a singly linked list with a dummy head and a tail
// pointer so that appending is O(1). Indexed operations are O(n).
type Single[T any] struct {
	sentinel singleItem[T] // sentinel to avoid having to handle head/tail corner cases.
	tail     *singleItem[T]
	len      int
}

type singleItem[T any] struct {
	next *singleItem[T]
	T    T
}

// SingleID is a handle to an element in a Single list.
type SingleID[T any] *singleItem[T]

func NewSingle[T any]() *Single[T] {
	sl := &Single[T]{}
	sl.Reset()
	return sl
}

func (sl *Single[T]) Reset() {
	sl.len = 0
	sl.sentinel.next = &sl.sentinel
	sl.tail = &sl.sentinel
}

func (sl *Single[T]) lazyInit() {
	if sl.tail == nil {
		sl.Reset()
	}
}

func (sl *Single[T]) Len() int {
	return sl.len
}

// Head returns the first element, or the zero value if the list is empty.
func (sl *Single[T]) Head() T {
	if sl.len == 0 {
		var zero T
		return zero
	}
	return sl.sentinel.next.T
}

func (sl *Single[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if sl.len == 0 {
			return
		}
		for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
			if !yield(n.T) {
				return
			}
		}
	}
}

func (sl *Single[T]) insertAfterItem(val T, it *singleItem[T]) *singleItem[T] {
	n := &singleItem[T]{T: val}
	n.next = it.next
	it.next = n
	if sl.tail == it {
		sl.tail = n
	}
	sl.len++
	return n
}

func (sl *Single[T]) Append(val T) SingleID[T] {
	sl.lazyInit()
	return sl.insertAfterItem(val, sl.tail)
}

func (sl *Single[T]) Prepend(val T) SingleID[T] {
	sl.lazyInit()
	return sl.insertAfterItem(val, &sl.sentinel)
}

func (sl *Single[T]) removeItem(prev, it *singleItem[T]) {
	sl.len--
	prev.next = it.next
	if sl.tail == it {
		sl.tail = prev
	}
	*it = singleItem[T]{}
}

// itemBefore returns the item preceding position i, which is the
// sentinel for i == 0. It returns nil if i is out of range.
func (sl *Single[T]) itemBefore(i int) *singleItem[T] {
	if i < 0 || i > sl.len {
		return nil
	}
	prev := &sl.sentinel
	for ; i > 0; i-- {
		prev = prev.next
	}
	return prev
}

func (sl *Single[T]) findPrev(it *singleItem[T]) *singleItem[T] {
	if sl.len == 0 {
		return nil
	}
	prev := &sl.sentinel
	for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
		if n == it {
			return prev
		}
		prev = n
	}
	return nil
}

// RemoveItem removes the element referred to by id, it returns false
// if id is not in the list.
func (sl *Single[T]) RemoveItem(id SingleID[T]) bool {
	if prev := sl.findPrev(id); prev != nil {
		sl.removeItem(prev, id)
		return true
	}
	return false
}

// Remove removes the first element for which cmp returns true.
func (sl *Single[T]) Remove(val T, cmp func(a, b T) bool) bool {
	if sl.len == 0 {
		return false
	}
	prev := &sl.sentinel
	for n := sl.sentinel.next; n != &sl.sentinel; n = n.next {
		if cmp(n.T, val) {
			sl.removeItem(prev, n)
			return true
		}
		prev = n
	}
	return false
}

// Get returns the element at index i.
func (sl *Single[T]) Get(i int) (T, bool) {
	if i < 0 || i >= sl.len {
		var zero T
		return zero, false
	}
	return sl.itemBefore(i).next.T, true
}

// InsertAt inserts val so that it becomes the element at index i.
// An index equal to Len appends; larger indices are rejected and
// false is returned.
func (sl *Single[T]) InsertAt(i int, val T) bool {
	sl.lazyInit()
	prev := sl.itemBefore(i)
	if prev == nil {
		return false
	}
	sl.insertAfterItem(val, prev)
	return true
}

// RemoveAt removes the element at index i, it returns false if i
// is out of range.
func (sl *Single[T]) RemoveAt(i int) bool {
	if i < 0 || i >= sl.len {
		return false
	}
	prev := sl.itemBefore(i)
	sl.removeItem(prev, prev.next)
	return true
}

// Reverse reverses the order of the elements in place.
func (sl *Single[T]) Reverse() {
	if sl.len < 2 {
		return
	}
	first := sl.sentinel.next
	prev, cur := &sl.sentinel, sl.sentinel.next
	for cur != &sl.sentinel {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	sl.sentinel.next = prev
	sl.tail = first
}
