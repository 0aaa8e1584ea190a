// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

var (
	// ErrEmptyList is returned when removing from a list with no elements.
	ErrEmptyList = errors.New("list is empty")
	// ErrInvalidHandle is returned for a handle that does not refer to
	// an element currently stored in the list.
	ErrInvalidHandle = errors.New("invalid list handle")
	// ErrConcurrentModification is returned by a checked iterator when the
	// list was structurally modified after the iteration started.
	ErrConcurrentModification = errors.New("list modified during iteration")
)

// Double provides a doubly linked list bounded by two permanent sentinel
// nodes, head and tail. Insertion and removal at either end, and removal
// of an element given its handle, are O(1) and use the same code path
// regardless of whether the list is empty.
//
// The zero value is an empty list ready to use. A Double must not be
// copied after first use and is not safe for concurrent use.
type Double[T any] struct {
	head  doubleItem[T] // sentinel, head.next is the first element.
	tail  doubleItem[T] // sentinel, tail.prev is the last element.
	len   int
	gen   uint64 // incremented on every structural change.
	epoch uint64 // incremented by Reset.
}

type doubleItem[T any] struct {
	next     *doubleItem[T] // owning link.
	prev     *doubleItem[T] // back-reference only.
	list     *Double[T]     // nil once the item has been removed.
	epoch    uint64
	sentinel bool
	T        T
}

// DoubleID is a handle to an element in a Double list. It remains valid
// until the element is removed.
type DoubleID[T any] *doubleItem[T]

// NewDouble returns a new, empty, list.
func NewDouble[T any]() *Double[T] {
	dl := &Double[T]{}
	dl.Reset()
	return dl
}

// Reset discards all of the elements in the list. Handles obtained
// before the call are no longer valid.
func (dl *Double[T]) Reset() {
	dl.len = 0
	dl.gen++
	dl.epoch++
	dl.head = doubleItem[T]{sentinel: true}
	dl.tail = doubleItem[T]{sentinel: true}
	dl.head.next = &dl.tail
	dl.tail.prev = &dl.head
}

func (dl *Double[T]) lazyInit() {
	if dl.head.next == nil {
		dl.Reset()
	}
}

// Len returns the number of elements in the list.
func (dl *Double[T]) Len() int {
	return dl.len
}

// IsEmpty returns true if the list has no elements.
func (dl *Double[T]) IsEmpty() bool {
	return dl.head.next == nil || dl.head.next == &dl.tail
}

// Front returns the first element in the list, false is returned
// if the list is empty.
func (dl *Double[T]) Front() (T, bool) {
	if dl.IsEmpty() {
		var zero T
		return zero, false
	}
	return dl.head.next.T, true
}

// Back returns the last element in the list, false is returned
// if the list is empty.
func (dl *Double[T]) Back() (T, bool) {
	if dl.IsEmpty() {
		var zero T
		return zero, false
	}
	return dl.tail.prev.T, true
}

// Forward returns an iterator over the elements of the list from first
// to last. The list must not be modified during the iteration, the
// behaviour of the iterator is undefined if it is. Use ForwardChecked
// to detect such modifications.
func (dl *Double[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if dl.IsEmpty() {
			return
		}
		for n := dl.head.next; n != &dl.tail; n = n.next {
			if !yield(n.T) {
				return
			}
		}
	}
}

// Backward is like Forward, but iterates from last to first.
func (dl *Double[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if dl.IsEmpty() {
			return
		}
		for n := dl.tail.prev; n != &dl.head; n = n.prev {
			if !yield(n.T) {
				return
			}
		}
	}
}

// All returns an iterator over the index and value of every element,
// from first to last.
func (dl *Double[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range dl.Forward() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// ForwardChecked is like Forward except that if the list is structurally
// modified (an insert, removal or reset) while the iteration is in progress
// the iterator yields ErrConcurrentModification once and then stops.
func (dl *Double[T]) ForwardChecked() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if dl.IsEmpty() {
			return
		}
		gen := dl.gen
		for n := dl.head.next; n != &dl.tail; n = n.next {
			if !yield(n.T, nil) {
				return
			}
			if dl.gen != gen {
				var zero T
				yield(zero, ErrConcurrentModification)
				return
			}
		}
	}
}

// BackwardChecked is like ForwardChecked, but iterates from last to first.
func (dl *Double[T]) BackwardChecked() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if dl.IsEmpty() {
			return
		}
		gen := dl.gen
		for n := dl.tail.prev; n != &dl.head; n = n.prev {
			if !yield(n.T, nil) {
				return
			}
			if dl.gen != gen {
				var zero T
				yield(zero, ErrConcurrentModification)
				return
			}
		}
	}
}

// insertAfterItem links a new item holding val immediately after it.
// it may be the head sentinel or any element.
func (dl *Double[T]) insertAfterItem(val T, it *doubleItem[T]) *doubleItem[T] {
	n := &doubleItem[T]{T: val, list: dl, epoch: dl.epoch}
	n.prev = it
	n.next = it.next
	n.prev.next = n
	n.next.prev = n
	dl.len++
	dl.gen++
	return n
}

// InsertFront inserts val at the front of the list.
func (dl *Double[T]) InsertFront(val T) DoubleID[T] {
	dl.lazyInit()
	return dl.insertAfterItem(val, &dl.head)
}

// InsertEnd inserts val at the end of the list.
func (dl *Double[T]) InsertEnd(val T) DoubleID[T] {
	dl.lazyInit()
	return dl.insertAfterItem(val, dl.tail.prev)
}

// removeItem splices it out of the list and clears it so that any
// outstanding handle to it is recognised as stale.
func (dl *Double[T]) removeItem(it *doubleItem[T]) T {
	val := it.T
	it.prev.next = it.next
	it.next.prev = it.prev
	*it = doubleItem[T]{}
	dl.len--
	dl.gen++
	return val
}

// RemoveFront removes and returns the first element in the list.
func (dl *Double[T]) RemoveFront() (T, error) {
	if dl.IsEmpty() {
		var zero T
		return zero, ErrEmptyList
	}
	return dl.removeItem(dl.head.next), nil
}

// RemoveEnd removes and returns the last element in the list.
func (dl *Double[T]) RemoveEnd() (T, error) {
	if dl.IsEmpty() {
		var zero T
		return zero, ErrEmptyList
	}
	return dl.removeItem(dl.tail.prev), nil
}

func (dl *Double[T]) valid(id DoubleID[T]) bool {
	it := (*doubleItem[T])(id)
	return it != nil && !it.sentinel && it.list == dl && it.epoch == dl.epoch
}

// RemoveNode removes the element referred to by id and returns its value.
// ErrInvalidHandle is returned if id does not refer to an element of
// this list, for example because it has already been removed.
func (dl *Double[T]) RemoveNode(id DoubleID[T]) (T, error) {
	if !dl.valid(id) {
		var zero T
		return zero, ErrInvalidHandle
	}
	return dl.removeItem(id), nil
}

// Value returns the value of the element referred to by id.
func (dl *Double[T]) Value(id DoubleID[T]) (T, error) {
	if !dl.valid(id) {
		var zero T
		return zero, ErrInvalidHandle
	}
	return (*doubleItem[T])(id).T, nil
}

// Remove removes the first element, starting from the front, for which
// cmp returns true. It returns true if an element was removed.
func (dl *Double[T]) Remove(val T, cmp func(a, b T) bool) bool {
	if dl.IsEmpty() {
		return false
	}
	for n := dl.head.next; n != &dl.tail; n = n.next {
		if cmp(n.T, val) {
			dl.removeItem(n)
			return true
		}
	}
	return false
}

// RemoveReverse is like Remove but starts from the end of the list.
func (dl *Double[T]) RemoveReverse(val T, cmp func(a, b T) bool) bool {
	if dl.IsEmpty() {
		return false
	}
	for n := dl.tail.prev; n != &dl.head; n = n.prev {
		if cmp(n.T, val) {
			dl.removeItem(n)
			return true
		}
	}
	return false
}

// truncateAfter links a new item holding val directly after it and
// before the tail sentinel, discarding every item that followed it.
// The discarded items are unreachable once this returns and are left to
// the garbage collector. Only the first of them is cleared, the rest are
// not visited and still appear to belong to dl, so the caller must
// ensure that no handles to them exist. size is the number of elements
// in the list after the call and must be computed by the caller.
func (dl *Double[T]) truncateAfter(val T, it *doubleItem[T], size int) *doubleItem[T] {
	if first := it.next; first != &dl.tail {
		first.list = nil
		first.prev = nil
	}
	n := &doubleItem[T]{T: val, list: dl, epoch: dl.epoch}
	n.prev = it
	n.next = &dl.tail
	it.next = n
	dl.tail.prev = n
	dl.len = size
	dl.gen++
	return n
}

// Validate checks the structural invariants of the list: every element
// is linked consistently in both directions, the sentinels bound the
// list and are never linked as elements, and the element count matches
// Len. All of the violations found are returned.
func (dl *Double[T]) Validate() error {
	if dl.head.next == nil && dl.tail.prev == nil {
		if dl.len != 0 {
			return fmt.Errorf("uninitialized list has length %v", dl.len)
		}
		return nil
	}
	errs := &errors.M{}
	if !dl.head.sentinel || !dl.tail.sentinel {
		errs.Append(errors.New("sentinel nodes are not marked as such"))
	}
	if dl.head.prev != nil || dl.tail.next != nil {
		errs.Append(errors.New("sentinel nodes link outside of the list"))
	}
	if (dl.head.next == &dl.tail) != (dl.len == 0) {
		errs.Append(fmt.Errorf("head.next == tail is %v, but length is %v", dl.head.next == &dl.tail, dl.len))
	}
	errs.Append(dl.walk("forward", &dl.head, &dl.tail, func(n *doubleItem[T]) *doubleItem[T] { return n.next }))
	errs.Append(dl.walk("backward", &dl.tail, &dl.head, func(n *doubleItem[T]) *doubleItem[T] { return n.prev }))
	return errs.Err()
}

func (dl *Double[T]) walk(dir string, from, to *doubleItem[T], next func(*doubleItem[T]) *doubleItem[T]) error {
	errs := &errors.M{}
	count := 0
	for n := next(from); n != to; n = next(n) {
		switch {
		case n == nil:
			errs.Append(fmt.Errorf("%v: nil link after %v elements", dir, count))
			return errs.Err()
		case n.sentinel:
			errs.Append(fmt.Errorf("%v: sentinel found at position %v", dir, count))
			return errs.Err()
		case count > dl.len:
			errs.Append(fmt.Errorf("%v: more than %v elements, the list may contain a cycle", dir, dl.len))
			return errs.Err()
		}
		if n.list != dl {
			errs.Append(fmt.Errorf("%v: element %v belongs to a different list", dir, count))
		}
		if n.prev == nil || n.prev.next != n {
			errs.Append(fmt.Errorf("%v: element %v: prev.next does not refer back to it", dir, count))
		}
		if n.next == nil || n.next.prev != n {
			errs.Append(fmt.Errorf("%v: element %v: next.prev does not refer back to it", dir, count))
		}
		count++
	}
	if count != dl.len {
		errs.Append(fmt.Errorf("%v: found %v elements, length is %v", dir, count, dl.len))
	}
	return errs.Err()
}
