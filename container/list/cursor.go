// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// Cursor is a position within a Double list that can be moved forwards
// and backwards but never onto either sentinel. The cursor always refers
// to a real element: it is created with an initial value and the list
// it owns is only modified by VisitAndTruncate, which never removes the
// element being referred to.
//
// The underlying list is private to the Cursor so that no handles to
// its elements can outlive a truncation. The zero value is a cursor
// positioned at a single element holding the zero value of T.
type Cursor[T any] struct {
	list    Double[T]
	current *doubleItem[T]
	pos     int // zero-based index of current within list.
}

// NewCursor returns a Cursor positioned at a single element holding
// initial.
func NewCursor[T any](initial T) *Cursor[T] {
	c := &Cursor[T]{}
	c.init(initial)
	return c
}

func (c *Cursor[T]) init(initial T) {
	c.list.Reset()
	c.current = c.list.InsertEnd(initial)
	c.pos = 0
}

func (c *Cursor[T]) lazyInit() {
	if c.current == nil {
		var zero T
		c.init(zero)
	}
}

// Value returns the value at the current position.
func (c *Cursor[T]) Value() T {
	c.lazyInit()
	return c.current.T
}

// Pos returns the zero-based index of the current position.
func (c *Cursor[T]) Pos() int {
	return c.pos
}

// Len returns the number of elements reachable by the cursor.
func (c *Cursor[T]) Len() int {
	c.lazyInit()
	return c.list.Len()
}

// VisitAndTruncate inserts val immediately after the current position,
// discards every element that followed the current position and then
// moves to the new element. The discarded elements are released in
// O(1), they are simply unlinked and left for the garbage collector.
func (c *Cursor[T]) VisitAndTruncate(val T) {
	c.lazyInit()
	c.pos++
	c.current = c.list.truncateAfter(val, c.current, c.pos+1)
}

// CanRetreat returns true if there is an element before the current
// position.
func (c *Cursor[T]) CanRetreat() bool {
	c.lazyInit()
	return c.current.prev != &c.list.head
}

// CanAdvance returns true if there is an element after the current
// position.
func (c *Cursor[T]) CanAdvance() bool {
	c.lazyInit()
	return c.current.next != &c.list.tail
}

// Retreat moves the cursor backwards by up to steps elements, stopping
// at the first element, and returns the value at the new position.
// A steps value of zero or less leaves the cursor unchanged.
func (c *Cursor[T]) Retreat(steps int) T {
	c.lazyInit()
	for ; steps > 0 && c.CanRetreat(); steps-- {
		c.current = c.current.prev
		c.pos--
	}
	return c.current.T
}

// Advance moves the cursor forwards by up to steps elements, stopping
// at the last element, and returns the value at the new position.
// A steps value of zero or less leaves the cursor unchanged.
func (c *Cursor[T]) Advance(steps int) T {
	c.lazyInit()
	for ; steps > 0 && c.CanAdvance(); steps-- {
		c.current = c.current.next
		c.pos++
	}
	return c.current.T
}

// Forward returns an iterator over every element, from first to last,
// regardless of the current position.
func (c *Cursor[T]) Forward() iter.Seq[T] {
	c.lazyInit()
	return c.list.Forward()
}

// Backward returns an iterator over every element, from last to first.
func (c *Cursor[T]) Backward() iter.Seq[T] {
	c.lazyInit()
	return c.list.Backward()
}

// Validate checks the invariants of the underlying list and that the
// cursor refers to one of its elements at the recorded position.
func (c *Cursor[T]) Validate() error {
	c.lazyInit()
	if err := c.list.Validate(); err != nil {
		return err
	}
	i := 0
	for n := c.list.head.next; n != &c.list.tail; n = n.next {
		if n == c.current {
			if i != c.pos {
				return fmt.Errorf("cursor is at position %v, but recorded as %v", i, c.pos)
			}
			return nil
		}
		i++
	}
	return errors.New("cursor does not refer to an element of its list")
}
