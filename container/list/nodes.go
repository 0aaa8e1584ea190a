// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "cmp"

// Node is a bare singly linked node for algorithms that operate directly
// on chains of nodes rather than on a list type. A nil *Node is an empty
// chain.
type Node[T any] struct {
	Val  T
	Next *Node[T]
}

// FromSlice returns a chain of nodes holding vals in order.
func FromSlice[T any](vals []T) *Node[T] {
	dummy := &Node[T]{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &Node[T]{Val: v}
		tail = tail.Next
	}
	return dummy.Next
}

// ToSlice returns the values held by the chain starting at head.
func ToSlice[T any](head *Node[T]) []T {
	var out []T
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}
	return out
}

// ReverseNodes reverses the chain starting at head in place and returns
// the new head.
func ReverseNodes[T any](head *Node[T]) *Node[T] {
	var prev *Node[T]
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev, cur = cur, next
	}
	return prev
}

// MergeSorted merges two chains, each sorted in ascending order, into a
// single sorted chain by relinking their nodes. The merge is stable:
// for equal values nodes from a precede those from b.
func MergeSorted[T cmp.Ordered](a, b *Node[T]) *Node[T] {
	dummy := &Node[T]{}
	tail := dummy
	for a != nil && b != nil {
		if a.Val <= b.Val {
			tail.Next, a = a, a.Next
		} else {
			tail.Next, b = b, b.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}
	return dummy.Next
}
