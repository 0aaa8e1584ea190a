// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue_test

import (
	"slices"
	"testing"

	"cloudeng.io/dsa/container/queue"
)

func TestLinked(t *testing.T) {
	var q queue.Linked[int]
	if _, ok := q.Dequeue(); ok {
		t.Errorf("Dequeue on an empty queue succeeded")
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("Peek on an empty queue succeeded")
	}
	for i := range 3 {
		q.Enqueue(i)
	}
	if got, want := slices.Collect(q.Forward()), []int{0, 1, 2}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if v, ok := q.Peek(); !ok || v != 0 {
		t.Errorf("got %v, %v, want 0, true", v, ok)
	}
	for i := range 3 {
		v, ok := q.Dequeue()
		if !ok || v != i {
			t.Errorf("got %v, %v, want %v, true", v, ok, i)
		}
	}
	if got, want := q.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The queue is reusable once drained.
	q.Enqueue(10)
	q.Enqueue(11)
	if v, _ := q.Dequeue(); v != 10 {
		t.Errorf("got %v, want 10", v)
	}
	q.Enqueue(12)
	if got, want := slices.Collect(q.Forward()), []int{11, 12}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := q.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
