// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

import (
	"math/rand/v2"
	"runtime"
	"slices"
	"testing"
)

func invariants[T comparable](t *testing.T, d *Deque[T], head, size int, contents []T) {
	_, _, line, _ := runtime.Caller(1)
	if got, want := d.head, head; got != want {
		t.Errorf("line %v: head: got %v, want %v", line, got, want)
	}
	if got, want := d.Cap(), size; got != want {
		t.Errorf("line %v: cap: got %v, want %v", line, got, want)
	}
	if got, want := d.Len(), len(contents); got != want {
		t.Errorf("line %v: len: got %v, want %v", line, got, want)
	}
	if got, want := slices.Collect(d.All()), contents; !slices.Equal(got, want) {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
}

func TestDequeWrap(t *testing.T) {
	d := NewDeque[int](4)
	invariants(t, d, 0, 4, nil)
	d.PushBack(1)
	d.PushBack(2)
	d.PushBack(3)
	invariants(t, d, 0, 4, []int{1, 2, 3})
	d.PopFront()
	d.PopFront()
	invariants(t, d, 2, 4, []int{3})
	d.PushBack(4)
	d.PushBack(5) // wraps around to index 0.
	invariants(t, d, 2, 4, []int{3, 4, 5})
	d.PushFront(2)
	invariants(t, d, 1, 4, []int{2, 3, 4, 5})
	d.PushFront(1) // full, grows and unwraps.
	invariants(t, d, 7, 8, []int{1, 2, 3, 4, 5})
	if v, ok := d.PopBack(); !ok || v != 5 {
		t.Errorf("got %v, %v, want 5, true", v, ok)
	}
	d.Compact()
	invariants(t, d, 0, 4, []int{1, 2, 3, 4})
	for range 4 {
		d.PopBack()
	}
	d.Compact()
	invariants(t, d, 0, 1, nil)
}

func TestDequeEmpty(t *testing.T) {
	var d Deque[string]
	if _, ok := d.PopFront(); ok {
		t.Errorf("PopFront succeeded")
	}
	if _, ok := d.PopBack(); ok {
		t.Errorf("PopBack succeeded")
	}
	if _, ok := d.Front(); ok {
		t.Errorf("Front succeeded")
	}
	if _, ok := d.Back(); ok {
		t.Errorf("Back succeeded")
	}
	d.PushFront("a")
	invariants(t, &d, 0, 1, []string{"a"})
	d.PushBack("b")
	invariants(t, &d, 0, 2, []string{"a", "b"})
	if v, _ := d.Front(); v != "a" {
		t.Errorf("got %v, want a", v)
	}
	if v, _ := d.Back(); v != "b" {
		t.Errorf("got %v, want b", v)
	}
}

func TestDequeRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	d := NewDeque[int](3)
	var model []int
	for i := range 5000 {
		switch rnd.IntN(4) {
		case 0:
			d.PushBack(i)
			model = append(model, i)
		case 1:
			d.PushFront(i)
			model = slices.Insert(model, 0, i)
		case 2:
			v, ok := d.PopFront()
			if ok != (len(model) > 0) {
				t.Fatalf("%v: PopFront: got %v, want %v", i, ok, len(model) > 0)
			}
			if ok {
				if v != model[0] {
					t.Fatalf("%v: got %v, want %v", i, v, model[0])
				}
				model = model[1:]
			}
		case 3:
			v, ok := d.PopBack()
			if ok != (len(model) > 0) {
				t.Fatalf("%v: PopBack: got %v, want %v", i, ok, len(model) > 0)
			}
			if ok {
				if v != model[len(model)-1] {
					t.Fatalf("%v: got %v, want %v", i, v, model[len(model)-1])
				}
				model = model[:len(model)-1]
			}
		}
		if i%100 == 0 {
			d.Compact()
		}
		if got, want := slices.Collect(d.All()), model; !slices.Equal(got, want) {
			t.Fatalf("%v: got %v, want %v", i, got, want)
		}
	}
}
