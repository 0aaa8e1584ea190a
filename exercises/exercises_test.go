// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package exercises_test

import (
	"fmt"
	"slices"
	"testing"

	"cloudeng.io/dsa/exercises"
)

func TestValidParentheses(t *testing.T) {
	for _, tc := range []struct {
		input string
		valid bool
	}{
		{"", true},
		{"()", true},
		{"()[]{}", true},
		{"(]", false},
		{"([])", true},
		{"([)]", false},
		{"(", false},
		{")", false},
		{"{[()()]}", true},
		{"]]", false},
	} {
		if got, want := exercises.ValidParentheses(tc.input), tc.valid; got != want {
			t.Errorf("%q: got %v, want %v", tc.input, got, want)
		}
	}
}

func TestRemoveDuplicates(t *testing.T) {
	for i, tc := range []struct {
		input  []int
		unique []int
	}{
		{[]int{1, 1, 2}, []int{1, 2}},
		{[]int{0, 0, 1, 1, 1, 2, 2, 3, 3, 4}, []int{0, 1, 2, 3, 4}},
		{[]int{7}, []int{7}},
		{nil, nil},
	} {
		nums := slices.Clone(tc.input)
		n := exercises.RemoveDuplicates(nums)
		if got, want := nums[:n], tc.unique; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		nums = slices.Clone(tc.input)
		n = exercises.RemoveDuplicatesUnsorted(nums)
		if got, want := nums[:n], tc.unique; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
	nums := []string{"b", "a", "b", "c", "a"}
	n := exercises.RemoveDuplicatesUnsorted(nums)
	if got, want := nums[:n], []string{"b", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRemoveElement(t *testing.T) {
	for i, tc := range []struct {
		input  []int
		val    int
		output []int
	}{
		{[]int{3, 2, 2, 3}, 3, []int{2, 2}},
		{[]int{0, 1, 2, 2, 3, 0, 4, 2}, 2, []int{0, 1, 3, 0, 4}},
		{[]int{1, 1}, 1, []int{}},
		{[]int{}, 1, []int{}},
	} {
		nums := slices.Clone(tc.input)
		n := exercises.RemoveElement(nums, tc.val)
		if got, want := nums[:n], tc.output; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestConcatenate(t *testing.T) {
	in := []int{1, 3, 2, 1}
	out := exercises.Concatenate(in)
	if got, want := out, []int{1, 3, 2, 1, 1, 3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	out[0] = 100
	if in[0] != 1 {
		t.Errorf("input was modified")
	}
	if got := exercises.Concatenate([]int{}); len(got) != 0 {
		t.Errorf("got %v, want []", got)
	}
}

func TestCountStudents(t *testing.T) {
	for i, tc := range []struct {
		students, sandwiches []int
		hungry               int
	}{
		{[]int{1, 1, 0, 0}, []int{0, 1, 0, 1}, 0},
		{[]int{1, 1, 1, 0, 0, 1}, []int{1, 0, 0, 0, 1, 1}, 3},
		{[]int{0}, []int{1}, 1},
		{nil, nil, 0},
	} {
		if got, want := exercises.CountStudents(tc.students, tc.sandwiches), tc.hungry; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func ExampleValidParentheses() {
	fmt.Println(exercises.ValidParentheses("([])"))
	fmt.Println(exercises.ValidParentheses("([)]"))
	// Output:
	// true
	// false
}
