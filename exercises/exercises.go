// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package exercises contains solutions to independent array, stack and
// queue exercises. Each function stands alone.
package exercises

import (
	"cloudeng.io/dsa/container/queue"
	"cloudeng.io/dsa/container/stack"
	"github.com/samber/lo"
)

var closeToOpen = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// ValidParentheses returns true if every closing bracket in s closes the
// most recently opened, unclosed, bracket of the same type and every
// opening bracket is closed. Any rune that is not a closing bracket is
// treated as an opening bracket.
func ValidParentheses(s string) bool {
	var open stack.Stack[rune]
	for _, c := range s {
		want, closing := closeToOpen[c]
		if !closing {
			open.Push(c)
			continue
		}
		if top, ok := open.Pop(); !ok || top != want {
			return false
		}
	}
	return open.IsEmpty()
}

// RemoveDuplicates removes duplicates, in place, from nums which must be
// sorted. It returns the number of unique values which are stored, in
// order, at the start of nums. The remaining elements are unspecified.
func RemoveDuplicates[T comparable](nums []T) int {
	if len(nums) == 0 {
		return 0
	}
	i := 0
	for j := 1; j < len(nums); j++ {
		if nums[j] != nums[i] {
			i++
			nums[i] = nums[j]
		}
	}
	return i + 1
}

// RemoveDuplicatesUnsorted is like RemoveDuplicates but nums need not
// be sorted; the first occurrence of each value is retained. It uses
// O(n) additional space.
func RemoveDuplicatesUnsorted[T comparable](nums []T) int {
	return copy(nums, lo.Uniq(nums))
}

// RemoveElement removes, in place, all occurrences of val from nums. It
// returns the number of remaining elements which are stored, in their
// original order, at the start of nums.
func RemoveElement[T comparable](nums []T, val T) int {
	i := 0
	for _, v := range nums {
		if v != val {
			nums[i] = v
			i++
		}
	}
	return i
}

// Concatenate returns a new slice containing nums followed by nums.
func Concatenate[T any](nums []T) []T {
	return lo.Flatten([][]T{nums, nums})
}

// CountStudents returns the number of students unable to eat. students
// form a queue and state their preferred sandwich, sandwiches form a
// stack with sandwiches[0] at the top. The student at the front of the
// queue takes the top sandwich if it matches their preference, otherwise
// they move to the back of the queue. This continues until no student
// in the queue wants the top sandwich.
func CountStudents(students, sandwiches []int) int {
	q := queue.NewDeque[int](len(students))
	for _, s := range students {
		q.PushBack(s)
	}
	var st stack.Stack[int]
	for i := len(sandwiches) - 1; i >= 0; i-- {
		st.Push(sandwiches[i])
	}
	rejected := 0
	for q.Len() > 0 && rejected < q.Len() {
		student, _ := q.PopFront()
		if top, ok := st.Peek(); ok && top == student {
			st.Pop()
			rejected = 0
			continue
		}
		q.PushBack(student)
		rejected++
	}
	return q.Len()
}
