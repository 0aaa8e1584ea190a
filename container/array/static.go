// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package array

// The functions below treat arr as a static array whose capacity is
// len(arr) and whose first length elements are in use. Each returns the
// new length and leaves arr unchanged if the operation is not possible.

// InsertEnd stores v after the last element in use.
func InsertEnd[T any](arr []T, v T, length int) int {
	if length < 0 || length >= len(arr) {
		return length
	}
	arr[length] = v
	return length + 1
}

// RemoveEnd clears the last element in use.
func RemoveEnd[T any](arr []T, length int) int {
	if length <= 0 || length > len(arr) {
		return length
	}
	var zero T
	arr[length-1] = zero
	return length - 1
}

// InsertMiddle stores v at index i, shifting the elements at i and
// beyond one position to the right. i may equal length.
func InsertMiddle[T any](arr []T, i int, v T, length int) int {
	if length < 0 || length >= len(arr) || i < 0 || i > length {
		return length
	}
	for j := length - 1; j >= i; j-- {
		arr[j+1] = arr[j]
	}
	arr[i] = v
	return length + 1
}

// RemoveMiddle removes the element at index i, shifting the elements
// after it one position to the left.
func RemoveMiddle[T any](arr []T, i int, length int) int {
	if length <= 0 || length > len(arr) || i < 0 || i >= length {
		return length
	}
	for j := i + 1; j < length; j++ {
		arr[j-1] = arr[j]
	}
	var zero T
	arr[length-1] = zero
	return length - 1
}
