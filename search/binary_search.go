// Package search implements binary search over slices sorted in ascending order.
// Neither variant checks that the slice is sorted, on unsorted input the result is undefined.
package search

import (
	sortsearch "github.com/sbezverk/sortsearch"
)

// BinarySearch looks for target in the ascending slice s. It returns the index of
// an element equal to target and true, or -1 and false when there is no such element.
// If target appears multiple times in s, no guarantees are made about which of
// those indices is returned.
func BinarySearch[T sortsearch.Ordered](s []T, target T) (int, bool) {
	return BinarySearchFunc(s, target, sortsearch.Compare[T])
}

// BinarySearchFunc works like BinarySearch but uses cmp to compare elements, s must be
// sorted in ascending order as defined by cmp.
func BinarySearchFunc[T any](s []T, target T, cmp func(a, b T) int) (int, bool) {
	if len(s) == 0 {
		return -1, false
	}
	low := 0
	high := len(s) - 1
	for low <= high {
		mid := low + (high-low)/2
		switch c := cmp(s[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1, false
}

// RecursiveBinarySearch is the recursive form of BinarySearch, for any input both
// return the same result.
func RecursiveBinarySearch[T sortsearch.Ordered](s []T, target T) (int, bool) {
	return RecursiveBinarySearchFunc(s, target, sortsearch.Compare[T])
}

// RecursiveBinarySearchFunc is the recursive form of BinarySearchFunc.
func RecursiveBinarySearchFunc[T any](s []T, target T, cmp func(a, b T) int) (int, bool) {
	if len(s) == 0 {
		return -1, false
	}

	return search(s, target, 0, len(s)-1, cmp)
}

// search looks for target within s[low:high+1].
func search[T any](s []T, target T, low, high int, cmp func(a, b T) int) (int, bool) {
	if low > high {
		return -1, false
	}
	mid := low + (high-low)/2
	c := cmp(s[mid], target)
	if c == 0 {
		return mid, true
	}
	if c < 0 {
		return search(s, target, mid+1, high, cmp)
	}

	return search(s, target, low, mid-1, cmp)
}
