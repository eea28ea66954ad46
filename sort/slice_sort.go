package sort

import (
	sortsearch "github.com/sbezverk/sortsearch"
)

// merge combines the sorted halves s[:mid] and s[mid:] in place, temp must be of the same length as s.
// On equal elements the left half wins, which keeps the sort stable.
func merge[T any](s []T, mid int, temp []T, cmp func(a, b T) int) {
	copy(temp, s)
	left := temp[:mid]
	right := temp[mid:]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}

func sort[T any](s []T, temp []T, cmp func(a, b T) int) {
	if len(s) <= 1 {
		return
	}
	mid := len(s) / 2
	sort(s[:mid], temp[:mid], cmp)
	sort(s[mid:], temp[mid:], cmp)
	if cmp(s[mid-1], s[mid]) <= 0 {
		return
	}
	merge(s, mid, temp[:len(s)], cmp)
}

// MergeSort sorts s in place in ascending order. The sort is stable.
func MergeSort[T sortsearch.Ordered](s []T) {
	MergeSortFunc(s, sortsearch.Compare[T])
}

// MergeSortFunc sorts s in place in ascending order as determined by cmp, which must
// return a negative number when a < b, a positive number when a > b and 0 when they are equal.
// Elements comparing equal keep their original order.
func MergeSortFunc[T any](s []T, cmp func(a, b T) int) {
	if len(s) <= 1 {
		return
	}
	// A single scratch buffer serves all levels of recursion.
	temp := make([]T, len(s))
	sort(s, temp, cmp)
}
