package main

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	sortsearch "github.com/sbezverk/sortsearch"
	"github.com/sbezverk/sortsearch/search"
	"github.com/sbezverk/sortsearch/sort"
)

var (
	demoSorted   = []int{1, 2, 3, 4, 8, 10, 15}
	demoUnsorted = []int{10, 5, 2, 3, 7, 6, 8, 9, 4, 1}
)

func printSearchResult(w io.Writer, index int, found bool) {
	if found {
		fmt.Fprintf(w, "Found target at index: %d\n", index)
		return
	}
	fmt.Fprintln(w, "Target not found in the array")
}

// runDemo searches 3 iteratively and 10 recursively in a fixed sorted array, then merge sorts a fixed unsorted one.
func runDemo(w io.Writer) {
	i, ok := search.BinarySearch(demoSorted, 3)
	printSearchResult(w, i, ok)
	i, ok = search.RecursiveBinarySearch(demoSorted, 10)
	printSearchResult(w, i, ok)
	s := make([]int, len(demoUnsorted))
	copy(s, demoUnsorted)
	sort.MergeSort(s)
	fmt.Fprintln(w, s)
}

// sortAndSearch sorts s in place, prints it and, when requested, searches target with both variants.
func sortAndSearch[T sortsearch.Ordered](w io.Writer, s []T, target T, hasTarget bool) {
	sort.MergeSort(s)
	fmt.Fprintln(w, s)
	if !hasTarget {
		return
	}
	i, ok := search.BinarySearch(s, target)
	glog.V(5).Infof("iterative search for %v: index %d found %t", target, i, ok)
	printSearchResult(w, i, ok)
	i, ok = search.RecursiveBinarySearch(s, target)
	glog.V(5).Infof("recursive search for %v: index %d found %t", target, i, ok)
	printSearchResult(w, i, ok)
}

func run(w io.Writer, sequence, target string) error {
	if sequence == "" && target == "" {
		runDemo(w)
		return nil
	}
	in, err := parseInput(sequence, target)
	if err != nil {
		return err
	}
	glog.V(5).Infof("decoded sequence of kind %s", in.kind)
	switch in.kind {
	case kindString:
		sortAndSearch(w, in.strings, in.str, in.hasTarget)
	default:
		sortAndSearch(w, in.numbers, in.number, in.hasTarget)
	}

	return nil
}
