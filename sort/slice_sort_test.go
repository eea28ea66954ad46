package sort

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/go-test/deep"
)

func TestMergeSortStrings(t *testing.T) {
	tests := []struct {
		name     string
		unsorted []string
		expected []string
	}{
		{
			name:     "nil slice",
			unsorted: nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			unsorted: []string{},
			expected: []string{},
		},
		{
			name:     "valid slice with 1 element",
			unsorted: []string{"A"},
			expected: []string{"A"},
		},
		{
			name:     "valid slice with 2 elements",
			unsorted: []string{"B", "A"},
			expected: []string{"A", "B"},
		},
		{
			name:     "valid slice with 3 elements",
			unsorted: []string{"A", "C", "B"},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "valid slice with 4 elements",
			unsorted: []string{"D", "A", "C", "B"},
			expected: []string{"A", "B", "C", "D"},
		},
		{
			name:     "duplicates",
			unsorted: []string{"B", "A", "B", "A"},
			expected: []string{"A", "A", "B", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			MergeSort(tt.unsorted)
			if !reflect.DeepEqual(tt.unsorted, tt.expected) {
				t.Logf("Diffs: %+v", deep.Equal(tt.unsorted, tt.expected))
				t.Fatal("expected and computed result do not match")
			}
		})
	}
}

func TestMergeSortInts(t *testing.T) {
	tests := []struct {
		name     string
		unsorted []int
		expected []int
	}{
		{
			name:     "demo array",
			unsorted: []int{10, 5, 2, 3, 7, 6, 8, 9, 4, 1},
			expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:     "reversed",
			unsorted: []int{5, 4, 3, 2, 1},
			expected: []int{1, 2, 3, 4, 5},
		},
		{
			name:     "negative values",
			unsorted: []int{0, -3, 7, -3, 2},
			expected: []int{-3, -3, 0, 2, 7},
		},
		{
			name:     "already sorted",
			unsorted: []int{1, 2, 3, 4, 8, 10, 15},
			expected: []int{1, 2, 3, 4, 8, 10, 15},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			MergeSort(tt.unsorted)
			if diff := deep.Equal(tt.unsorted, tt.expected); diff != nil {
				t.Fatalf("expected and computed result do not match: %+v", diff)
			}
		})
	}
}

func TestMergeSortInPlace(t *testing.T) {
	backing := []int{9, 3, 7, 1, 5, 0}
	// Only the sub-slice is sorted, elements outside of it stay where they are.
	MergeSort(backing[1:5])
	if diff := deep.Equal(backing, []int{9, 1, 3, 5, 7, 0}); diff != nil {
		t.Fatalf("expected and computed result do not match: %+v", diff)
	}
}

type pair struct {
	key   int
	value int
}

func compareKeys(a, b pair) int {
	return a.key - b.key
}

func TestMergeSortFuncStable(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		s := make([]pair, r.Intn(100))
		for i := range s {
			// Few distinct keys, values record the input position.
			s[i] = pair{key: r.Intn(5), value: i}
		}
		MergeSortFunc(s, compareKeys)
		for i := 1; i < len(s); i++ {
			if s[i-1].key > s[i].key {
				t.Fatalf("keys out of order at %d: %+v", i, s)
			}
			if s[i-1].key == s[i].key && s[i-1].value > s[i].value {
				t.Fatalf("equal keys changed relative order at %d: %+v", i, s)
			}
		}
	}
}

func TestMergeSortProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 500; iter++ {
		s := make([]int, r.Intn(128))
		for i := range s {
			s[i] = r.Intn(50) - 25
		}
		counts := make(map[int]int)
		for _, v := range s {
			counts[v]++
		}
		MergeSort(s)
		for i := 1; i < len(s); i++ {
			if s[i-1] > s[i] {
				t.Fatalf("result is not non-decreasing at %d: %v", i, s)
			}
		}
		for _, v := range s {
			counts[v]--
		}
		for v, c := range counts {
			if c != 0 {
				t.Fatalf("result is not a permutation of the input, value %d off by %d", v, c)
			}
		}
		// Sorting a sorted slice must not change it.
		again := make([]int, len(s))
		copy(again, s)
		MergeSort(again)
		if diff := deep.Equal(s, again); diff != nil {
			t.Fatalf("sorting twice differs from sorting once: %+v", diff)
		}
	}
}
