package sortsearch

import "golang.org/x/exp/constraints"

// Ordered is satisfied by any type supporting the < <= >= > operators.
// Floating point NaN values break the total order and must not be used.
type Ordered interface {
	constraints.Ordered
}

// Compare returns -1 if a is less than b, 1 if a is greater than b and 0 otherwise.
func Compare[T Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
