package skeletrace

import "golang.org/x/exp/constraints"

// absInt returns the absolute value of v.
func absInt[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func minInt[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxInt[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
