package util

import (
	"golang.org/x/exp/constraints"
)

// InRange reports whether i is a valid index into a slice of length n.
func InRange[A constraints.Integer](i A, n int) bool {
	return i >= 0 && int64(i) < int64(n)
}

func RemoveAt[A any](s []A, i int) []A {
	res := make([]A, 0, len(s))
	for j, v := range s {
		if j != i {
			res = append(res, v)
		}
	}
	return res
}

func Append[A any](s []A, v A) []A {
	res := make([]A, 0, len(s)+1)
	res = append(res, s...)
	return append(res, v)
}

func Ptr[A any](v A) *A {
	return &v
}

// CountBy tallies values by key, preserving first-seen order of keys.
func CountBy[A any, K comparable](s []A, key func(A) K) ([]K, map[K]int) {
	var order []K
	counts := make(map[K]int)
	for _, v := range s {
		k := key(v)
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}
	return order, counts
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
