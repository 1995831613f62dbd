package aoc

import "golang.org/x/exp/constraints"

// MustGet returns v, panicking if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Number is any integer or float type.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum adds up nums. It is 0 for no nums.
func Sum[T Number](nums ...T) T {
	var total T
	for _, n := range nums {
		total += n
	}
	return total
}
