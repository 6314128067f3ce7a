package util

import (
	"golang.org/x/exp/constraints"
)

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// CeilDiv rounds the quotient up. Both arguments must be positive.
func CeilDiv[A constraints.Integer](num A, div A) A {
	return (num + div - 1) / div
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
