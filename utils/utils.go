// Package utils implements generic helpers shared by the quadrature
// packages and their tests.
package utils

import (
	"crypto/rand"
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// RandFloat64 returns a random float between min and max.
func RandFloat64(min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.BigEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// MinSlice returns the minimum value in the slice.
// Panics on an empty slice.
func MinSlice[T constraints.Ordered](s []T) (min T) {
	min = s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return
}

// MaxSlice returns the maximum value in the slice.
// Panics on an empty slice.
func MaxSlice[T constraints.Ordered](s []T) (max T) {
	max = s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return
}
