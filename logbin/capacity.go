// SPDX-License-Identifier: MIT

package logbin

import "math"

// MaxLevels is the deepest engine an int capacity can ask for:
// CapacityOf(MaxLevels) == math.MaxInt on 64-bit platforms.
const MaxLevels = 63

// CapacityOf returns the number of values an engine with the given number of
// levels absorbs before its overflow buffer is used: 2^levels - 1.
// Non-positive levels yield 0; depths beyond MaxLevels saturate at math.MaxInt.
func CapacityOf(levels int) int {
	if levels <= 0 {
		return 0
	}
	if levels >= MaxLevels {
		return math.MaxInt
	}
	return int(uint64(1)<<uint(levels) - 1)
}

// LevelsFor returns the smallest N >= 1 with CapacityOf(N) >= capacity.
//
// Errors:
//   - ErrInvalidCapacity if capacity <= 0.
//
// Complexity: O(log capacity).
func LevelsFor(capacity int) (int, error) {
	if capacity <= 0 {
		return 0, ErrInvalidCapacity
	}
	n := 1
	for CapacityOf(n) < capacity {
		n++
	}
	return n, nil
}
