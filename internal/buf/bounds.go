package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false when
// the result would overflow int or either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// RegionBytes returns the number of bytes needed to hold count elements of
// elemSize bytes each, or an error describing why the region cannot exist.
//
//	n, err := buf.RegionBytes(count, int(unsafe.Sizeof(v)))
//	if err != nil {
//	    return nil, fmt.Errorf("alloc: %w", err)
//	}
func RegionBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// GrowCap returns the capacity a buffer of capacity cur should grow to so that
// it can hold need elements, doubling from a minimum of one slot. When doubling
// would overflow int, need itself is returned.
func GrowCap(cur, need int) int {
	if need <= cur {
		return cur
	}
	next := max(cur, 1)
	for next < need {
		doubled, ok := MulOverflowSafe(next, 2)
		if !ok {
			return need
		}
		next = doubled
	}
	return next
}
