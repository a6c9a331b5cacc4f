package rubytime

import "math"

// addInt64 attempts to add v1 to v2 but reports if the operation would underflow or overflow int64.
func addInt64(v1, v2 int64) (sum int64, underflows, overflows bool) {
	// math.MaxInt64-v2 and math.MinInt64-v2 are safe to compute without
	// overflow here because v2's sign is checked first: the first is only
	// evaluated for v2 > 0, bounding it to [0, MaxInt64-1], and the second
	// only for v2 < 0, bounding it to [MinInt64+1, 0].
	if v2 > 0 && v1 > math.MaxInt64-v2 {
		return 0, false, true
	}
	if v2 < 0 && v1 < math.MinInt64-v2 {
		return 0, true, false
	}
	return v1 + v2, false, false
}
