package utils

import "math"

// CalculateOffset converts a 1-based page into a row offset. Pages below 1
// are treated as the first page; an offset past math.MaxInt saturates so it
// still lands beyond the last row.
func CalculateOffset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
