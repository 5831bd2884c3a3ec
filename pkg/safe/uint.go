// Package safe provides numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
	"strconv"
)

// Integer is the set of integer types accepted by the conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, failing on negative values or overflow.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// ParseUint32 parses a decimal string into uint32.
func ParseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q as uint32: %w", s, err)
	}
	return uint32(v), nil
}
