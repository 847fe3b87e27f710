// Package safe provides integer arithmetic helpers with overflow checks.
package safe

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// Sub returns a-b, failing instead of wrapping when b > a.
func Sub[T ~uint32 | ~uint64](a, b T) (T, error) {
	if b > a {
		return 0, fmt.Errorf("value %d - %d underflows", a, b)
	}
	return a - b, nil
}

// Mul returns a*b, failing instead of wrapping on overflow.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("value %d * %d overflows uint64", a, b)
	}
	return lo, nil
}

// Int64 converts an unsigned value to int64 with range validation.
func Int64[T ~uint | ~uint32 | ~uint64](v T) (int64, error) {
	if uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Duration returns n*d, failing when the product does not fit a time.Duration.
func Duration(n uint64, d time.Duration) (time.Duration, error) {
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", d)
	}
	product, err := Mul(n, uint64(d))
	if err != nil {
		return 0, err
	}
	ns, err := Int64(product)
	if err != nil {
		return 0, err
	}
	return time.Duration(ns), nil
}
