// SPDX-License-Identifier: MIT

package fraction

import "math"

// mulInt64 returns a*b and false when the product overflows int64.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}

	return c, true
}

// addInt64 returns a+b and false when the sum overflows int64.
func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}

	return c, true
}

// subInt64 returns a-b and false when the difference overflows int64.
func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (a >= 0 && b < 0 && c < 0) || (a < 0 && b > 0 && c >= 0) {
		return 0, false
	}

	return c, true
}

// absUint64 returns |v| as uint64; valid for math.MinInt64 as well.
func absUint64(v int64) uint64 {
	if v == math.MinInt64 {
		return uint64(math.MaxInt64) + 1
	}
	if v < 0 {
		return uint64(-v)
	}

	return uint64(v)
}

// gcd returns the greatest common divisor of |a| and |b| (gcd(0,0) == 0).
func gcd(a, b int64) uint64 {
	x, y := absUint64(a), absUint64(b)
	for y != 0 {
		x, y = y, x%y
	}

	return x
}
