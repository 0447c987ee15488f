package masterclock

// gcd32 returns the greatest common divisor of a and b using the Euclidean
// algorithm. Both operands must be non-negative, with at least one strictly
// positive.
func gcd32(a, b uint32) uint32 {
	for b > 0 {
		a, b = b, a%b
	}
	return a
}

// gcd64 is the 64-bit widening of gcd32, used once frequencies are combined
// into a threshold or period that may no longer fit in 32 bits.
func gcd64(a, b uint64) uint64 {
	for b > 0 {
		a, b = b, a%b
	}
	return a
}

// lcm32 returns the least common multiple of a and b. The division by the
// gcd happens before the multiplication to reduce the risk of intermediate
// overflow.
func lcm32(a, b uint32) uint32 {
	return a * (b / gcd32(a, b))
}

// lcm64 is the 64-bit widening of lcm32.
func lcm64(a, b uint64) uint64 {
	return a * (b / gcd64(a, b))
}
