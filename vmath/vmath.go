package vmath

// --- Integer arithmetic ---

// Abs returns absolute value
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// StepToward moves from by at most step units toward target
// Does nothing when already within deadZone of target
func StepToward(from, target, step, deadZone int) int {
	diff := target - from
	if Abs(diff) <= deadZone {
		return from
	}
	if Abs(diff) < step {
		return target
	}
	return from + Sign(diff)*step
}

// --- Randomness ---

// Mix scrambles a counter into a pseudo-random value using one xorshift round
// Pure function: equal inputs always give equal outputs
func Mix(seed uint32) uint32 {
	x := uint64(seed) + 0x9E3779B97F4A7C15
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	return uint32(x ^ (x >> 32))
}

// Intn maps a seed into [0, n)
func Intn(seed uint32, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Mix(seed) % uint32(n))
}
