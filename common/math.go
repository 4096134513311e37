package common

func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Step scales a px/s speed by a frame delta in milliseconds, truncating
// toward zero.
func Step(speed int, deltaMS uint32) int {
	return int(float64(speed) * float64(deltaMS) / 1000)
}
