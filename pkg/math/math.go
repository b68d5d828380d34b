package math

// Maximum calculates the maximum value among two integers
func Maximum(a int, b int) int {
	if a > b {
		return a
	}
	return b
}

// Minimum calculates the minimum value among two integers
func Minimum(a int, b int) int {
	if a > b {
		return b
	}
	return a
}

// Clamp bounds value to the inclusive range [lower, upper]
func Clamp(value, lower, upper int) int {
	return Minimum(Maximum(value, lower), upper)
}

// Adjustment applies a relative step of percentage percent to value.
// The step is computed in floating point and the result truncated toward zero.
func Adjustment(value int, percentage int) int {
	return int(float64(value) + float64(percentage)*float64(value)/100)
}
