package bitint

// Difference subtracts the smaller of a and b from the larger. Unlike Sub
// it never panics.
func Difference(a, b Int) Int {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

// Larger returns the larger of a and b, or a if they are equal.
func Larger(a, b Int) Int {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b, or a if they are equal.
func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
