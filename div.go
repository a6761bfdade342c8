package bitint

// QuoRem returns the quotient and remainder of u divided by by. QuoRem
// panics with ErrDivZero if by is zero.
//
// Binary long division: bring the dividend's bits down one at a time from
// the most significant end, doubling the running remainder, and subtract
// the divisor whenever it fits, recording a quotient bit. The remainder
// stays below 2*by before each correction and below by after it, so a
// single conditional subtract per bit is enough.
//
// Quotient and remainder come out of the same pass; Quo and Rem are views
// over this computation, not separate fast paths.
func (u Int) QuoRem(by Int) (q, r Int) {
	if by.IsZero() {
		panic(ErrDivZero)
	}

	qbits := make([]bool, len(u.bits))
	for i := len(u.bits) - 1; i >= 0; i-- {
		r = r.Double()
		if u.bits[i] {
			r = r.Inc()
		}
		if r.GreaterOrEqualTo(by) {
			r = r.Sub(by)
			qbits[i] = true
		}
	}

	return Int{bits: qbits}.norm(), r
}

// Quo returns the quotient of u divided by by, discarding the remainder.
// Quo panics with ErrDivZero if by is zero.
func (u Int) Quo(by Int) (q Int) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u divided by by. Rem panics with ErrDivZero
// if by is zero.
func (u Int) Rem(by Int) (r Int) {
	_, r = u.QuoRem(by)
	return r
}
