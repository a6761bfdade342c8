package bitint

// Add returns u + n. Ripple-carry from the least significant position: each
// result bit is the three-way parity of the two operand bits and the carry,
// and the next carry is their majority. The shorter operand reads as zero
// above its top bit, and the final carry lands as one extra bit.
func (u Int) Add(n Int) (v Int) {
	a, b := u.bits, n.bits
	if len(a) < len(b) {
		a, b = b, a
	}

	out := make([]bool, len(a)+1)
	carry := false
	for i := 0; i < len(a); i++ {
		av, bv := a[i], i < len(b) && b[i]
		out[i] = (av != bv) != carry
		carry = (av && bv) || (av && carry) || (bv && carry)
	}
	out[len(a)] = carry

	return Int{bits: out}.norm()
}

// Inc returns u + 1.
func (u Int) Inc() (v Int) { return u.Add(intOne) }

// Sub returns u - n for n <= u. Sub panics with ErrNegative when n > u; use
// Difference() if the ordering of the operands is not known in advance.
//
// Subtraction runs entirely on top of Add. With k the bit width of u, the
// bitwise complement of n padded out to k bits satisfies
//
//	u + ^n + 1 == u - n + 2^k
//
// so the carry bit at position k is guaranteed, and dropping it leaves the
// difference. Dropping the carry can expose high zero bits, hence the final
// normalize.
func (u Int) Sub(n Int) (v Int) {
	if n.GreaterThan(u) {
		panic(ErrNegative)
	}

	k := len(u.bits)
	comp := make([]bool, k)
	for i := 0; i < k; i++ {
		comp[i] = !(i < len(n.bits) && n.bits[i])
	}

	sum := u.Add(Int{bits: comp}).Add(intOne)
	return Int{bits: sum.bits[:k]}.norm()
}
