package bitint

// Mul returns u * n, splitting divide-and-conquer style: each operand
// divides at m = w/2 (w being the wider operand's bit length) into its
// least significant m bits and everything above them, and three half-size
// products recombine as
//
//	u*n == p1<<2m + (p3-p1-p2)<<m + p2
//
// with p1 the product of the high halves, p2 of the low halves, and p3 the
// product of the half sums. Both operands use the same split rule; with
// that the middle term is never negative, so ErrNegative escaping from the
// recombination means the split is broken, and it is left to surface.
//
// Recursion depth is logarithmic in the wider operand's bit length.
func (u Int) Mul(n Int) (v Int) {
	w := len(u.bits)
	if len(n.bits) > w {
		w = len(n.bits)
	}
	if w <= 1 {
		return u.mulShiftAdd(n)
	}

	m := w / 2
	ul, uh := u.splitAt(m)
	nl, nh := n.splitAt(m)

	p1 := uh.Mul(nh)
	p2 := ul.Mul(nl)
	p3 := uh.Add(ul).Mul(nh.Add(nl))
	mid := p3.Sub(p1).Sub(p2)

	return p1.shl(2 * m).Add(mid.shl(m)).Add(p2)
}

// splitAt divides u into its least significant m bits and the bits from
// position m up. The low half can carry high zero bits after the cut and is
// normalized; the high half keeps u's top bit and needs no work.
func (u Int) splitAt(m int) (lo, hi Int) {
	if m >= len(u.bits) {
		return u, Int{}
	}
	return Int{bits: u.bits[:m]}.norm(), Int{bits: u.bits[m:]}
}

// mulShiftAdd is the plain shift-and-add product: walk the multiplier from
// its most significant bit down, doubling the accumulator and adding u
// whenever the bit is set. It serves as the base case of Mul but is correct
// on its own for operands of any size.
func (u Int) mulShiftAdd(n Int) (v Int) {
	for i := len(n.bits) - 1; i >= 0; i-- {
		v = v.Double()
		if n.bits[i] {
			v = v.Add(u)
		}
	}
	return v
}
