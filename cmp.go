package bitint

// Cmp returns 1 if u is greater than n, -1 if smaller, 0 if equal. A
// shorter magnitude is always the smaller number; equal lengths compare
// from the most significant bit down.
func (u Int) Cmp(n Int) int {
	if len(u.bits) > len(n.bits) {
		return 1
	} else if len(u.bits) < len(n.bits) {
		return -1
	}
	for i := len(u.bits) - 1; i >= 0; i-- {
		if u.bits[i] != n.bits[i] {
			if u.bits[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (u Int) Equal(n Int) bool {
	if len(u.bits) != len(n.bits) {
		return false
	}
	for i, bit := range u.bits {
		if bit != n.bits[i] {
			return false
		}
	}
	return true
}

func (u Int) LessThan(n Int) bool { return u.Cmp(n) < 0 }

func (u Int) LessOrEqualTo(n Int) bool { return u.Cmp(n) <= 0 }

func (u Int) GreaterThan(n Int) bool { return u.Cmp(n) > 0 }

func (u Int) GreaterOrEqualTo(n Int) bool { return u.Cmp(n) >= 0 }
