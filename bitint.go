package bitint

import (
	"fmt"
	"io"
	"math/big"
)

// Int is an arbitrary-precision unsigned integer. The zero value of Int is
// ready to use and represents the number 0.
//
// The magnitude is stored as bits, least significant first. A stored
// magnitude never has most-significant false bits; the value zero stores no
// bits at all. Intermediate results inside an operation may break that
// invariant, but every value returned to a caller is normalized.
type Int struct {
	bits []bool
}

// FromString creates an Int from a string of '0' and '1' characters, most
// significant digit first. Leading zeros are accepted and dropped; the empty
// string is the value zero. Any character other than '0' or '1' is an error
// wrapping ErrFormat.
func FromString(s string) (out Int, err error) {
	bits := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			bits[len(s)-1-i] = true
		case '0':
		default:
			return out, fmt.Errorf("bitint: string %q invalid: %w", s, ErrFormat)
		}
	}
	return Int{bits: bits}.norm(), nil
}

// MustFromString is a FromString that panics on invalid input.
func MustFromString(s string) Int {
	out, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

// FromBits creates an Int from a bit slice with index 0 as the least
// significant bit (bits[0] is the ones place, bits[3] the eights place).
// The slice is copied; most-significant false bits are dropped.
func FromBits(bits []bool) Int {
	out := Int{bits: make([]bool, len(bits))}
	copy(out.bits, bits)
	return out.norm()
}

// From64 creates an Int from a uint64.
func From64(v uint64) Int {
	var bits []bool
	for ; v != 0; v >>= 1 {
		bits = append(bits, v&1 == 1)
	}
	return Int{bits: bits}
}

// FromBigInt creates an Int from a big.Int. ok is false and the result is
// zero if v is negative.
func FromBigInt(v *big.Int) (out Int, ok bool) {
	if v.Sign() < 0 {
		return out, false
	}
	bl := v.BitLen()
	if bl == 0 {
		return out, true
	}
	bits := make([]bool, bl)
	for i := 0; i < bl; i++ {
		bits[i] = v.Bit(i) == 1
	}
	return Int{bits: bits}, true
}

// norm drops most-significant false bits so that the stored magnitude is
// canonical. Zero normalizes to an empty magnitude.
func (u Int) norm() Int {
	n := len(u.bits)
	for n > 0 && !u.bits[n-1] {
		n--
	}
	u.bits = u.bits[:n]
	return u
}

func (u Int) IsZero() bool { return len(u.bits) == 0 }

// BitLen returns the number of bits in the magnitude. The bit length of
// zero is 0.
func (u Int) BitLen() int { return len(u.bits) }

// Bit returns bit i of u, with bit 0 the least significant. Bits at or
// beyond BitLen are false.
func (u Int) Bit(i int) bool {
	if i < 0 || i >= len(u.bits) {
		return false
	}
	return u.bits[i]
}

// IsOdd reports whether the lowest bit of u is set. Zero is even.
func (u Int) IsOdd() bool { return len(u.bits) > 0 && u.bits[0] }

// Halve returns u divided by two, truncated towards zero. The least
// significant bit drops off; the high bits are untouched so no
// renormalization is needed.
func (u Int) Halve() Int {
	if len(u.bits) == 0 {
		return Int{}
	}
	return Int{bits: u.bits[1:]}
}

// Double returns u multiplied by two.
func (u Int) Double() Int {
	if len(u.bits) == 0 {
		return Int{}
	}
	bits := make([]bool, len(u.bits)+1)
	copy(bits[1:], u.bits)
	return Int{bits: bits}
}

// shl returns u shifted left by n bits, implemented by prepending false
// bits rather than by addition. Shifting zero is still zero.
func (u Int) shl(n int) Int {
	if len(u.bits) == 0 || n == 0 {
		return u
	}
	bits := make([]bool, len(u.bits)+n)
	copy(bits[n:], u.bits)
	return Int{bits: bits}
}

// String renders u as binary digits, most significant first. Zero renders
// as "0", never as an empty string.
func (u Int) String() string {
	if len(u.bits) == 0 {
		return "0"
	}
	out := make([]byte, len(u.bits))
	for i, bit := range u.bits {
		c := byte('0')
		if bit {
			c = '1'
		}
		out[len(u.bits)-1-i] = c
	}
	return string(out)
}

// Format implements fmt.Formatter. The 's', 'v' and 'b' verbs render the
// binary form; anything else goes through math/big.
func (u Int) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v', 'b':
		io.WriteString(s, u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u Int) IntoBigInt(b *big.Int) {
	b.SetInt64(0)
	for i, bit := range u.bits {
		if bit {
			b.SetBit(b, i, 1)
		}
	}
}

func (u Int) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Uint64 converts u to a uint64. It returns an error wrapping ErrOverflow
// if u does not fit. See IsUint64() if you want to check before you convert.
func (u Int) Uint64() (uint64, error) {
	if !u.IsUint64() {
		return 0, fmt.Errorf("bitint: %s overflows uint64: %w", u, ErrOverflow)
	}
	var v uint64
	for i, bit := range u.bits {
		if bit {
			v |= 1 << uint(i)
		}
	}
	return v, nil
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Int) IsUint64() bool { return len(u.bits) <= 64 }

func (u Int) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bitint: invalid JSON %q: %w", string(bts), ErrFormat)
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
