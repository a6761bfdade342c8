package bitint

import (
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c string
	}{
		{"0", "0", "0"},
		{"0", "1", "1"},
		{"1", "1", "10"},
		{"10", "1", "11"},
		{"1111", "1", "10000"}, // carry ripples the whole way
		{"10010101", "10010101", "100101010"},
		{"11000", "1001", "100001"},
		{"1111111111111111", "1", "10000000000000000"},
		{"110101001011101011110001010110100", "10111010110101", "110101001011101100001000101101001"},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := bint(tc.a), bint(tc.b)
			tt.MustEqual(tc.c, a.Add(b).String())
			tt.MustEqual(tc.c, b.Add(a).String())
		})
	}
}

func TestAddAssociative(t *testing.T) {
	tt := assert.WrapTB(t)
	vals := []Int{
		bint("0"),
		bint("1"),
		bint("1001"),
		bint("11000"),
		bint("1111111111"),
		bint("10010101001110101"),
	}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				l := a.Add(b).Add(c)
				r := a.Add(b.Add(c))
				tt.MustAssert(l.Equal(r), "(%s+%s)+%s != %s+(%s+%s)", a, b, c, a, b, c)
			}
		}
	}
}

func TestInc(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("1", Int{}.Inc().String())
	tt.MustEqual("10", bint("1").Inc().String())
	tt.MustEqual("10000", bint("1111").Inc().String())
}

func TestSub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c string
	}{
		{"0", "0", "0"},
		{"1", "0", "1"},
		{"1", "1", "0"},
		{"10010101", "10010101", "0"},
		{"11000", "1001", "1111"},
		{"10000", "1", "1111"}, // borrow ripples the whole way
		{"100000000", "11111111", "1"},
		{"110101001011101100001000101101001", "10111010110101", "110101001011101011110001010110100"},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, bint(tc.a).Sub(bint(tc.b)).String())
		})
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	tt := assert.WrapTB(t)
	vals := []Int{bint("0"), bint("1"), bint("1001"), bint("11000"), bint("10010101001110101")}
	for _, a := range vals {
		for _, b := range vals {
			sum := a.Add(b)
			tt.MustAssert(sum.Sub(b).Equal(a), "(%s+%s)-%s != %s", a, b, b, a)
		}
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		tt.MustEqual(ErrNegative, recover())
	}()
	bint("1001").Sub(bint("11000"))
	t.Fatal("expected panic")
}
