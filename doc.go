/*
Package bitint provides an arbitrary-precision unsigned integer type (Int)
whose arithmetic is implemented directly over an explicit bit representation.

Int is a value type; all operations return new values. The magnitude is kept
normalized at all times: no most-significant zero bits are stored, and zero
stores no bits at all.

Simple example:

	a := bitint.MustFromString("11000") // 24
	b := bitint.MustFromString("1001")  // 9
	fmt.Println(a.Mul(b))
	// Output: 11010000

Int can be created from a variety of sources:

	FromString(s string) (Int, error)
	MustFromString(s string) Int
	FromBits(bits []bool) Int
	From64(v uint64) Int
	FromBigInt(v *big.Int) (Int, bool)

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Addition is the only operation that works on the bits of both operands
directly; subtraction is built from addition using the two's-complement
identity, multiplication splits recursively into three half-size products,
and division is a binary long division driven by halving, doubling and
comparison.
*/
package bitint
