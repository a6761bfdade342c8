package bitint

import (
	"math/big"
)

var (
	// intOne backs Inc and the +1 step of the complement trick. Never
	// mutated; every operation allocates its result.
	intOne = Int{bits: []bool{true}}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)
)
