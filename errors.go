package bitint

import "errors"

// Package sentinel errors. Parsing and narrowing conversions return errors
// wrapping ErrFormat and ErrOverflow. ErrNegative and ErrDivZero mark
// contract violations: Sub and QuoRem panic with them rather than returning
// them.
var (
	ErrFormat   = errors.New("bitint: invalid binary string")
	ErrOverflow = errors.New("bitint: value overflows native integer")
	ErrNegative = errors.New("bitint: negative result")
	ErrDivZero  = errors.New("bitint: division by zero")
)
