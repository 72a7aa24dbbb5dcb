package data

import "errors"

// ErrArithmeticOverflow signals that the result of an amount operation exceeded the representable range
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// ErrInvalidAmountString signals that a string could not be parsed into an amount
var ErrInvalidAmountString = errors.New("invalid amount string")
