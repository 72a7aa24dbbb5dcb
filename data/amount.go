package data

import (
	"math"

	"github.com/holiman/uint256"
)

// 1 milli unit = 10^15 atto units, 1 whole unit = 10^18 atto units
const attoPerMilli = 1_000_000_000_000_000

var maxAmountValue = computeMaxAmountValue()

func computeMaxAmountValue() *uint256.Int {
	one := uint256.NewInt(1)
	maxValue := new(uint256.Int).Lsh(one, 128)

	return maxValue.Sub(maxValue, one)
}

// Amount is a non-negative monetary quantity counted in atto units. The zero value is the zero
// amount. Amounts are comparable with == and usable as map keys. The representable range is
// [0, 2^128-1]; every operation that would leave this range reports ErrArithmeticOverflow
// instead of wrapping. Intermediate products are computed on 256 bits, so the range check is
// exact for all inputs.
type Amount struct {
	value uint256.Int
}

// NewAmountFromAtto returns the amount counting the provided atto units
func NewAmountFromAtto(atto uint64) Amount {
	amount := Amount{}
	amount.value.SetUint64(atto)

	return amount
}

// NewAmountFromMilli returns the amount worth the provided milli units
func NewAmountFromMilli(milli uint64) Amount {
	amount := Amount{}
	amount.value.SetUint64(milli)
	amount.value.Mul(&amount.value, uint256.NewInt(attoPerMilli))

	return amount
}

// NewAmountFromString parses a base 10 string counting atto units
func NewAmountFromString(atto string) (Amount, error) {
	amount := Amount{}
	err := amount.value.SetFromDecimal(atto)
	if err != nil {
		return Amount{}, ErrInvalidAmountString
	}
	if amount.value.Gt(maxAmountValue) {
		return Amount{}, ErrArithmeticOverflow
	}

	return amount, nil
}

// MaxAmount returns the largest representable amount
func MaxAmount() Amount {
	amount := Amount{}
	amount.value.Set(maxAmountValue)

	return amount
}

// Add returns a + b, failing when the sum is not representable
func (a Amount) Add(b Amount) (Amount, error) {
	sum := Amount{}
	sum.value.Add(&a.value, &b.value)
	if sum.value.Gt(maxAmountValue) {
		return Amount{}, ErrArithmeticOverflow
	}

	return sum, nil
}

// Mul returns a * factor, failing when the product is not representable
func (a Amount) Mul(factor uint64) (Amount, error) {
	product := Amount{}
	product.value.Mul(&a.value, uint256.NewInt(factor))
	if product.value.Gt(maxAmountValue) {
		return Amount{}, ErrArithmeticOverflow
	}

	return product, nil
}

// SaturatingDiv returns a / b rounded towards zero, or the maximum representable
// amount when b is zero
func (a Amount) SaturatingDiv(b Amount) Amount {
	if b.value.IsZero() {
		return MaxAmount()
	}

	quotient := Amount{}
	quotient.value.Div(&a.value, &b.value)

	return quotient
}

// SaturatingUint64 returns the amount as an uint64 count of atto units, clamped
// to the maximum uint64 value
func (a Amount) SaturatingUint64() uint64 {
	if !a.value.IsUint64() {
		return math.MaxUint64
	}

	return a.value.Uint64()
}

// IsZero returns true for the zero amount
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Cmp compares a and b, returning -1, 0 or 1
func (a Amount) Cmp(b Amount) int {
	return a.value.Cmp(&b.value)
}

// String returns the amount as a base 10 string counting atto units
func (a Amount) String() string {
	return a.value.Dec()
}

// MarshalText returns the amount as a base 10 string counting atto units
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.value.Dec()), nil
}

// UnmarshalText parses a base 10 string counting atto units
func (a *Amount) UnmarshalText(text []byte) error {
	amount, err := NewAmountFromString(string(text))
	if err != nil {
		return err
	}

	*a = amount

	return nil
}
