package data_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-resources-go/data"
)

const maxAmountString = "340282366920938463463374607431768211455"

// the maximum amount is divisible by 3, so this product hits the upper bound exactly
const maxAmountThirdString = "113427455640312821154458202477256070485"

func TestNewAmountFromAtto(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", data.NewAmountFromAtto(0).String())
	assert.Equal(t, "1", data.NewAmountFromAtto(1).String())
	assert.Equal(t, "1000000000000", data.NewAmountFromAtto(1_000_000_000_000).String())
	assert.Equal(t, "18446744073709551615", data.NewAmountFromAtto(math.MaxUint64).String())
}

func TestNewAmountFromMilli(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", data.NewAmountFromMilli(0).String())
	assert.Equal(t, "1000000000000000", data.NewAmountFromMilli(1).String())
	assert.Equal(t, data.NewAmountFromAtto(1_000_000_000_000_000), data.NewAmountFromMilli(1))
	assert.Equal(t, "18446744073709551615000000000000000", data.NewAmountFromMilli(math.MaxUint64).String())
}

func TestNewAmountFromString_ShouldWork(t *testing.T) {
	t.Parallel()

	amount, err := data.NewAmountFromString("0")
	require.Nil(t, err)
	assert.True(t, amount.IsZero())

	amount, err = data.NewAmountFromString("1230000000000000000")
	require.Nil(t, err)
	assert.Equal(t, "1230000000000000000", amount.String())

	amount, err = data.NewAmountFromString(maxAmountString)
	require.Nil(t, err)
	assert.Equal(t, data.MaxAmount(), amount)
}

func TestNewAmountFromString_InvalidStringShouldErr(t *testing.T) {
	t.Parallel()

	badAmounts := []string{
		"",
		"-1",
		"badValue",
		"1.5",
		"#########",
		"11112S",
		"1111O0000",
		"10ERD",
	}

	for _, badAmount := range badAmounts {
		_, err := data.NewAmountFromString(badAmount)
		assert.Equal(t, data.ErrInvalidAmountString, err)
	}
}

func TestNewAmountFromString_OutOfRangeShouldErr(t *testing.T) {
	t.Parallel()

	// one above the maximum representable amount
	_, err := data.NewAmountFromString("340282366920938463463374607431768211456")
	assert.Equal(t, data.ErrArithmeticOverflow, err)
}

func TestAmount_Add(t *testing.T) {
	t.Parallel()

	sum, err := data.NewAmountFromAtto(2).Add(data.NewAmountFromAtto(3))
	require.Nil(t, err)
	assert.Equal(t, data.NewAmountFromAtto(5), sum)

	belowMax, err := data.NewAmountFromString("340282366920938463463374607431768211454")
	require.Nil(t, err)

	sum, err = belowMax.Add(data.NewAmountFromAtto(1))
	require.Nil(t, err)
	assert.Equal(t, data.MaxAmount(), sum)

	_, err = data.MaxAmount().Add(data.NewAmountFromAtto(1))
	assert.Equal(t, data.ErrArithmeticOverflow, err)
}

func TestAmount_Mul(t *testing.T) {
	t.Parallel()

	product, err := data.NewAmountFromAtto(100).Mul(1000)
	require.Nil(t, err)
	assert.Equal(t, data.NewAmountFromAtto(100_000), product)

	product, err = data.NewAmountFromAtto(100).Mul(0)
	require.Nil(t, err)
	assert.True(t, product.IsZero())

	maxThird, err := data.NewAmountFromString(maxAmountThirdString)
	require.Nil(t, err)

	product, err = maxThird.Mul(3)
	require.Nil(t, err)
	assert.Equal(t, data.MaxAmount(), product)

	aboveMaxThird, err := maxThird.Add(data.NewAmountFromAtto(1))
	require.Nil(t, err)

	_, err = aboveMaxThird.Mul(3)
	assert.Equal(t, data.ErrArithmeticOverflow, err)
}

func TestAmount_SaturatingDiv(t *testing.T) {
	t.Parallel()

	quotient := data.NewAmountFromAtto(10).SaturatingDiv(data.NewAmountFromAtto(3))
	assert.Equal(t, data.NewAmountFromAtto(3), quotient)

	quotient = data.NewAmountFromAtto(500).SaturatingDiv(data.NewAmountFromAtto(500))
	assert.Equal(t, data.NewAmountFromAtto(1), quotient)

	quotient = data.NewAmountFromAtto(2).SaturatingDiv(data.NewAmountFromAtto(500))
	assert.True(t, quotient.IsZero())

	quotient = data.NewAmountFromAtto(42).SaturatingDiv(data.Amount{})
	assert.Equal(t, data.MaxAmount(), quotient)
}

func TestAmount_SaturatingUint64(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), data.Amount{}.SaturatingUint64())
	assert.Equal(t, uint64(5), data.NewAmountFromAtto(5).SaturatingUint64())
	assert.Equal(t, uint64(math.MaxUint64), data.NewAmountFromAtto(math.MaxUint64).SaturatingUint64())

	aboveUint64, err := data.NewAmountFromString("18446744073709551616")
	require.Nil(t, err)
	assert.Equal(t, uint64(math.MaxUint64), aboveUint64.SaturatingUint64())

	assert.Equal(t, uint64(math.MaxUint64), data.MaxAmount().SaturatingUint64())
}

func TestAmount_Cmp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, data.NewAmountFromAtto(1).Cmp(data.NewAmountFromAtto(2)))
	assert.Equal(t, 0, data.NewAmountFromAtto(2).Cmp(data.NewAmountFromAtto(2)))
	assert.Equal(t, 1, data.NewAmountFromMilli(1).Cmp(data.NewAmountFromAtto(2)))
}

func TestAmount_JsonRoundTrip(t *testing.T) {
	t.Parallel()

	amounts := []data.Amount{
		{},
		data.NewAmountFromAtto(1),
		data.NewAmountFromMilli(1),
		data.MaxAmount(),
	}

	for _, amount := range amounts {
		buff, err := json.Marshal(amount)
		require.Nil(t, err)

		restoredAmount := data.Amount{}
		err = json.Unmarshal(buff, &restoredAmount)
		require.Nil(t, err)
		assert.Equal(t, amount, restoredAmount)
	}
}
