package testscommon

import (
	"github.com/multiversx/mx-chain-resources-go/data"
	"github.com/multiversx/mx-chain-resources-go/process/pricing"
)

// GetOnlyFuelPolicy returns a policy with no cost for anything except fuel. Usable by tests
// that need whole numbers in their balances and do not execute any contract code.
func GetOnlyFuelPolicy() *pricing.ResourceControlPolicy {
	policy := pricing.NewDefaultResourceControlPolicy()
	policy.FuelUnit = data.NewAmountFromAtto(1_000_000_000_000)

	return policy
}

// GetFuelAndBlockPolicy returns a policy with no cost for anything except fuel and a
// 1 milli price per block. Usable by tests that keep track of how many blocks were created.
func GetFuelAndBlockPolicy() *pricing.ResourceControlPolicy {
	policy := GetOnlyFuelPolicy()
	policy.Block = data.NewAmountFromMilli(1)

	return policy
}

// GetAllCategoriesPolicy returns a policy where all the priced categories have a small
// non zero cost
func GetAllCategoriesPolicy() *pricing.ResourceControlPolicy {
	policy := pricing.NewDefaultResourceControlPolicy()
	policy.Block = data.NewAmountFromMilli(1)
	policy.FuelUnit = data.NewAmountFromAtto(1_000_000_000)
	policy.ReadOperation = data.NewAmountFromAtto(10)
	policy.ByteRead = data.NewAmountFromAtto(100)
	policy.ByteWritten = data.NewAmountFromAtto(1_000)
	policy.ByteStored = data.NewAmountFromAtto(10)
	policy.Operation = data.NewAmountFromAtto(10)
	policy.OperationByte = data.NewAmountFromAtto(1)
	policy.Message = data.NewAmountFromAtto(10)
	policy.MessageByte = data.NewAmountFromAtto(1)

	return policy
}
