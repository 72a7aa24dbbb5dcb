package pricing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/hashing"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"

	"github.com/multiversx/mx-chain-resources-go/config"
	"github.com/multiversx/mx-chain-resources-go/data"
	"github.com/multiversx/mx-chain-resources-go/process"
)

var log = logger.GetOrCreate("process/pricing")

const conversionBase = 10
const bitConversionSize = 64

// ResourceControlPolicy holds the unit prices and the hard limits applied while executing one
// block. A policy is immutable once constructed: it is shared read-only by every execution
// context of an epoch and replaced wholesale when the configuration changes, so any number of
// callers may price work concurrently without coordination.
//
// Accumulating the prices of a whole block and comparing the running byte totals against
// MaximumBytesReadPerBlock and MaximumBytesWrittenPerBlock is the caller's responsibility;
// the running sums must use Amount.Add to keep the overflow guarantee end to end.
type ResourceControlPolicy struct {
	Block         data.Amount
	FuelUnit      data.Amount
	ReadOperation data.Amount
	// TODO: add a flat price per write operation, distinct from the per byte written price
	ByteRead      data.Amount
	ByteWritten   data.Amount
	ByteStored    data.Amount
	Operation     data.Amount
	OperationByte data.Amount
	Message       data.Amount
	MessageByte   data.Amount

	MaximumBytesReadPerBlock    uint64
	MaximumBytesWrittenPerBlock uint64
}

// NewDefaultResourceControlPolicy creates a policy with all prices at zero and uncapped per block limits
func NewDefaultResourceControlPolicy() *ResourceControlPolicy {
	return &ResourceControlPolicy{
		MaximumBytesReadPerBlock:    math.MaxUint64,
		MaximumBytesWrittenPerBlock: math.MaxUint64,
	}
}

// NewResourceControlPolicy creates a policy out of the provided settings
func NewResourceControlPolicy(policySettings config.PolicySettings) (*ResourceControlPolicy, error) {
	policy := NewDefaultResourceControlPolicy()

	prices := []struct {
		name  string
		value string
		field *data.Amount
	}{
		{"Block", policySettings.Block, &policy.Block},
		{"FuelUnit", policySettings.FuelUnit, &policy.FuelUnit},
		{"ReadOperation", policySettings.ReadOperation, &policy.ReadOperation},
		{"ByteRead", policySettings.ByteRead, &policy.ByteRead},
		{"ByteWritten", policySettings.ByteWritten, &policy.ByteWritten},
		{"ByteStored", policySettings.ByteStored, &policy.ByteStored},
		{"Operation", policySettings.Operation, &policy.Operation},
		{"OperationByte", policySettings.OperationByte, &policy.OperationByte},
		{"Message", policySettings.Message, &policy.Message},
		{"MessageByte", policySettings.MessageByte, &policy.MessageByte},
	}
	for _, price := range prices {
		amount, err := data.NewAmountFromString(price.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", process.ErrInvalidPriceString, price.name)
		}

		*price.field = amount
	}

	maxBytesRead, err := parseLimit(policySettings.MaximumBytesReadPerBlock)
	if err != nil {
		return nil, fmt.Errorf("%w: MaximumBytesReadPerBlock", process.ErrInvalidMaximumBytesPerBlock)
	}
	policy.MaximumBytesReadPerBlock = maxBytesRead

	maxBytesWritten, err := parseLimit(policySettings.MaximumBytesWrittenPerBlock)
	if err != nil {
		return nil, fmt.Errorf("%w: MaximumBytesWrittenPerBlock", process.ErrInvalidMaximumBytesPerBlock)
	}
	policy.MaximumBytesWrittenPerBlock = maxBytesWritten

	log.Debug("created resource control policy",
		"enable epoch", policySettings.EnableEpoch,
		"block", policy.Block.String(),
		"fuel unit", policy.FuelUnit.String(),
		"maximum bytes read per block", policy.MaximumBytesReadPerBlock,
		"maximum bytes written per block", policy.MaximumBytesWrittenPerBlock,
	)

	return policy, nil
}

// an empty limit means "no cap"
func parseLimit(value string) (uint64, error) {
	if len(value) == 0 {
		return math.MaxUint64, nil
	}

	return strconv.ParseUint(value, conversionBase, bitConversionSize)
}

// BlockPrice returns the flat price of creating one block
func (rcp *ResourceControlPolicy) BlockPrice() data.Amount {
	return rcp.Block
}

// ComputeOperationPrice returns the price of adding the provided operation to a block.
// System operations pay the flat Operation price; user operations additionally pay
// OperationByte for every payload byte.
func (rcp *ResourceControlPolicy) ComputeOperationPrice(operation process.OperationHandler) (data.Amount, error) {
	if check.IfNil(operation) {
		return data.Amount{}, process.ErrNilOperation
	}
	if operation.IsSystem() {
		return rcp.Operation, nil
	}

	price, err := rcp.OperationByte.Mul(uint64(len(operation.GetPayload())))
	if err != nil {
		return data.Amount{}, err
	}

	return price.Add(rcp.Operation)
}

// ComputeMessagePrice returns the price of sending the provided message from a block
func (rcp *ResourceControlPolicy) ComputeMessagePrice(message process.MessageHandler) (data.Amount, error) {
	if check.IfNil(message) {
		return data.Amount{}, process.ErrNilMessage
	}
	if message.IsSystem() {
		return rcp.Message, nil
	}

	price, err := rcp.MessageByte.Mul(uint64(len(message.GetPayload())))
	if err != nil {
		return data.Amount{}, err
	}

	return price.Add(rcp.Message)
}

// ComputeStorageNumReadsPrice returns the price of the provided number of storage read operations
func (rcp *ResourceControlPolicy) ComputeStorageNumReadsPrice(count uint64) (data.Amount, error) {
	return rcp.ReadOperation.Mul(count)
}

// ComputeStorageBytesReadPrice returns the price of reading the provided number of bytes from storage
func (rcp *ResourceControlPolicy) ComputeStorageBytesReadPrice(count uint64) (data.Amount, error) {
	return rcp.ByteRead.Mul(count)
}

// ComputeStorageBytesWrittenPrice returns the price of writing the provided number of bytes to storage
func (rcp *ResourceControlPolicy) ComputeStorageBytesWrittenPrice(count uint64) (data.Amount, error) {
	return rcp.ByteWritten.Mul(count)
}

// ComputeStorageBytesStoredPrice returns the price of keeping the provided number of bytes in storage
func (rcp *ResourceControlPolicy) ComputeStorageBytesStoredPrice(count uint64) (data.Amount, error) {
	return rcp.ByteStored.Mul(count)
}

// ComputeFuelPrice returns the price of the provided number of fuel units
func (rcp *ResourceControlPolicy) ComputeFuelPrice(fuelUnits uint64) (data.Amount, error) {
	return rcp.FuelUnit.Mul(fuelUnits)
}

// RemainingFuel returns how many whole fuel units the provided balance can still pay for.
// This is a capacity estimate, not a charge: the division saturates, a zero fuel unit price
// meaning fuel is effectively unlimited.
func (rcp *ResourceControlPolicy) RemainingFuel(balance data.Amount) uint64 {
	return balance.SaturatingDiv(rcp.FuelUnit).SaturatingUint64()
}

// Equal returns true when the two policies hold identical prices and limits
func (rcp *ResourceControlPolicy) Equal(policy *ResourceControlPolicy) bool {
	if rcp == nil || policy == nil {
		return rcp == policy
	}

	return *rcp == *policy
}

// Hash returns the hash of the policy computed over its serialized form. Two policies
// holding identical prices and limits are interchangeable and hash to the same value.
func (rcp *ResourceControlPolicy) Hash(marshalizer marshal.Marshalizer, hasher hashing.Hasher) ([]byte, error) {
	if check.IfNil(marshalizer) {
		return nil, process.ErrNilMarshalizer
	}
	if check.IfNil(hasher) {
		return nil, process.ErrNilHasher
	}

	return core.CalculateHash(marshalizer, hasher, rcp)
}

// IsInterfaceNil returns true if there is no value under the interface
func (rcp *ResourceControlPolicy) IsInterfaceNil() bool {
	return rcp == nil
}
