package process

import (
	"github.com/multiversx/mx-chain-resources-go/data"
)

// OperationHandler defines what a block operation needs to expose in order to be priced.
// System operations carry no payload dependent cost; user operations are priced linearly
// in their payload length.
type OperationHandler interface {
	IsSystem() bool
	GetPayload() []byte
	IsInterfaceNil() bool
}

// MessageHandler defines what an outgoing message needs to expose in order to be priced
type MessageHandler interface {
	IsSystem() bool
	GetPayload() []byte
	IsInterfaceNil() bool
}

// ResourcePolicyHandler defines the pricing surface of a resource control policy
type ResourcePolicyHandler interface {
	BlockPrice() data.Amount
	ComputeOperationPrice(operation OperationHandler) (data.Amount, error)
	ComputeMessagePrice(message MessageHandler) (data.Amount, error)
	ComputeStorageNumReadsPrice(count uint64) (data.Amount, error)
	ComputeStorageBytesReadPrice(count uint64) (data.Amount, error)
	ComputeStorageBytesWrittenPrice(count uint64) (data.Amount, error)
	ComputeStorageBytesStoredPrice(count uint64) (data.Amount, error)
	ComputeFuelPrice(fuelUnits uint64) (data.Amount, error)
	RemainingFuel(balance data.Amount) uint64
	IsInterfaceNil() bool
}

// PolicyProvider defines the component able to return the resource control policy
// active at a given epoch
type PolicyProvider interface {
	PolicyForEpoch(epoch uint32) ResourcePolicyHandler
	IsInterfaceNil() bool
}
