package process

import "errors"

// ErrNilOperation signals that a nil operation has been provided
var ErrNilOperation = errors.New("nil operation")

// ErrNilMessage signals that a nil message has been provided
var ErrNilMessage = errors.New("nil message")

// ErrInvalidPriceString signals that a price from the resources config could not be parsed
var ErrInvalidPriceString = errors.New("invalid price string")

// ErrInvalidMaximumBytesPerBlock signals that a per block byte limit could not be parsed
var ErrInvalidMaximumBytesPerBlock = errors.New("invalid maximum bytes per block")

// ErrEmptyPolicySettings signals that the resources config holds no policy entry
var ErrEmptyPolicySettings = errors.New("empty policy settings")

// ErrDuplicatedPolicyEpoch signals that two policy entries share the same enable epoch
var ErrDuplicatedPolicyEpoch = errors.New("duplicated policy enable epoch")

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilHasher signals that a nil hasher has been provided
var ErrNilHasher = errors.New("nil hasher")
