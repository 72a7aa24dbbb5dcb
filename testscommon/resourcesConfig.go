package testscommon

import (
	"github.com/multiversx/mx-chain-resources-go/config"
)

// GetResourcesConfig returns a resources config usable in tests
func GetResourcesConfig() config.ResourcesConfig {
	return config.ResourcesConfig{
		PolicySettings: []config.PolicySettings{
			{
				EnableEpoch:                 0,
				Block:                       "1000000000000000",
				FuelUnit:                    "1000000000",
				ReadOperation:               "10",
				ByteRead:                    "100",
				ByteWritten:                 "1000",
				ByteStored:                  "10",
				Operation:                   "10",
				OperationByte:               "1",
				Message:                     "10",
				MessageByte:                 "1",
				MaximumBytesReadPerBlock:    "",
				MaximumBytesWrittenPerBlock: "",
			},
		},
	}
}
