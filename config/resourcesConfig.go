package config

// PolicySettings holds the unit prices and the per block limits enforced starting with its
// enable epoch. Prices are base 10 strings counted in atto units. Limits are base 10 uint64
// strings, an empty limit meaning "no cap".
type PolicySettings struct {
	EnableEpoch                 uint32
	Block                       string
	FuelUnit                    string
	ReadOperation               string
	ByteRead                    string
	ByteWritten                 string
	ByteStored                  string
	Operation                   string
	OperationByte               string
	Message                     string
	MessageByte                 string
	MaximumBytesReadPerBlock    string
	MaximumBytesWrittenPerBlock string
}

// ResourcesConfig holds the resource control policy settings, one entry per enable epoch
type ResourcesConfig struct {
	PolicySettings []PolicySettings
}
