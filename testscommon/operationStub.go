package testscommon

// OperationStub -
type OperationStub struct {
	IsSystemCalled   func() bool
	GetPayloadCalled func() []byte
}

// IsSystem -
func (stub *OperationStub) IsSystem() bool {
	if stub.IsSystemCalled != nil {
		return stub.IsSystemCalled()
	}

	return false
}

// GetPayload -
func (stub *OperationStub) GetPayload() []byte {
	if stub.GetPayloadCalled != nil {
		return stub.GetPayloadCalled()
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (stub *OperationStub) IsInterfaceNil() bool {
	return stub == nil
}
