package testscommon

// MessageStub -
type MessageStub struct {
	IsSystemCalled   func() bool
	GetPayloadCalled func() []byte
}

// IsSystem -
func (stub *MessageStub) IsSystem() bool {
	if stub.IsSystemCalled != nil {
		return stub.IsSystemCalled()
	}

	return false
}

// GetPayload -
func (stub *MessageStub) GetPayload() []byte {
	if stub.GetPayloadCalled != nil {
		return stub.GetPayloadCalled()
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (stub *MessageStub) IsInterfaceNil() bool {
	return stub == nil
}
