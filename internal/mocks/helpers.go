package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockBackendClientForTest creates a new mock BackendClient for testing
func NewMockBackendClientForTest(t *testing.T) *MockBackendClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockBackendClient(ctrl)
}

// NewMockSDKForTest creates a new mock SDK for testing
func NewMockSDKForTest(t *testing.T) *MockSDK {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSDK(ctrl)
}
