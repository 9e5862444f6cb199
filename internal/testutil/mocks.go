package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockKeyValueRepository is a mock for KeyValueRepository
type MockKeyValueRepository struct {
	mock.Mock
}

func (m *MockKeyValueRepository) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueRepository) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}
