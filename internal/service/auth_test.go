package service

import (
	"fmt"
	"testing"

	"vocablayers/internal/repository/memory"
	"vocablayers/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_CheckPassword(t *testing.T) {
	tests := []struct {
		name           string
		botPassword    string
		inputPassword  string
		expectedResult bool
	}{
		{
			name:           "correct password",
			botPassword:    "secret123",
			inputPassword:  "secret123",
			expectedResult: true,
		},
		{
			name:           "incorrect password",
			botPassword:    "secret123",
			inputPassword:  "wrong",
			expectedResult: false,
		},
		{
			name:           "empty password",
			botPassword:    "secret123",
			inputPassword:  "",
			expectedResult: false,
		},
		{
			name:           "case sensitive",
			botPassword:    "Secret123",
			inputPassword:  "secret123",
			expectedResult: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockKeyValueRepository)
			service := NewAuthService(mockRepo, tt.botPassword)

			result := service.CheckPassword(tt.inputPassword)

			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockValue     string
		mockFound     bool
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:         "authorized user",
			userID:       123,
			mockValue:    `[7,123]`,
			mockFound:    true,
			expectedAuth: true,
		},
		{
			name:         "unauthorized user",
			userID:       456,
			mockValue:    `[123]`,
			mockFound:    true,
			expectedAuth: false,
		},
		{
			name:         "nobody authorized yet",
			userID:       123,
			mockFound:    false,
			expectedAuth: false,
		},
		{
			name:          "malformed list",
			userID:        123,
			mockValue:     `{`,
			mockFound:     true,
			expectedError: true,
		},
		{
			name:          "repository error",
			userID:        123,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockKeyValueRepository)
			mockRepo.On("Get", AuthorizedUsersKey).Return(tt.mockValue, tt.mockFound, tt.mockError)

			service := NewAuthService(mockRepo, "password")

			authorized, err := service.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_AuthorizeUser(t *testing.T) {
	mockRepo := new(testutil.MockKeyValueRepository)
	mockRepo.On("Get", AuthorizedUsersKey).Return(`[7]`, true, nil)
	mockRepo.On("Set", AuthorizedUsersKey, `[7,123]`).Return(nil)

	service := NewAuthService(mockRepo, "password")

	err := service.AuthorizeUser(123)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_AuthorizeUser_AlreadyAuthorized(t *testing.T) {
	mockRepo := new(testutil.MockKeyValueRepository)
	mockRepo.On("Get", AuthorizedUsersKey).Return(`[123]`, true, nil)

	service := NewAuthService(mockRepo, "password")

	err := service.AuthorizeUser(123)

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestAuthService_AuthorizeUser_Persists(t *testing.T) {
	repo := memory.NewKVRepo()

	assert.NoError(t, NewAuthService(repo, "password").AuthorizeUser(42))

	authorized, err := NewAuthService(repo, "password").IsAuthorized(42)
	assert.NoError(t, err)
	assert.True(t, authorized)
}
