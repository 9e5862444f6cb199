package service

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"vocablayers/internal/repository"
)

// AuthorizedUsersKey holds the JSON list of Telegram user ids allowed to use the bot
const AuthorizedUsersKey = "authorized-users"

// AuthService handles authentication logic
type AuthService struct {
	repo        repository.KeyValueRepository
	botPassword string

	mu sync.Mutex
}

// NewAuthService creates a new auth service
func NewAuthService(repo repository.KeyValueRepository, botPassword string) *AuthService {
	return &AuthService{
		repo:        repo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.authorizedUsers()
	if err != nil {
		return false, err
	}
	return slices.Contains(users, userID), nil
}

// AuthorizeUser authorizes a user
func (s *AuthService) AuthorizeUser(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.authorizedUsers()
	if err != nil {
		return err
	}
	if slices.Contains(users, userID) {
		return nil
	}

	data, err := json.Marshal(append(users, userID))
	if err != nil {
		return fmt.Errorf("encode authorized users: %w", err)
	}
	return s.repo.Set(AuthorizedUsersKey, string(data))
}

func (s *AuthService) authorizedUsers() ([]int64, error) {
	stored, found, err := s.repo.Get(AuthorizedUsersKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var users []int64
	if err := json.Unmarshal([]byte(stored), &users); err != nil {
		return nil, fmt.Errorf("decode authorized users: %w", err)
	}
	return users, nil
}
