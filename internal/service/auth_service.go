package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dishpoll/internal/models"
	"dishpoll/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a failed login never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmptyUsername      = errors.New("username is required")
	ErrEmptyPassword      = errors.New("password is required")
)

// AuthService handles user auth logic
type AuthService struct {
	users    repository.Users
	activity repository.Activity
}

func NewAuthService(users repository.Users, activity repository.Activity) *AuthService {
	return &AuthService{users: users, activity: activity}
}

// SignUp hashes the password and creates a new user.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, ErrEmptyUsername
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}

	if err := s.activity.Append(ctx, models.ActivityEvent{
		Type:        "SIGNUP",
		Description: "User " + username + " signed up",
		Metadata:    map[string]any{"user_id": id},
	}); err != nil {
		return 0, err
	}
	return id, nil
}

// Authenticate validates credentials and returns the user id.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (int, error) {
	u, err := s.users.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return 0, ErrInvalidCredentials
	}

	if err := s.activity.Append(ctx, models.ActivityEvent{
		Type:        "LOGIN",
		Description: "User " + u.Username + " logged in",
		Metadata:    map[string]any{"user_id": u.ID},
	}); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
