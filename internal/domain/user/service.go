package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"grievance-portal-go/internal/auth"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,32}$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	username := NormalizeUsername(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate never reveals whether the username or the password was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.GetUserByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}

func (s *Service) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}
