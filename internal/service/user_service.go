package service

import (
	"context"
	"fmt"

	"tokoonline/internal/auth"
	"tokoonline/internal/model"
	"tokoonline/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
	logger zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager, logger zerolog.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new user with a hashed password. The email must not
// already be registered.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" || req.CreatedAt == "" {
		return nil, model.ErrMissingFields
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("email", req.Email).Msg("registration with taken email")
		return nil, model.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    req.CreatedAt,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("user_id", id).Str("email", req.Email).Msg("user registered")

	// Never hand the hash back to callers.
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and returns a signed session token.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", model.ErrCredentialsRequired
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		s.logger.Debug().Str("email", req.Email).Msg("login with unknown email")
		return "", model.ErrUserNotFound
	}

	match, err := auth.PasswordMatches(user.PasswordHash, req.Password)
	if err != nil {
		return "", err
	}
	if !match {
		s.logger.Warn().Str("email", req.Email).Msg("login with wrong password")
		return "", model.ErrWrongPassword
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// GetAll retrieves all users without password hashes.
func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.repo.GetAll(ctx)
}

// GetByID retrieves a single user by id.
func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Update overwrites a user's name, email and role. Existence is not checked
// first; updating an absent row is a no-op that still reports success.
func (s *userService) Update(ctx context.Context, id int64, req *model.UpdateUserRequest) error {
	return s.repo.Update(ctx, id, req.Name, req.Email, req.Role)
}

// Delete removes a user. Existence is not checked first.
func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
