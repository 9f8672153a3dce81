package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rs/zerolog"

	"github.com/shoplabs/shop-api/internal/core/domain"
	"github.com/shoplabs/shop-api/internal/core/ports"
)

// UserService implements account management and the login flow.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenIssuer
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenIssuer, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Register creates a self-service account. The role is always employee,
// whatever the caller submitted.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleEmployee,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.log.Error().Err(err).Str("username", username).Msg("failed to create user")
		return nil, domain.NewStorageError("could not create the user", err)
	}

	s.log.Info().Int("user_id", user.ID).Str("username", username).Msg("user registered")
	return user, nil
}

// Update replaces the full user record. The path id must match the payload id;
// a mismatch is reported as not found, mirroring the route/body consistency
// rule of the update contract.
func (s *UserService) Update(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	if input.ID != id {
		return nil, domain.ErrUserNotFound
	}

	// Look the account up before hashing; a missing id skips the bcrypt work.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		s.log.Error().Err(err).Int("user_id", id).Msg("failed to load user")
		return nil, domain.NewStorageError("could not update the user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           input.ID,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.log.Error().Err(err).Int("user_id", id).Msg("failed to update user")
		return nil, domain.NewStorageError("could not update the user", err)
	}

	s.log.Info().Int("user_id", user.ID).Str("role", user.Role).Msg("user updated")
	return user, nil
}

// Login looks up the account and verifies the password. Unknown username and
// wrong password return the same error so the response does not reveal which
// half was wrong. A role change only takes effect here, at re-authentication.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", username).Str("role", user.Role).Msg("user authenticated")
	return token, user, nil
}
