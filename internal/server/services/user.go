// Package services contains server-side business logic. This file implements
// UserService, which handles signup and login and mints the access tokens the
// API hands out.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventplanner/internal/common"
	"github.com/dmitrijs2005/eventplanner/internal/server/auth"
	"github.com/dmitrijs2005/eventplanner/internal/server/config"
	"github.com/dmitrijs2005/eventplanner/internal/server/models"
	"github.com/dmitrijs2005/eventplanner/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService provides authentication-related operations:
// - Signup: create a user and mint a token
// - Login: verify credentials and mint a token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Signup registers a new user with the given email and password and returns
// an access token for the fresh account. A duplicate email yields
// ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, email string, password string) (string, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return "", fmt.Errorf("%w: Email already registered", common.ErrorAlreadyExists)
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), Email: email, PasswordHash: hash}
	if _, err := repo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateAccessToken(user.ID)
}

// Login verifies the provided credentials and, on success, returns a new
// access token. Unknown emails and wrong passwords are indistinguishable
// to the caller.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	return s.generateAccessToken(user.ID)
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func validateCredentials(email string, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	return nil
}
