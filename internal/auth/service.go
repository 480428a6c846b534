package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/RiftStats_Go/internal/domain"
	"github.com/osse101/RiftStats_Go/internal/logger"
	"github.com/osse101/RiftStats_Go/internal/repository"
)

// Service defines account and session operations
type Service interface {
	Register(ctx context.Context, username, password string) (domain.Profile, error)
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	ParseToken(token string) (domain.Profile, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	// SetPassword creates or overwrites an account. It reports whether the account is new.
	SetPassword(ctx context.Context, username, password string, isAdmin bool) (bool, error)
	HashPassword(password string) (string, error)
}

// Config holds token signing settings
type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
	// Cost is the bcrypt cost, DefaultBcryptCost when zero
	Cost int
}

type service struct {
	repo   repository.User
	cfg    Config
	secret []byte
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

// NewService creates a new auth service
func NewService(repo repository.User, cfg Config) Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.Cost == 0 {
		cfg.Cost = DefaultBcryptCost
	}
	return &service{repo: repo, cfg: cfg, secret: []byte(cfg.Secret), now: time.Now}
}

func checkCredentials(username, password string) error {
	if len(username) < MinUsernameLength {
		return fmt.Errorf("%w: minimum %d characters", domain.ErrUsernameTooShort, MinUsernameLength)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: minimum %d characters", domain.ErrPasswordTooShort, MinPasswordLength)
	}
	return nil
}

// HashPassword returns a bcrypt hash at the configured cost
func (s *service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates a non-admin account
func (s *service) Register(ctx context.Context, username, password string) (domain.Profile, error) {
	username = strings.TrimSpace(username)
	if err := checkCredentials(username, password); err != nil {
		return domain.Profile{}, err
	}
	hash, err := s.HashPassword(password)
	if err != nil {
		return domain.Profile{}, err
	}

	user := domain.User{Username: username, PasswordHash: hash}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to create user: %w", err)
	}
	if !created {
		return domain.Profile{}, domain.ErrUsernameTaken
	}

	logger.FromContext(ctx).Info(LogMsgUserRegistered, "username", username)
	return user.Profile(), nil
}

// dummy is compared against when the user does not exist so both paths cost one bcrypt run
func (s *service) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(dummyPasswordInput), s.cfg.Cost)
	})
	return s.dummyHash
}

// verify returns the user when the password matches
func (s *service) verify(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login checks credentials and issues a session token
func (s *service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	user, err := s.verify(ctx, username, password)
	if err != nil {
		log.Info(LogMsgLoginFailed, "username", username)
		return nil, err
	}

	token, expiresAt, err := s.issueToken(user.Profile())
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgLoginSucceeded, "username", username, "is_admin", user.IsAdmin)
	return &domain.Session{Profile: user.Profile(), Token: token, ExpiresAt: expiresAt}, nil
}

// ChangePassword replaces the password after verifying the current one
func (s *service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: minimum %d characters", domain.ErrPasswordTooShort, MinPasswordLength)
	}
	if _, err := s.verify(ctx, username, oldPassword); err != nil {
		return err
	}
	hash, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, username, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgPasswordChanged, "username", username)
	return nil
}

// SetPassword is the operator path used by the CLI. It skips the old password check.
func (s *service) SetPassword(ctx context.Context, username, password string, isAdmin bool) (bool, error) {
	username = strings.TrimSpace(username)
	if err := checkCredentials(username, password); err != nil {
		return false, err
	}
	hash, err := s.HashPassword(password)
	if err != nil {
		return false, err
	}
	created, err := s.repo.UpsertUser(ctx, domain.User{Username: username, PasswordHash: hash, IsAdmin: isAdmin})
	if err != nil {
		return false, fmt.Errorf("failed to set password: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgPasswordSet, "username", username, "is_admin", isAdmin, "created", created)
	return created, nil
}
