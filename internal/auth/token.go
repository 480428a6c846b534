package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

// sessionClaims are carried by every session token
type sessionClaims struct {
	jwt.RegisteredClaims
	Admin bool `json:"adm"`
}

func (s *service) issueToken(profile domain.Profile) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.TTL)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.Username,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		Admin: profile.IsAdmin,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken verifies a session token and returns the profile it names
func (s *service) ParseToken(token string) (domain.Profile, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return domain.Profile{}, domain.ErrInvalidToken
	}
	return domain.Profile{Username: claims.Subject, IsAdmin: claims.Admin}, nil
}
