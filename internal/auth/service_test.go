package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/RiftStats_Go/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// memoryUsers is an in-memory repository.User
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]domain.User
	err   error
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]domain.User)}
}

func (m *memoryUsers) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (m *memoryUsers) CreateUser(_ context.Context, user domain.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return false, nil
	}
	m.users[user.Username] = user
	return true, nil
}

func (m *memoryUsers) UpdatePassword(_ context.Context, username, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = hash
	m.users[username] = u
	return nil
}

func (m *memoryUsers) UpsertUser(_ context.Context, user domain.User) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, existed := m.users[user.Username]
	m.users[user.Username] = user
	return !existed, nil
}

func newTestService(repo *memoryUsers) *service {
	return NewService(repo, Config{Secret: testSecret, TTL: time.Hour, Cost: bcrypt.MinCost}).(*service)
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "alice", "secret1", nil},
		{"trimmed username too short", "  ab  ", "secret1", domain.ErrUsernameTooShort},
		{"password too short", "alice", "12345", domain.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryUsers()
			svc := newTestService(repo)

			profile, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.users)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Profile{Username: "alice"}, profile)

			stored := repo.users["alice"]
			assert.False(t, stored.IsAdmin)
			assert.NotEqual(t, tt.password, stored.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc := newTestService(newMemoryUsers())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, " alice ", "another1")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	repo := newMemoryUsers()
	svc := newTestService(repo)
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	profile, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.Profile, profile)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(newMemoryUsers())
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "wrong-password")
	_, unknownUser := svc.Login(ctx, "nobody", "secret1")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_DatabaseErrorIsNotCredentialsError(t *testing.T) {
	repo := newMemoryUsers()
	repo.err = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), "alice", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestParseToken_Rejects(t *testing.T) {
	svc := newTestService(newMemoryUsers())
	profile := domain.Profile{Username: "alice", IsAdmin: true}

	valid, _, err := svc.issueToken(profile)
	require.NoError(t, err)

	forger := NewService(newMemoryUsers(), Config{Secret: strings.Repeat("x", 32)}).(*service)
	forged, _, err := forger.issueToken(profile)
	require.NoError(t, err)

	expiredSvc := newTestService(newMemoryUsers())
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredSvc.issueToken(profile)
	require.NoError(t, err)

	otherIssuer := NewService(newMemoryUsers(), Config{Secret: testSecret, Issuer: "someone-else"}).(*service)
	wrongIssuer, _, err := otherIssuer.issueToken(profile)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice", "adm": true}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	got, err := svc.ParseToken(valid)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)

	for name, token := range map[string]string{
		"forged":       forged,
		"expired":      expired,
		"wrong issuer": wrongIssuer,
		"alg none":     none,
		"malformed":    "not.a.token",
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(newMemoryUsers())
	ctx := context.Background()
	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(ctx, "alice", "wrong-old", "newsecret"), domain.ErrInvalidCredentials)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "alice", "secret1", "short"), domain.ErrPasswordTooShort)

	require.NoError(t, svc.ChangePassword(ctx, "alice", "secret1", "newsecret"))
	_, err = svc.Login(ctx, "alice", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "alice", "newsecret")
	assert.NoError(t, err)
}

func TestSetPassword(t *testing.T) {
	repo := newMemoryUsers()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.SetPassword(ctx, "admin", "admin123", true)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.SetPassword(ctx, "admin", "changed1", true)
	require.NoError(t, err)
	assert.False(t, created)

	session, err := svc.Login(ctx, "admin", "changed1")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin)
}
