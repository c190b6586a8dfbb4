package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/jwt"
)

const (
	testSecret   = "unit-test-secret"
	testIssuer   = "bookstore-api"
	testPassword = "correct horse battery staple"
)

type fakeUserRepo struct {
	users map[string]user.User
	err   error
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &u, nil
}

func newService(t *testing.T) (user.Service, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]user.User{
		"admin": {
			ID:           3,
			Username:     "admin",
			Email:        "admin@bookstore.local",
			PasswordHash: string(hash),
			Roles:        []string{"Administrator"},
		},
	}}
	return NewUserService(repo, jwt.NewIssuer(testSecret, testIssuer)), repo
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	resp, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "admin", Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwt.NewIssuer(testSecret, testIssuer).Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@bookstore.local", claims.Subject)
	assert.Equal(t, int64(3), claims.UserID)
	assert.Contains(t, claims.Roles, "Administrator")
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "admin", Password: "guessed",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownUsernameMatchesWrongPassword(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "nobody", Password: testPassword,
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginStoreFaultIsNotInvalidCredentials(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	repo.err = errors.New("store unavailable")

	_, err := svc.Login(context.Background(), &user.LoginRequest{
		Username: "admin", Password: testPassword,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginMissingFieldsFailValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), &user.LoginRequest{Username: "admin"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrInvalidCredentials)
}
