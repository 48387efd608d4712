package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/auth"
	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "test@example.com"
	testPassword = "securepass"
	testName     = "Test User"
)

func newAuthService(repo *repositories.MemoryAccountRepository) (*AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	service := NewAuthService(repo, tokens)
	service.bcryptCost = bcrypt.MinCost
	return service, tokens
}

func TestRegisterCreatesAccountAtomically(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, _ := newAuthService(repo)
	ctx := context.Background()

	user, err := service.Register(ctx, testName, testEmail, testPassword)
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Len(t, repo.Persons, 1)
	assert.Len(t, repo.Users, 1)
	assert.Len(t, repo.Credentials, 1)

	person := repo.Persons[0]
	assert.Equal(t, testName, person.Name)
	assert.Equal(t, testEmail, person.Email)
	assert.Equal(t, person.ID, user.PersonID)

	credential := repo.Credentials[0]
	assert.Equal(t, models.ProviderEmail, credential.Provider)
	assert.Equal(t, testEmail, credential.Identifier)
	assert.Equal(t, user.ID, credential.UserID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(testPassword)))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, _ := newAuthService(repo)
	ctx := context.Background()

	_, err := service.Register(ctx, testName, testEmail, testPassword)
	require.NoError(t, err)

	_, err = service.Register(ctx, "Another", testEmail, "123456")

	var validationErr *apperrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Email already registered", validationErr.Message)

	// second attempt left the store untouched
	assert.Len(t, repo.Persons, 1)
	assert.Len(t, repo.Users, 1)
	assert.Len(t, repo.Credentials, 1)
}

func TestLoginIssuesTokenForRegisteredUser(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, tokens := newAuthService(repo)
	ctx := context.Background()

	registered, err := service.Register(ctx, testName, testEmail, testPassword)
	require.NoError(t, err)

	user, token, err := service.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, _ := newAuthService(repo)
	ctx := context.Background()

	_, err := service.Register(ctx, testName, testEmail, testPassword)
	require.NoError(t, err)

	_, _, err = service.Login(ctx, testEmail, "wrongpass")

	var unauthorizedErr *apperrors.UnauthorizedError
	require.True(t, errors.As(err, &unauthorizedErr))
	assert.Equal(t, "Invalid credentials", unauthorizedErr.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, _ := newAuthService(repo)

	_, _, err := service.Login(context.Background(), "nobody@example.com", testPassword)

	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
	assert.Equal(t, "User not found", notFoundErr.Message)
}

func TestLoginDanglingCredential(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, _ := newAuthService(repo)
	ctx := context.Background()

	_, err := service.Register(ctx, testName, testEmail, testPassword)
	require.NoError(t, err)

	// simulate a credential whose user record no longer exists
	repo.Users = nil

	_, _, err = service.Login(ctx, testEmail, testPassword)

	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestLoginWithGitHubCreatesAccountOnce(t *testing.T) {
	repo := repositories.NewMemoryAccountRepository()
	service, tokens := newAuthService(repo)
	ctx := context.Background()

	profile := &GitHubUser{ID: 42, Login: "octocat", Name: "Octo Cat", Email: ""}

	user, token, err := service.LoginWithGitHub(ctx, profile)
	require.NoError(t, err)
	require.NotNil(t, user)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)

	assert.Len(t, repo.Credentials, 1)
	assert.Equal(t, models.ProviderGitHub, repo.Credentials[0].Provider)
	assert.Equal(t, "octocat", repo.Credentials[0].Identifier)
	assert.Empty(t, repo.Credentials[0].PasswordHash)

	// a second login reuses the account
	again, _, err := service.LoginWithGitHub(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Len(t, repo.Users, 1)
	assert.Len(t, repo.Credentials, 1)
}
