package services

import (
	"context"

	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/auth"
	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/internal/repositories"
	"github.com/miniactivity/server/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	accountRepo repositories.AccountRepository
	tokens      *auth.TokenManager
	bcryptCost  int
}

func NewAuthService(accountRepo repositories.AccountRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
		bcryptCost:  bcrypt.DefaultCost,
	}
}

// Register creates a person, user and email credential as one atomic unit.
// A duplicate email is rejected before anything is written.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Auth] Registering user: %s", email)

	existing, err := s.accountRepo.GetPersonByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Warnf("[Auth] Email already registered: %s", email)
		return nil, apperrors.NewValidationError("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	person := models.NewPerson(name, email)
	user := models.NewUser(person.ID)
	credential := models.NewCredential(user.ID, models.ProviderEmail, email, string(hash))

	if err := s.accountRepo.Register(person, user, credential); err != nil {
		return nil, err
	}

	log.Infof("[Auth] Registration successful: userId=%s", user.ID)
	return user, nil
}

// Login verifies an email credential and issues a signed token embedding
// the user id.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Auth] Attempt login: %s", email)

	credential, err := s.accountRepo.GetCredential(models.ProviderEmail, email)
	if err != nil {
		return nil, "", err
	}
	if credential == nil {
		log.Warnf("[Auth] Login failed - no credentials for: %s", email)
		return nil, "", apperrors.NewNotFoundError("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		log.Warnf("[Auth] Login failed - invalid password for: %s", email)
		return nil, "", apperrors.NewUnauthorizedError("Invalid credentials")
	}

	user, err := s.accountRepo.GetUserByID(credential.UserID.String())
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		// data-consistency guard: the credential points at a user
		// record that no longer exists
		log.Errorf("[Auth] Login failed - user record missing for credential: %s", credential.UserID)
		return nil, "", apperrors.NewNotFoundError("User not found")
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return nil, "", err
	}

	log.Infof("[Auth] Login successful: userId=%s", user.ID)
	return user, token, nil
}

// LoginWithGitHub finds or creates the account linked to a GitHub profile
// and issues the same token a password login would.
func (s *AuthService) LoginWithGitHub(ctx context.Context, profile *GitHubUser) (*models.User, string, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Auth] GitHub login: %s", profile.Login)

	credential, err := s.accountRepo.GetCredential(models.ProviderGitHub, profile.Login)
	if err != nil {
		return nil, "", err
	}

	var user *models.User
	if credential != nil {
		user, err = s.accountRepo.GetUserByID(credential.UserID.String())
		if err != nil {
			return nil, "", err
		}
		if user == nil {
			log.Errorf("[Auth] GitHub login failed - user record missing for credential: %s", credential.UserID)
			return nil, "", apperrors.NewNotFoundError("User not found")
		}
	} else {
		email := profile.Email
		if email == "" {
			email = profile.Login + "@users.noreply.github.com"
		}

		person := models.NewPerson(profile.Name, email)
		user = models.NewUser(person.ID)
		// OAuth-only credential, no password hash
		githubCredential := models.NewCredential(user.ID, models.ProviderGitHub, profile.Login, "")

		if err := s.accountRepo.Register(person, user, githubCredential); err != nil {
			return nil, "", err
		}
		log.Infof("[Auth] GitHub registration successful: userId=%s", user.ID)
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return nil, "", err
	}

	log.Infof("[Auth] GitHub login successful: userId=%s", user.ID)
	return user, token, nil
}
