package services

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v57/github"
	"github.com/miniactivity/server/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

type GitHubService struct {
	oauthConfig *oauth2.Config
}

type GitHubUser struct {
	ID    int64
	Login string
	Name  string
	Email string
}

func NewGitHubService() *GitHubService {
	oauthConfig := &oauth2.Config{
		ClientID:     config.AppConfig.GitHub.ClientID,
		ClientSecret: config.AppConfig.GitHub.ClientSecret,
		RedirectURL:  config.AppConfig.GitHub.CallbackURL,
		Scopes: []string{
			"user:email", // Access to user's email addresses
			"read:user",  // Read access to user profile data
		},
		Endpoint: github.Endpoint,
	}

	return &GitHubService{
		oauthConfig: oauthConfig,
	}
}

// GetAuthURL returns the GitHub OAuth authorization URL
func (s *GitHubService) GetAuthURL() string {
	return s.oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// ExchangeCodeForToken exchanges authorization code for access token
func (s *GitHubService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetUserInfo retrieves the authenticated user's profile from GitHub
func (s *GitHubService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*GitHubUser, error) {
	client := gogithub.NewClient(s.oauthConfig.Client(ctx, token))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	profile := &GitHubUser{
		ID:    user.GetID(),
		Login: user.GetLogin(),
		Name:  user.GetName(),
		Email: user.GetEmail(),
	}
	if profile.Name == "" {
		profile.Name = profile.Login
	}

	return profile, nil
}
