package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "component-catalog-backend/internal/errors"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubService fetches live repository metadata for catalogued components.
// A service token raises the API rate limit and grants access to private
// repositories; without one the client runs unauthenticated.
type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a GitHub service. Token may be empty.
func NewGitHubService(token string) *GitHubService {
	if token == "" {
		return &GitHubService{client: github.NewClient(nil)}
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubService{client: github.NewClient(tc)}
}

// RepositoryMetadata is the subset of repository state surfaced alongside a
// component's catalog entry
type RepositoryMetadata struct {
	FullName      string    `json:"full_name" example:"owner/my-repo"`
	Description   string    `json:"description" example:"Shared UI widgets"`
	DefaultBranch string    `json:"default_branch" example:"main"`
	Language      string    `json:"language" example:"Go"`
	Stars         int       `json:"stars" example:"42"`
	Forks         int       `json:"forks" example:"7"`
	OpenIssues    int       `json:"open_issues" example:"3"`
	Archived      bool      `json:"archived" example:"false"`
	PushedAt      time.Time `json:"pushed_at" example:"2025-06-01T12:00:00Z"`
	HTMLURL       string    `json:"html_url" example:"https://github.com/owner/my-repo"`
}

// parseRepositoryFromURL extracts owner and repository name from a GitHub URL
// Handles URLs like: https://github.com/owner/repo
// or https://github.com/owner/repo.git
func parseRepositoryFromURL(urlStr string) (owner, repoName string) {
	if urlStr == "" {
		return "", ""
	}

	urlStr = strings.TrimPrefix(urlStr, "https://")
	urlStr = strings.TrimPrefix(urlStr, "http://")
	urlStr = strings.TrimPrefix(urlStr, "git@github.com:")
	urlStr = strings.TrimSuffix(urlStr, "/")
	parts := strings.Split(urlStr, "/")

	// domain/owner/repo for web URLs, owner/repo for SSH remotes. The
	// domain is stripped even when no repo segment follows, so a repo-less
	// URL like https://github.com/owner fails the length check below.
	if len(parts) > 0 && strings.Contains(parts[0], ".") {
		parts = parts[1:]
	}
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}

	owner = parts[0]
	repoName = strings.TrimSuffix(parts[1], ".git")
	return owner, repoName
}

// GetRepositoryMetadata fetches live metadata for a component's linked
// repository. Components without a repository URL, or with one the GitHub
// API cannot resolve, are rejected before or after the call respectively.
func (s *GitHubService) GetRepositoryMetadata(ctx context.Context, repositoryURL string) (*RepositoryMetadata, error) {
	if repositoryURL == "" {
		return nil, apperrors.ErrRepositoryURLMissing
	}

	owner, repoName := parseRepositoryFromURL(repositoryURL)
	if owner == "" || repoName == "" {
		return nil, apperrors.ErrRepositoryURLInvalid
	}

	repo, resp, err := s.client.Repositories.Get(ctx, owner, repoName)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && resp != nil && resp.StatusCode == 404 {
			return nil, apperrors.ErrRepositoryURLInvalid
		}
		return nil, fmt.Errorf("failed to fetch repository %s/%s: %w", owner, repoName, err)
	}

	return &RepositoryMetadata{
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		DefaultBranch: repo.GetDefaultBranch(),
		Language:      repo.GetLanguage(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		Archived:      repo.GetArchived(),
		PushedAt:      repo.GetPushedAt().Time,
		HTMLURL:       repo.GetHTMLURL(),
	}, nil
}
