package service

import (
	"context"
	"errors"
	"testing"

	apperrors "component-catalog-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

// TestParseRepositoryFromURL_Internal tests the internal parseRepositoryFromURL function
func TestParseRepositoryFromURL_Internal(t *testing.T) {
	tests := []struct {
		name             string
		url              string
		expectedOwner    string
		expectedRepoName string
	}{
		{
			name:             "StandardGitHubURL",
			url:              "https://github.com/example/session-service",
			expectedOwner:    "example",
			expectedRepoName: "session-service",
		},
		{
			name:             "URLWithGitSuffix",
			url:              "https://github.com/example/session-service.git",
			expectedOwner:    "example",
			expectedRepoName: "session-service",
		},
		{
			name:             "URLWithTrailingSlash",
			url:              "https://github.com/example/session-service/",
			expectedOwner:    "example",
			expectedRepoName: "session-service",
		},
		{
			name:             "SSHRemote",
			url:              "git@github.com:example/session-service.git",
			expectedOwner:    "example",
			expectedRepoName: "session-service",
		},
		{
			name:             "HTTPProtocol",
			url:              "http://github.com/example/session-service",
			expectedOwner:    "example",
			expectedRepoName: "session-service",
		},
		{
			name:             "EnterpriseHost",
			url:              "https://github.example.com/myorg/myrepo",
			expectedOwner:    "myorg",
			expectedRepoName: "myrepo",
		},
		{
			name:             "EmptyURL",
			url:              "",
			expectedOwner:    "",
			expectedRepoName: "",
		},
		{
			name:             "URLWithOnlyOwner",
			url:              "https://github.com/owner",
			expectedOwner:    "",
			expectedRepoName: "",
		},
		{
			name:             "BareHost",
			url:              "https://github.com/",
			expectedOwner:    "",
			expectedRepoName: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repoName := parseRepositoryFromURL(tt.url)
			assert.Equal(t, tt.expectedOwner, owner)
			assert.Equal(t, tt.expectedRepoName, repoName)
		})
	}
}

// TestGetRepositoryMetadata_URLValidation tests the rejections that happen
// before any API call is made
func TestGetRepositoryMetadata_URLValidation(t *testing.T) {
	svc := NewGitHubService("")

	t.Run("MissingURL", func(t *testing.T) {
		metadata, err := svc.GetRepositoryMetadata(context.Background(), "")
		assert.Error(t, err)
		assert.Nil(t, metadata)
		assert.True(t, errors.Is(err, apperrors.ErrRepositoryURLMissing))
	})

	t.Run("UnparseableURL", func(t *testing.T) {
		metadata, err := svc.GetRepositoryMetadata(context.Background(), "https://github.com/owner")
		assert.Error(t, err)
		assert.Nil(t, metadata)
		assert.True(t, errors.Is(err, apperrors.ErrRepositoryURLInvalid))
	})
}
