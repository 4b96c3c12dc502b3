package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"component-catalog-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite defines the test suite for AuthMiddleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	service    *auth.AuthService
	middleware *auth.AuthMiddleware
	router     *gin.Engine
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	var err error
	suite.service, err = auth.NewAuthService(&auth.AuthConfig{
		JWTSecret:     "test-secret",
		TokenLifetime: "1h",
	})
	assert.NoError(suite.T(), err)
	suite.middleware = auth.NewAuthMiddleware(suite.service)

	whoami := func(c *gin.Context) {
		username, _ := auth.GetUsername(c)
		email, _ := auth.GetEmail(c)
		c.JSON(http.StatusOK, gin.H{"username": username, "email": email})
	}

	suite.router = gin.New()
	suite.router.GET("/protected", suite.middleware.RequireAuth(), whoami)
	suite.router.GET("/public", suite.middleware.OptionalAuth(), whoami)
}

func (suite *AuthMiddlewareTestSuite) issueToken() string {
	token, err := suite.service.GenerateJWT("dana", "dana.fisher@example.com")
	assert.NoError(suite.T(), err)
	return token
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_MissingHeader() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "authorization header is required")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_MalformedHeader() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", suite.issueToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid authorization header format")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_InvalidToken() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid or expired token")
}

func (suite *AuthMiddlewareTestSuite) TestRequireAuth_ValidTokenSetsContext() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+suite.issueToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"username":"dana"`)
	assert.Contains(suite.T(), w.Body.String(), `"email":"dana.fisher@example.com"`)
}

func (suite *AuthMiddlewareTestSuite) TestOptionalAuth_AnonymousPasses() {
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"username":""`)
}

func (suite *AuthMiddlewareTestSuite) TestOptionalAuth_InvalidTokenStillPasses() {
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"username":""`)
}

func (suite *AuthMiddlewareTestSuite) TestOptionalAuth_ValidTokenAttributed() {
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("Authorization", "Bearer "+suite.issueToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `"username":"dana"`)
}

func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
