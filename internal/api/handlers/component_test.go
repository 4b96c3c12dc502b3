package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"component-catalog-backend/internal/api/handlers"
	"component-catalog-backend/internal/database/models"
	"component-catalog-backend/internal/mocks"
	"component-catalog-backend/internal/repository"
	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ComponentHandlerTestSuite defines the test suite for ComponentHandler
type ComponentHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockComponentRepo *mocks.MockComponentRepositoryInterface
	mockCategoryRepo  *mocks.MockCategoryRepositoryInterface
	mockTagRepo       *mocks.MockTagRepositoryInterface
	handler           *handlers.ComponentHandler
	router            *gin.Engine
}

func (suite *ComponentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.mockTagRepo = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	componentService := service.NewComponentService(
		suite.mockComponentRepo, suite.mockCategoryRepo, suite.mockTagRepo, validator.New())
	suite.handler = handlers.NewComponentHandler(componentService, service.NewGitHubService(""))

	suite.router = gin.New()
	// Stand-in for the auth middleware
	suite.router.Use(func(c *gin.Context) {
		c.Set("username", "dana")
		c.Next()
	})
	suite.router.GET("/components", suite.handler.ListComponents)
	suite.router.GET("/components/:id", suite.handler.GetComponent)
	suite.router.POST("/components", suite.handler.CreateComponent)
	suite.router.PUT("/components/:id", suite.handler.UpdateComponent)
	suite.router.DELETE("/components/:id", suite.handler.DeleteComponent)
	suite.router.POST("/components/:id/archive", suite.handler.ArchiveComponent)
	suite.router.POST("/components/:id/unarchive", suite.handler.UnarchiveComponent)
	suite.router.PUT("/components/:id/tags/:tagId", suite.handler.AttachTag)
	suite.router.DELETE("/components/:id/tags/:tagId", suite.handler.DetachTag)
}

func (suite *ComponentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentHandlerTestSuite) TestListComponents_Success() {
	components := []models.Component{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "session-service"},
	}
	suite.mockComponentRepo.EXPECT().
		List(repository.ComponentFilter{}, 50, 0).
		Return(components, int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/components", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ComponentListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Components, 1)
}

func (suite *ComponentHandlerTestSuite) TestListComponents_FiltersForwarded() {
	archived := true
	suite.mockComponentRepo.EXPECT().
		List(repository.ComponentFilter{Tag: "go", Archived: &archived, Query: "session"}, 50, 0).
		Return([]models.Component{}, int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/components?tag=go&archived=true&q=session", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestListComponents_InvalidArchivedFlag() {
	req := httptest.NewRequest(http.MethodGet, "/components?archived=maybe", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid archived flag")
}

func (suite *ComponentHandlerTestSuite) TestListComponents_InvalidCategoryID() {
	req := httptest.NewRequest(http.MethodGet, "/components?category_id=nope", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid category ID")
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent_RecordsCreator() {
	var created *models.Component
	suite.mockComponentRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(c *models.Component, h *models.VersionHistory, tagIDs []uuid.UUID) error {
			c.ID = uuid.New()
			created = c
			assert.Equal(suite.T(), "dana", h.ChangedBy)
			return nil
		})
	suite.mockComponentRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(
		func(id uuid.UUID) (*models.Component, error) {
			return created, nil
		})

	body, _ := json.Marshal(map[string]any{"name": "session-service", "version": "2.3.0"})
	req := httptest.NewRequest(http.MethodPost, "/components", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "dana", created.CreatedBy)
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent_DuplicateName() {
	suite.mockComponentRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	body, _ := json.Marshal(map[string]any{"name": "session-service"})
	req := httptest.NewRequest(http.MethodPost, "/components", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestCreateComponent_MissingCategory() {
	categoryID := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(nil, gorm.ErrRecordNotFound)

	body, _ := json.Marshal(map[string]any{"name": "session-service", "category_id": categoryID})
	req := httptest.NewRequest(http.MethodPost, "/components", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestGetComponent_NotFound() {
	id := uuid.New()
	suite.mockComponentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodGet, "/components/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestArchiveComponent_Success() {
	id := uuid.New()
	suite.mockComponentRepo.EXPECT().SetArchived(id, true).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/components/"+id.String()+"/archive", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestUnarchiveComponent_NotFound() {
	id := uuid.New()
	suite.mockComponentRepo.EXPECT().SetArchived(id, false).Return(gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodPost, "/components/"+id.String()+"/unarchive", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestAttachTag_TagMissing() {
	componentID, tagID := uuid.New(), uuid.New()
	suite.mockComponentRepo.EXPECT().Exists(componentID).Return(true, nil)
	suite.mockTagRepo.EXPECT().GetByID(tagID).Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodPut, "/components/"+componentID.String()+"/tags/"+tagID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestDetachTag_NotAttached() {
	componentID, tagID := uuid.New(), uuid.New()
	suite.mockComponentRepo.EXPECT().DetachTag(componentID, tagID).Return(gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/components/"+componentID.String()+"/tags/"+tagID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ComponentHandlerTestSuite) TestDetachTag_InvalidTagID() {
	componentID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/components/"+componentID.String()+"/tags/nope", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Invalid tag ID")
}

func TestComponentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentHandlerTestSuite))
}
