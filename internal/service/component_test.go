package service_test

import (
	"errors"
	"testing"

	"component-catalog-backend/internal/database/models"
	apperrors "component-catalog-backend/internal/errors"
	"component-catalog-backend/internal/mocks"
	"component-catalog-backend/internal/repository"
	"component-catalog-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ComponentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockComponentRepo *mocks.MockComponentRepositoryInterface
	mockCategoryRepo  *mocks.MockCategoryRepositoryInterface
	mockTagRepo       *mocks.MockTagRepositoryInterface
	componentService  *service.ComponentService
	validator         *validator.Validate
}

func (suite *ComponentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.mockCategoryRepo = mocks.NewMockCategoryRepositoryInterface(suite.ctrl)
	suite.mockTagRepo = mocks.NewMockTagRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.componentService = service.NewComponentService(
		suite.mockComponentRepo, suite.mockCategoryRepo, suite.mockTagRepo, suite.validator)
}

func (suite *ComponentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_Success() {
	var createdID uuid.UUID
	suite.mockComponentRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(c *models.Component, h *models.VersionHistory, tagIDs []uuid.UUID) error {
			c.ID = uuid.New()
			createdID = c.ID
			// The initial history row carries the registration note
			assert.Equal(suite.T(), "component registered", h.Changes)
			assert.Equal(suite.T(), "dana", h.ChangedBy)
			assert.Equal(suite.T(), "2.3.0", h.Version)
			assert.Empty(suite.T(), tagIDs)
			return nil
		})
	suite.mockComponentRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(
		func(id uuid.UUID) (*models.Component, error) {
			assert.Equal(suite.T(), createdID, id)
			return &models.Component{
				BaseModel: models.BaseModel{ID: id},
				Name:      "session-service",
				Version:   "2.3.0",
				CreatedBy: "dana",
			}, nil
		})

	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name:    "session-service",
		Version: "2.3.0",
	}, "dana")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), component)
	assert.Equal(suite.T(), "session-service", component.Name)
	assert.Equal(suite.T(), "dana", component.CreatedBy)
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_SeedsTags() {
	goTag := &models.Tag{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "go"}

	// "go" already exists; "postgres" gets created on demand
	suite.mockTagRepo.EXPECT().GetByName("go").Return(goTag, nil)
	suite.mockTagRepo.EXPECT().GetByName("postgres").Return(nil, gorm.ErrRecordNotFound)
	var postgresTagID uuid.UUID
	suite.mockTagRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Tag) error {
		assert.Equal(suite.T(), "postgres", t.Name)
		t.ID = uuid.New()
		postgresTagID = t.ID
		return nil
	})
	// Both resolved tag IDs travel into the transactional create
	suite.mockComponentRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(c *models.Component, h *models.VersionHistory, tagIDs []uuid.UUID) error {
			c.ID = uuid.New()
			assert.Equal(suite.T(), []uuid.UUID{goTag.ID, postgresTagID}, tagIDs)
			return nil
		})
	suite.mockComponentRepo.EXPECT().GetByID(gomock.Any()).Return(&models.Component{Name: "session-service"}, nil)

	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name: "session-service",
		Tags: []string{"go", "postgres"},
	}, "dana")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), component)
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_TagResolutionFailureWritesNothing() {
	// The component repo gets no Create expectation: a tag lookup failure
	// must abort the registration before any component row is written
	suite.mockTagRepo.EXPECT().GetByName("go").Return(nil, errors.New("connection reset"))

	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name: "session-service",
		Tags: []string{"go"},
	}, "dana")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), component)
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_MissingCategory() {
	categoryID := uuid.New()
	suite.mockCategoryRepo.EXPECT().GetByID(categoryID).Return(nil, gorm.ErrRecordNotFound)

	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name:       "session-service",
		CategoryID: &categoryID,
	}, "dana")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), component)
	assert.True(suite.T(), apperrors.IsReferenceViolation(err))
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_DuplicateName() {
	suite.mockComponentRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)

	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name: "session-service",
	}, "dana")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), component)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrComponentExists))
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_InvalidStatus() {
	badStatus := "retired"
	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name:   "session-service",
		Status: &badStatus,
	}, "dana")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), component)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidStatus))
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_InvalidComplexity() {
	badComplexity := "extreme"
	component, err := suite.componentService.Create(&service.CreateComponentRequest{
		Name:       "session-service",
		Complexity: &badComplexity,
	}, "dana")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), component)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrInvalidComplexity))
}

func (suite *ComponentServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockComponentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	component, err := suite.componentService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), component)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrComponentNotFound))
}

func (suite *ComponentServiceTestSuite) TestList_NormalizesPagination() {
	suite.mockComponentRepo.EXPECT().
		List(repository.ComponentFilter{}, 50, 0).
		Return([]models.Component{}, int64(0), nil)

	resp, err := suite.componentService.List(service.ComponentListFilters{}, -1, -5)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), 50, resp.Limit)
	assert.Equal(suite.T(), 0, resp.Offset)
}

func (suite *ComponentServiceTestSuite) TestList_PassesFilters() {
	archived := false
	categoryID := uuid.New()
	expected := repository.ComponentFilter{
		CategoryID: &categoryID,
		Tag:        "go",
		Archived:   &archived,
		Query:      "session",
	}
	suite.mockComponentRepo.EXPECT().
		List(expected, 10, 20).
		Return([]models.Component{{Name: "session-service"}}, int64(1), nil)

	resp, err := suite.componentService.List(service.ComponentListFilters{
		CategoryID: &categoryID,
		Tag:        "go",
		Archived:   &archived,
		Query:      "session",
	}, 10, 20)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Components, 1)
}

func (suite *ComponentServiceTestSuite) TestUpdateComponent_RecordsHistory() {
	id := uuid.New()
	existing := &models.Component{
		BaseModel: models.BaseModel{ID: id},
		Name:      "session-service",
		Version:   "2.3.0",
	}
	suite.mockComponentRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockComponentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(c *models.Component, h *models.VersionHistory) error {
			assert.Equal(suite.T(), "2.4.0", c.Version)
			assert.Equal(suite.T(), "2.4.0", h.Version)
			assert.Equal(suite.T(), "bumped to 2.4.0", h.Changes)
			assert.Equal(suite.T(), "omer", h.ChangedBy)
			return nil
		})
	suite.mockComponentRepo.EXPECT().GetByID(id).Return(existing, nil)

	newVersion := "2.4.0"
	_, err := suite.componentService.Update(id, &service.UpdateComponentRequest{
		Version: &newVersion,
		Changes: "bumped to 2.4.0",
	}, "omer")

	assert.NoError(suite.T(), err)
}

func (suite *ComponentServiceTestSuite) TestUpdateComponent_DefaultHistoryNote() {
	id := uuid.New()
	existing := &models.Component{BaseModel: models.BaseModel{ID: id}, Name: "session-service"}
	suite.mockComponentRepo.EXPECT().GetByID(id).Return(existing, nil)
	suite.mockComponentRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(c *models.Component, h *models.VersionHistory) error {
			assert.Equal(suite.T(), "component updated", h.Changes)
			return nil
		})
	suite.mockComponentRepo.EXPECT().GetByID(id).Return(existing, nil)

	newDescription := "now with session revocation"
	_, err := suite.componentService.Update(id, &service.UpdateComponentRequest{
		Description: &newDescription,
	}, "omer")

	assert.NoError(suite.T(), err)
}

func (suite *ComponentServiceTestSuite) TestSetArchived_NotFound() {
	id := uuid.New()
	suite.mockComponentRepo.EXPECT().SetArchived(id, true).Return(gorm.ErrRecordNotFound)

	err := suite.componentService.SetArchived(id, true)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrComponentNotFound))
}

func (suite *ComponentServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	suite.mockComponentRepo.EXPECT().Delete(id).Return(nil)

	err := suite.componentService.Delete(id)

	assert.NoError(suite.T(), err)
}

func (suite *ComponentServiceTestSuite) TestAttachTag_ComponentMissing() {
	componentID, tagID := uuid.New(), uuid.New()
	suite.mockComponentRepo.EXPECT().Exists(componentID).Return(false, nil)

	err := suite.componentService.AttachTag(componentID, tagID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrComponentNotFound))
}

func (suite *ComponentServiceTestSuite) TestAttachTag_TagMissing() {
	componentID, tagID := uuid.New(), uuid.New()
	suite.mockComponentRepo.EXPECT().Exists(componentID).Return(true, nil)
	suite.mockTagRepo.EXPECT().GetByID(tagID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.componentService.AttachTag(componentID, tagID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrTagNotFound))
}

func (suite *ComponentServiceTestSuite) TestDetachTag_NotAttached() {
	componentID, tagID := uuid.New(), uuid.New()
	suite.mockComponentRepo.EXPECT().DetachTag(componentID, tagID).Return(gorm.ErrRecordNotFound)

	err := suite.componentService.DetachTag(componentID, tagID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, apperrors.ErrTagAssociationNotFound))
}

func TestComponentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentServiceTestSuite))
}
