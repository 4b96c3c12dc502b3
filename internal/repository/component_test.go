package repository

import (
	"errors"
	"testing"
	"time"

	"component-catalog-backend/internal/database/models"
	"component-catalog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ComponentRepository
	factory       *testutils.ComponentFactory
	tagFactory    *testutils.TagFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewComponentRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewComponentFactory()
	suite.tagFactory = testutils.NewTagFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a component directly via gorm
func (suite *ComponentRepositoryTestSuite) createComponent(component *models.Component) *models.Component {
	err := suite.baseTestSuite.DB.Create(component).Error
	suite.NoError(err)
	return component
}

// helper to insert a tag directly via gorm
func (suite *ComponentRepositoryTestSuite) createTag(tag *models.Tag) *models.Tag {
	err := suite.baseTestSuite.DB.Create(tag).Error
	suite.NoError(err)
	return tag
}

// TestCreateWithHistory tests that create writes the component and its
// initial version-history row together
func (suite *ComponentRepositoryTestSuite) TestCreateWithHistory() {
	component := suite.factory.WithName("session-service")
	history := &models.VersionHistory{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Version:   component.Version,
		Changes:   "component registered",
		ChangedBy: "tester",
	}

	err := suite.repo.Create(component, history, nil)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Equal("session-service", retrieved.Name)

	var historyRows []models.VersionHistory
	err = suite.baseTestSuite.DB.Where("component_id = ?", component.ID).Find(&historyRows).Error
	suite.NoError(err)
	suite.Len(historyRows, 1)
	suite.Equal("component registered", historyRows[0].Changes)
	suite.Equal("tester", historyRows[0].ChangedBy)
}

// TestCreateWithTags tests that create writes the tag associations in the
// same transaction as the component
func (suite *ComponentRepositoryTestSuite) TestCreateWithTags() {
	goTag := suite.createTag(suite.tagFactory.WithName("go"))
	pgTag := suite.createTag(suite.tagFactory.WithName("postgres"))

	component := suite.factory.WithName("session-service")
	err := suite.repo.Create(component, nil, []uuid.UUID{goTag.ID, pgTag.ID})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Len(retrieved.Tags, 2)

	var joinCount int64
	suite.baseTestSuite.DB.Model(&models.ComponentTag{}).
		Where("component_id = ?", component.ID).
		Count(&joinCount)
	suite.Equal(int64(2), joinCount)
}

// TestCreateWithUnknownTagWritesNothing tests that a bad tag reference rolls
// back the whole create, leaving no component row behind
func (suite *ComponentRepositoryTestSuite) TestCreateWithUnknownTagWritesNothing() {
	component := suite.factory.WithName("session-service")

	err := suite.repo.Create(component, nil, []uuid.UUID{uuid.New()})
	suite.Error(err)

	var componentCount int64
	suite.baseTestSuite.DB.Model(&models.Component{}).
		Where("name = ?", "session-service").
		Count(&componentCount)
	suite.Equal(int64(0), componentCount)
}

// TestCreateDuplicateName tests that the unique index on name rejects a
// second component with the same name
func (suite *ComponentRepositoryTestSuite) TestCreateDuplicateName() {
	suite.createComponent(suite.factory.WithName("event-batcher"))

	duplicate := suite.factory.WithName("event-batcher")
	err := suite.repo.Create(duplicate, nil, nil)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestGetByIDNotFound tests retrieving a non-existent component
func (suite *ComponentRepositoryTestSuite) TestGetByIDNotFound() {
	component, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(component)
}

// TestGetByIDPreloadsTags tests that GetByID preloads tag associations
func (suite *ComponentRepositoryTestSuite) TestGetByIDPreloadsTags() {
	component := suite.createComponent(suite.factory.Create())
	tag := suite.createTag(suite.tagFactory.WithName("postgres"))
	suite.NoError(suite.repo.AttachTag(component.ID, tag.ID))

	retrieved, err := suite.repo.GetByID(component.ID)

	suite.NoError(err)
	suite.Len(retrieved.Tags, 1)
	suite.Equal("postgres", retrieved.Tags[0].Name)
}

// TestListOrdering tests listing components ordered by name ascending
func (suite *ComponentRepositoryTestSuite) TestListOrdering() {
	suite.createComponent(suite.factory.WithName("charlie"))
	suite.createComponent(suite.factory.WithName("alpha"))
	suite.createComponent(suite.factory.WithName("bravo"))

	items, total, err := suite.repo.List(ComponentFilter{}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(items, 3)
	suite.Equal("alpha", items[0].Name)
	suite.Equal("bravo", items[1].Name)
	suite.Equal("charlie", items[2].Name)
}

// TestListByArchived tests filtering by the archive flag
func (suite *ComponentRepositoryTestSuite) TestListByArchived() {
	suite.createComponent(suite.factory.Create())
	archived := suite.createComponent(suite.factory.Archived())

	flag := true
	items, total, err := suite.repo.List(ComponentFilter{Archived: &flag}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(items, 1)
	suite.Equal(archived.ID, items[0].ID)
}

// TestListByQuery tests the case-insensitive name/description search
func (suite *ComponentRepositoryTestSuite) TestListByQuery() {
	suite.createComponent(suite.factory.WithName("session-service"))
	other := suite.factory.WithName("form-kit")
	other.Description = "Session-aware form widgets"
	suite.createComponent(other)
	suite.createComponent(suite.factory.WithName("event-batcher"))

	items, total, err := suite.repo.List(ComponentFilter{Query: "SESSION"}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(items, 2)
}

// TestListByTag tests filtering components by tag name
func (suite *ComponentRepositoryTestSuite) TestListByTag() {
	tagged := suite.createComponent(suite.factory.WithName("session-service"))
	suite.createComponent(suite.factory.WithName("form-kit"))
	tag := suite.createTag(suite.tagFactory.WithName("go"))
	suite.NoError(suite.repo.AttachTag(tagged.ID, tag.ID))

	items, total, err := suite.repo.List(ComponentFilter{Tag: "go"}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(items, 1)
	suite.Equal(tagged.ID, items[0].ID)
}

// TestListByCategory tests filtering components by category
func (suite *ComponentRepositoryTestSuite) TestListByCategory() {
	category := &models.Category{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "authentication",
	}
	suite.NoError(suite.baseTestSuite.DB.Create(category).Error)

	inCategory := suite.createComponent(suite.factory.WithCategory(category.ID))
	suite.createComponent(suite.factory.Create())

	items, total, err := suite.repo.List(ComponentFilter{CategoryID: &category.ID}, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(items, 1)
	suite.Equal(inCategory.ID, items[0].ID)
}

// TestUpdateRefreshesUpdatedAt tests that updates advance updated_at while
// created_at stays fixed
func (suite *ComponentRepositoryTestSuite) TestUpdateRefreshesUpdatedAt() {
	component := suite.factory.Create()
	component.CreatedAt = time.Now().Add(-time.Hour)
	component.UpdatedAt = component.CreatedAt
	suite.createComponent(component)

	component.Description = "updated description"
	err := suite.repo.Update(component, &models.VersionHistory{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Version:   component.Version,
		Changes:   "description changed",
		ChangedBy: "tester",
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Equal("updated description", retrieved.Description)
	suite.True(retrieved.UpdatedAt.After(retrieved.CreatedAt))
	suite.WithinDuration(time.Now().Add(-time.Hour), retrieved.CreatedAt, time.Minute)

	var historyCount int64
	suite.baseTestSuite.DB.Model(&models.VersionHistory{}).Where("component_id = ?", component.ID).Count(&historyCount)
	suite.Equal(int64(1), historyCount)
}

// TestSetArchived tests toggling the archive flag
func (suite *ComponentRepositoryTestSuite) TestSetArchived() {
	component := suite.createComponent(suite.factory.Create())

	err := suite.repo.SetArchived(component.ID, true)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.True(retrieved.IsArchived)
}

// TestSetArchivedNotFound tests archiving a non-existent component
func (suite *ComponentRepositoryTestSuite) TestSetArchivedNotFound() {
	err := suite.repo.SetArchived(uuid.New(), true)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteCascades tests that delete removes detail rows and tag
// associations along with the component
func (suite *ComponentRepositoryTestSuite) TestDeleteCascades() {
	component := suite.createComponent(suite.factory.Create())
	tag := suite.createTag(suite.tagFactory.Create())
	suite.NoError(suite.repo.AttachTag(component.ID, tag.ID))

	feature := &models.Feature{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "token refresh",
	}
	feature.SetComponentID(component.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(feature).Error)

	maintainer := &models.Maintainer{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Dana Fisher",
		Email:     "dana.fisher@example.com",
	}
	maintainer.SetComponentID(component.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(maintainer).Error)

	err := suite.repo.Delete(component.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(component.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var featureCount, maintainerCount, joinCount int64
	suite.baseTestSuite.DB.Model(&models.Feature{}).Where("component_id = ?", component.ID).Count(&featureCount)
	suite.baseTestSuite.DB.Model(&models.Maintainer{}).Where("component_id = ?", component.ID).Count(&maintainerCount)
	suite.baseTestSuite.DB.Model(&models.ComponentTag{}).Where("component_id = ?", component.ID).Count(&joinCount)
	suite.Equal(int64(0), featureCount)
	suite.Equal(int64(0), maintainerCount)
	suite.Equal(int64(0), joinCount)

	// The tag itself survives
	var tagCount int64
	suite.baseTestSuite.DB.Model(&models.Tag{}).Where("id = ?", tag.ID).Count(&tagCount)
	suite.Equal(int64(1), tagCount)
}

// TestDeleteNotFound tests deleting a non-existent component
func (suite *ComponentRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestAttachTagIdempotent tests that attaching the same tag twice leaves a
// single association row
func (suite *ComponentRepositoryTestSuite) TestAttachTagIdempotent() {
	component := suite.createComponent(suite.factory.Create())
	tag := suite.createTag(suite.tagFactory.Create())

	suite.NoError(suite.repo.AttachTag(component.ID, tag.ID))
	suite.NoError(suite.repo.AttachTag(component.ID, tag.ID))

	var joinCount int64
	suite.baseTestSuite.DB.Model(&models.ComponentTag{}).
		Where("component_id = ? AND tag_id = ?", component.ID, tag.ID).
		Count(&joinCount)
	suite.Equal(int64(1), joinCount)
}

// TestDetachTag tests removing a tag association
func (suite *ComponentRepositoryTestSuite) TestDetachTag() {
	component := suite.createComponent(suite.factory.Create())
	tag := suite.createTag(suite.tagFactory.Create())
	suite.NoError(suite.repo.AttachTag(component.ID, tag.ID))

	err := suite.repo.DetachTag(component.ID, tag.ID)
	suite.NoError(err)

	var joinCount int64
	suite.baseTestSuite.DB.Model(&models.ComponentTag{}).Where("component_id = ?", component.ID).Count(&joinCount)
	suite.Equal(int64(0), joinCount)
}

// TestDetachTagNotFound tests detaching an association that does not exist
func (suite *ComponentRepositoryTestSuite) TestDetachTagNotFound() {
	component := suite.createComponent(suite.factory.Create())
	tag := suite.createTag(suite.tagFactory.Create())

	err := suite.repo.DetachTag(component.ID, tag.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestExists tests the existence check
func (suite *ComponentRepositoryTestSuite) TestExists() {
	component := suite.createComponent(suite.factory.Create())

	exists, err := suite.repo.Exists(component.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// Run the test suite
func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
