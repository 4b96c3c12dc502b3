package repository

import (
	"testing"

	"component-catalog-backend/internal/database/models"
	"component-catalog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DetailRepositoryTestSuite tests the generic DetailRepository using the
// Feature and Maintainer tables as representatives
type DetailRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite   *testutils.BaseTestSuite
	featureRepo      *DetailRepository[models.Feature, *models.Feature]
	maintainerRepo   *DetailRepository[models.Maintainer, *models.Maintainer]
	componentOwner   *models.Component
	componentOther   *models.Component
	componentFactory *testutils.ComponentFactory
}

// SetupSuite runs before all tests in the suite
func (suite *DetailRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.featureRepo = NewDetailRepository[models.Feature](suite.baseTestSuite.DB)
	suite.maintainerRepo = NewDetailRepository[models.Maintainer](suite.baseTestSuite.DB)
	suite.componentFactory = testutils.NewComponentFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *DetailRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds two owning components
func (suite *DetailRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.componentOwner = suite.componentFactory.Create()
	suite.componentOther = suite.componentFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.componentOwner).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.componentOther).Error)
}

// TearDownTest runs after each test
func (suite *DetailRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a feature for a component
func (suite *DetailRepositoryTestSuite) createFeature(componentID uuid.UUID, name string) *models.Feature {
	feature := &models.Feature{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
	}
	feature.SetComponentID(componentID)
	suite.NoError(suite.featureRepo.Create(feature))
	return feature
}

// TestCreateAndGet tests inserting and retrieving a detail row
func (suite *DetailRepositoryTestSuite) TestCreateAndGet() {
	feature := suite.createFeature(suite.componentOwner.ID, "token refresh")

	retrieved, err := suite.featureRepo.GetByID(feature.ID)

	suite.NoError(err)
	suite.Equal("token refresh", retrieved.Name)
	suite.Equal(suite.componentOwner.ID, retrieved.GetComponentID())
}

// TestGetByIDNotFound tests retrieving a non-existent detail row
func (suite *DetailRepositoryTestSuite) TestGetByIDNotFound() {
	row, err := suite.featureRepo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(row)
}

// TestListByComponent tests that listing is scoped to the owning component
func (suite *DetailRepositoryTestSuite) TestListByComponent() {
	suite.createFeature(suite.componentOwner.ID, "token refresh")
	suite.createFeature(suite.componentOwner.ID, "session revocation")
	suite.createFeature(suite.componentOther.ID, "csv export")

	rows, total, err := suite.featureRepo.ListByComponent(suite.componentOwner.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(rows, 2)
	for _, row := range rows {
		suite.Equal(suite.componentOwner.ID, row.GetComponentID())
	}
}

// TestUpdate tests saving changes to a detail row
func (suite *DetailRepositoryTestSuite) TestUpdate() {
	feature := suite.createFeature(suite.componentOwner.ID, "token refresh")
	feature.Description = "rotates refresh tokens on use"

	err := suite.featureRepo.Update(feature)

	suite.NoError(err)
	retrieved, err := suite.featureRepo.GetByID(feature.ID)
	suite.NoError(err)
	suite.Equal("rotates refresh tokens on use", retrieved.Description)
}

// TestDelete tests removing a detail row
func (suite *DetailRepositoryTestSuite) TestDelete() {
	feature := suite.createFeature(suite.componentOwner.ID, "token refresh")

	err := suite.featureRepo.Delete(feature.ID)

	suite.NoError(err)
	_, err = suite.featureRepo.GetByID(feature.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a non-existent detail row
func (suite *DetailRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.featureRepo.Delete(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestSecondDetailTable tests the same repository shape against another
// detail table
func (suite *DetailRepositoryTestSuite) TestSecondDetailTable() {
	maintainer := &models.Maintainer{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Dana Fisher",
		Email:     "dana.fisher@example.com",
		Role:      "owner",
	}
	maintainer.SetComponentID(suite.componentOwner.ID)
	suite.NoError(suite.maintainerRepo.Create(maintainer))

	rows, total, err := suite.maintainerRepo.ListByComponent(suite.componentOwner.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(rows, 1)
	suite.Equal("dana.fisher@example.com", rows[0].Email)
}

// Run the test suite
func TestDetailRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DetailRepositoryTestSuite))
}
