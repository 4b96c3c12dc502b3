package repository

import (
	"errors"
	"testing"

	"component-catalog-backend/internal/database/models"
	"component-catalog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReportRepositoryTestSuite tests the ReportRepository
type ReportRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReportRepository
	memberFactory *testutils.TeamMemberFactory
	reportFactory *testutils.ReportFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ReportRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReportRepository(suite.baseTestSuite.DB)
	suite.memberFactory = testutils.NewTeamMemberFactory()
	suite.reportFactory = testutils.NewReportFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ReportRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ReportRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ReportRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a team member directly via gorm
func (suite *ReportRepositoryTestSuite) createMember(team string) *models.TeamMember {
	member := suite.memberFactory.WithTeam(team)
	err := suite.baseTestSuite.DB.Create(member).Error
	suite.NoError(err)
	return member
}

// helper to insert a report directly via gorm
func (suite *ReportRepositoryTestSuite) createReport(memberID uuid.UUID, week, year int) *models.Report {
	report := suite.reportFactory.ForWeek(memberID, week, year)
	err := suite.baseTestSuite.DB.Create(report).Error
	suite.NoError(err)
	return report
}

// TestCreate tests creating a report
func (suite *ReportRepositoryTestSuite) TestCreate() {
	member := suite.createMember("platform")
	report := suite.reportFactory.Create(member.ID)

	err := suite.repo.Create(report)

	suite.NoError(err)
	retrieved, err := suite.repo.GetByID(report.ID)
	suite.NoError(err)
	suite.Equal(member.ID, retrieved.TeamMemberID)
	suite.Equal(10, retrieved.WeekNumber)
	suite.Equal(2025, retrieved.Year)
}

// TestCreateDuplicatePeriod tests that the composite unique index rejects a
// second report for the same member, week and year
func (suite *ReportRepositoryTestSuite) TestCreateDuplicatePeriod() {
	member := suite.createMember("platform")
	suite.createReport(member.ID, 10, 2025)

	err := suite.repo.Create(suite.reportFactory.ForWeek(member.ID, 10, 2025))

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestCreateSamePeriodDifferentMember tests that two members may report on
// the same week
func (suite *ReportRepositoryTestSuite) TestCreateSamePeriodDifferentMember() {
	first := suite.createMember("platform")
	second := suite.createMember("platform")
	suite.createReport(first.ID, 10, 2025)

	err := suite.repo.Create(suite.reportFactory.ForWeek(second.ID, 10, 2025))

	suite.NoError(err)
}

// TestGetByIDNotFound tests retrieving a non-existent report
func (suite *ReportRepositoryTestSuite) TestGetByIDNotFound() {
	report, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(report)
}

// TestGetByIDPreloads tests that GetByID preloads the member, evaluations
// and analyses
func (suite *ReportRepositoryTestSuite) TestGetByIDPreloads() {
	member := suite.createMember("platform")
	peer := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)

	suite.NoError(suite.repo.CreateEvaluation(&models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    report.ID,
		EvaluatorID: peer.ID,
		EvaluateeID: member.ID,
		Rating:      4,
	}))
	suite.NoError(suite.repo.CreateAnalysis(&models.HRAnalysis{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		ReportID:   report.ID,
		Summary:    "steady progress",
		Sentiment:  models.SentimentPositive,
		AnalyzedBy: "hr",
	}))

	retrieved, err := suite.repo.GetByID(report.ID)

	suite.NoError(err)
	suite.NotNil(retrieved.TeamMember)
	suite.Equal(member.Email, retrieved.TeamMember.Email)
	suite.Len(retrieved.PeerEvaluations, 1)
	suite.Len(retrieved.HRAnalyses, 1)
}

// TestGetByMember tests listing a member's reports newest period first
func (suite *ReportRepositoryTestSuite) TestGetByMember() {
	member := suite.createMember("platform")
	other := suite.createMember("platform")
	suite.createReport(member.ID, 9, 2025)
	suite.createReport(member.ID, 52, 2024)
	suite.createReport(member.ID, 10, 2025)
	suite.createReport(other.ID, 10, 2025)

	reports, total, err := suite.repo.GetByMember(member.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(reports, 3)
	suite.Equal(10, reports[0].WeekNumber)
	suite.Equal(9, reports[1].WeekNumber)
	suite.Equal(2024, reports[2].Year)
}

// TestGetByTeamWeek tests the team/week join
func (suite *ReportRepositoryTestSuite) TestGetByTeamWeek() {
	platform1 := suite.createMember("platform")
	platform2 := suite.createMember("platform")
	analytics := suite.createMember("analytics")
	suite.createReport(platform1.ID, 10, 2025)
	suite.createReport(platform2.ID, 10, 2025)
	suite.createReport(platform1.ID, 11, 2025)
	suite.createReport(analytics.ID, 10, 2025)

	reports, err := suite.repo.GetByTeamWeek("platform", 10, 2025)

	suite.NoError(err)
	suite.Len(reports, 2)
	for _, report := range reports {
		suite.NotNil(report.TeamMember)
		suite.Equal("platform", report.TeamMember.Team)
		suite.Equal(10, report.WeekNumber)
	}
}

// TestUpdate tests updating a report
func (suite *ReportRepositoryTestSuite) TestUpdate() {
	member := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)
	report.ProductivityRating = 5
	report.ProductivityDetails = "shipped the batcher rework"

	err := suite.repo.Update(report)

	suite.NoError(err)
	retrieved, err := suite.repo.GetByID(report.ID)
	suite.NoError(err)
	suite.Equal(5, retrieved.ProductivityRating)
	suite.Equal("shipped the batcher rework", retrieved.ProductivityDetails)
}

// TestDeleteCascades tests that deleting a report removes its evaluations
// and analyses
func (suite *ReportRepositoryTestSuite) TestDeleteCascades() {
	member := suite.createMember("platform")
	peer := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)

	suite.NoError(suite.repo.CreateEvaluation(&models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    report.ID,
		EvaluatorID: peer.ID,
		EvaluateeID: member.ID,
		Rating:      3,
	}))
	suite.NoError(suite.repo.CreateAnalysis(&models.HRAnalysis{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ReportID:  report.ID,
		Summary:   "needs follow-up",
		Sentiment: models.SentimentNegative,
	}))

	err := suite.repo.Delete(report.ID)
	suite.NoError(err)

	var evalCount, analysisCount int64
	suite.baseTestSuite.DB.Model(&models.PeerEvaluation{}).Where("report_id = ?", report.ID).Count(&evalCount)
	suite.baseTestSuite.DB.Model(&models.HRAnalysis{}).Where("report_id = ?", report.ID).Count(&analysisCount)
	suite.Equal(int64(0), evalCount)
	suite.Equal(int64(0), analysisCount)
}

// TestDeleteNotFound tests deleting a non-existent report
func (suite *ReportRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestCreateEvaluationDuplicateTriple tests that the composite unique index
// rejects a second evaluation for the same (report, evaluator, evaluatee)
func (suite *ReportRepositoryTestSuite) TestCreateEvaluationDuplicateTriple() {
	member := suite.createMember("platform")
	peer := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)

	first := &models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    report.ID,
		EvaluatorID: peer.ID,
		EvaluateeID: member.ID,
		Rating:      4,
	}
	suite.NoError(suite.repo.CreateEvaluation(first))

	duplicate := &models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    report.ID,
		EvaluatorID: peer.ID,
		EvaluateeID: member.ID,
		Rating:      2,
	}
	err := suite.repo.CreateEvaluation(duplicate)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// The reverse direction is a different triple and goes through
	reverse := &models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    report.ID,
		EvaluatorID: member.ID,
		EvaluateeID: peer.ID,
		Rating:      5,
	}
	suite.NoError(suite.repo.CreateEvaluation(reverse))
}

// TestGetEvaluations tests listing evaluations for a report
func (suite *ReportRepositoryTestSuite) TestGetEvaluations() {
	member := suite.createMember("platform")
	peer := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)
	otherReport := suite.createReport(peer.ID, 10, 2025)

	suite.NoError(suite.repo.CreateEvaluation(&models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    report.ID,
		EvaluatorID: peer.ID,
		EvaluateeID: member.ID,
		Rating:      4,
	}))
	suite.NoError(suite.repo.CreateEvaluation(&models.PeerEvaluation{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		ReportID:    otherReport.ID,
		EvaluatorID: member.ID,
		EvaluateeID: peer.ID,
		Rating:      5,
	}))

	evals, err := suite.repo.GetEvaluations(report.ID)

	suite.NoError(err)
	suite.Len(evals, 1)
	suite.Equal(peer.ID, evals[0].EvaluatorID)
}

// TestGetAnalyses tests listing analyses for a report
func (suite *ReportRepositoryTestSuite) TestGetAnalyses() {
	member := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)

	suite.NoError(suite.repo.CreateAnalysis(&models.HRAnalysis{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ReportID:  report.ID,
		Summary:   "first pass",
		Sentiment: models.SentimentNeutral,
	}))
	suite.NoError(suite.repo.CreateAnalysis(&models.HRAnalysis{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ReportID:  report.ID,
		Summary:   "follow-up",
		Sentiment: models.SentimentPositive,
	}))

	analyses, err := suite.repo.GetAnalyses(report.ID)

	suite.NoError(err)
	suite.Len(analyses, 2)
}

// TestExists tests the existence check
func (suite *ReportRepositoryTestSuite) TestExists() {
	member := suite.createMember("platform")
	report := suite.createReport(member.ID, 10, 2025)

	exists, err := suite.repo.Exists(report.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(uuid.New())
	suite.NoError(err)
	suite.False(exists)
}

// Run the test suite
func TestReportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryTestSuite))
}
