package routes

import (
	"log"

	"component-catalog-backend/internal/api/handlers"
	"component-catalog-backend/internal/api/middleware"
	"component-catalog-backend/internal/auth"
	"component-catalog-backend/internal/config"
	"component-catalog-backend/internal/database/models"
	"component-catalog-backend/internal/repository"
	"component-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// detailRoutes registers the CRUD sub-resource for one detail table under
// the component routes. Read routes always exist; write routes are skipped
// for system-maintained tables.
func detailRoutes[T any, PT repository.Detail[T]](components *gin.RouterGroup, path string, h *handlers.DetailHandler[T, PT]) {
	group := components.Group("/:id/" + path)
	group.GET("", h.List)
	group.GET("/:detailId", h.Get)
	if h.ReadOnly() {
		return
	}
	group.POST("", h.Create)
	group.PUT("/:detailId", h.Update)
	group.DELETE("/:detailId", h.Delete)
}

// newDetailHandler builds the repository/service/handler chain for one
// detail table
func newDetailHandler[T any, PT repository.Detail[T]](db *gorm.DB, componentRepo repository.ComponentRepositoryInterface, v *validator.Validate) *handlers.DetailHandler[T, PT] {
	repo := repository.NewDetailRepository[T, PT](db)
	svc := service.NewDetailService[T, PT](repo, componentRepo, v)
	return handlers.NewDetailHandler[T, PT](svc)
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	categoryService := service.NewCategoryService(categoryRepo, validator)
	tagService := service.NewTagService(tagRepo, validator)
	componentService := service.NewComponentService(componentRepo, categoryRepo, tagRepo, validator)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, validator)
	reportService := service.NewReportService(reportRepo, teamMemberRepo, validator)
	githubService := service.NewGitHubService(cfg.GitHubToken)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	tagHandler := handlers.NewTagHandler(tagService)
	componentHandler := handlers.NewComponentHandler(componentService, githubService)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberService, reportService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Detail handlers, one per component-owned table
	specHandler := newDetailHandler[models.TechnicalSpecification](db, componentRepo, validator)
	featureHandler := newDetailHandler[models.Feature](db, componentRepo, validator)
	exampleHandler := newDetailHandler[models.ImplementationExample](db, componentRepo, validator)
	sampleAppHandler := newDetailHandler[models.SampleApplication](db, componentRepo, validator)
	usageHandler := newDetailHandler[models.UsageStatistic](db, componentRepo, validator)
	fileHandler := newDetailHandler[models.ComponentFile](db, componentRepo, validator)
	testingHandler := newDetailHandler[models.TestingQualityMetric](db, componentRepo, validator)
	businessHandler := newDetailHandler[models.BusinessValueMetric](db, componentRepo, validator)
	maintainerHandler := newDetailHandler[models.Maintainer](db, componentRepo, validator)

	// Version history is appended by component writes, never by clients
	historyRepo := repository.NewDetailRepository[models.VersionHistory](db)
	historyService := service.NewDetailService[models.VersionHistory](historyRepo, componentRepo, validator)
	historyHandler := handlers.NewReadOnlyDetailHandler[models.VersionHistory](historyService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.POST("/token", authHandler.Token)
			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	v1 := router.Group("/api/v1")

	// Anonymous read access covers categories and tags only. Tokens are
	// still validated when present so authenticated readers get attributed.
	publicReads := v1.Group("")
	if authMiddleware != nil {
		publicReads.Use(authMiddleware.OptionalAuth())
	}
	{
		publicReads.GET("/categories", categoryHandler.ListCategories)
		publicReads.GET("/categories/:id", categoryHandler.GetCategory)
		publicReads.GET("/tags", tagHandler.ListTags)
		publicReads.GET("/tags/:id", tagHandler.GetTag)
	}

	// Everything else requires authentication
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Category write routes
		v1.POST("/categories", categoryHandler.CreateCategory)
		v1.PUT("/categories/:id", categoryHandler.UpdateCategory)
		v1.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		// Tag write routes
		v1.POST("/tags", tagHandler.CreateTag)
		v1.DELETE("/tags/:id", tagHandler.DeleteTag)

		// Component routes
		components := v1.Group("/components")
		{
			components.GET("", componentHandler.ListComponents)
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PUT("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.POST("/:id/archive", componentHandler.ArchiveComponent)
			components.POST("/:id/unarchive", componentHandler.UnarchiveComponent)
			components.PUT("/:id/tags/:tagId", componentHandler.AttachTag)
			components.DELETE("/:id/tags/:tagId", componentHandler.DetachTag)
			components.GET("/:id/repository", componentHandler.GetRepositoryMetadata)

			detailRoutes(components, "specifications", specHandler)
			detailRoutes(components, "features", featureHandler)
			detailRoutes(components, "examples", exampleHandler)
			detailRoutes(components, "sample-applications", sampleAppHandler)
			detailRoutes(components, "usage-statistics", usageHandler)
			detailRoutes(components, "files", fileHandler)
			detailRoutes(components, "testing-metrics", testingHandler)
			detailRoutes(components, "business-metrics", businessHandler)
			detailRoutes(components, "maintainers", maintainerHandler)
			detailRoutes(components, "version-history", historyHandler)
		}

		// Team member routes
		teamMembers := v1.Group("/team-members")
		{
			teamMembers.GET("", teamMemberHandler.ListTeamMembers)
			teamMembers.POST("", teamMemberHandler.CreateTeamMember)
			teamMembers.GET("/:id", teamMemberHandler.GetTeamMember)
			teamMembers.PUT("/:id", teamMemberHandler.UpdateTeamMember)
			teamMembers.DELETE("/:id", teamMemberHandler.DeleteTeamMember)
			teamMembers.GET("/:id/reports", teamMemberHandler.GetMemberReports)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.POST("", reportHandler.CreateReport)
			reports.GET("/team/:team", reportHandler.GetTeamWeekReports)
			reports.GET("/:id", reportHandler.GetReport)
			reports.PUT("/:id", reportHandler.UpdateReport)
			reports.DELETE("/:id", reportHandler.DeleteReport)
			reports.POST("/:id/evaluations", reportHandler.CreateEvaluation)
			reports.GET("/:id/evaluations", reportHandler.GetEvaluations)
			reports.POST("/:id/analyses", reportHandler.CreateAnalysis)
			reports.GET("/:id/analyses", reportHandler.GetAnalyses)
		}
	}

	return router
}
