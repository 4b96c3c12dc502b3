package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"component-catalog-backend/internal/config"
	"component-catalog-backend/internal/database"
	"component-catalog-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CategoryData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type TagData struct {
	Name string `yaml:"name"`
}

type ComponentData struct {
	Name             string   `yaml:"name"`
	ComponentType    string   `yaml:"component_type,omitempty"`
	Version          string   `yaml:"version,omitempty"`
	Description      string   `yaml:"description,omitempty"`
	OriginalProject  string   `yaml:"original_project,omitempty"`
	CategoryName     string   `yaml:"category_name,omitempty"`
	Status           string   `yaml:"status,omitempty"`
	Complexity       string   `yaml:"complexity,omitempty"`
	GitRepositoryURL string   `yaml:"git_repository_url,omitempty"`
	SupportContact   string   `yaml:"support_contact,omitempty"`
	Tags             []string `yaml:"tags,omitempty"`
}

type TeamMemberData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Team  string `yaml:"team,omitempty"`
	Role  string `yaml:"role,omitempty"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress GORM logging, including expected "record not found" probes
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var categories []CategoryData
	if err := loadYAMLFile(dataDir, "categories.yaml", &categories); err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	var tags []TagData
	if err := loadYAMLFile(dataDir, "tags.yaml", &tags); err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	var components []ComponentData
	if err := loadYAMLFile(dataDir, "components.yaml", &components); err != nil {
		return fmt.Errorf("failed to load components: %w", err)
	}

	var members []TeamMemberData
	if err := loadYAMLFile(dataDir, "team_members.yaml", &members); err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}

	categoryMap := make(map[string]*models.Category)
	created := 0
	for _, data := range categories {
		cat, isNew, err := createCategory(db, data)
		if err != nil {
			return err
		}
		categoryMap[data.Name] = cat
		if isNew {
			created++
		}
	}
	log.Printf("Categories: %d created, %d existing", created, len(categories)-created)

	tagMap := make(map[string]*models.Tag)
	created = 0
	for _, data := range tags {
		tag, isNew, err := createTag(db, data.Name)
		if err != nil {
			return err
		}
		tagMap[data.Name] = tag
		if isNew {
			created++
		}
	}
	log.Printf("Tags: %d created, %d existing", created, len(tags)-created)

	created = 0
	for _, data := range components {
		isNew, err := createComponent(db, data, categoryMap, tagMap)
		if err != nil {
			return err
		}
		if isNew {
			created++
		}
	}
	log.Printf("Components: %d created, %d existing", created, len(components)-created)

	created = 0
	for _, data := range members {
		isNew, err := createTeamMember(db, data)
		if err != nil {
			return err
		}
		if isNew {
			created++
		}
	}
	log.Printf("Team members: %d created, %d existing", created, len(members)-created)

	return nil
}

// loadYAMLFile reads one optional data file; a missing file is not an error
func loadYAMLFile(dataDir, name string, out interface{}) error {
	path := filepath.Join(dataDir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No %s found, skipping", name)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(raw, out)
}

func createCategory(db *gorm.DB, data CategoryData) (*models.Category, bool, error) {
	var category models.Category
	if err := db.Where("name = ?", data.Name).First(&category).Error; err == nil {
		return &category, false, nil
	}

	category = models.Category{
		Name:        data.Name,
		Description: data.Description,
	}
	if err := db.Create(&category).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create category %q: %w", data.Name, err)
	}
	return &category, true, nil
}

func createTag(db *gorm.DB, name string) (*models.Tag, bool, error) {
	var tag models.Tag
	if err := db.Where("name = ?", name).First(&tag).Error; err == nil {
		return &tag, false, nil
	}

	tag = models.Tag{Name: name}
	if err := db.Create(&tag).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create tag %q: %w", name, err)
	}
	return &tag, true, nil
}

func createComponent(db *gorm.DB, data ComponentData, categoryMap map[string]*models.Category, tagMap map[string]*models.Tag) (bool, error) {
	var existing models.Component
	if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
		return false, nil
	}

	component := models.Component{
		Name:             data.Name,
		ComponentType:    data.ComponentType,
		Version:          data.Version,
		Description:      data.Description,
		OriginalProject:  data.OriginalProject,
		GitRepositoryURL: data.GitRepositoryURL,
		SupportContact:   data.SupportContact,
		Status:           models.ComponentStatusActive,
		Complexity:       models.ComplexityMedium,
		CreatedBy:        "seed",
	}
	if data.Status != "" {
		component.Status = models.ComponentStatus(data.Status)
	}
	if data.Complexity != "" {
		component.Complexity = models.ComponentComplexity(data.Complexity)
	}
	if data.CategoryName != "" {
		cat, ok := categoryMap[data.CategoryName]
		if !ok {
			return false, fmt.Errorf("component %q references unknown category %q", data.Name, data.CategoryName)
		}
		component.CategoryID = &cat.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&component).Error; err != nil {
			return err
		}

		history := models.VersionHistory{
			Version: component.Version,
			Changes: "component registered",
		}
		history.ComponentID = component.ID
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		for _, tagName := range data.Tags {
			tag, ok := tagMap[tagName]
			if !ok {
				created, _, err := createTag(tx, tagName)
				if err != nil {
					return err
				}
				tagMap[tagName] = created
				tag = created
			}
			join := models.ComponentTag{ComponentID: component.ID, TagID: tag.ID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to create component %q: %w", data.Name, err)
	}
	return true, nil
}

func createTeamMember(db *gorm.DB, data TeamMemberData) (bool, error) {
	var existing models.TeamMember
	if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
		return false, nil
	}

	member := models.TeamMember{
		Name:  data.Name,
		Email: data.Email,
		Team:  data.Team,
		Role:  data.Role,
	}
	if err := db.Create(&member).Error; err != nil {
		return false, fmt.Errorf("failed to create team member %q: %w", data.Email, err)
	}
	return true, nil
}
