package database

import (
	"fmt"
	"time"

	"component-catalog-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. TranslateError is enabled so unique and foreign-key violations
// surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated, which the
// services translate into domain errors.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	// Route the components<->tags many2many through the explicit join model
	// so the composite primary key and created_at column are preserved.
	if err := db.SetupJoinTable(&models.Component{}, "Tags", &models.ComponentTag{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Tag{}, "Components", &models.ComponentTag{}); err != nil {
		return nil, fmt.Errorf("setup join table: %w", err)
	}

	// AutoMigrate all models, parents before children
	if opts.AutoMigrate {
		all := []interface{}{
			&models.Category{},
			&models.Tag{},
			&models.Component{},
			&models.ComponentTag{},
			&models.TechnicalSpecification{},
			&models.Feature{},
			&models.ImplementationExample{},
			&models.SampleApplication{},
			&models.VersionHistory{},
			&models.UsageStatistic{},
			&models.ComponentFile{},
			&models.TestingQualityMetric{},
			&models.BusinessValueMetric{},
			&models.Maintainer{},
			&models.TeamMember{},
			&models.Report{},
			&models.HRAnalysis{},
			&models.PeerEvaluation{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
