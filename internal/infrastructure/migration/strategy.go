package migration

import (
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// Strategy abstracts how the schema is brought up to date.
type Strategy interface {
	Migrate(db *gorm.DB, models ...interface{}) error
	GetName() string
}

// GormAutoMigrateStrategy lets GORM derive the schema from the
// persistence models. Used in development and tests.
type GormAutoMigrateStrategy struct{}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm-automigrate"
}

// GooseStrategy applies versioned SQL migrations from a scripts
// directory. Used in production where schema changes are reviewed.
type GooseStrategy struct {
	dir     string
	dialect string
}

func NewGooseStrategy(dir, dialect string) *GooseStrategy {
	return &GooseStrategy{dir: dir, dialect: dialect}
}

func (s *GooseStrategy) Migrate(db *gorm.DB, _ ...interface{}) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, s.dir); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}
