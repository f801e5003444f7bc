package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"flowdesk/internal/shared/logger"
)

// Manager runs schema migrations with an environment-appropriate
// strategy.
type Manager struct {
	strategy Strategy
	log      logger.Interface
}

func NewManager(environment, driver string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "production", "release":
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGooseStrategy(scriptsPath, gooseDialect(driver))
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		log:      logger.NewLogger().Named("migration"),
	}
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		log:      logger.NewLogger().Named("migration"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.log.Info("starting database migration", "strategy", m.strategy.GetName(), "models", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.log.Error("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.log.Info("database migration completed")
	return nil
}

func gooseDialect(driver string) string {
	if driver == "sqlite" {
		return "sqlite3"
	}
	return "mysql"
}
