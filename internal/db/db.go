package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipehub/internal/config"
	"recipehub/internal/model"
)

// models in dependency order; dropped in reverse.
var models = []interface{}{
	&model.User{},
	&model.Recipe{},
	&model.Comment{},
	&model.ActivityLog{},
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
}

// Open connects to the database selected by cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	default:
		return NewMySQL(cfg.MySQLDSN)
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Reset drops every table. Missing tables are logged and skipped.
func Reset(gormDB *gorm.DB) {
	for i := len(models) - 1; i >= 0; i-- {
		if err := gormDB.Migrator().DropTable(models[i]); err != nil {
			log.Warn().Err(err).Msgf("drop table for %T", models[i])
		}
	}
}

// Pinger adapts a GORM connection for readiness checks.
type Pinger struct {
	DB *gorm.DB
}

// Ping checks the underlying connection.
func (p Pinger) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
