package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vitapulse/health-tracker/pkg/logger"
)

func NewDatabase(cfg *Config, log *logger.Logger) (*gorm.DB, error) {
	gormLevel := gormlogger.Silent
	if cfg.LogLevel == "debug" {
		gormLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Info("database connection established")
	return db, nil
}
