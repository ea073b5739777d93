package db

import (
	"wellness_system/internal/domain" // Domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Migrate creates or updates the schema: users, dosha_profiles and
// daily_logs, including the unique indexes and cascade foreign keys.
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&domain.User{}, &domain.DoshaProfile{}, &domain.DailyLog{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
