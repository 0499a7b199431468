package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "curtisos.com/curtisos/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := OpenDatabase(dsn)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	return db
}

// OpenDatabase opens the SQLite store and migrates the task schema.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Project{}, &model.Task{}); err != nil {
		return nil, err
	}
	return db, nil
}
