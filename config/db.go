package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the snapshot database: MySQL when MYSQL_DSN is set, otherwise
// a local SQLite file (SNAPSHOT_DB, default content.db).
func NewDB() (*gorm.DB, error) {
	logMode := logger.Warn
	switch os.Getenv("GORM_LOG") {
	case "off":
		logMode = logger.Silent
	case "info":
		logMode = logger.Info
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use log.Logger for Printf support
		logger.Config{
			SlowThreshold: time.Second, // Slow SQL threshold
			LogLevel:      logMode,     // Log level
			Colorful:      true,        // Enable color
		},
	)

	var dialector gorm.Dialector
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		dialector = mysql.Open(dsn)
	} else {
		dialector = sqlite.Open(GetEnv("SNAPSHOT_DB", "content.db"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
