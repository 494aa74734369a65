package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/litmart/litmart-backend/internal/config"
	"github.com/litmart/litmart-backend/internal/migration"
	pkglogger "github.com/litmart/litmart-backend/pkg/logger"
)

// Standalone migration runner for deployments where the API process
// must not own schema changes.
func main() {
	config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)

	cfg, err := config.Load(fmt.Sprintf("configs/config.%s.yaml", env))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	pkglogger.Info("Migration completed")
}
