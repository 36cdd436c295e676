package database

import (
	"database/sql"
	"fmt"
	"log"
	"runtime"
	"time"

	"wanderfeed/internal/pkg/config"
	"wanderfeed/pkg/metrics"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens the postgres connection used as the single source of truth.
func InitDatabase() *gorm.DB {
	cfg := config.GlobalConfig.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)

	gormConfig := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		PrepareStmt:                              true,
		TranslateError:                           true, // duplicate-key violations surface as gorm.ErrDuplicatedKey
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	configureConnectionPool(sqlDB)
	go reportPoolStats(sqlDB)

	// Schema is owned by migrations (cmd/migrate); AutoMigrate is not used here.
	return db
}

// configureConnectionPool applies pool limits.
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(time.Minute * 30)

	log.Println("Database connection pool configured successfully")
}

// reportPoolStats feeds connection-pool gauges to the metrics collector.
func reportPoolStats(sqlDB *sql.DB) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		collector := metrics.GetGlobalCollector()
		stats := sqlDB.Stats()
		collector.UpdateDBConnections(stats.InUse, stats.Idle)
		collector.UpdateActiveGoroutines(runtime.NumGoroutine())
	}
}
