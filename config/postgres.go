package config

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	models "RPGLobby/models/postgres"

	_ "github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectGORM opens the store selected by cfg.DBDriver and verifies it is
// reachable. The caller owns the handle and must release it with CloseGORM.
func ConnectGORM(cfg Config, log *slog.Logger) (*gorm.DB, error) {
	gormConfig := newGormConfig(cfg.Verbose, log)

	if cfg.DBDriver == "sqlite" {
		return ConnectSQLite(cfg.SQLitePath, gormConfig)
	}

	sqlDB, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("opening postgres with gorm: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("connected to postgres", slog.String("host", cfg.Postgres.Host), slog.String("database", cfg.Postgres.Database))
	return db, nil
}

// ConnectSQLite opens a sqlite store. A single connection is kept so that
// in-memory databases survive between queries.
func ConnectSQLite(dsn string, gormConfig *gorm.Config) (*gorm.DB, error) {
	if gormConfig == nil {
		gormConfig = &gorm.Config{TranslateError: true, Logger: logger.Default.LogMode(logger.Silent)}
	}
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("reading sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enabling sqlite foreign keys: %w", err)
	}
	return db, nil
}

// CloseGORM releases the connection pool behind db.
func CloseGORM(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("reading sql handle: %w", err)
	}
	return sqlDB.Close()
}

// PingGORM checks the store is still reachable.
func PingGORM(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// MigrateDatabase migrates the GORM models, including the partial unique
// index that keeps a single pending invite per lobby and player.
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

func newGormConfig(verbose bool, log *slog.Logger) *gorm.Config {
	level := logger.Silent
	if verbose {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			slog.NewLogLogger(log.Handler(), slog.LevelDebug),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}
