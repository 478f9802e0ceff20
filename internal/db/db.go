package db

import (
	"errors"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/config"
	"github.com/eranlawcoil2-wq/NivCohen-sub000/internal/models"
)

var conn *gorm.DB

// Init opens the store. The backend is picked once at startup: a configured
// DATABASE_URL selects the remote postgres store, otherwise a local sqlite
// file is used.
func Init(cfg *config.Config) error {
	var err error
	if cfg.RemoteStore() {
		conn, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			return err
		}
		log.Println("database ready (postgres)")
	} else {
		dsn := cfg.SQLitePath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
		conn, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		// SQLite works best with a single writer; cap the pool accordingly.
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		log.Println("database ready (sqlite)")
	}

	if err := Migrate(conn); err != nil {
		return err
	}
	return seedConfig(conn)
}

// Migrate creates or updates the tables for all six collections.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.TrainingSession{},
		&models.LocationDef{},
		&models.WorkoutType{},
		&models.AppConfig{},
		&models.Quote{},
	)
}

// seedConfig ensures the AppConfig singleton row exists.
func seedConfig(gdb *gorm.DB) error {
	var cfg models.AppConfig
	err := gdb.First(&cfg, 1).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	cfg = models.AppConfig{ID: 1, DefaultCity: "Tel Aviv"}
	return gdb.Create(&cfg).Error
}

func Conn() *gorm.DB {
	return conn
}

// SetConn swaps the active connection, used by tests.
func SetConn(gdb *gorm.DB) {
	conn = gdb
}
