package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ladrillo/server/internal/currency"
)

// RateSnapshot is the persisted form of a daily indicator snapshot.
type RateSnapshot struct {
	ID        uint      `gorm:"primaryKey"`
	UFCLP     float64   `gorm:"column:uf_clp;not null"`
	EURCLP    float64   `gorm:"column:eur_clp;not null"`
	USDCLP    float64   `gorm:"column:usd_clp;not null"`
	FetchedAt time.Time `gorm:"column:fetched_at;index;not null"`
	CreatedAt time.Time
}

func (RateSnapshot) TableName() string { return "rate_snapshots" }

// DB wraps the sqlite handle used for snapshot history.
type DB struct {
	gorm *gorm.DB
}

// Open creates the database directory if needed, opens the sqlite file
// and runs migrations.
func Open(path string, logger *logrus.Logger) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %v", err)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := gdb.AutoMigrate(&RateSnapshot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	logger.WithField("path", path).Info("Database ready")
	return &DB{gorm: gdb}, nil
}

// SaveSnapshot appends a snapshot to the history table.
func (db *DB) SaveSnapshot(snap currency.Snapshot) error {
	record := RateSnapshot{
		UFCLP:     snap.UFCLP,
		EURCLP:    snap.EURCLP,
		USDCLP:    snap.USDCLP,
		FetchedAt: snap.FetchedAt,
	}
	if err := db.gorm.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save snapshot: %v", err)
	}
	return nil
}

// LatestSnapshot returns the most recently fetched snapshot, or nil when
// the history is empty.
func (db *DB) LatestSnapshot() (*currency.Snapshot, error) {
	var record RateSnapshot
	err := db.gorm.Order("fetched_at DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %v", err)
	}

	snap, err := currency.NewSnapshot(record.UFCLP, record.EURCLP, record.USDCLP, record.FetchedAt)
	if err != nil {
		return nil, fmt.Errorf("stored snapshot invalid: %v", err)
	}
	return &snap, nil
}

// SnapshotHistory returns up to limit snapshots, newest first.
func (db *DB) SnapshotHistory(limit int) ([]RateSnapshot, error) {
	if limit <= 0 {
		limit = 30
	}
	var records []RateSnapshot
	if err := db.gorm.Order("fetched_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load snapshot history: %v", err)
	}
	return records, nil
}
