// Package hookstore persists received Trello webhook deliveries in a local
// sqlite database so the listen command can journal activity across runs.
package hookstore

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Delivery is one webhook callback received from Trello.
type Delivery struct {
	ID         uint   `gorm:"primaryKey"`
	ActionID   string `gorm:"index"`
	ActionType string
	ModelID    string
	CardID     string
	CardName   string
	BoardID    string
	BoardName  string
	Payload    string
	ReceivedAt time.Time
}

// Store wraps the sqlite journal.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the journal at path and migrates the
// schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Delivery{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Record appends a delivery to the journal. ReceivedAt defaults to now.
func (s *Store) Record(d *Delivery) error {
	if d.ReceivedAt.IsZero() {
		d.ReceivedAt = time.Now()
	}
	return s.db.Create(d).Error
}

// Recent returns up to limit deliveries, newest first.
func (s *Store) Recent(limit int) ([]Delivery, error) {
	var out []Delivery
	err := s.db.Order("received_at desc").Limit(limit).Find(&out).Error
	return out, err
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
