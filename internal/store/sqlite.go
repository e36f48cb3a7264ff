// internal/store/sqlite.go
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type kvRecord struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value []byte `gorm:"type:blob"`
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// SQLiteKV backs the store with an embedded SQLite database. Multi-key
// writes run inside one transaction.
type SQLiteKV struct {
	db *gorm.DB
}

func NewSQLiteKV(dsn string) (*SQLiteKV, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %s: %w", dsn, err)
	}

	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("store: migrate kv table: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

func (s *SQLiteKV) Get(key string) ([]byte, bool, error) {
	var record kvRecord
	err := s.db.First(&record, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: get %s: %w", key, err)
	}
	return record.Value, true, nil
}

func (s *SQLiteKV) Set(key string, value []byte) error {
	return s.SetMulti(map[string][]byte{key: value})
}

func (s *SQLiteKV) SetMulti(entries map[string][]byte) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range entries {
			record := kvRecord{Key: key, Value: value}
			if err := tx.Save(&record).Error; err != nil {
				return fmt.Errorf("store: set %s: %w", key, err)
			}
		}
		return nil
	})
}

func (s *SQLiteKV) Delete(key string) error {
	if err := s.db.Delete(&kvRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
