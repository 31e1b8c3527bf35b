package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultHistoryLimit is used by ListRuns when limit is not positive.
const DefaultHistoryLimit = 20

// MergeRun is one merged output file.
type MergeRun struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BackupSet   string    `gorm:"size:36;index" json:"backup_set"`
	BackupType  string    `gorm:"size:16" json:"backup_type"`
	OutputFile  string    `gorm:"size:512" json:"output_file"`
	ObjectKey   string    `gorm:"size:512" json:"object_key,omitempty"`
	InputFiles  int       `json:"input_files"`
	RecordsRead int       `json:"records_read"`
	Duplicates  int       `json:"duplicates"`
	Backfilled  int       `json:"backfilled"`
	Count       int       `json:"count"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName pins the table name independent of GORM's pluralizer.
func (MergeRun) TableName() string {
	return "merge_runs"
}

// Migrate creates or updates the merge_runs table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&MergeRun{}); err != nil {
		return fmt.Errorf("failed to migrate merge_runs: %w", err)
	}
	return nil
}

// RecordRun inserts run into the ledger.
func RecordRun(ctx context.Context, db *gorm.DB, run *MergeRun) error {
	if err := db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record merge run %s/%s: %w", run.BackupSet, run.BackupType, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func ListRuns(ctx context.Context, db *gorm.DB, limit int) ([]MergeRun, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	var runs []MergeRun
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list merge runs: %w", err)
	}
	return runs, nil
}
