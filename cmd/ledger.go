package cmd

import (
	"fmt"

	"backup-merger/core/database"

	"gorm.io/gorm"
)

// openLedger connects to the merge history database and migrates it.
func openLedger(cfg database.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to prepare ledger: %w", err)
	}
	return db, nil
}
