// Package database keeps the ledger of merge runs.
//
// It provides a wrapper around GORM to open either a MySQL server or a local
// SQLite file based on the application's configuration, and a MergeRun model
// with one row per (backup set, backup type) produced by the merge command.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	if err := database.Migrate(db); err != nil { ... }
//	err = database.RecordRun(ctx, db, &database.MergeRun{...})
//	runs, err := database.ListRuns(ctx, db, 20)
package database
