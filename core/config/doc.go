// Package config provides configuration management for the backup merger.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Command-line flags cover the per-run inputs
// (input and output directories); everything that stays the same between
// runs lives here.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Storage: S3/MinIO credentials and bucket used when publishing merged files
//   - Database: Run ledger connection (MySQL or SQLite), disabled by default
//
// Environment variables map to nested keys by section, e.g. LOG_LEVEL,
// STORAGE_BUCKET, DATABASE_ENABLED.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Log.Level)
package config
