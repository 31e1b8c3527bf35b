// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for interactive use (console
// encoding, colored levels) and for scripted use (JSON lines).
//
// # Run Scoping
//
// Every merge run has a backup-set identifier. WithBackupSet attaches it to a
// logger so all log lines of one run can be correlated with the files it
// produced.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithBackupSet(log, backupSet)
//	log.Info("Merge started")
package logger
