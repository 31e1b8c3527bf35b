// Package loader reads SMS Backup & Restore XML exports from a directory.
//
// Input files follow the app's naming scheme: calls-*.xml for call logs and
// sms-*.xml for messages. Files are processed in lexical file-name order,
// which for the app's timestamped names is also chronological export order,
// so "first seen" during deduplication means "from the oldest export".
//
// # Loader
//
// The Loader handles:
//   - Discovery of input files per backup type via Discover()
//   - Parsing one document into records via LoadFile()
//   - Feeding every record of a type into a Sink via LoadInto()
//
// The whole document is decoded into memory; the root element's direct
// children are the records.
//
// # Usage
//
//	l := loader.New(logger)
//	acc := reconcile.NewAccumulator()
//	files, err := l.LoadInto(ctx, "./backups", backup.Calls, acc)
package loader
