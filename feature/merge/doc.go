// Package merge runs a complete merge of a backup directory.
//
// For every backup type (calls first, then messages) the Service builds a
// fresh reconcile.Accumulator, optionally seeds it from a vCard export, feeds
// it every input file through the loader, finalizes it and renders the result
// into the output directory. Both output files of a run share one backup set
// id.
//
// Optionally, each output file is published to object storage under
// <prefix>/<backup_set>/<file> and a MergeRun row is written to the ledger.
//
// # Progress
//
// The Service writes short progress lines to its output writer:
//
//	Backup set: 0b6f...
//	Total calls: 812
//	Finished doing calls.
//	Total sms: 5120
//	Finished doing sms.
//
// # Usage
//
//	svc := merge.NewService(logger, os.Stdout).WithStorage(client, cfg.Storage)
//	report, err := svc.Run(ctx, merge.Options{InputDir: "in", OutputDir: "out"})
package merge
