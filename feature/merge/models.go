package merge

import "backup-merger/core/reconcile"

// Options controls a single merge run.
type Options struct {
	// InputDir holds the calls-*.xml and sms-*.xml exports.
	InputDir string
	// OutputDir receives one merged file per backup type.
	OutputDir string
	// ContactsFile is an optional .vcf export used to name unknown numbers.
	ContactsFile string
	// DryRun reads and reconciles everything but writes nothing.
	DryRun bool
	// Upload publishes the output files to object storage.
	Upload bool
}

// TypeResult describes the outcome for one backup type.
type TypeResult struct {
	Type       string            `json:"type"`
	InputFiles []string          `json:"input_files"`
	Count      int               `json:"count"`
	Summary    reconcile.Summary `json:"summary"`
	OutputFile string            `json:"output_file,omitempty"`
	ObjectKey  string            `json:"object_key,omitempty"`
}

// Report is the outcome of a merge run.
type Report struct {
	BackupSet string       `json:"backup_set"`
	Results   []TypeResult `json:"results"`
}
