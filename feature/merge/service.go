package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"backup-merger/core/backup"
	"backup-merger/core/contacts"
	"backup-merger/core/database"
	"backup-merger/core/loader"
	"backup-merger/core/logger"
	"backup-merger/core/reconcile"
	"backup-merger/core/render"
	"backup-merger/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageUnavailable is returned when an upload is requested without a
// storage client.
var ErrStorageUnavailable = errors.New("storage client not configured")

// Service merges backup directories.
type Service struct {
	logger *zap.Logger
	out    io.Writer
	loader *loader.Loader

	client storage.Client
	bucket string
	prefix string
	region string

	db *gorm.DB

	now   func() time.Time
	newID func() string
}

// NewService creates a merge service writing progress lines to out.
func NewService(logger *zap.Logger, out io.Writer) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Service{
		logger: logger,
		out:    out,
		loader: loader.New(logger),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// WithStorage enables publishing to the bucket and prefix of cfg.
func (s *Service) WithStorage(client storage.Client, cfg storage.Config) *Service {
	s.client = client
	s.bucket = cfg.Bucket
	s.prefix = cfg.Prefix
	s.region = cfg.Region
	return s
}

// WithLedger records every written file in db.
func (s *Service) WithLedger(db *gorm.DB) *Service {
	s.db = db
	return s
}

// Run merges every backup type found in opts.InputDir. The first error aborts
// the run; no output file is written for the type that failed.
func (s *Service) Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Upload && s.client == nil {
		return nil, ErrStorageUnavailable
	}

	backupSet := s.newID()
	log := logger.WithBackupSet(s.logger, backupSet)
	fmt.Fprintf(s.out, "Backup set: %s\n", backupSet)

	if !opts.DryRun {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var seeds []contacts.Entry
	if opts.ContactsFile != "" {
		entries, err := contacts.LoadVCardFile(opts.ContactsFile)
		if err != nil {
			return nil, err
		}
		seeds = entries
		log.Info("Loaded contact seeds", zap.Int("numbers", len(seeds)))
	}

	upload := opts.Upload && !opts.DryRun
	if opts.Upload && opts.DryRun {
		log.Warn("Upload skipped in dry-run mode")
	}
	if upload {
		if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
			return nil, err
		}
	}

	report := &Report{BackupSet: backupSet}
	for _, typ := range backup.Types() {
		result, err := s.mergeType(ctx, log, typ, backupSet, seeds, opts, upload)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *result)
	}

	return report, nil
}

func (s *Service) mergeType(ctx context.Context, log *zap.Logger, typ backup.Type, backupSet string, seeds []contacts.Entry, opts Options, upload bool) (*TypeResult, error) {
	label := typ.FilePrefix()

	acc := reconcile.NewAccumulator()
	for _, e := range seeds {
		acc.Seed(e.Number, e.Name)
	}

	files, err := s.loader.LoadInto(ctx, opts.InputDir, typ, acc)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", label, err)
	}

	records := acc.Finalize()
	fmt.Fprintf(s.out, "Total %s: %d\n", label, len(records))

	result := &TypeResult{
		Type:       label,
		InputFiles: files,
		Count:      len(records),
		Summary:    acc.Summary(),
	}

	if !opts.DryRun {
		meta := render.Meta{BackupSet: backupSet, GeneratedAt: s.now()}
		out, err := render.WriteFile(opts.OutputDir, typ, records, meta)
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", label, err)
		}
		result.OutputFile = out
	}

	fmt.Fprintf(s.out, "Finished doing %s.\n", label)

	if upload {
		key := path.Join(s.prefix, backupSet, filepath.Base(result.OutputFile))
		if _, err := storage.Upload(ctx, s.client, s.bucket, key, result.OutputFile); err != nil {
			return nil, err
		}
		result.ObjectKey = key
	}

	if s.db != nil && !opts.DryRun {
		run := &database.MergeRun{
			BackupSet:   backupSet,
			BackupType:  label,
			OutputFile:  result.OutputFile,
			ObjectKey:   result.ObjectKey,
			InputFiles:  len(files),
			RecordsRead: result.Summary.RecordsRead,
			Duplicates:  result.Summary.Duplicates,
			Backfilled:  result.Summary.Backfilled,
			Count:       result.Count,
		}
		if err := database.RecordRun(ctx, s.db, run); err != nil {
			return nil, err
		}
	}

	log.Info("Merged backup type",
		zap.String("type", typ.String()),
		zap.Int("files", len(files)),
		zap.Int("read", result.Summary.RecordsRead),
		zap.Int("duplicates", result.Summary.Duplicates),
		zap.Int("backfilled", result.Summary.Backfilled),
		zap.Int("count", result.Count),
		zap.String("output", result.OutputFile),
	)

	return result, nil
}
