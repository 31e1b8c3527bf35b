package loader

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"backup-merger/core/backup"

	"go.uber.org/zap"
)

// ErrMissingInputDirectory is returned when the input path does not exist
// or is not a directory.
var ErrMissingInputDirectory = errors.New("input directory not found")

// Sink receives records one at a time. reconcile.Accumulator implements it.
type Sink interface {
	Add(r *backup.Record) error
}

// document is a backup file: a root element whose children are records.
type document struct {
	XMLName xml.Name
	Records []*backup.Record `xml:",any"`
}

// Loader reads backup files from disk.
type Loader struct {
	logger *zap.Logger
}

// New creates a loader. A nil logger disables logging.
func New(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Discover returns the input files of the given type in dir, sorted by name.
func (l *Loader) Discover(dir string, typ backup.Type) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInputDirectory, dir)
		}
		return nil, fmt.Errorf("failed to stat input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingInputDirectory, dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, typ.Pattern()))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s files: %w", typ, err)
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile parses one backup document and returns its records.
func (l *Loader) LoadFile(path string) ([]*backup.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Decode parses a backup document from r. Invalid UTF-8, unpaired surrogate
// character references and repeated attributes are malformed input.
func Decode(r io.Reader) ([]*backup.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", backup.ErrMalformedInput)
	}

	data, err = joinSurrogates(data)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", backup.ErrMalformedInput, err)
	}

	for i, rec := range doc.Records {
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return doc.Records, nil
}

// LoadInto loads every file of the given type in dir into sink and returns
// the files read. The first malformed file or record stops the load.
func (l *Loader) LoadInto(ctx context.Context, dir string, typ backup.Type, sink Sink) ([]string, error) {
	files, err := l.Discover(dir, typ)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		l.logger.Warn("No input files found", zap.String("type", typ.String()), zap.String("pattern", typ.Pattern()))
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}

		for i, r := range records {
			if err := sink.Add(r); err != nil {
				return nil, fmt.Errorf("%s: record %d: %w", path, i, err)
			}
		}

		l.logger.Debug("Loaded backup file",
			zap.String("type", typ.String()),
			zap.String("file", filepath.Base(path)),
			zap.Int("records", len(records)),
		)
	}

	return files, nil
}
