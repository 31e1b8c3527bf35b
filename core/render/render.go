package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"backup-merger/core/backup"
)

// BackupTypeIncremental is the root type marker of merged files.
const BackupTypeIncremental = "incremental"

// fileTimeLayout matches the app's own file naming.
const fileTimeLayout = "20060102150405"

const outputFileMode = 0644

// document is the root element of an output file.
type document struct {
	XMLName xml.Name
	Attrs   []xml.Attr       `xml:",any,attr"`
	Records []*backup.Record `xml:",any"`
}

// Meta describes the run an output file belongs to.
type Meta struct {
	// BackupSet identifies all files written by one run.
	BackupSet string
	// GeneratedAt is the generation time; it sets backup_date and the file name.
	GeneratedAt time.Time
}

// FileName returns the output file name for typ generated at t.
func FileName(typ backup.Type, t time.Time) string {
	return fmt.Sprintf("%s-%s.xml", typ.FilePrefix(), t.Format(fileTimeLayout))
}

// Encode writes a complete backup document for records to w.
func Encode(w io.Writer, typ backup.Type, records []*backup.Record, meta Meta) error {
	doc := document{
		XMLName: xml.Name{Local: typ.RootTag()},
		Attrs: []xml.Attr{
			{Name: xml.Name{Local: "backup_set"}, Value: meta.BackupSet},
			{Name: xml.Name{Local: "backup_date"}, Value: strconv.FormatInt(meta.GeneratedAt.UnixMilli(), 10)},
			{Name: xml.Name{Local: "type"}, Value: BackupTypeIncremental},
			{Name: xml.Name{Local: "count"}, Value: strconv.Itoa(len(records))},
		},
		Records: records,
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode %s document: %w", typ, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile renders records into outputDir and returns the file path.
func WriteFile(outputDir string, typ backup.Type, records []*backup.Record, meta Meta) (string, error) {
	path := filepath.Join(outputDir, FileName(typ, meta.GeneratedAt.Local()))

	tmp, err := os.CreateTemp(outputDir, "."+typ.FilePrefix()+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	// Removing after a successful rename is a no-op error we ignore.
	defer os.Remove(tmp.Name())

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, typ, records, meta); err != nil {
		tmp.Close()
		return "", err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	// CreateTemp creates files as 0600.
	if err := tmp.Chmod(outputFileMode); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to move output into place: %w", err)
	}
	return path, nil
}
