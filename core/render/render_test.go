package render_test

import (
	"bytes"
	"encoding/xml"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"backup-merger/core/backup"
	"backup-merger/core/loader"
	"backup-merger/core/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type root struct {
	XMLName    xml.Name
	BackupSet  string `xml:"backup_set,attr"`
	BackupDate string `xml:"backup_date,attr"`
	Type       string `xml:"type,attr"`
	Count      string `xml:"count,attr"`
}

var generated = time.Date(2024, 6, 10, 8, 30, 15, 0, time.UTC)

func sampleRecords() []*backup.Record {
	mms := backup.NewRecord("mms", "address", "555", "date", "300", "contact_name", "Bob", "readable_date", "x")
	parts := backup.NewRecord("parts")
	parts.Children = append(parts.Children, backup.NewRecord("part", "seq", "0", "text", "hi & bye"))
	mms.Children = append(mms.Children, parts)

	return []*backup.Record{
		backup.NewRecord("sms", "address", "555", "date", "100", "body", "line1\nline2", "contact_name", "Bob", "readable_date", "x"),
		backup.NewRecord("sms", "address", "556", "date", "200", "body", `"quoted" <tag>`, "contact_name", "(Unknown)", "readable_date", "y"),
		mms,
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "calls-20240610083015.xml", render.FileName(backup.Calls, generated))
	assert.Equal(t, "sms-20240610083015.xml", render.FileName(backup.SMS, generated))
}

func TestEncode_RootMetadata(t *testing.T) {
	var buf bytes.Buffer
	records := sampleRecords()
	require.NoError(t, render.Encode(&buf, backup.SMS, records, render.Meta{BackupSet: "set-1", GeneratedAt: generated}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<smses backup_set="set-1" backup_date="1718008215000" type="incremental" count="3">`)

	var r root
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &r))
	assert.Equal(t, "smses", r.XMLName.Local)
	assert.Equal(t, strconv.FormatInt(generated.UnixMilli(), 10), r.BackupDate)
	assert.Equal(t, render.BackupTypeIncremental, r.Type)
	assert.Equal(t, "3", r.Count)
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	records := sampleRecords()
	require.NoError(t, render.Encode(&buf, backup.SMS, records, render.Meta{BackupSet: "s", GeneratedAt: generated}))

	decoded, err := loader.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, decoded, len(records))

	assert.Equal(t, "line1\nline2", decoded[0].Value("body"))
	assert.Equal(t, `"quoted" <tag>`, decoded[1].Value("body"))
	assert.Equal(t, records[0].Attrs, decoded[0].Attrs)

	require.Len(t, decoded[2].Children, 1)
	require.Len(t, decoded[2].Children[0].Children, 1)
	assert.Equal(t, "hi & bye", decoded[2].Children[0].Children[0].Value("text"))
}

func TestEncode_CountMatchesChildren(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		var records []*backup.Record
		for i := 0; i < n; i++ {
			records = append(records, backup.NewRecord("call", "number", "1", "date", strconv.Itoa(i)))
		}

		var buf bytes.Buffer
		require.NoError(t, render.Encode(&buf, backup.Calls, records, render.Meta{GeneratedAt: generated}))

		var r root
		require.NoError(t, xml.Unmarshal(buf.Bytes(), &r))
		assert.Equal(t, strconv.Itoa(n), r.Count)

		decoded, err := loader.Decode(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Len(t, decoded, n)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	meta := render.Meta{BackupSet: "set-2", GeneratedAt: generated}

	path, err := render.WriteFile(dir, backup.Calls, []*backup.Record{
		backup.NewRecord("call", "number", "1", "date", "1"),
	}, meta)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, render.FileName(backup.Calls, generated.Local())), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<calls backup_set="set-2"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// No temporary files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	_, err := render.WriteFile(filepath.Join(t.TempDir(), "missing"), backup.SMS, nil, render.Meta{GeneratedAt: generated})
	assert.Error(t, err)
}
