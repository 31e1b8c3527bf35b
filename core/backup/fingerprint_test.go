package backup_test

import (
	"encoding/xml"
	"testing"

	"backup-merger/core/backup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(kv ...string) *backup.Record {
	base := []string{"contact_name", backup.UnknownContact, "readable_date", "Jan 1, 2024"}
	return backup.NewRecord("call", append(base, kv...)...)
}

func TestFingerprint_IgnoresCosmeticFields(t *testing.T) {
	a := backup.NewRecord("call",
		"number", "555", "date", "100", "duration", "4",
		"contact_name", "Alice", "readable_date", "Jan 1, 2024 1:00:00 PM")
	b := backup.NewRecord("call",
		"readable_date", "1 janv. 2024 13:00:00", "contact_name", backup.UnknownContact,
		"duration", "4", "date", "100", "number", "555")

	fa, err := backup.Fingerprint(a)
	require.NoError(t, err)
	fb, err := backup.Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fa, fb)
	assert.NotContains(t, fa, "contact_name")
	assert.NotContains(t, fa, "readable_date")
}

func TestFingerprint_DifferentFieldsDiffer(t *testing.T) {
	fa, err := backup.Fingerprint(call("number", "555", "date", "100", "duration", "4"))
	require.NoError(t, err)
	fb, err := backup.Fingerprint(call("number", "555", "date", "100", "duration", "5"))
	require.NoError(t, err)
	fc, err := backup.Fingerprint(call("number", "555", "date", "100", "duration", "4", "type", "2"))
	require.NoError(t, err)

	assert.NotEqual(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}

func TestFingerprint_Deterministic(t *testing.T) {
	r := call("number", "555", "date", "100", "duration", "4", "type", "1")
	first, err := backup.Fingerprint(r)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := backup.Fingerprint(r)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, `{"date":"100","duration":"4","number":"555","type":"1"}`, first)
}

func TestFingerprint_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		rec  *backup.Record
	}{
		{"NoContactName", backup.NewRecord("sms", "address", "555", "readable_date", "x")},
		{"NoReadableDate", backup.NewRecord("sms", "address", "555", "contact_name", "Bob")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := backup.Fingerprint(tt.rec)
			assert.ErrorIs(t, err, backup.ErrMissingField)
			assert.ErrorIs(t, err, backup.ErrMalformedInput)
		})
	}
}

func TestFingerprint_DoesNotMutateRecord(t *testing.T) {
	r := call("number", "555", "date", "100")
	_, err := backup.Fingerprint(r)
	require.NoError(t, err)
	assert.Len(t, r.Attrs, 4)
	assert.Equal(t, backup.UnknownContact, r.ContactName())
}

func TestFingerprint_NamespacedAttributeIsDistinct(t *testing.T) {
	r := call("address", "555", "date", "100", "body", "plain")
	r.Attrs = append(r.Attrs, xml.Attr{Name: xml.Name{Space: "urn:x", Local: "body"}, Value: "other"})

	fp, err := backup.Fingerprint(r)
	require.NoError(t, err)
	assert.Equal(t, `{"address":"555","body":"plain","date":"100","urn:x:body":"other"}`, fp)
	assert.Equal(t, "plain", r.Value("body"))
}
