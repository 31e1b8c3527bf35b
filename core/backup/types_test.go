package backup_test

import (
	"testing"

	"backup-merger/core/backup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_Lookup(t *testing.T) {
	tests := []struct {
		name    string
		typ     backup.Type
		display string
		rootTag string
		prefix  string
		pattern string
	}{
		{"Calls", backup.Calls, "Calls", "calls", "calls", "calls-*.xml"},
		{"SMS", backup.SMS, "SMS", "smses", "sms", "sms-*.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.display, tt.typ.String())
			assert.Equal(t, tt.rootTag, tt.typ.RootTag())
			assert.Equal(t, tt.prefix, tt.typ.FilePrefix())
			assert.Equal(t, tt.pattern, tt.typ.Pattern())
		})
	}
}

func TestTypes_Order(t *testing.T) {
	assert.Equal(t, []backup.Type{backup.Calls, backup.SMS}, backup.Types())
}

func TestParseType(t *testing.T) {
	typ, err := backup.ParseType("sms")
	require.NoError(t, err)
	assert.Equal(t, backup.SMS, typ)

	typ, err = backup.ParseType("Calls")
	require.NoError(t, err)
	assert.Equal(t, backup.Calls, typ)

	_, err = backup.ParseType("mms")
	assert.Error(t, err)
}

func TestType_StringUnknown(t *testing.T) {
	assert.Equal(t, "Type(7)", backup.Type(7).String())
}
