package backup

import "fmt"

// Type identifies one of the backup kinds produced by the app.
type Type int

const (
	// Calls is the call log backup.
	Calls Type = iota
	// SMS is the message backup (sms and mms elements).
	SMS
)

type typeInfo struct {
	name       string
	rootTag    string
	filePrefix string
}

var types = map[Type]typeInfo{
	Calls: {name: "Calls", rootTag: "calls", filePrefix: "calls"},
	SMS:   {name: "SMS", rootTag: "smses", filePrefix: "sms"},
}

// Types returns all backup types in processing order.
func Types() []Type {
	return []Type{Calls, SMS}
}

// ParseType resolves a type from its display name or file prefix.
func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		info := types[t]
		if s == info.name || s == info.filePrefix {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown backup type %q", s)
}

// String returns the display name ("Calls", "SMS").
func (t Type) String() string {
	if info, ok := types[t]; ok {
		return info.name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// RootTag returns the root element name of a backup document of this type.
func (t Type) RootTag() string {
	return types[t].rootTag
}

// FilePrefix returns the file-name prefix used by the app for this type.
func (t Type) FilePrefix() string {
	return types[t].filePrefix
}

// Pattern returns the glob matching input files of this type.
func (t Type) Pattern() string {
	return t.FilePrefix() + "-*.xml"
}
