// Package contacts reads address book exports used to seed contact names.
//
// Phones often lose contact names in older backups. Loading a vCard export
// of the address book gives the merge a fallback name for numbers that no
// backup record ever named.
//
// Numbers are reduced to digits with an optional leading "+", the format
// the backup app writes, so "+1 (555) 123-4567" seeds "+15551234567".
package contacts
