package reconcile

import (
	"strings"

	"backup-merger/core/backup"
)

// AddressBook maps addresses to the best known contact name.
type AddressBook struct {
	names map[string]string
	seeds map[string]string
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		names: make(map[string]string),
		seeds: make(map[string]string),
	}
}

// AddressVariants returns the keys an address is stored under: the raw
// address, then the address with one leading "+" removed, then with one
// leading "1" removed. Duplicates are kept so callers see all three.
//
// Stripping "1" is a crude country-code normalization. Local numbers that
// genuinely start with 1 can collide with unrelated numbers.
func AddressVariants(address string) []string {
	return []string{
		address,
		strings.TrimPrefix(address, "+"),
		strings.TrimPrefix(address, "1"),
	}
}

// Learn records name for every variant of address, overwriting older values.
func (b *AddressBook) Learn(address, name string) {
	for _, key := range AddressVariants(address) {
		b.names[key] = name
	}
}

// Seed records a fallback name for every variant of address. Seeds never
// shadow names learned from records.
func (b *AddressBook) Seed(address, name string) {
	for _, key := range AddressVariants(address) {
		b.seeds[key] = name
	}
}

// Lookup returns the name known for address, or backup.UnknownContact.
func (b *AddressBook) Lookup(address string) string {
	return b.LookupOr(address, backup.UnknownContact)
}

// LookupOr returns the name known for address, or def.
func (b *AddressBook) LookupOr(address, def string) string {
	if name, ok := b.names[address]; ok {
		return name
	}
	if name, ok := b.seeds[address]; ok {
		return name
	}
	return def
}

// Len returns the number of distinct keys learned from records.
func (b *AddressBook) Len() int {
	return len(b.names)
}
