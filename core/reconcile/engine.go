package reconcile

import (
	"errors"
	"sort"

	"backup-merger/core/backup"
)

// ErrFinalized is returned by Add once Finalize has run.
var ErrFinalized = errors.New("accumulator already finalized")

// Accumulator keeps one record per fingerprint for a single backup type.
type Accumulator struct {
	records map[string]*backup.Record
	order   []string
	book    *AddressBook
	summary Summary

	finalized bool
	sorted    []*backup.Record
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		records: make(map[string]*backup.Record),
		book:    NewAddressBook(),
	}
}

// Book exposes the address book built so far.
func (a *Accumulator) Book() *AddressBook {
	return a.book
}

// Seed registers a fallback name for address. Names learned from records
// always win over seeds.
func (a *Accumulator) Seed(address, name string) {
	if address == "" || name == "" || name == backup.UnknownContact {
		return
	}
	a.book.Seed(address, name)
}

// Add ingests one record. A record whose fingerprint was already seen is
// ignored entirely. Malformed records return an error wrapping
// backup.ErrMalformedInput.
func (a *Accumulator) Add(r *backup.Record) error {
	if a.finalized {
		return ErrFinalized
	}

	fp, err := backup.Fingerprint(r)
	if err != nil {
		return err
	}

	address, err := r.Address()
	if err != nil {
		return err
	}

	a.summary.RecordsRead++

	if _, exists := a.records[fp]; exists {
		a.summary.Duplicates++
		return nil
	}

	a.records[fp] = r
	a.order = append(a.order, fp)
	a.summary.Unique++

	if name := r.ContactName(); name != backup.UnknownContact {
		a.book.Learn(address, name)
	}

	return nil
}

// Finalize backfills unknown contact names from the address book and returns
// all kept records sorted ascending by their raw date string. Records with
// equal dates keep insertion order. Calling it again returns the same slice.
func (a *Accumulator) Finalize() []*backup.Record {
	if a.finalized {
		return a.sorted
	}

	sorted := make([]*backup.Record, 0, len(a.order))
	for _, fp := range a.order {
		r := a.records[fp]
		if r.ContactName() == backup.UnknownContact {
			// Add already validated the address.
			address, _ := r.Address()
			name := a.book.Lookup(address)
			if name != backup.UnknownContact {
				r.Set(backup.AttrContactName, name)
				a.summary.Backfilled++
			} else {
				a.summary.Unknown++
			}
		}
		sorted = append(sorted, r)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date() < sorted[j].Date()
	})

	a.summary.KnownAddresses = a.book.Len()
	a.sorted = sorted
	a.finalized = true
	return sorted
}

// Len returns the number of unique records held.
func (a *Accumulator) Len() int {
	return len(a.order)
}

// Summary returns the counters of this pass. Backfilled and Unknown are only
// populated after Finalize.
func (a *Accumulator) Summary() Summary {
	return a.summary
}
