package reconcile

// Summary provides aggregate counts for one accumulation pass.
type Summary struct {
	// RecordsRead counts every record passed to Add.
	RecordsRead int `json:"records_read"`

	// Unique counts records kept (one per fingerprint).
	Unique int `json:"unique"`

	// Duplicates counts records dropped because their fingerprint was seen.
	Duplicates int `json:"duplicates"`

	// Backfilled counts unknown contact names resolved at finalization.
	Backfilled int `json:"backfilled"`

	// Unknown counts records still carrying the unknown-contact placeholder
	// after finalization.
	Unknown int `json:"unknown"`

	// KnownAddresses is the number of keys in the address book.
	KnownAddresses int `json:"known_addresses"`
}
