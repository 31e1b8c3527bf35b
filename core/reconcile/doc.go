// Package reconcile deduplicates backup records and backfills contact names.
//
// The package holds the whole merge core. An Accumulator receives every
// record of one backup type, keeps exactly one record per fingerprint and,
// once all inputs are read, returns the records sorted by date with missing
// contact names filled in.
//
// # Architecture
//
// 1. Accumulator: fingerprint -> record index plus insertion order. The first
// record seen for a fingerprint is authoritative; later duplicates are
// dropped without merging any field.
//
// 2. AddressBook: address -> best known contact name, fed by every kept
// record that carries a real name. Each name is stored under three keys: the
// raw address, the address without one leading "+", and the address without
// one leading "1". Last write wins. A lower-precedence seed table (for
// example from a vCard export) answers lookups the records could not.
//
// 3. Summary: counters describing what the pass did.
//
// # Usage Example
//
//	acc := reconcile.NewAccumulator()
//	for _, r := range records {
//	    if err := acc.Add(r); err != nil {
//	        return err
//	    }
//	}
//	sorted := acc.Finalize()
//	fmt.Println(acc.Summary().Duplicates)
//
// Finalize must only run after every Add: the address book is only complete
// once all records of the pass have been seen.
package reconcile
