// Package backup models the records found in SMS Backup & Restore XML exports.
//
// A Record is an attribute bag (one <call>, <sms> or <mms> element). MMS
// records also carry nested <parts> and <addrs> elements; those are kept so
// they can be written back out, but they never take part in identity.
//
// # Backup Types
//
// Calls and SMS are the two closed backup types. Each has a display name,
// a root XML tag and a file-name prefix:
//
//	Calls -> <calls>, calls-*.xml
//	SMS   -> <smses>, sms-*.xml
//
// # Identity
//
// Fingerprint derives the deduplication key of a record: every attribute
// except readable_date and contact_name, canonically serialized. AddressKey
// tells which attribute holds the phone number (number for calls, address
// for messages).
package backup
