package backup

import (
	"encoding/xml"
	"fmt"
)

// Attribute names shared by every record type.
const (
	AttrContactName  = "contact_name"
	AttrReadableDate = "readable_date"
	AttrDate         = "date"
	AttrNumber       = "number"
	AttrAddress      = "address"
)

// UnknownContact is the placeholder the app writes when it has no name.
const UnknownContact = "(Unknown)"

// addressKeys lists the attributes that may hold the address, in lookup order.
// Calls use number, messages use address.
var addressKeys = []string{AttrNumber, AttrAddress}

// Record is a single call or message element. Attribute order is kept as
// read so output files look like the app's own.
type Record struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []*Record  `xml:",any"`
}

// NewRecord builds a record from alternating key/value pairs.
func NewRecord(tag string, kv ...string) *Record {
	r := &Record{XMLName: xml.Name{Local: tag}}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

// attrKey names an attribute the way Get and Fingerprint see it. Attributes
// outside the default namespace are qualified so they never collide with a
// plain attribute of the same local name.
func attrKey(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Validate reports an attribute repeated on r or on any nested element.
func (r *Record) Validate() error {
	seen := make(map[xml.Name]struct{}, len(r.Attrs))
	for _, a := range r.Attrs {
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: %s (element <%s>)", ErrDuplicateAttribute, attrKey(a.Name), r.XMLName.Local)
		}
		seen[a.Name] = struct{}{}
	}
	for _, c := range r.Children {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value of the named attribute.
func (r *Record) Get(key string) (string, bool) {
	for _, a := range r.Attrs {
		if a.Name.Space == "" && a.Name.Local == key {
			return a.Value, true
		}
	}
	return "", false
}

// Value returns the named attribute or an empty string.
func (r *Record) Value(key string) string {
	v, _ := r.Get(key)
	return v
}

// Set overwrites the named attribute in place, or appends it.
func (r *Record) Set(key, value string) {
	for i := range r.Attrs {
		if r.Attrs[i].Name.Space == "" && r.Attrs[i].Name.Local == key {
			r.Attrs[i].Value = value
			return
		}
	}
	r.Attrs = append(r.Attrs, xml.Attr{Name: xml.Name{Local: key}, Value: value})
}

// ContactName returns the contact_name attribute.
func (r *Record) ContactName() string {
	return r.Value(AttrContactName)
}

// Date returns the raw date attribute (milliseconds since epoch as text).
func (r *Record) Date() string {
	return r.Value(AttrDate)
}

// AddressKey reports which attribute holds the address of this record.
func (r *Record) AddressKey() (string, error) {
	for _, k := range addressKeys {
		if _, ok := r.Get(k); ok {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w (element <%s>)", ErrMissingAddressField, r.XMLName.Local)
}

// Address returns the value of the address attribute.
func (r *Record) Address() (string, error) {
	key, err := r.AddressKey()
	if err != nil {
		return "", err
	}
	return r.Value(key), nil
}
