package backup

import (
	"encoding/json"
	"fmt"
)

// ignoredFields never take part in identity. The app rewrites both between
// exports of the same event.
var ignoredFields = []string{AttrReadableDate, AttrContactName}

// Fingerprint returns the deduplication key of a record: all attributes
// except readable_date and contact_name, encoded as a JSON object with
// sorted keys. Nested elements are not included.
func Fingerprint(r *Record) (string, error) {
	attrs := make(map[string]string, len(r.Attrs))
	for _, a := range r.Attrs {
		attrs[attrKey(a.Name)] = a.Value
	}

	for _, f := range ignoredFields {
		if _, ok := attrs[f]; !ok {
			return "", fmt.Errorf("%w: %s (element <%s>)", ErrMissingField, f, r.XMLName.Local)
		}
		delete(attrs, f)
	}

	// encoding/json sorts map keys, which makes the output canonical.
	data, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("encode fingerprint: %w", err)
	}
	return string(data), nil
}
