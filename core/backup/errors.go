package backup

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is the root of every error caused by bad input data.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMissingAddressField is returned when a record has neither a
	// number nor an address attribute.
	ErrMissingAddressField = fmt.Errorf("%w: no address field found", ErrMalformedInput)

	// ErrMissingField is returned when a record lacks an attribute that
	// every exported record carries (contact_name, readable_date, date).
	ErrMissingField = fmt.Errorf("%w: required attribute missing", ErrMalformedInput)

	// ErrDuplicateAttribute is returned when an element repeats an attribute.
	ErrDuplicateAttribute = fmt.Errorf("%w: duplicate attribute", ErrMalformedInput)
)
