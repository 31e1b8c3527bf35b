package contacts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emersion/go-vcard"
)

// Entry is one phone number with the display name it belongs to.
type Entry struct {
	Name   string
	Number string
}

// LoadVCardFile reads every card in the .vcf file at path.
func LoadVCardFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contacts file: %w", err)
	}
	defer f.Close()

	entries, err := LoadVCard(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// LoadVCard decodes cards from r and returns one entry per telephone number.
// Cards without a usable name or number are skipped.
func LoadVCard(r io.Reader) ([]Entry, error) {
	dec := vcard.NewDecoder(r)
	var entries []Entry

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode vCard: %w", err)
		}

		name := displayName(card)
		if name == "" {
			continue
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			number := NormalizeNumber(tel)
			if number == "" {
				continue
			}
			entries = append(entries, Entry{Name: name, Number: number})
		}
	}

	return entries, nil
}

// displayName prefers FN, then the structured N.
func displayName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		parts := []string{n.HonorificPrefix, n.GivenName, n.AdditionalName, n.FamilyName, n.HonorificSuffix}
		var nonEmpty []string
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}
		return strings.Join(nonEmpty, " ")
	}
	return ""
}

// NormalizeNumber strips a tel: scheme and every character except digits
// and a leading "+".
func NormalizeNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "tel:")

	var b strings.Builder
	for i, c := range raw {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == '+' && i == 0:
			b.WriteRune(c)
		}
	}

	out := b.String()
	if out == "+" {
		return ""
	}
	return out
}
