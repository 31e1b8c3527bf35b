package loader

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf16"

	"backup-merger/core/backup"
)

// charRef matches a numeric character reference, decimal or hex.
var charRef = regexp.MustCompile(`&#(x[0-9a-fA-F]+|[0-9]+);`)

// The app escapes characters outside the BMP as two UTF-16 halves, e.g.
// &#55357;&#56832; for U+1F600. encoding/xml turns each half into U+FFFD,
// so adjacent pairs are rewritten to one reference before decoding.
// A half without its partner cannot be recovered.
func joinSurrogates(data []byte) ([]byte, error) {
	matches := charRef.FindAllSubmatchIndex(data, -1)
	if len(matches) == 0 {
		return data, nil
	}

	var out bytes.Buffer
	last := 0
	for i := 0; i < len(matches); i++ {
		m := matches[i]
		high, ok := parseCharRef(data[m[2]:m[3]])
		if !ok || !utf16.IsSurrogate(high) {
			continue
		}

		if high >= 0xDC00 || i+1 == len(matches) || matches[i+1][0] != m[1] {
			return nil, unpairedSurrogate(data[m[0]:m[1]], m[0])
		}
		next := matches[i+1]
		low, ok := parseCharRef(data[next[2]:next[3]])
		if !ok || low < 0xDC00 || low > 0xDFFF {
			return nil, unpairedSurrogate(data[m[0]:m[1]], m[0])
		}

		if out.Len() == 0 {
			out.Grow(len(data))
		}
		out.Write(data[last:m[0]])
		fmt.Fprintf(&out, "&#x%X;", utf16.DecodeRune(high, low))
		last = next[1]
		i++
	}

	if last == 0 {
		return data, nil
	}
	out.Write(data[last:])
	return out.Bytes(), nil
}

func parseCharRef(ref []byte) (rune, bool) {
	s, base := string(ref), 10
	if s[0] == 'x' {
		s, base = s[1:], 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

func unpairedSurrogate(ref []byte, offset int) error {
	return fmt.Errorf("%w: unpaired surrogate %s at offset %d", backup.ErrMalformedInput, ref, offset)
}
