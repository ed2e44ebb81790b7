package ihex

import (
	"encoding/hex"
	"fmt"
)

// parseHexDigits checks that s is a non-empty, even-length string of hex
// digits and decodes it to payload bytes. Each violation reports the
// offending detail wrapped in ErrInvalidInput.
func parseHexDigits(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty hex string", ErrInvalidInput)
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string (%d digits)", ErrInvalidInput, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, fmt.Errorf("%w: non-hex character %q at offset %d", ErrInvalidInput, s[i], i)
		}
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return data, nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
