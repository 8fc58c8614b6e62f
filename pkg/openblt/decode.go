package openblt

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// decodeUTF8 validates raw bytes copied from the library. Invalid input is an
// error; nothing is replaced or truncated.
func decodeUTF8(raw string) (string, error) {
	s, _, err := transform.String(encoding.UTF8Validator, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUTF8, err)
	}
	return s, nil
}
