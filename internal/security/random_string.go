package security

import (
	"crypto/rand"
	"errors"
)

var (
	errNegativeLength  = errors.New("length must be non-negative")
	errEmptyAlphabet   = errors.New("alphabet must not be empty")
	errAlphabetTooWide = errors.New("alphabet must fit in a byte")
)

// RandomString returns a cryptographically secure string of the requested
// length drawn uniformly from the alphabet. Bytes outside the largest
// multiple of the alphabet size are rejected to avoid modulo bias.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}
	if len(alphabet) > 256 {
		return "", errAlphabetTooWide
	}

	limit := byte(256 - 256%len(alphabet))
	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, raw := range buffer {
			if limit != 0 && raw >= limit {
				continue
			}
			value = append(value, alphabet[int(raw)%len(alphabet)])
			if len(value) == length {
				break
			}
		}
	}

	return string(value), nil
}
