package utils

import (
	"toolkit/core/failure"

	"golang.org/x/text/encoding"
)

// EncodeText encodes s into the charset enc. Runes the charset cannot
// represent are replaced with its substitution byte.
func EncodeText(s string, enc encoding.Encoding) ([]byte, error) {
	b, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, failure.New(failure.ErrInvalidFormat, "utils.EncodeText", s, err)
	}
	return b, nil
}

// DecodeText decodes b from the charset enc.
func DecodeText(b []byte, enc encoding.Encoding) (string, error) {
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", failure.New(failure.ErrInvalidFormat, "utils.DecodeText", "", err)
	}
	return string(s), nil
}
