package utils

import (
	"strings"

	"toolkit/core/failure"
)

// boolTokens maps lower-cased tokens to their boolean value.
var boolTokens = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"false": false,
	"f":     false,
	"0":     false,
	"":      false,
}

// ParseBool maps a token to a bool, ignoring case.
// The empty string is false. The token is not trimmed.
func ParseBool(token string) (bool, error) {
	b, ok := boolTokens[strings.ToLower(token)]
	if !ok {
		return false, failure.New(failure.ErrInvalidFormat, "utils.ParseBool", token, nil)
	}
	return b, nil
}
