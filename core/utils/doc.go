// Package utils provides lenient value parsing and conversion helpers.
//
// It covers boolean tokens, GUIDs, numeric and date coercion, a handful of
// string predicates, and charset-explicit text encoding. Every function takes
// its inputs explicitly: date parsing receives a Format, text encoding receives
// the charset. Nothing reads ambient locale settings.
//
// # Boolean Tokens
//
// ParseBool accepts, case-insensitively, "true", "t" and "1" as true and
// "false", "f", "0" and the empty string as false. Any other token fails with
// failure.ErrInvalidFormat. ToBool extends this to bools and to numbers that
// are exactly 0 or 1.
//
// # Usage
//
//	ok, err := utils.ParseBool("T")
//	n, err := utils.ToInt(" 42 ")
//	ts, err := utils.ToTime("2024-03-01 10:00:00", utils.DefaultFormat)
package utils
