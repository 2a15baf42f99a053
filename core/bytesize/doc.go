// Package bytesize renders byte counts as human-readable magnitudes.
//
// The unit is picked by the integer base-1024 logarithm of the count and the
// scaled value is printed with two decimals, e.g. 1536 becomes "1.50 KB".
// Number rendering (grouping and decimal mark) follows an explicit language
// tag; HumanSize uses American English.
package bytesize
