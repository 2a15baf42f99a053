// Package radix converts non-negative integers to and from text in any base
// between 2 and 36, using the digits 0-9 followed by the letters A-Z.
package radix
