// Package iprange checks whether an IP address lies within an inclusive
// lower/upper bound.
//
// Addresses are compared byte by byte from the most significant end. Both
// bounds must belong to the address's family, and the lower bound must not
// exceed the upper bound at any byte position; either violation is a usage
// error rather than a false result.
//
// # Boundary Scan
//
// The check keeps one flag per bound. While a flag is set the address is
// still equal to that bound on every byte seen so far, so the next byte must
// not cross it. A flag clears as soon as the address is strictly inside on
// that side, and the scan stops once both flags are clear.
//
// # Usage
//
//	r, err := iprange.NewRange(netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("10.0.0.255"))
//	ok, err := r.Contains(netip.MustParseAddr("10.0.0.200"))
package iprange
