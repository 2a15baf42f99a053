package iprange

import (
	"net/netip"
	"strings"

	"toolkit/core/failure"
)

// Family identifies the address family.
type Family int

const (
	Invalid Family = iota
	IPv4
	IPv6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	default:
		return "invalid"
	}
}

// FamilyOf returns the family of a. IPv4-mapped IPv6 addresses are IPv6.
func FamilyOf(a netip.Addr) Family {
	switch {
	case a.Is4():
		return IPv4
	case a.Is6():
		return IPv6
	default:
		return Invalid
	}
}

// Parse parses a textual IPv4 or IPv6 address.
func Parse(s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, failure.New(failure.ErrInvalidFormat, "iprange.Parse", s, err)
	}
	return a, nil
}

// IsAddress reports whether s is a valid IP address.
func IsAddress(s string) bool {
	_, err := netip.ParseAddr(s)
	return err == nil
}

// Range is an inclusive address range whose bounds have been validated.
type Range struct {
	lower netip.Addr
	upper netip.Addr
}

// NewRange validates the bounds and returns the range.
func NewRange(lower, upper netip.Addr) (Range, error) {
	if err := checkBounds("iprange.NewRange", lower, upper); err != nil {
		return Range{}, err
	}
	return Range{lower: lower, upper: upper}, nil
}

// ParseRange parses "lower-upper", e.g. "10.0.0.0-10.0.0.255".
func ParseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, failure.Newf(failure.ErrInvalidFormat, "iprange.ParseRange", s, "expected lower-upper")
	}
	lower, err := Parse(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, err
	}
	upper, err := Parse(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, err
	}
	return NewRange(lower, upper)
}

// Lower returns the lower bound.
func (r Range) Lower() netip.Addr { return r.lower }

// Upper returns the upper bound.
func (r Range) Upper() netip.Addr { return r.upper }

func (r Range) String() string {
	return r.lower.String() + "-" + r.upper.String()
}

// Contains reports whether addr lies within r.
func (r Range) Contains(addr netip.Addr) (bool, error) {
	if FamilyOf(addr) != FamilyOf(r.lower) {
		return false, mismatch("iprange.Contains", addr, r.lower)
	}
	return scan(addr.AsSlice(), r.lower.AsSlice(), r.upper.AsSlice()), nil
}

// InRange reports whether addr lies within [lower, upper].
func InRange(addr, lower, upper netip.Addr) (bool, error) {
	if FamilyOf(addr) != FamilyOf(lower) {
		return false, mismatch("iprange.InRange", addr, lower)
	}
	if err := checkBounds("iprange.InRange", lower, upper); err != nil {
		return false, err
	}
	return scan(addr.AsSlice(), lower.AsSlice(), upper.AsSlice()), nil
}

func checkBounds(op string, lower, upper netip.Addr) error {
	if FamilyOf(lower) == Invalid {
		return failure.Newf(failure.ErrInvalidFormat, op, "", "invalid lower bound")
	}
	if FamilyOf(upper) != FamilyOf(lower) {
		return mismatch(op, upper, lower)
	}
	lo, hi := lower.AsSlice(), upper.AsSlice()
	for i := range lo {
		if lo[i] > hi[i] {
			return failure.Newf(failure.ErrBounds, op, lower.String()+"-"+upper.String(), "lower exceeds upper at byte %d", i)
		}
	}
	return nil
}

func mismatch(op string, a, b netip.Addr) error {
	return failure.Newf(failure.ErrAddressFamilyMismatch, op, a.String(), "%s vs %s", FamilyOf(a), FamilyOf(b))
}

// scan walks the bytes while the address still touches a bound.
func scan(addr, lower, upper []byte) bool {
	atLower, atUpper := true, true
	for i := 0; i < len(lower) && (atLower || atUpper); i++ {
		if (atLower && addr[i] < lower[i]) || (atUpper && addr[i] > upper[i]) {
			return false
		}
		atLower = atLower && addr[i] == lower[i]
		atUpper = atUpper && addr[i] == upper[i]
	}
	return true
}
