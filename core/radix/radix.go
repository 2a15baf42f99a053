package radix

import (
	"math"
	"strconv"
	"strings"

	"toolkit/core/failure"
)

// Alphabet is the ordered digit set; base b uses its first b symbols.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinRadix = 2
	MaxRadix = len(Alphabet)
)

// Encode renders value in the given radix, most significant digit first.
func Encode(value int64, radix int) (string, error) {
	if err := checkRadix("radix.Encode", radix); err != nil {
		return "", err
	}
	if value < 0 {
		return "", failure.New(failure.ErrNegativeValue, "radix.Encode", strconv.FormatInt(value, 10), nil)
	}

	b := int64(radix)
	var digits []byte
	for value >= b {
		digits = append(digits, Alphabet[value%b])
		value /= b
	}
	digits = append(digits, Alphabet[value])

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// Decode parses s as a number in the given radix. Letters are matched
// without regard to case.
func Decode(s string, radix int) (int64, error) {
	if err := checkRadix("radix.Decode", radix); err != nil {
		return 0, err
	}
	if s == "" {
		return 0, failure.Newf(failure.ErrInvalidFormat, "radix.Decode", s, "empty input")
	}

	b := int64(radix)
	var result int64
	for i, c := range strings.ToUpper(s) {
		d := strings.IndexRune(Alphabet[:radix], c)
		if d < 0 {
			return 0, failure.Newf(failure.ErrInvalidFormat, "radix.Decode", s, "symbol %q at %d not in base %d", c, i, radix)
		}
		if result > (math.MaxInt64-int64(d))/b {
			return 0, failure.Newf(failure.ErrInvalidFormat, "radix.Decode", s, "value overflows int64")
		}
		result = result*b + int64(d)
	}
	return result, nil
}

func checkRadix(op string, radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return failure.New(failure.ErrUnsupportedRadix, op, strconv.Itoa(radix), nil)
	}
	return nil
}
