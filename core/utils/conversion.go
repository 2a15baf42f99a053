package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"toolkit/core/failure"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// ToInt converts v to int. Strings are read as base-10 integers with
// surrounding white space ignored; other kinds go through cast.
func ToInt(v any) (int, error) {
	n, err := ToInt64(v)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, failure.Newf(failure.ErrInvalidFormat, "utils.ToInt", ToString(v), "out of range for int")
	}
	return int(n), nil
}

// ToInt64 converts v to int64.
func ToInt64(v any) (int64, error) {
	switch s := v.(type) {
	case string:
		return parseInt(s)
	case []byte:
		return parseInt(string(s))
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, failure.New(failure.ErrInvalidFormat, "utils.ToInt64", ToString(v), err)
	}
	return n, nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, failure.New(failure.ErrInvalidFormat, "utils.ToInt64", s, err)
	}
	return n, nil
}

// ToFloat64 converts v to float64. Strings use '.' as the decimal mark.
func ToFloat64(v any) (float64, error) {
	switch s := v.(type) {
	case string:
		return parseFloat(s, 64)
	case []byte:
		return parseFloat(string(s), 64)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, failure.New(failure.ErrInvalidFormat, "utils.ToFloat64", ToString(v), err)
	}
	return f, nil
}

// ToFloat32 converts v to float32, failing when the value does not fit.
func ToFloat32(v any) (float32, error) {
	if s, ok := v.(string); ok {
		f, err := parseFloat(s, 32)
		return float32(f), err
	}
	f, err := ToFloat64(v)
	if err != nil {
		return 0, err
	}
	if math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
		return 0, failure.Newf(failure.ErrInvalidFormat, "utils.ToFloat32", ToString(v), "out of range for float32")
	}
	return float32(f), nil
}

func parseFloat(s string, bits int) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
	if err != nil {
		return 0, failure.New(failure.ErrInvalidFormat, "utils.ToFloat", s, err)
	}
	return f, nil
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts v to bool.
// Bools pass through, numbers must be exactly 0 or 1, and strings or byte
// slices go through ParseBool. Everything else, nil included, is rejected.
func ToBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return ParseBool(b)
	case []byte:
		return ParseBool(string(b))
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64, float32:
		f, err := cast.ToFloat64E(b)
		if err != nil {
			return false, failure.New(failure.ErrInvalidFormat, "utils.ToBool", ToString(v), err)
		}
		switch f {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return false, failure.Newf(failure.ErrInvalidFormat, "utils.ToBool", ToString(v), "not boolean-coercible (%T)", v)
}

// ParseGUID parses a 128-bit identifier in its canonical textual form.
func ParseGUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, failure.New(failure.ErrInvalidFormat, "utils.ParseGUID", s, err)
	}
	return id, nil
}
