package utils

import (
	"strings"
	"time"

	"toolkit/core/failure"

	"github.com/spf13/cast"
)

// SQLTimeLayout is the layout used by SQLTimeLiteral.
const SQLTimeLayout = "2006-01-02 15:04:05"

// Format fixes how dates are read. The zero value behaves like DefaultFormat.
type Format struct {
	// Layouts are tried in order when parsing strings.
	Layouts []string
	// Location is applied to layouts without zone information.
	Location *time.Location
}

// DefaultFormat reads RFC 3339, SQL-style timestamps and plain dates in UTC.
var DefaultFormat = Format{
	Layouts:  []string{time.RFC3339Nano, SQLTimeLayout, "2006-01-02"},
	Location: time.UTC,
}

func (f Format) layouts() []string {
	if len(f.Layouts) == 0 {
		return DefaultFormat.Layouts
	}
	return f.Layouts
}

func (f Format) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// ToTime converts v to a time.Time using f.
// Strings must match one of f's layouts. Other kinds (numbers as Unix
// seconds, time.Time) are handled by cast in f's location.
func ToTime(v any, f Format) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		t, err := cast.ToTimeInDefaultLocationE(v, f.location())
		if err != nil {
			return time.Time{}, failure.New(failure.ErrInvalidFormat, "utils.ToTime", ToString(v), err)
		}
		return t, nil
	}

	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range f.layouts() {
		t, err := time.ParseInLocation(layout, s, f.location())
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, failure.New(failure.ErrInvalidFormat, "utils.ToTime", s, lastErr)
}

// IsTime reports whether s parses under f.
func IsTime(s string, f Format) bool {
	_, err := ToTime(s, f)
	return err == nil
}

// FormatTime renders t with layout, or returns "" for the zero time.
func FormatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// SQLTimeLiteral renders t as a quoted SQL timestamp literal, or NULL for the zero time.
func SQLTimeLiteral(t time.Time) string {
	if t.IsZero() {
		return "NULL"
	}
	return "'" + t.Format(SQLTimeLayout) + "'"
}
