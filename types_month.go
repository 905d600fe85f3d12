package tindahan

import (
	"fmt"
	"iter"
	"strings"
	"time"
)

// MonthFormat is the month-key format: a string of the form YYYY-MM.
const MonthFormat = "2006-01"

// Month identifies a calendar month. It is the key used to bucket stock
// quantities, sales and report snapshots.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := NewDate(year, month, 1)
	return Month{y: d.y, m: d.m}
}

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// String formats the month as its YYYY-MM key.
func (m Month) String() string { return m.time().Format(MonthFormat) }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

func (m Month) time() time.Time { return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC) }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool { return m.time().Before(x.time()) }

// Next returns the month following m.
func (m Month) Next() Month { return NewMonth(m.y, m.m+1) }

// Contains reports whether the day d falls inside the month.
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// ParseMonth parses a YYYY-MM month-key. It is lenient and accepts a
// single-digit month like "2024-1".
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse("2006-1", str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	y, mo, _ := on.Date()
	return Month{y: y, m: mo}, nil
}

// MustMonth is like ParseMonth but panics on error.
func MustMonth(str string) Month {
	m, err := ParseMonth(str)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// MonthsOf iterates over the twelve months of a calendar year in order.
func MonthsOf(year int) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		end := NewMonth(year+1, time.January)
		for m := NewMonth(year, time.January); m.Before(end); m = m.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

// MarshalText makes Month usable as a JSON object key.
func (m Month) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText parses a month-key, strictly this time as it reads data files.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
