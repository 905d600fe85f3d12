package tindahan

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso", in: "2024-01-05", want: NewDate(2024, time.January, 5)},
		{name: "lenient single digits", in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{name: "surrounding spaces", in: " 2024-01-05 ", want: NewDate(2024, time.January, 5)},
		{name: "not a date", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateMonth(t *testing.T) {
	d := MustDate("2024-02-29")
	if got, want := d.Month().String(), "2024-02"; got != want {
		t.Errorf("Month() = %q, want %q", got, want)
	}
	if !d.Month().Contains(d) {
		t.Errorf("month %v should contain %v", d.Month(), d)
	}
	if d.Month().Contains(MustDate("2024-03-01")) {
		t.Errorf("month %v should not contain 2024-03-01", d.Month())
	}
}

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01", want: "2024-01"},
		{in: "2024-1", want: "2024-01"},
		{in: " 2024-12 ", want: "2024-12"},
		{in: "2024", wantErr: true},
		{in: "jan 2024", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseMonth(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMonth(%q) unexpected error: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("ParseMonth(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonthsOf(t *testing.T) {
	var months []Month
	for m := range MonthsOf(2024) {
		months = append(months, m)
	}
	if len(months) != 12 {
		t.Fatalf("MonthsOf(2024) yielded %d months, want 12", len(months))
	}
	if got, want := months[0].String(), "2024-01"; got != want {
		t.Errorf("first month = %q, want %q", got, want)
	}
	if got, want := months[11].String(), "2024-12"; got != want {
		t.Errorf("last month = %q, want %q", got, want)
	}
}

func TestMonthNext(t *testing.T) {
	if got, want := MustMonth("2024-12").Next().String(), "2025-01"; got != want {
		t.Errorf("Next across year = %q, want %q", got, want)
	}
	m := MustMonth("2024-06")
	if !m.Before(m.Next()) {
		t.Errorf("%v must be before %v", m, m.Next())
	}
	if m.Before(m) {
		t.Errorf("%v must not be before itself", m)
	}
}

func TestMonthJSONKey(t *testing.T) {
	m := MustMonth("2024-07")
	text, err := m.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Month
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != m {
		t.Errorf("roundtrip = %v, want %v", back, m)
	}
}
