package wealthwise

import (
	"testing"
	"time"
)

func TestDate_AddMonth(t *testing.T) {
	testCases := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{name: "simple step", start: "2025-03-15", months: 1, want: "2025-04-15"},
		{name: "several steps", start: "2025-03-15", months: 4, want: "2025-07-15"},
		{name: "year boundary", start: "2025-12-05", months: 1, want: "2026-01-05"},
		{name: "two year boundaries", start: "2025-11-20", months: 14, want: "2027-01-20"},
		{name: "jan 31 normalizes into march", start: "2025-01-31", months: 1, want: "2025-03-03"},
		{name: "leap february keeps the 29th", start: "2024-01-29", months: 1, want: "2024-02-29"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParseDate(tc.start).AddMonth(tc.months)
			if got.String() != tc.want {
				t.Errorf("AddMonth(%s, %d) = %s, want %s", tc.start, tc.months, got, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-7-1")
	if err != nil {
		t.Fatalf("ParseDate lenient form: %v", err)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("got %s, want 2025-07-01", d)
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected an error for an invalid date")
	}
}

func TestPeriod_Contains(t *testing.T) {
	on := NewDate(2025, time.June, 15)

	testCases := []struct {
		name   string
		period Period
		day    Date
		want   bool
	}{
		{name: "same month", period: Monthly, day: NewDate(2025, time.June, 1), want: true},
		{name: "month boundary", period: Monthly, day: NewDate(2025, time.May, 31), want: false},
		{name: "same month other year", period: Monthly, day: NewDate(2024, time.June, 15), want: false},
		{name: "same year", period: Yearly, day: NewDate(2025, time.January, 1), want: true},
		{name: "other year", period: Yearly, day: NewDate(2024, time.December, 31), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.period.Contains(on, tc.day); got != tc.want {
				t.Errorf("%s.Contains(%s, %s) = %v, want %v", tc.period, on, tc.day, got, tc.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParseDate("2025-02-28")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got Date
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("round trip changed the date: got %s, want %s", got, d)
	}
}
