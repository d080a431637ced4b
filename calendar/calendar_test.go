package calendar_test

import (
	"testing"
	"time"

	"github.com/warp/vacation-planner/calendar"
)

func TestNextAccrualBoundary_AlwaysStrictlyLaterSunday(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"monday", "2024-01-01", "2024-01-07"},
		{"saturday", "2024-01-06", "2024-01-07"},
		{"sunday steps a full week", "2024-01-07", "2024-01-14"},
		{"friday", "2024-01-12", "2024-01-14"},
		{"year boundary", "2023-12-29", "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.NextAccrualBoundary(calendar.MustParseDate(tt.from))
			want := calendar.MustParseDate(tt.want)
			if !got.Equal(want) {
				t.Errorf("NextAccrualBoundary(%s) = %s, want %s", tt.from, got, want)
			}
			if got.Weekday() != time.Sunday {
				t.Errorf("boundary %s is not a Sunday", got)
			}
			if !got.After(calendar.MustParseDate(tt.from)) {
				t.Errorf("boundary %s is not strictly after %s", got, tt.from)
			}
		})
	}
}

func TestIsChargeableWorkday(t *testing.T) {
	holidays := calendar.NewHolidaySet(calendar.MustParseDate("2024-07-04"))

	tests := []struct {
		name string
		day  string
		want bool
	}{
		{"regular weekday", "2024-07-03", true},
		{"holiday weekday", "2024-07-04", false},
		{"saturday", "2024-07-06", false},
		{"sunday", "2024-07-07", false},
		{"monday after", "2024-07-08", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.IsChargeableWorkday(calendar.MustParseDate(tt.day), holidays)
			if got != tt.want {
				t.Errorf("IsChargeableWorkday(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestHolidaySet_DuplicatesCollapse(t *testing.T) {
	d := calendar.MustParseDate("2024-12-25")
	set := calendar.NewHolidaySet(d, d, d)

	if set.Len() != 1 {
		t.Errorf("expected 1 distinct holiday, got %d", set.Len())
	}
	if !set.Contains(d) {
		t.Error("set should contain the holiday")
	}
}

func TestHolidaySet_ZeroValueIsEmpty(t *testing.T) {
	var set calendar.HolidaySet
	if set.Contains(calendar.MustParseDate("2024-01-01")) {
		t.Error("zero-value set should contain nothing")
	}
	if set.Len() != 0 {
		t.Errorf("zero-value set has Len %d", set.Len())
	}
}

func TestHolidaySet_DatesSorted(t *testing.T) {
	set := calendar.NewHolidaySet(
		calendar.MustParseDate("2024-12-25"),
		calendar.MustParseDate("2024-01-01"),
		calendar.MustParseDate("2024-07-04"),
	)

	dates := set.Dates()
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Errorf("Dates() not ascending at index %d: %s >= %s", i, dates[i-1], dates[i])
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.February || d.Day() != 29 {
		t.Errorf("parsed %s, want 2024-02-29", d)
	}

	if _, err := calendar.ParseDate("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := calendar.ParseDate("2023-02-29"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestDate_AddDaysCrossesMonths(t *testing.T) {
	d := calendar.MustParseDate("2024-01-31").AddDays(1)
	if !d.Equal(calendar.MustParseDate("2024-02-01")) {
		t.Errorf("expected 2024-02-01, got %s", d)
	}
}
