package service

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseTimezoneOffsetMinutes(t *testing.T) {
	cases := []struct {
		timezone string
		want     int
	}{
		{"+03:00", 180},
		{"-05:30", -330},
		{"+00:00", 0},
		{"UTC+3", 180},
		{"UTC-5", -300},
		{"UTC+11", 660},
		{" +03:00 ", 180},
		{"UTC", 0},
		{"Europe/Berlin", 0},
		{"garbage", 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := parseTimezoneOffsetMinutes(tc.timezone); got != tc.want {
			t.Errorf("parseTimezoneOffsetMinutes(%q) = %d, want %d", tc.timezone, got, tc.want)
		}
	}
}

func TestStartOfWeekAlignsToMonday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2024, time.January, 15), date(2024, time.January, 15)},
		{"wednesday maps back to monday", date(2024, time.January, 17), date(2024, time.January, 15)},
		{"saturday maps back to monday", date(2024, time.January, 20), date(2024, time.January, 15)},
		{"sunday belongs to the prior week", date(2024, time.January, 21), date(2024, time.January, 15)},
		{"next monday starts a new week", date(2024, time.January, 22), date(2024, time.January, 22)},
		{"crosses a month boundary", date(2024, time.March, 2), date(2024, time.February, 26)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := startOfWeek(tc.in); !got.Equal(tc.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestUTCRangeForBranchDate(t *testing.T) {
	day := date(2024, time.June, 10)

	cases := []struct {
		name          string
		offsetMinutes int
		wantStart     time.Time
	}{
		{"utc", 0, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{"east of utc starts earlier", 180, time.Date(2024, time.June, 9, 21, 0, 0, 0, time.UTC)},
		{"west of utc starts later", -330, time.Date(2024, time.June, 10, 5, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := utcRangeForBranchDate(day, tc.offsetMinutes)
			if !start.Equal(tc.wantStart) {
				t.Errorf("start = %v, want %v", start, tc.wantStart)
			}
			if want := tc.wantStart.Add(24 * time.Hour); !end.Equal(want) {
				t.Errorf("end = %v, want %v", end, want)
			}
		})
	}
}

func TestUTCRangeIgnoresTimeOfDay(t *testing.T) {
	afternoon := time.Date(2024, time.June, 10, 15, 42, 7, 0, time.UTC)
	start, _ := utcRangeForBranchDate(startOfDayUTC(afternoon), 0)
	if want := date(2024, time.June, 10); !start.Equal(want) {
		t.Errorf("start = %v, want %v", start, want)
	}
}
