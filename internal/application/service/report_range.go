package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Branch timezones are stored as UTC offset descriptors, either "+HH:MM" /
// "-HH:MM" or "UTC+N" / "UTC-N". Anything else resolves to a zero offset.
var (
	offsetColonPattern = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)
	offsetUTCPattern   = regexp.MustCompile(`^UTC[+-]\d{1,2}$`)
)

// parseTimezoneOffsetMinutes converts a branch timezone descriptor into an
// offset in minutes east of UTC.
func parseTimezoneOffsetMinutes(timezone string) int {
	raw := strings.TrimSpace(timezone)

	if offsetColonPattern.MatchString(raw) {
		sign := 1
		if raw[0] == '-' {
			sign = -1
		}
		hours, _ := strconv.Atoi(raw[1:3])
		minutes, _ := strconv.Atoi(raw[4:6])
		return sign * (hours*60 + minutes)
	}

	if offsetUTCPattern.MatchString(raw) {
		value, _ := strconv.Atoi(strings.TrimPrefix(raw, "UTC"))
		return value * 60
	}

	return 0
}

func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// startOfWeek aligns a date to the preceding Monday (ISO week start). A
// Sunday counts as day 7 of the prior week.
func startOfWeek(t time.Time) time.Time {
	d := startOfDayUTC(t)
	weekday := int(d.Weekday())
	diff := 1 - weekday
	if weekday == 0 {
		diff = -6
	}
	return addDays(d, diff)
}

// utcRangeForBranchDate converts a calendar day, interpreted as that day's
// midnight in the branch's local time, into a half-open UTC instant range
// [start, start+24h). The offset is subtracted from local midnight to obtain
// the true UTC instant of local midnight.
func utcRangeForBranchDate(day time.Time, offsetMinutes int) (time.Time, time.Time) {
	dayStart := startOfDayUTC(day)
	start := dayStart.Add(-time.Duration(offsetMinutes) * time.Minute)
	return start, start.Add(24 * time.Hour)
}

func isoDateOnly(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
