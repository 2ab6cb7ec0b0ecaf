package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moyan78641/memoria/internal/lunar"
	"github.com/moyan78641/memoria/internal/model"
)

// DueOn reports whether today is exactly daysBefore days ahead of the
// memorial's next occurrence. Unparseable or unconvertible dates count as
// "not due" rather than an error, so one bad record never fails a batch.
func DueOn(m *model.Memorial, daysBefore int, today time.Time) bool {
	if daysBefore < 0 {
		return false
	}
	occurrence, ok := NextOccurrence(m, today)
	if !ok {
		return false
	}
	diff := int(occurrence.Sub(dateOnly(today)).Hours() / 24)
	return diff == daysBefore
}

// NextOccurrence returns the next concrete solar date (as UTC midnight) on
// which the memorial's recurring date falls, today included. The candidate in
// the current (solar or lunar) year is used unless it has already passed, in
// which case the following year's occurrence is taken.
func NextOccurrence(m *model.Memorial, today time.Time) (time.Time, bool) {
	t := dateOnly(today)

	switch m.DateMode {
	case model.DateModeSolar:
		if m.SolarDate == nil {
			return time.Time{}, false
		}
		month, day, err := parseMonthDay(*m.SolarDate)
		if err != nil {
			return time.Time{}, false
		}
		occurrence := time.Date(t.Year(), month, day, 0, 0, 0, 0, time.UTC)
		if occurrence.Before(t) {
			occurrence = time.Date(t.Year()+1, month, day, 0, 0, 0, 0, time.UTC)
		}
		return occurrence, true

	case model.DateModeLunar:
		if m.LunarMonth == nil || m.LunarDay == nil {
			return time.Time{}, false
		}
		lunarYear := lunar.YearOf(t)
		for i := 0; i < 2; i++ {
			occurrence, err := lunar.ToSolar(lunarYear+i, *m.LunarMonth, *m.LunarDay, m.LunarLeap)
			if err != nil {
				continue
			}
			if !occurrence.Before(t) {
				return occurrence, true
			}
		}
		return time.Time{}, false
	}

	return time.Time{}, false
}

// parseMonthDay parses the year-less "MM-DD" form memorials store solar
// dates in.
func parseMonthDay(s string) (time.Month, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid solar date %q, expected MM-DD", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month in %q", s)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil || day < 1 || day > 31 {
		return 0, 0, fmt.Errorf("invalid day in %q", s)
	}
	return time.Month(month), day, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
