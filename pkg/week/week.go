// Package week computes the Sunday-to-Saturday calendar windows every
// aggregation in the app is bucketed by. Windows are anchored to the
// local clock of the computing process, not to the timezone a drink was
// logged in.
package week

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// displayZone is the fixed timezone timestamps are rendered in. Not
// user-configurable.
var displayZone = mustLoadZone("Europe/Rome")

// StartOfWeek returns the most recent Sunday at local midnight on or
// before t. A t already on a Sunday truncates to that day's midnight.
func StartOfWeek(t time.Time) time.Time {
	day := t.Day() - int(t.Weekday())
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
}

// EndOfWeek returns StartOfWeek(t) plus six days.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// Range returns the inclusive YYYY-MM-DD boundaries of the week that is
// weeksBack whole weeks before the week containing t. weeksBack of 0 is
// the week containing t itself.
func Range(t time.Time, weeksBack int) (start, end string) {
	s := StartOfWeek(t).AddDate(0, 0, -7*weeksBack)
	return s.Format(DateLayout), s.AddDate(0, 0, 6).Format(DateLayout)
}

// Contains reports whether date falls inside [start, end]. All three
// values are YYYY-MM-DD strings; the comparison is lexicographic, which
// for this layout equals chronological order. Aggregators rely on this
// exact-string semantics matching the stored date column.
func Contains(date, start, end string) bool {
	return date >= start && date <= end
}

// FormatFromUTC interprets iso as a UTC instant (a missing zone marker
// is treated as UTC) and renders it in the fixed display timezone.
func FormatFromUTC(iso string) string {
	value := strings.TrimSpace(iso)
	if value == "" {
		return ""
	}
	if !hasZoneMarker(value) {
		value += "Z"
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return iso
	}
	return t.In(displayZone).Format("Mon 2 Jan, 15:04")
}

func hasZoneMarker(value string) bool {
	if strings.HasSuffix(value, "Z") {
		return true
	}
	// A +hh:mm or -hh:mm suffix after the time part.
	if idx := strings.IndexByte(value, 'T'); idx >= 0 {
		rest := value[idx+1:]
		return strings.ContainsAny(rest, "+-")
	}
	return false
}

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
