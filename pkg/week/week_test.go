package week

import (
	"testing"
	"time"
)

func TestStartOfWeekIsSunday(t *testing.T) {
	// Wednesday 2026-01-14.
	ref := time.Date(2026, 1, 14, 17, 30, 0, 0, time.UTC)
	start := StartOfWeek(ref)

	if start.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday, got %v", start.Weekday())
	}
	if got := start.Format(DateLayout); got != "2026-01-11" {
		t.Fatalf("expected 2026-01-11, got %s", got)
	}
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight, got %v", start)
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	ref := time.Date(2026, 1, 11, 9, 15, 0, 0, time.UTC)
	start := StartOfWeek(ref)

	if got := start.Format(DateLayout); got != "2026-01-11" {
		t.Fatalf("expected same Sunday, got %s", got)
	}
}

func TestStartOfWeekIdempotent(t *testing.T) {
	ref := time.Date(2026, 3, 6, 23, 59, 59, 0, time.UTC)
	once := StartOfWeek(ref)
	twice := StartOfWeek(once)

	if !once.Equal(twice) {
		t.Fatalf("expected idempotent start, got %v then %v", once, twice)
	}
}

func TestEndOfWeekIsStartPlusSixDays(t *testing.T) {
	ref := time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)
	start := StartOfWeek(ref)
	end := EndOfWeek(ref)

	if !end.Equal(start.AddDate(0, 0, 6)) {
		t.Fatalf("expected end %v, got %v", start.AddDate(0, 0, 6), end)
	}
	if end.Weekday() != time.Saturday {
		t.Fatalf("expected Saturday, got %v", end.Weekday())
	}
}

func TestStartOfWeekCrossesMonthBoundary(t *testing.T) {
	// Monday 2026-03-02; its week starts Sunday 2026-03-01.
	ref := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	if got := StartOfWeek(ref).Format(DateLayout); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}

	// Wednesday 2026-04-01; week starts in March.
	ref = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	if got := StartOfWeek(ref).Format(DateLayout); got != "2026-03-29" {
		t.Fatalf("expected 2026-03-29, got %s", got)
	}
}

func TestRange(t *testing.T) {
	ref := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)

	start, end := Range(ref, 0)
	if start != "2026-01-11" || end != "2026-01-17" {
		t.Fatalf("week 0: got %s..%s", start, end)
	}

	start, end = Range(ref, 2)
	if start != "2025-12-28" || end != "2026-01-03" {
		t.Fatalf("week 2: got %s..%s", start, end)
	}
}

func TestContainsInclusiveBounds(t *testing.T) {
	start, end := "2026-01-11", "2026-01-17"

	cases := []struct {
		date string
		want bool
	}{
		{"2026-01-11", true},
		{"2026-01-17", true},
		{"2026-01-14", true},
		{"2026-01-10", false},
		{"2026-01-18", false},
	}
	for _, tc := range cases {
		if got := Contains(tc.date, start, end); got != tc.want {
			t.Fatalf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestFormatFromUTCAssumesUTCWithoutMarker(t *testing.T) {
	with := FormatFromUTC("2026-01-14T18:00:00Z")
	without := FormatFromUTC("2026-01-14T18:00:00")

	if with == "" || with != without {
		t.Fatalf("expected identical rendering, got %q and %q", with, without)
	}
}

func TestFormatFromUTCEmpty(t *testing.T) {
	if got := FormatFromUTC("  "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
