package holiday

import (
	"errors"
	"testing"
	"time"
)

func TestEasterSunday(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2000, time.April, 23},
		{1999, time.April, 4},
	}
	for _, c := range cases {
		got := EasterSunday(c.year)
		if got.Month() != c.month || got.Day() != c.day {
			t.Errorf("EasterSunday(%d) = %v, want %v %d", c.year, got.Format("2006-01-02"), c.month, c.day)
		}
	}
}

func TestForYearHolyWeek2025(t *testing.T) {
	cal := NewCalendar()
	holidays := cal.ForYear(2025)

	if holidays["2025-04-17"] != "Maundy Thursday" {
		t.Errorf("2025-04-17 = %q, want Maundy Thursday", holidays["2025-04-17"])
	}
	if holidays["2025-04-18"] != "Good Friday" {
		t.Errorf("2025-04-18 = %q, want Good Friday", holidays["2025-04-18"])
	}
	if holidays["2025-04-19"] != "Black Saturday" {
		t.Errorf("2025-04-19 = %q, want Black Saturday", holidays["2025-04-19"])
	}
}

func TestForYearFixedAndMoving(t *testing.T) {
	cal := NewCalendar()
	holidays := cal.ForYear(2025)

	if holidays["2025-01-01"] != "New Year's Day" {
		t.Errorf("missing New Year's Day: %q", holidays["2025-01-01"])
	}
	if holidays["2025-12-25"] != "Christmas Day" {
		t.Errorf("missing Christmas Day: %q", holidays["2025-12-25"])
	}
	// last Monday of August 2025
	if holidays["2025-08-25"] != "National Heroes Day" {
		t.Errorf("2025-08-25 = %q, want National Heroes Day", holidays["2025-08-25"])
	}
}

func TestNameLookup(t *testing.T) {
	cal := NewCalendar()

	d := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
	if got := cal.Name(d); got != "Independence Day" {
		t.Errorf("Name(%v) = %q", d, got)
	}
	plain := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)
	if got := cal.Name(plain); got != "" {
		t.Errorf("non-holiday Name = %q", got)
	}
}

func TestDeterministicAndCached(t *testing.T) {
	cal := NewCalendar()
	first := cal.ForYear(2030)
	second := cal.ForYear(2030)

	if len(first) != len(second) {
		t.Fatalf("cached year diverged: %d vs %d entries", len(first), len(second))
	}
	for k, v := range first {
		if second[k] != v {
			t.Errorf("entry %s changed between calls: %q vs %q", k, v, second[k])
		}
	}
}

type failingSource struct{ calls int }

func (f *failingSource) HolidaysForYear(year int) (map[string]string, error) {
	f.calls++
	return nil, errors.New("unreachable")
}

func TestSourceFallback(t *testing.T) {
	src := &failingSource{}
	cal := NewCalendarWithSource(src)

	holidays := cal.ForYear(2025)
	if src.calls != 1 {
		t.Errorf("source consulted %d times, want 1", src.calls)
	}
	if holidays["2025-04-18"] != "Good Friday" {
		t.Error("failed source must fall back to the local computation")
	}

	// second lookup hits the cache, not the source
	cal.ForYear(2025)
	if src.calls != 1 {
		t.Errorf("cached year re-consulted the source (%d calls)", src.calls)
	}
}

type staticSource struct{ set map[string]string }

func (s staticSource) HolidaysForYear(year int) (map[string]string, error) {
	return s.set, nil
}

func TestSourceOverride(t *testing.T) {
	cal := NewCalendarWithSource(staticSource{set: map[string]string{"2025-07-04": "Republic Day"}})
	holidays := cal.ForYear(2025)
	if holidays["2025-07-04"] != "Republic Day" {
		t.Error("override source must win when it answers")
	}
	if _, ok := holidays["2025-12-25"]; ok {
		t.Error("override set must not be merged with the local one")
	}
}
