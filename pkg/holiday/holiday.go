// Package holiday computes the Philippine holiday calendar for a year:
// a fixed-date table, National Heroes Day (last Monday of August) and the
// Holy Week dates derived from Easter Sunday. The computation is fully
// local and deterministic; identical year input always produces identical
// output.
package holiday

import (
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

var fixedHolidays = []fixedHoliday{
	{time.January, 1, "New Year's Day"},
	{time.February, 25, "EDSA People Power Revolution Anniversary"},
	{time.April, 9, "Araw ng Kagitingan (Day of Valor)"},
	{time.May, 1, "Labor Day"},
	{time.June, 12, "Independence Day"},
	{time.August, 21, "Ninoy Aquino Day"},
	{time.November, 1, "All Saints' Day"},
	{time.November, 2, "All Souls' Day"},
	{time.November, 30, "Bonifacio Day"},
	{time.December, 8, "Immaculate Conception of Mary"},
	{time.December, 25, "Christmas Day"},
	{time.December, 30, "Rizal Day"},
	{time.December, 31, "Last Day of the Year"},
}

// Source supplies an alternative holiday set for a year, e.g. a remote
// holiday API. It is an optional override; the local computation is the
// default and never depends on one.
type Source interface {
	HolidaysForYear(year int) (map[string]string, error)
}

// Calendar answers holiday queries, caching each computed year in memory.
type Calendar struct {
	mu       sync.Mutex
	years    map[int]map[string]string
	override Source
}

func NewCalendar() *Calendar {
	return &Calendar{years: make(map[int]map[string]string)}
}

// NewCalendarWithSource builds a calendar that consults src first and falls
// back to the local computation when src fails.
func NewCalendarWithSource(src Source) *Calendar {
	c := NewCalendar()
	c.override = src
	return c
}

// ForYear returns the map of canonical date strings to holiday names for a
// year, computing and caching it on first use.
func (c *Calendar) ForYear(year int) map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.years[year]; ok {
		return cached
	}

	var computed map[string]string
	if c.override != nil {
		if fetched, err := c.override.HolidaysForYear(year); err == nil && len(fetched) > 0 {
			computed = fetched
		}
	}
	if computed == nil {
		computed = localHolidays(year)
	}
	c.years[year] = computed
	return computed
}

// Name returns the holiday name for a date, or "" when the date is not a
// holiday. The date's year is computed and cached lazily if absent.
func (c *Calendar) Name(d time.Time) string {
	return c.ForYear(d.Year())[d.Format(dateLayout)]
}

func localHolidays(year int) map[string]string {
	hol := make(map[string]string, len(fixedHolidays)+4)

	add := func(d time.Time, name string) {
		hol[d.Format(dateLayout)] = name
	}

	for _, f := range fixedHolidays {
		add(time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC), f.name)
	}

	add(lastMonday(year, time.August), "National Heroes Day")

	easter := EasterSunday(year)
	add(easter.AddDate(0, 0, -3), "Maundy Thursday")
	add(easter.AddDate(0, 0, -2), "Good Friday")
	add(easter.AddDate(0, 0, -1), "Black Saturday")

	return hol
}

// EasterSunday computes Easter Sunday for a Gregorian year using the
// anonymous Meeus/Jones/Butcher algorithm. Integer arithmetic only.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func lastMonday(year int, month time.Month) time.Time {
	// first day of the next month, minus one, is the month's last day
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
