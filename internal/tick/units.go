package tick

import (
	"strings"
	"time"
)

// Units is a set of calendar units, used both to subscribe to ticks and to
// report which units changed since the previous delivery.
type Units uint8

const (
	SecondUnit Units = 1 << iota
	MinuteUnit
	HourUnit
	DayUnit
	MonthUnit
	YearUnit
)

const AllUnits = SecondUnit | MinuteUnit | HourUnit | DayUnit | MonthUnit | YearUnit

var unitNames = []struct {
	unit Units
	name string
}{
	{SecondUnit, "second"},
	{MinuteUnit, "minute"},
	{HourUnit, "hour"},
	{DayUnit, "day"},
	{MonthUnit, "month"},
	{YearUnit, "year"},
}

func (u Units) Has(other Units) bool { return u&other != 0 }

func (u Units) String() string {
	if u == 0 {
		return "none"
	}
	var names []string
	for _, entry := range unitNames {
		if u&entry.unit != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}

// finest returns the smallest unit contained in u, or 0 for an empty set.
func (u Units) finest() Units {
	for _, entry := range unitNames {
		if u&entry.unit != 0 {
			return entry.unit
		}
	}
	return 0
}

// Changed reports which units differ between prev and next. A change in a
// larger unit marks every smaller unit as changed too, so a subscriber to
// minutes still hears about a day rollover that lands on the same minute.
// A zero prev counts as a change of everything.
func Changed(prev, next time.Time) Units {
	if prev.IsZero() {
		return AllUnits
	}
	parts := []struct {
		unit Units
		a, b int
	}{
		{YearUnit, prev.Year(), next.Year()},
		{MonthUnit, int(prev.Month()), int(next.Month())},
		{DayUnit, prev.Day(), next.Day()},
		{HourUnit, prev.Hour(), next.Hour()},
		{MinuteUnit, prev.Minute(), next.Minute()},
		{SecondUnit, prev.Second(), next.Second()},
	}
	var changed Units
	cascade := false
	for _, p := range parts {
		if cascade || p.a != p.b {
			changed |= p.unit
			cascade = true
		}
	}
	return changed
}

// untilNext returns the time from now to the next boundary of unit in now's
// location.
func untilNext(now time.Time, unit Units) time.Duration {
	y, mo, d := now.Date()
	h, mi, s := now.Clock()
	loc := now.Location()

	var next time.Time
	switch unit {
	case SecondUnit:
		next = time.Date(y, mo, d, h, mi, s+1, 0, loc)
	case MinuteUnit:
		next = time.Date(y, mo, d, h, mi+1, 0, 0, loc)
	case HourUnit:
		next = time.Date(y, mo, d, h+1, 0, 0, 0, loc)
	case DayUnit:
		next = time.Date(y, mo, d+1, 0, 0, 0, 0, loc)
	case MonthUnit:
		next = time.Date(y, mo+1, 1, 0, 0, 0, 0, loc)
	default:
		next = time.Date(y+1, 1, 1, 0, 0, 0, 0, loc)
	}
	wait := next.Sub(now)
	if wait <= 0 {
		wait = time.Millisecond
	}
	return wait
}
