package prayer

import "time"

// Name identifies a prayer or daily event in the timetable.
type Name string

const (
	Fajr    Name = "fajr"
	Sunrise Name = "sunrise"
	Dhuhr   Name = "dhuhr"
	Asr     Name = "asr"
	Maghrib Name = "maghrib"
	Isha    Name = "isha"
)

// Order lists all tracked times in chronological order.
// Sunrise is informational only: it is never "next" and never "current".
var Order = [6]Name{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// Canonical reports whether the prayer counts toward next/current
// classification. Sunrise marks the end of Fajr but is not itself a prayer.
func (n Name) Canonical() bool {
	return n != Sunrise
}

var displayNames = map[Name]string{
	Fajr:    "Fajr",
	Sunrise: "Sunrise",
	Dhuhr:   "Dhuhr",
	Asr:     "Asr",
	Maghrib: "Maghrib",
	Isha:    "Isha",
}

var arabicNames = map[Name]string{
	Fajr:    "الفجر",
	Sunrise: "الشروق",
	Dhuhr:   "الظهر",
	Asr:     "العصر",
	Maghrib: "المغرب",
	Isha:    "العشاء",
}

// Display returns the localized display name, e.g. "Maghrib".
func (n Name) Display() string {
	return displayNames[n]
}

// Arabic returns the Arabic display name, e.g. "المغرب".
func (n Name) Arabic() string {
	return arabicNames[n]
}

func (n Name) String() string {
	return string(n)
}

// Day is the immutable basis for one calendar day: the six timetable
// entries plus tomorrow's Fajr, all in the reference location. It is
// computed once per day (or on explicit refresh) and never mutated;
// everything else is derived from it each tick.
type Day struct {
	// Date is midnight of the day in the reference location.
	Date time.Time

	// times is indexed parallel to Order.
	times [len(Order)]time.Time

	// TomorrowFajr is used as the next prayer once all five canonical
	// prayers of the day have passed.
	TomorrowFajr time.Time

	// Hijri is the Hijri date string for display, e.g. "10 Shaʿbān 1447 AH".
	// Empty when the source does not provide one.
	Hijri string
}

// NewDay builds a Day from a full set of times. The map must contain an
// entry for every name in Order.
func NewDay(date time.Time, times map[Name]time.Time, tomorrowFajr time.Time) Day {
	d := Day{Date: date, TomorrowFajr: tomorrowFajr}
	for i, name := range Order {
		d.times[i] = times[name]
	}
	return d
}

// WithHijri returns a copy of the day carrying a Hijri date string.
func (d Day) WithHijri(hijri string) Day {
	d.Hijri = hijri
	return d
}

// Time returns the timestamp for the given name.
func (d Day) Time(name Name) time.Time {
	for i, n := range Order {
		if n == name {
			return d.times[i]
		}
	}
	return time.Time{}
}

// IsZero reports whether the day has not been populated yet. A zero day
// means the calculation is still unavailable (loading), not an error.
func (d Day) IsZero() bool {
	return d.Date.IsZero()
}
