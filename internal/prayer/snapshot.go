package prayer

import "time"

// Prayer is the per-tick view of a single timetable entry. The passed/next
// flags are derived from the day's immutable timestamps, never stored.
type Prayer struct {
	Name     Name
	Time     time.Time
	IsPassed bool
	IsNext   bool
}

// Display returns the localized display name.
func (p Prayer) Display() string { return p.Name.Display() }

// Arabic returns the Arabic display name.
func (p Prayer) Arabic() string { return p.Name.Arabic() }

// Snapshot is the fully derived state for one instant. It is recomputed
// from scratch every tick, so recomputing with the same now is idempotent.
type Snapshot struct {
	Now     time.Time
	Prayers [len(Order)]Prayer

	// Next is the first canonical prayer that has not passed. When all
	// five canonical prayers of the day have passed it is tomorrow's Fajr
	// and NextIsTomorrow is set.
	Next           Prayer
	NextIsTomorrow bool

	// Current is the most recent passed canonical prayer. Before Fajr it
	// is Isha, carried over from the previous day.
	Current Name

	Countdown Countdown
}

// Compute derives the snapshot for the given instant. A timestamp counts
// as passed only once now is strictly after it, so a prayer at exactly
// now is still "next" with a zero countdown.
func Compute(day Day, now time.Time) Snapshot {
	s := Snapshot{Now: now, Current: Isha}

	nextIdx := -1
	for i, name := range Order {
		t := day.times[i]
		p := Prayer{Name: name, Time: t, IsPassed: now.After(t)}

		if name.Canonical() {
			if p.IsPassed {
				s.Current = name
			} else if nextIdx == -1 {
				nextIdx = i
				p.IsNext = true
			}
		}

		s.Prayers[i] = p
	}

	if nextIdx >= 0 {
		s.Next = s.Prayers[nextIdx]
	} else {
		// the day is exhausted: roll over to tomorrow's Fajr
		s.Next = Prayer{Name: Fajr, Time: day.TomorrowFajr, IsNext: true}
		s.NextIsTomorrow = true
		s.Current = Isha
	}

	s.Countdown = NewCountdown(s.Next.Time.Sub(now))

	return s
}
