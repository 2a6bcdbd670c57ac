package models

import "time"

// DaySlot is the raw availability declared for a single weekday. Either bound may be
// absent; 00:00 carries sentinel meaning depending on which bound it occupies.
type DaySlot struct {
	From *ClockTime `json:"from,omitempty"`
	To   *ClockTime `json:"to,omitempty"`
}

// Declared reports whether the slot has any bound set.
func (s DaySlot) Declared() bool {
	return s.From != nil || s.To != nil
}

// Equal compares two slots by value.
func (s DaySlot) Equal(other DaySlot) bool {
	return clockEqual(s.From, other.From) && clockEqual(s.To, other.To)
}

func clockEqual(a, b *ClockTime) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// AvailabilitySnapshot is one version of an artist's weekly availability template.
// Snapshots are append-only; the one with the greatest EffectiveFrom strictly before an
// instant is the template in force at that instant.
type AvailabilitySnapshot struct {
	ID            string     `db:"id" json:"id"`
	ArtistID      string     `db:"artist_id" json:"artist_id"`
	EffectiveFrom time.Time  `db:"effective_from" json:"effective_from"`
	MonFrom       *ClockTime `db:"mon_from" json:"-"`
	MonTo         *ClockTime `db:"mon_to" json:"-"`
	TueFrom       *ClockTime `db:"tue_from" json:"-"`
	TueTo         *ClockTime `db:"tue_to" json:"-"`
	WedFrom       *ClockTime `db:"wed_from" json:"-"`
	WedTo         *ClockTime `db:"wed_to" json:"-"`
	ThuFrom       *ClockTime `db:"thu_from" json:"-"`
	ThuTo         *ClockTime `db:"thu_to" json:"-"`
	FriFrom       *ClockTime `db:"fri_from" json:"-"`
	FriTo         *ClockTime `db:"fri_to" json:"-"`
	SatFrom       *ClockTime `db:"sat_from" json:"-"`
	SatTo         *ClockTime `db:"sat_to" json:"-"`
	SunFrom       *ClockTime `db:"sun_from" json:"-"`
	SunTo         *ClockTime `db:"sun_to" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// Week returns the seven day slots indexed by Weekday.
func (a *AvailabilitySnapshot) Week() [DaysPerWeek]DaySlot {
	return [DaysPerWeek]DaySlot{
		Monday:    {From: a.MonFrom, To: a.MonTo},
		Tuesday:   {From: a.TueFrom, To: a.TueTo},
		Wednesday: {From: a.WedFrom, To: a.WedTo},
		Thursday:  {From: a.ThuFrom, To: a.ThuTo},
		Friday:    {From: a.FriFrom, To: a.FriTo},
		Saturday:  {From: a.SatFrom, To: a.SatTo},
		Sunday:    {From: a.SunFrom, To: a.SunTo},
	}
}

// Slot returns the raw slot for a weekday.
func (a *AvailabilitySnapshot) Slot(day Weekday) DaySlot {
	if !day.Valid() {
		return DaySlot{}
	}
	return a.Week()[day]
}

// SetWeek assigns all seven day slots.
func (a *AvailabilitySnapshot) SetWeek(week [DaysPerWeek]DaySlot) {
	a.MonFrom, a.MonTo = week[Monday].From, week[Monday].To
	a.TueFrom, a.TueTo = week[Tuesday].From, week[Tuesday].To
	a.WedFrom, a.WedTo = week[Wednesday].From, week[Wednesday].To
	a.ThuFrom, a.ThuTo = week[Thursday].From, week[Thursday].To
	a.FriFrom, a.FriTo = week[Friday].From, week[Friday].To
	a.SatFrom, a.SatTo = week[Saturday].From, week[Saturday].To
	a.SunFrom, a.SunTo = week[Sunday].From, week[Sunday].To
}

// SameWeek reports whether both snapshots declare an identical weekly template.
func (a *AvailabilitySnapshot) SameWeek(other *AvailabilitySnapshot) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	mine, theirs := a.Week(), other.Week()
	for i := range mine {
		if !mine[i].Equal(theirs[i]) {
			return false
		}
	}
	return true
}
