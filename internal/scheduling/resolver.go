package scheduling

import "github.com/ibuttimer/fyyur/internal/models"

// Resolve returns the availability window for day under snapshot.
// A nil snapshot means no declared availability on any day.
func Resolve(snapshot *models.AvailabilitySnapshot, day models.Weekday) TimeWindow {
	if snapshot == nil || !day.Valid() {
		return UnavailableWindow
	}
	slot := snapshot.Slot(day)
	return Classify(slot.From, slot.To)
}

// ResolveWeek resolves every weekday of snapshot in ISO order.
func ResolveWeek(snapshot *models.AvailabilitySnapshot) [models.DaysPerWeek]TimeWindow {
	var week [models.DaysPerWeek]TimeWindow
	for _, day := range models.Weekdays {
		week[day] = Resolve(snapshot, day)
	}
	return week
}
