package scheduling

import (
	"time"

	"github.com/ibuttimer/fyyur/internal/models"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2) intersect.
// Touching endpoints do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// DetectBookingConflict returns the first booking, in the given order, whose interval
// overlaps [start, end). It returns nil when the slot is free.
func DetectBookingConflict(start, end time.Time, bookings []models.Booking) *models.Booking {
	for i := range bookings {
		if Overlaps(start, end, bookings[i].StartTime, bookings[i].EndTime()) {
			conflict := bookings[i]
			return &conflict
		}
	}
	return nil
}
