package scheduling

import (
	"context"
	"time"

	"github.com/ibuttimer/fyyur/internal/models"
)

// BookingStore supplies the bookings already held by a venue.
type BookingStore interface {
	// BookingsForVenueOnDate returns bookings whose start falls on date's calendar day.
	BookingsForVenueOnDate(ctx context.Context, venueID string, date time.Time) ([]models.Booking, error)
}

// AvailabilitySnapshotStore supplies an artist's availability history.
type AvailabilitySnapshotStore interface {
	// LatestBefore returns the snapshot with the greatest effective_from strictly before
	// instant, or nil when none exists.
	LatestBefore(ctx context.Context, artistID string, instant time.Time) (*models.AvailabilitySnapshot, error)
}
