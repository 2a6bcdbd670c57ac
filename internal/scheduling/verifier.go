package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/ibuttimer/fyyur/internal/models"
)

// ErrInvalidShow marks a proposed show that violates the verification input contract.
var ErrInvalidShow = errors.New("invalid show")

// VerificationResult is the verdict for a proposed show. The three failure reasons are
// independent and more than one may be set at once.
type VerificationResult struct {
	OK              bool            `json:"ok"`
	BookingConflict *models.Booking `json:"booking_conflict,omitempty"`
	ArtistConflict  *TimeWindow     `json:"artist_conflict,omitempty"`
	Available       bool            `json:"available"`
}

// ShowVerifier checks a proposed show against venue bookings and artist availability.
// It holds no state and is safe for concurrent use.
type ShowVerifier struct{}

// NewShowVerifier returns a verifier.
func NewShowVerifier() *ShowVerifier {
	return &ShowVerifier{}
}

// Verify runs the booking and availability checks for show. bookings must already be
// limited to the venue and calendar date of the show's start, and snapshot must be the
// artist's snapshot effective at the start instant (nil when there is none).
func (v *ShowVerifier) Verify(show models.Show, bookings []models.Booking, snapshot *models.AvailabilitySnapshot) (VerificationResult, error) {
	if err := validateShow(show); err != nil {
		return VerificationResult{}, err
	}

	start, end := show.StartTime, show.EndTime()
	result := VerificationResult{
		BookingConflict: DetectBookingConflict(start, end, bookings),
	}

	window := Resolve(snapshot, show.Weekday())
	result.Available = window.IsAvailable()
	if result.Available && !window.Contains(models.ClockTimeOf(start), endClock(start, end)) {
		conflict := window
		result.ArtistConflict = &conflict
	}

	result.OK = result.BookingConflict == nil && result.ArtistConflict == nil && result.Available
	return result, nil
}

func validateShow(show models.Show) error {
	switch {
	case show.StartTime.IsZero():
		return fmt.Errorf("%w: start time is required", ErrInvalidShow)
	case show.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidShow, show.Duration)
	case show.ArtistID == "" || show.VenueID == "":
		return fmt.Errorf("%w: artist and venue are required", ErrInvalidShow)
	}
	return nil
}

// endClock is end's time of day, or 24:00 when end falls on a later calendar day
// than start. Only the start day's window is checked.
func endClock(start, end time.Time) models.ClockTime {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return models.EndOfDay
	}
	return models.ClockTimeOf(end)
}
