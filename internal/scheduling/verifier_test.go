package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibuttimer/fyyur/internal/models"
)

// 2024-01-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func weekSnapshot(day models.Weekday, from, to string) *models.AvailabilitySnapshot {
	var week [models.DaysPerWeek]models.DaySlot
	week[day] = models.DaySlot{From: clock(from), To: clock(to)}
	snapshot := &models.AvailabilitySnapshot{ID: "avail-1", ArtistID: "artist-1", EffectiveFrom: monday(0, 0).AddDate(0, 0, -7)}
	snapshot.SetWeek(week)
	return snapshot
}

func proposed(start time.Time, minutes int) models.Show {
	return models.Show{ArtistID: "artist-1", VenueID: "venue-1", StartTime: start, Duration: minutes}
}

func TestShowVerifierAvailableSlot(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "18:00", "23:00")

	result, err := verifier.Verify(proposed(monday(19, 0), 30), nil, snapshot)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.True(t, result.Available)
	assert.Nil(t, result.BookingConflict)
	assert.Nil(t, result.ArtistConflict)
}

func TestShowVerifierArtistConflict(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "18:00", "23:00")

	result, err := verifier.Verify(proposed(monday(22, 45), 30), nil, snapshot)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.True(t, result.Available)
	require.NotNil(t, result.ArtistConflict)
	assert.Equal(t, Bounded, result.ArtistConflict.Kind)
	assert.Equal(t, "18:00", result.ArtistConflict.From.String())
	assert.Equal(t, "23:00", result.ArtistConflict.To.String())
}

func TestShowVerifierNoSnapshot(t *testing.T) {
	verifier := NewShowVerifier()
	bookings := []models.Booking{{ShowID: "show-1", ArtistName: "The Band", StartTime: monday(12, 0), Duration: 60}}

	result, err := verifier.Verify(proposed(monday(19, 0), 30), bookings, nil)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.False(t, result.Available)
	assert.Nil(t, result.ArtistConflict)
	assert.Nil(t, result.BookingConflict)
}

func TestShowVerifierDayWithoutSlot(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "18:00", "23:00")
	tuesday := monday(19, 0).AddDate(0, 0, 1)

	result, err := verifier.Verify(proposed(tuesday, 30), nil, snapshot)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.False(t, result.Available)
	assert.Nil(t, result.ArtistConflict)
}

func TestShowVerifierBookingConflict(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "18:00", "23:00")
	bookings := []models.Booking{{ShowID: "show-1", ArtistName: "The Band", StartTime: monday(20, 0), Duration: 60}}

	result, err := verifier.Verify(proposed(monday(20, 30), 60), bookings, snapshot)
	require.NoError(t, err)
	assert.False(t, result.OK)
	require.NotNil(t, result.BookingConflict)
	assert.Equal(t, "show-1", result.BookingConflict.ShowID)
	assert.Nil(t, result.ArtistConflict)

	result, err = verifier.Verify(proposed(monday(21, 0), 60), bookings, snapshot)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestShowVerifierReportsEveryReason(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "18:00", "21:00")
	bookings := []models.Booking{{ShowID: "show-1", ArtistName: "The Band", StartTime: monday(20, 0), Duration: 120}}

	result, err := verifier.Verify(proposed(monday(20, 30), 60), bookings, snapshot)
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.NotNil(t, result.BookingConflict)
	assert.NotNil(t, result.ArtistConflict)
	assert.True(t, result.Available)
}

func TestShowVerifierCrossingMidnight(t *testing.T) {
	verifier := NewShowVerifier()

	result, err := verifier.Verify(proposed(monday(23, 30), 60), nil, weekSnapshot(models.Monday, "19:00", "00:00"))
	require.NoError(t, err)
	assert.True(t, result.OK)

	result, err = verifier.Verify(proposed(monday(22, 0), 120), nil, weekSnapshot(models.Monday, "18:00", "23:00"))
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.NotNil(t, result.ArtistConflict)
}

func TestShowVerifierEndingAtMidnight(t *testing.T) {
	verifier := NewShowVerifier()

	result, err := verifier.Verify(proposed(monday(23, 0), 60), nil, weekSnapshot(models.Monday, "20:00", "00:00"))
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestShowVerifierOpenAtStart(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "00:00", "02:00")

	result, err := verifier.Verify(proposed(monday(1, 0), 60), nil, snapshot)
	require.NoError(t, err)
	assert.True(t, result.OK)

	result, err = verifier.Verify(proposed(monday(1, 30), 60), nil, snapshot)
	require.NoError(t, err)
	assert.False(t, result.OK)
	require.NotNil(t, result.ArtistConflict)
	assert.Equal(t, OpenAtStart, result.ArtistConflict.Kind)
}

func TestShowVerifierIsIdempotent(t *testing.T) {
	verifier := NewShowVerifier()
	snapshot := weekSnapshot(models.Monday, "18:00", "23:00")
	bookings := []models.Booking{{ShowID: "show-1", ArtistName: "The Band", StartTime: monday(20, 0), Duration: 60}}
	show := proposed(monday(20, 30), 60)

	first, err := verifier.Verify(show, bookings, snapshot)
	require.NoError(t, err)
	second, err := verifier.Verify(show, bookings, snapshot)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShowVerifierRejectsMalformedShow(t *testing.T) {
	verifier := NewShowVerifier()

	_, err := verifier.Verify(proposed(monday(19, 0), 0), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidShow)

	_, err = verifier.Verify(proposed(monday(19, 0), -15), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidShow)

	_, err = verifier.Verify(proposed(time.Time{}, 30), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidShow)

	_, err = verifier.Verify(models.Show{StartTime: monday(19, 0), Duration: 30}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidShow)
}
