package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibuttimer/fyyur/internal/models"
)

func TestDetectBookingConflict(t *testing.T) {
	bookings := []models.Booking{
		{ShowID: "early", ArtistName: "Opener", StartTime: monday(18, 0), Duration: 60},
		{ShowID: "late", ArtistName: "Headliner", StartTime: monday(20, 0), Duration: 60},
	}

	cases := []struct {
		name    string
		hour    int
		minute  int
		minutes int
		want    string
	}{
		{name: "adjacent after", hour: 21, minute: 0, minutes: 60},
		{name: "adjacent before", hour: 19, minute: 0, minutes: 60},
		{name: "partial overlap", hour: 20, minute: 30, minutes: 60, want: "late"},
		{name: "overlaps start", hour: 19, minute: 30, minutes: 60, want: "late"},
		{name: "inside", hour: 20, minute: 15, minutes: 15, want: "late"},
		{name: "covers", hour: 17, minute: 0, minutes: 300, want: "early"},
		{name: "free morning", hour: 9, minute: 0, minutes: 120},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start := monday(tc.hour, tc.minute)
			show := proposed(start, tc.minutes)
			conflict := DetectBookingConflict(show.StartTime, show.EndTime(), bookings)
			if tc.want == "" {
				assert.Nil(t, conflict)
				return
			}
			require.NotNil(t, conflict)
			assert.Equal(t, tc.want, conflict.ShowID)
		})
	}
}

func TestDetectBookingConflictEmpty(t *testing.T) {
	assert.Nil(t, DetectBookingConflict(monday(20, 0), monday(21, 0), nil))
}

func TestDetectBookingConflictFirstInStoreOrder(t *testing.T) {
	bookings := []models.Booking{
		{ShowID: "second", StartTime: monday(20, 30), Duration: 60},
		{ShowID: "first", StartTime: monday(20, 0), Duration: 60},
	}
	conflict := DetectBookingConflict(monday(20, 15), monday(21, 0), bookings)
	require.NotNil(t, conflict)
	assert.Equal(t, "second", conflict.ShowID)
}
