package models

import (
	"fmt"
	"time"
)

// ShowTimeFilter restricts show listings relative to the current time.
type ShowTimeFilter string

const (
	ShowFilterAll      ShowTimeFilter = "all"
	ShowFilterPrevious ShowTimeFilter = "previous"
	ShowFilterUpcoming ShowTimeFilter = "upcoming"
)

// Show pairs an artist with a venue at a start instant for a duration in minutes.
type Show struct {
	ID        string    `db:"id" json:"id"`
	ArtistID  string    `db:"artist_id" json:"artist_id"`
	VenueID   string    `db:"venue_id" json:"venue_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	Duration  int       `db:"duration" json:"duration"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EndTime is the start instant plus the duration.
func (s Show) EndTime() time.Time {
	return s.StartTime.Add(time.Duration(s.Duration) * time.Minute)
}

// Weekday is the ISO weekday of the start date.
func (s Show) Weekday() Weekday {
	return WeekdayOf(s.StartTime)
}

// ShowListing is a show joined with display names for listings.
type ShowListing struct {
	Show
	VenueName       string  `db:"venue_name" json:"venue_name"`
	ArtistName      string  `db:"artist_name" json:"artist_name"`
	ArtistImageLink *string `db:"artist_image_link" json:"artist_image_link,omitempty"`
}

// ShowFilter describes query params for listing shows.
type ShowFilter struct {
	VenueID  string
	ArtistID string
	When     ShowTimeFilter
	Now      time.Time
	Page     int
	PageSize int
}

// Booking is a read projection of a persisted show at a venue.
type Booking struct {
	ShowID     string    `db:"id" json:"show_id"`
	ArtistName string    `db:"artist_name" json:"artist_name"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	Duration   int       `db:"duration" json:"duration"`
}

// EndTime is the start instant plus the duration.
func (b Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.Duration) * time.Minute)
}

// ShowConflictError is returned when a show cannot be listed because verification failed.
type ShowConflictError struct {
	Message  string   `json:"message"`
	Messages []string `json:"messages"`
}

// Error implements the error interface.
func (e *ShowConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Messages)
	}
	return e.Message
}
