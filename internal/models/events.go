package models

import "time"

// ShowListedEvent is published after a show has been persisted.
type ShowListedEvent struct {
	ShowID    string    `json:"show_id"`
	ArtistID  string    `json:"artist_id"`
	VenueID   string    `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	ListedAt  time.Time `json:"listed_at"`
}
