package dto

import (
	"time"

	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/scheduling"
)

// CreateShowRequest is the payload for verifying or listing a show.
// Duration is in minutes and capped just below a full day.
type CreateShowRequest struct {
	ArtistID  string    `json:"artist_id" validate:"required"`
	VenueID   string    `json:"venue_id" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	Duration  int       `json:"duration" validate:"required,gt=0,lte=1439"`
}

// Show converts the request into an unsaved show.
func (r CreateShowRequest) Show() models.Show {
	return models.Show{
		ArtistID:  r.ArtistID,
		VenueID:   r.VenueID,
		StartTime: r.StartTime,
		Duration:  r.Duration,
	}
}

// ListShowsQuery binds the query string of the show listing.
type ListShowsQuery struct {
	When     string `form:"when" validate:"omitempty,oneof=all previous upcoming"`
	VenueID  string `form:"venue_id"`
	ArtistID string `form:"artist_id"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1"`
}

// VerificationResponse is the verdict for a proposed show with user facing messages.
type VerificationResponse struct {
	scheduling.VerificationResult
	Messages []string `json:"messages"`
}

// ShowCreatedResponse is returned once a show has been listed.
type ShowCreatedResponse struct {
	Show    models.Show `json:"show"`
	Message string      `json:"message"`
}
