package dto

import (
	"time"

	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/scheduling"
)

// AvailabilityRequest declares an artist's weekly availability template.
// A day with neither bound is unavailable; "00:00" as from means no lower bound and as
// to means the end of the day.
type AvailabilityRequest struct {
	EffectiveFrom *time.Time     `json:"effective_from"`
	Monday        models.DaySlot `json:"monday"`
	Tuesday       models.DaySlot `json:"tuesday"`
	Wednesday     models.DaySlot `json:"wednesday"`
	Thursday      models.DaySlot `json:"thursday"`
	Friday        models.DaySlot `json:"friday"`
	Saturday      models.DaySlot `json:"saturday"`
	Sunday        models.DaySlot `json:"sunday"`
}

// Week returns the declared slots indexed by weekday.
func (r AvailabilityRequest) Week() [models.DaysPerWeek]models.DaySlot {
	return [models.DaysPerWeek]models.DaySlot{
		models.Monday:    r.Monday,
		models.Tuesday:   r.Tuesday,
		models.Wednesday: r.Wednesday,
		models.Thursday:  r.Thursday,
		models.Friday:    r.Friday,
		models.Saturday:  r.Saturday,
		models.Sunday:    r.Sunday,
	}
}

// DayAvailability is one resolved weekday of a snapshot.
type DayAvailability struct {
	Day    string                `json:"day"`
	From   *models.ClockTime     `json:"from,omitempty"`
	To     *models.ClockTime     `json:"to,omitempty"`
	Window scheduling.TimeWindow `json:"window"`
}

// AvailabilityResponse presents a snapshot with its raw and resolved week.
type AvailabilityResponse struct {
	ID            string            `json:"id"`
	ArtistID      string            `json:"artist_id"`
	EffectiveFrom time.Time         `json:"effective_from"`
	CreatedAt     time.Time         `json:"created_at"`
	Days          []DayAvailability `json:"days"`
}

// NewAvailabilityResponse builds the response for snapshot.
func NewAvailabilityResponse(snapshot *models.AvailabilitySnapshot) AvailabilityResponse {
	resp := AvailabilityResponse{
		ID:            snapshot.ID,
		ArtistID:      snapshot.ArtistID,
		EffectiveFrom: snapshot.EffectiveFrom,
		CreatedAt:     snapshot.CreatedAt,
		Days:          make([]DayAvailability, 0, models.DaysPerWeek),
	}
	week := snapshot.Week()
	windows := scheduling.ResolveWeek(snapshot)
	for _, day := range models.Weekdays {
		resp.Days = append(resp.Days, DayAvailability{
			Day:    day.String(),
			From:   week[day].From,
			To:     week[day].To,
			Window: windows[day],
		})
	}
	return resp
}

// RecordAvailabilityResponse reports whether a new snapshot was appended.
type RecordAvailabilityResponse struct {
	Recorded     bool                 `json:"recorded"`
	Availability AvailabilityResponse `json:"availability"`
}
