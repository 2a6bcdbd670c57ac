package scheduling

import (
	"encoding/json"

	"github.com/ibuttimer/fyyur/internal/models"
)

// WindowKind tags the variant held by a TimeWindow.
type WindowKind int

const (
	// Unavailable means no usable slot was declared for the day.
	Unavailable WindowKind = iota
	// Bounded is available from From until To on the same day.
	Bounded
	// OpenAtStart has a 00:00 lower bound, which imposes no constraint.
	OpenAtStart
	// ClosesAtMidnight has a 00:00 upper bound, meaning the end of the calendar day.
	ClosesAtMidnight
)

var windowKindNames = map[WindowKind]string{
	Unavailable:      "unavailable",
	Bounded:          "bounded",
	OpenAtStart:      "open_at_start",
	ClosesAtMidnight: "closes_at_midnight",
}

func (k WindowKind) String() string {
	if name, ok := windowKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// TimeWindow is the resolved availability for one weekday.
// From and To always hold the effective bounds: OpenAtStart starts at Midnight and
// ClosesAtMidnight ends at EndOfDay. Both are zero for Unavailable.
type TimeWindow struct {
	Kind WindowKind
	From models.ClockTime
	To   models.ClockTime
}

// UnavailableWindow is the zero window.
var UnavailableWindow = TimeWindow{Kind: Unavailable}

// Classify turns a raw (from, to) slot into a TimeWindow.
func Classify(from, to *models.ClockTime) TimeWindow {
	if from == nil || to == nil {
		return UnavailableWindow
	}
	f, t := *from, *to
	if !inDay(f) || !inDay(t) {
		return UnavailableWindow
	}
	switch {
	case f == models.Midnight && t == models.Midnight:
		return TimeWindow{Kind: ClosesAtMidnight, From: models.Midnight, To: models.EndOfDay}
	case f == models.Midnight:
		return TimeWindow{Kind: OpenAtStart, From: models.Midnight, To: t}
	case t == models.Midnight:
		return TimeWindow{Kind: ClosesAtMidnight, From: f, To: models.EndOfDay}
	case t > f:
		return TimeWindow{Kind: Bounded, From: f, To: t}
	default:
		// to <= from should have been rejected when the slot was recorded
		return UnavailableWindow
	}
}

func inDay(c models.ClockTime) bool {
	return c >= models.Midnight && c < models.EndOfDay
}

// IsAvailable reports whether the window is any variant other than Unavailable.
func (w TimeWindow) IsAvailable() bool {
	return w.Kind != Unavailable
}

// Duration returns the window length in minutes; ok is false for Unavailable.
func (w TimeWindow) Duration() (minutes int, ok bool) {
	if !w.IsAvailable() {
		return 0, false
	}
	return w.To.Minutes() - w.From.Minutes(), true
}

// Contains reports whether the clock interval [start, end] fits inside the window.
// end may be EndOfDay when the interval runs to or past midnight.
func (w TimeWindow) Contains(start, end models.ClockTime) bool {
	switch w.Kind {
	case Bounded:
		return start >= w.From && end <= w.To
	case OpenAtStart:
		return end <= w.To
	case ClosesAtMidnight:
		return start >= w.From
	default:
		return false
	}
}

type timeWindowJSON struct {
	Kind            string            `json:"kind"`
	From            *models.ClockTime `json:"from,omitempty"`
	To              *models.ClockTime `json:"to,omitempty"`
	DurationMinutes *int              `json:"duration_minutes,omitempty"`
}

// MarshalJSON renders the window with its effective bounds.
func (w TimeWindow) MarshalJSON() ([]byte, error) {
	payload := timeWindowJSON{Kind: w.Kind.String()}
	if minutes, ok := w.Duration(); ok {
		payload.From = w.From.Ptr()
		payload.To = w.To.Ptr()
		payload.DurationMinutes = &minutes
	}
	return json.Marshal(payload)
}
