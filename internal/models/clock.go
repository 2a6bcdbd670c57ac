package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day stored as seconds since midnight.
// Valid values run from Midnight (00:00) up to and including EndOfDay (24:00);
// EndOfDay only appears as a computed boundary and is never stored.
type ClockTime int

const (
	// Midnight is 00:00, the start of a calendar day.
	Midnight ClockTime = 0
	// EndOfDay is 24:00, the exclusive end of a calendar day.
	EndOfDay ClockTime = 24 * 60 * 60
)

// NewClockTime builds a ClockTime from hour and minute components.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*3600 + minute*60)
}

// ClockTimeOf returns the time of day of t in its own location.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS".
func ParseClockTime(raw string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time of day %q", raw)
	}
	limits := []int{23, 59, 59}
	values := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] || len(part) != 2 {
			return 0, fmt.Errorf("invalid time of day %q", raw)
		}
		values[i] = n
	}
	return ClockTime(values[0]*3600 + values[1]*60 + values[2]), nil
}

// MustClockTime parses raw and panics on failure. Intended for fixtures.
func MustClockTime(raw string) ClockTime {
	c, err := ParseClockTime(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether c lies within [00:00, 24:00].
func (c ClockTime) Valid() bool {
	return c >= Midnight && c <= EndOfDay
}

// Minutes returns the whole minutes since midnight.
func (c ClockTime) Minutes() int {
	return int(c) / 60
}

// String formats as HH:MM; EndOfDay renders as 24:00.
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/3600, (int(c)%3600)/60)
}

// Ptr returns a pointer to a copy of c.
func (c ClockTime) Ptr() *ClockTime {
	return &c
}

// Value implements driver.Valuer for TIME columns.
func (c ClockTime) Value() (driver.Value, error) {
	if !c.Valid() || c == EndOfDay {
		return nil, fmt.Errorf("clock time %d out of range", int(c))
	}
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, (int(c)%3600)/60, int(c)%60), nil
}

// Scan implements sql.Scanner for TIME columns.
func (c *ClockTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*c = ClockTimeOf(v)
		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}
}

func (c *ClockTime) scanString(raw string) error {
	// postgres may append fractional seconds
	if idx := strings.IndexByte(raw, '.'); idx >= 0 {
		raw = raw[:idx]
	}
	parsed, err := ParseClockTime(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON renders the time as "HH:MM", or "HH:MM:SS" when seconds are set, so a
// decoded value always equals the original.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	if int(c)%60 != 0 {
		return json.Marshal(fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, (int(c)%3600)/60, int(c)%60))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts "HH:MM" or "HH:MM:SS".
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseClockTime(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
