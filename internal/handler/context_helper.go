package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
)

const dateLayout = "2006-01-02"

// queryDate parses the required ?date=YYYY-MM-DD parameter in the location named by ?tz,
// defaulting to UTC.
func queryDate(c *gin.Context) (time.Time, error) {
	loc := time.UTC
	if tz := c.Query("tz"); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid tz")
		}
		loc = parsed
	}
	raw := c.Query("date")
	if raw == "" {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "date is required")
	}
	date, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return date, nil
}

// queryInstant parses an optional RFC 3339 query parameter; absent yields the zero time.
func queryInstant(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, name+" must be an RFC 3339 timestamp")
	}
	return at, nil
}
