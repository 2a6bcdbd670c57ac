package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/service"
	"github.com/ibuttimer/fyyur/pkg/export"
)

type venueServiceMock struct {
	lastDate   time.Time
	lastFormat export.Format
}

func (m *venueServiceMock) Get(ctx context.Context, id string) (*models.Venue, error) {
	return &models.Venue{ID: id, Name: "The Musical Hop"}, nil
}

func (m *venueServiceMock) Bookings(ctx context.Context, id string, date time.Time) ([]models.Booking, error) {
	m.lastDate = date
	return []models.Booking{{ShowID: "show-1"}}, nil
}

func (m *venueServiceMock) ExportBookings(ctx context.Context, id string, date time.Time, format export.Format) (*service.BookingExport, error) {
	m.lastDate = date
	m.lastFormat = format
	return &service.BookingExport{Filename: "bookings.csv", ContentType: format.ContentType(), Body: []byte("Start,End\n")}, nil
}

func (m *venueServiceMock) UpdateGenres(ctx context.Context, id string, req dto.UpdateGenresRequest) (*dto.UpdateGenresResponse, error) {
	return &dto.UpdateGenresResponse{Genres: req.Genres}, nil
}

func newVenueContext(target string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, target, nil)
	c.Params = gin.Params{{Key: "id", Value: "v1"}}
	return w, c
}

func TestVenueHandlerBookingsJSON(t *testing.T) {
	mockSvc := &venueServiceMock{}
	handler := NewVenueHandler(mockSvc)

	w, c := newVenueContext("/venues/v1/bookings?date=2024-01-05&tz=Europe/Dublin")
	handler.Bookings(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Europe/Dublin", mockSvc.lastDate.Location().String())
	assert.Equal(t, 5, mockSvc.lastDate.Day())
	assert.Contains(t, w.Body.String(), `"show_id":"show-1"`)
}

func TestVenueHandlerBookingsExport(t *testing.T) {
	mockSvc := &venueServiceMock{}
	handler := NewVenueHandler(mockSvc)

	w, c := newVenueContext("/venues/v1/bookings?date=2024-01-05&format=csv")
	handler.Bookings(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.FormatCSV, mockSvc.lastFormat)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "bookings.csv")
	assert.Equal(t, "Start,End\n", w.Body.String())
}

func TestVenueHandlerBookingsValidation(t *testing.T) {
	handler := NewVenueHandler(&venueServiceMock{})

	for _, target := range []string{
		"/venues/v1/bookings",
		"/venues/v1/bookings?date=05/01/2024",
		"/venues/v1/bookings?date=2024-01-05&tz=Mars/Olympus",
		"/venues/v1/bookings?date=2024-01-05&format=xlsx",
	} {
		w, c := newVenueContext(target)
		handler.Bookings(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestVenueHandlerGet(t *testing.T) {
	handler := NewVenueHandler(&venueServiceMock{})

	w, c := newVenueContext("/venues/v1")
	handler.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Musical Hop")
}
