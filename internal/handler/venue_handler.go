package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/service"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
	"github.com/ibuttimer/fyyur/pkg/export"
	"github.com/ibuttimer/fyyur/pkg/response"
)

type venueService interface {
	Get(ctx context.Context, id string) (*models.Venue, error)
	Bookings(ctx context.Context, id string, date time.Time) ([]models.Booking, error)
	ExportBookings(ctx context.Context, id string, date time.Time, format export.Format) (*service.BookingExport, error)
	UpdateGenres(ctx context.Context, id string, req dto.UpdateGenresRequest) (*dto.UpdateGenresResponse, error)
}

// VenueHandler exposes venue profile and booking endpoints.
type VenueHandler struct {
	service venueService
}

// NewVenueHandler builds a new handler.
func NewVenueHandler(service venueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// Get godoc
// @Summary Get venue detail
// @Tags Venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Envelope
// @Router /venues/{id} [get]
func (h *VenueHandler) Get(c *gin.Context) {
	venue, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, venue, nil)
}

// Bookings godoc
// @Summary List or export the shows booked at a venue on a date
// @Tags Venues
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Venue ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param tz query string false "IANA time zone of the date, defaults to UTC"
// @Param format query string false "json (default), csv or pdf"
// @Success 200 {object} response.Envelope
// @Router /venues/{id}/bookings [get]
func (h *VenueHandler) Bookings(c *gin.Context) {
	date, err := queryDate(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if raw := c.Query("format"); raw != "" && raw != "json" {
		format, err := export.ParseFormat(raw)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unsupported export format"))
			return
		}
		sheet, err := h.service.ExportBookings(c.Request.Context(), c.Param("id"), date, format)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Attachment(c, sheet.Filename, sheet.ContentType, sheet.Body)
		return
	}

	bookings, err := h.service.Bookings(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, bookings, nil)
}

// UpdateGenres godoc
// @Summary Replace venue genres
// @Tags Venues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Venue ID"
// @Param payload body dto.UpdateGenresRequest true "Genres"
// @Success 200 {object} response.Envelope
// @Router /venues/{id}/genres [put]
func (h *VenueHandler) UpdateGenres(c *gin.Context) {
	var req dto.UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid genres payload"))
		return
	}
	resp, err := h.service.UpdateGenres(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
