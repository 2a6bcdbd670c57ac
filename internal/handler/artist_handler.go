package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
	"github.com/ibuttimer/fyyur/pkg/response"
)

type artistService interface {
	Get(ctx context.Context, id string) (*models.Artist, error)
	UpdateGenres(ctx context.Context, id string, req dto.UpdateGenresRequest) (*dto.UpdateGenresResponse, error)
}

type availabilityService interface {
	Record(ctx context.Context, artistID string, req dto.AvailabilityRequest) (*dto.RecordAvailabilityResponse, error)
	Effective(ctx context.Context, artistID string, at time.Time) (*dto.AvailabilityResponse, error)
	History(ctx context.Context, artistID string) ([]dto.AvailabilityResponse, error)
}

// ArtistHandler exposes artist profile and availability endpoints.
type ArtistHandler struct {
	artists      artistService
	availability availabilityService
}

// NewArtistHandler builds a new handler.
func NewArtistHandler(artists artistService, availability availabilityService) *ArtistHandler {
	return &ArtistHandler{artists: artists, availability: availability}
}

// Get godoc
// @Summary Get artist detail
// @Tags Artists
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Envelope
// @Router /artists/{id} [get]
func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.artists.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, artist, nil)
}

// UpdateGenres godoc
// @Summary Replace artist genres
// @Tags Artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Param payload body dto.UpdateGenresRequest true "Genres"
// @Success 200 {object} response.Envelope
// @Router /artists/{id}/genres [put]
func (h *ArtistHandler) UpdateGenres(c *gin.Context) {
	var req dto.UpdateGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid genres payload"))
		return
	}
	resp, err := h.artists.UpdateGenres(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Availability godoc
// @Summary Get the availability in force at an instant
// @Tags Artists
// @Produce json
// @Param id path string true "Artist ID"
// @Param at query string false "RFC 3339 instant, defaults to now"
// @Success 200 {object} response.Envelope
// @Router /artists/{id}/availability [get]
func (h *ArtistHandler) Availability(c *gin.Context) {
	at, err := queryInstant(c, "at")
	if err != nil {
		response.Error(c, err)
		return
	}
	resp, err := h.availability.Effective(c.Request.Context(), c.Param("id"), at)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// AvailabilityHistory godoc
// @Summary List every recorded availability template
// @Tags Artists
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} response.Envelope
// @Router /artists/{id}/availability/history [get]
func (h *ArtistHandler) AvailabilityHistory(c *gin.Context) {
	resp, err := h.availability.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// RecordAvailability godoc
// @Summary Record a new weekly availability template
// @Tags Artists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artist ID"
// @Param payload body dto.AvailabilityRequest true "Weekly availability"
// @Success 201 {object} response.Envelope
// @Success 200 {object} response.Envelope "Template unchanged"
// @Router /artists/{id}/availability [post]
func (h *ArtistHandler) RecordAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid availability payload"))
		return
	}
	resp, err := h.availability.Record(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !resp.Recorded {
		response.JSON(c, http.StatusOK, resp, nil)
		return
	}
	response.Created(c, resp)
}
