package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
	"github.com/ibuttimer/fyyur/pkg/response"
)

type showService interface {
	Verify(ctx context.Context, req dto.CreateShowRequest) (*dto.VerificationResponse, error)
	Create(ctx context.Context, req dto.CreateShowRequest) (*dto.ShowCreatedResponse, error)
	List(ctx context.Context, query dto.ListShowsQuery) ([]models.ShowListing, *models.Pagination, error)
	Get(ctx context.Context, id string) (*models.ShowListing, error)
}

// ShowHandler exposes show listing and verification endpoints.
type ShowHandler struct {
	service showService
}

// NewShowHandler builds a new handler.
func NewShowHandler(service showService) *ShowHandler {
	return &ShowHandler{service: service}
}

// List godoc
// @Summary List shows
// @Tags Shows
// @Produce json
// @Param when query string false "all, previous or upcoming"
// @Param venue_id query string false "Venue filter"
// @Param artist_id query string false "Artist filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /shows [get]
func (h *ShowHandler) List(c *gin.Context) {
	var query dto.ListShowsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid show query"))
		return
	}
	shows, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, shows, pagination)
}

// Get godoc
// @Summary Get show detail
// @Tags Shows
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /shows/{id} [get]
func (h *ShowHandler) Get(c *gin.Context) {
	show, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, show, nil)
}

// Verify godoc
// @Summary Check a proposed show against venue bookings and artist availability
// @Tags Shows
// @Accept json
// @Produce json
// @Param payload body dto.CreateShowRequest true "Proposed show"
// @Success 200 {object} response.Envelope
// @Router /shows/verify [post]
func (h *ShowHandler) Verify(c *gin.Context) {
	var req dto.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid show payload"))
		return
	}
	result, err := h.service.Verify(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Create godoc
// @Summary List a new show
// @Tags Shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.CreateShowRequest true "Show payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /shows [post]
func (h *ShowHandler) Create(c *gin.Context) {
	var req dto.CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid show payload"))
		return
	}
	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}
