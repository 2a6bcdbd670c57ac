package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/scheduling"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
	"github.com/ibuttimer/fyyur/pkg/export"
)

// BookingExport is a rendered venue booking sheet.
type BookingExport struct {
	Filename    string
	ContentType string
	Body        []byte
}

// VenueService serves venue profiles, bookings and booking sheets.
type VenueService struct {
	venues    venueLookup
	bookings  scheduling.BookingStore
	genres    genreRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewVenueService constructs a VenueService.
func NewVenueService(venues venueLookup, bookings scheduling.BookingStore, genres genreRepository, validate *validator.Validate, logger *zap.Logger) *VenueService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VenueService{venues: venues, bookings: bookings, genres: genres, validator: validate, logger: logger}
}

// Get returns a venue with its genres.
func (s *VenueService) Get(ctx context.Context, id string) (*models.Venue, error) {
	venue, err := findVenue(ctx, s.venues, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.genres.ListFor(ctx, models.GenreOwnerVenue, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load venue genres")
	}
	venue.Genres = nonNil(genres)
	return venue, nil
}

// Bookings lists the shows starting at the venue on date's calendar day.
func (s *VenueService) Bookings(ctx context.Context, id string, date time.Time) ([]models.Booking, error) {
	if _, err := findVenue(ctx, s.venues, id); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.BookingsForVenueOnDate(ctx, id, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load venue bookings")
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// ExportBookings renders the day's bookings as a csv or pdf sheet.
func (s *VenueService) ExportBookings(ctx context.Context, id string, date time.Time, format export.Format) (*BookingExport, error) {
	renderer, err := export.ForFormat(format)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported export format")
	}
	venue, err := findVenue(ctx, s.venues, id)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.BookingsForVenueOnDate(ctx, id, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load venue bookings")
	}

	day := date.Format("2006-01-02")
	table := export.Table{
		Title:   fmt.Sprintf("%s bookings %s", venue.Name, day),
		Headers: []string{"Start", "End", "Artist", "Duration (min)"},
		Rows:    make([][]string, 0, len(bookings)),
	}
	loc := date.Location()
	for _, b := range bookings {
		table.Rows = append(table.Rows, []string{
			b.StartTime.In(loc).Format(messageTimeLayout),
			b.EndTime().In(loc).Format(messageTimeLayout),
			b.ArtistName,
			fmt.Sprintf("%d", b.Duration),
		})
	}

	body, err := renderer.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render booking sheet")
	}
	s.logger.Info("venue bookings exported", zap.String("venue_id", id), zap.String("date", day), zap.String("format", string(format)), zap.Int("rows", len(table.Rows)))
	return &BookingExport{
		Filename:    fmt.Sprintf("venue-%s-bookings-%s.%s", id, day, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// UpdateGenres replaces the venue's genre set.
func (s *VenueService) UpdateGenres(ctx context.Context, id string, req dto.UpdateGenresRequest) (*dto.UpdateGenresResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid genres payload")
	}
	if _, err := findVenue(ctx, s.venues, id); err != nil {
		return nil, err
	}
	resp, err := replaceGenres(ctx, s.genres, models.GenreOwnerVenue, id, req.Genres)
	if err != nil {
		return nil, err
	}
	s.logger.Info("venue genres updated", zap.String("venue_id", id), zap.Strings("added", resp.Added), zap.Strings("removed", resp.Removed))
	return resp, nil
}
