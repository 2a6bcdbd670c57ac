package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/internal/scheduling"
	"github.com/ibuttimer/fyyur/pkg/database"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
	"github.com/ibuttimer/fyyur/pkg/middleware/requestid"
)

const messageTimeLayout = "15:04"

type showRepository interface {
	BookingsForVenueOnDate(ctx context.Context, venueID string, date time.Time) ([]models.Booking, error)
	BookingsForVenueOnDateWith(ctx context.Context, exec sqlx.ExtContext, venueID string, date time.Time) ([]models.Booking, error)
	LockVenue(ctx context.Context, exec sqlx.ExtContext, venueID string) error
	Create(ctx context.Context, exec sqlx.ExtContext, show *models.Show) error
	List(ctx context.Context, filter models.ShowFilter) ([]models.ShowListing, int, error)
	FindByID(ctx context.Context, id string) (*models.ShowListing, error)
}

type venueLookup interface {
	FindByID(ctx context.Context, id string) (*models.Venue, error)
}

type showEventPublisher interface {
	PublishShowListed(ctx context.Context, show models.Show) error
}

// ShowServiceConfig holds listing defaults.
type ShowServiceConfig struct {
	PageSize    int
	MaxPageSize int
}

// ShowService verifies and lists shows.
type ShowService struct {
	db           database.TxBeginner
	shows        showRepository
	availability scheduling.AvailabilitySnapshotStore
	artists      artistLookup
	venues       venueLookup
	verifier     *scheduling.ShowVerifier
	events       showEventPublisher
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
	config       ShowServiceConfig
	now          func() time.Time
}

// NewShowService constructs a ShowService. events and metrics may be nil.
func NewShowService(
	db database.TxBeginner,
	shows showRepository,
	availability scheduling.AvailabilitySnapshotStore,
	artists artistLookup,
	venues venueLookup,
	events showEventPublisher,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
	config ShowServiceConfig,
) *ShowService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.PageSize <= 0 {
		config.PageSize = 6
	}
	if config.MaxPageSize < config.PageSize {
		config.MaxPageSize = config.PageSize
	}
	return &ShowService{
		db:           db,
		shows:        shows,
		availability: availability,
		artists:      artists,
		venues:       venues,
		verifier:     scheduling.NewShowVerifier(),
		events:       events,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
		config:       config,
		now:          time.Now,
	}
}

// Verify checks a proposed show without persisting it.
func (s *ShowService) Verify(ctx context.Context, req dto.CreateShowRequest) (*dto.VerificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid show payload")
	}
	if _, _, err := s.participants(ctx, req.ArtistID, req.VenueID); err != nil {
		return nil, err
	}

	show := req.Show()
	bookings, err := s.shows.BookingsForVenueOnDate(ctx, show.VenueID, show.StartTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load venue bookings")
	}
	snapshot, err := s.snapshotFor(ctx, show)
	if err != nil {
		return nil, err
	}
	return s.verify(show, bookings, snapshot)
}

// Create verifies and inserts a show. The venue is locked for the duration of the
// transaction so two shows cannot be verified against the same stale bookings.
func (s *ShowService) Create(ctx context.Context, req dto.CreateShowRequest) (*dto.ShowCreatedResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid show payload")
	}
	artist, venue, err := s.participants(ctx, req.ArtistID, req.VenueID)
	if err != nil {
		return nil, err
	}

	show := req.Show()
	snapshot, err := s.snapshotFor(ctx, show)
	if err != nil {
		return nil, err
	}

	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := s.shows.LockVenue(ctx, tx, show.VenueID); err != nil {
			return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to lock venue")
		}
		bookings, err := s.shows.BookingsForVenueOnDateWith(ctx, tx, show.VenueID, show.StartTime)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load venue bookings")
		}
		verification, err := s.verify(show, bookings, snapshot)
		if err != nil {
			return err
		}
		if !verification.OK {
			detail := &models.ShowConflictError{
				Message:  fmt.Sprintf("%s show at %s could not be listed", artist.Name, venue.Name),
				Messages: verification.Messages,
			}
			conflict := appErrors.Wrap(detail, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "show conflicts with existing schedule")
			conflict.Details = verification
			return conflict
		}
		if err := s.shows.Create(ctx, tx, &show); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create show")
		}
		return nil
	})
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create show")
	}

	s.metrics.RecordShowListed()
	s.logger.Info("show listed",
		zap.String("show_id", show.ID),
		zap.String("artist_id", show.ArtistID),
		zap.String("venue_id", show.VenueID),
		zap.Time("start_time", show.StartTime),
		zap.Int("duration", show.Duration),
		zap.String("request_id", requestid.FromContext(ctx)),
	)
	if s.events != nil {
		if err := s.events.PublishShowListed(ctx, show); err != nil {
			s.logger.Warn("show listed event not queued", zap.String("show_id", show.ID), zap.Error(err))
		}
	}

	return &dto.ShowCreatedResponse{
		Show:    show,
		Message: fmt.Sprintf("%s show at %s successfully listed!", artist.Name, venue.Name),
	}, nil
}

// List returns a page of shows.
func (s *ShowService) List(ctx context.Context, query dto.ListShowsQuery) ([]models.ShowListing, *models.Pagination, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid show query")
	}
	filter := models.ShowFilter{
		VenueID:  query.VenueID,
		ArtistID: query.ArtistID,
		When:     models.ShowTimeFilter(query.When),
		Now:      s.now().UTC(),
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if filter.When == "" {
		filter.When = models.ShowFilterAll
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = s.config.PageSize
	}
	if filter.PageSize > s.config.MaxPageSize {
		filter.PageSize = s.config.MaxPageSize
	}

	shows, total, err := s.shows.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list shows")
	}
	return shows, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// Get returns a single show listing.
func (s *ShowService) Get(ctx context.Context, id string) (*models.ShowListing, error) {
	listing, err := s.shows.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "show not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load show")
	}
	return listing, nil
}

func (s *ShowService) participants(ctx context.Context, artistID, venueID string) (*models.Artist, *models.Venue, error) {
	artist, err := findArtist(ctx, s.artists, artistID)
	if err != nil {
		return nil, nil, err
	}
	venue, err := findVenue(ctx, s.venues, venueID)
	if err != nil {
		return nil, nil, err
	}
	return artist, venue, nil
}

func (s *ShowService) snapshotFor(ctx context.Context, show models.Show) (*models.AvailabilitySnapshot, error) {
	snapshot, err := s.availability.LatestBefore(ctx, show.ArtistID, show.StartTime)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to load artist availability")
	}
	return snapshot, nil
}

func (s *ShowService) verify(show models.Show, bookings []models.Booking, snapshot *models.AvailabilitySnapshot) (*dto.VerificationResponse, error) {
	result, err := s.verifier.Verify(show, bookings, snapshot)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidShow) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid show payload")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify show")
	}
	s.metrics.RecordVerification(result.OK)
	return &dto.VerificationResponse{
		VerificationResult: result,
		Messages:           VerificationMessages(result, show.StartTime.Location()),
	}, nil
}

// VerificationMessages renders the user facing explanation for each failed check.
// Booking times are shown in loc, the location of the proposed start.
func VerificationMessages(result scheduling.VerificationResult, loc *time.Location) []string {
	messages := []string{}
	if loc == nil {
		loc = time.UTC
	}
	if b := result.BookingConflict; b != nil {
		messages = append(messages, fmt.Sprintf("Booking conflict. A show by %s is booked from %s to %s.",
			b.ArtistName, b.StartTime.In(loc).Format(messageTimeLayout), b.EndTime().In(loc).Format(messageTimeLayout)))
	}
	if w := result.ArtistConflict; w != nil {
		messages = append(messages, fmt.Sprintf("Artist availability conflict. Artist is only available from %s to %s.", w.From, w.To))
	}
	if !result.Available {
		messages = append(messages, "Artist availability conflict. Artist is not available.")
	}
	return messages
}

func findVenue(ctx context.Context, venues venueLookup, id string) (*models.Venue, error) {
	venue, err := venues.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "venue not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load venue")
	}
	return venue, nil
}
