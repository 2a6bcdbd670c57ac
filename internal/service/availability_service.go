package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
)

type availabilityWriter interface {
	Create(ctx context.Context, snapshot *models.AvailabilitySnapshot) error
}

type availabilityHistory interface {
	LatestBefore(ctx context.Context, artistID string, instant time.Time) (*models.AvailabilitySnapshot, error)
	History(ctx context.Context, artistID string) ([]models.AvailabilitySnapshot, error)
	Invalidate(ctx context.Context, artistID string) error
}

type artistLookup interface {
	FindByID(ctx context.Context, id string) (*models.Artist, error)
}

// AvailabilityService records and serves artist availability templates.
type AvailabilityService struct {
	repo    availabilityWriter
	history availabilityHistory
	artists artistLookup
	logger  *zap.Logger
	now     func() time.Time
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(repo availabilityWriter, history availabilityHistory, artists artistLookup, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{repo: repo, history: history, artists: artists, logger: logger, now: time.Now}
}

// Record appends a new snapshot unless the weekly template matches the one already in force.
func (s *AvailabilityService) Record(ctx context.Context, artistID string, req dto.AvailabilityRequest) (*dto.RecordAvailabilityResponse, error) {
	week := req.Week()
	if err := validateWeek(week); err != nil {
		return nil, err
	}
	if _, err := findArtist(ctx, s.artists, artistID); err != nil {
		return nil, err
	}

	effectiveFrom := s.now().UTC()
	if req.EffectiveFrom != nil && !req.EffectiveFrom.IsZero() {
		effectiveFrom = *req.EffectiveFrom
	}

	candidate := &models.AvailabilitySnapshot{ArtistID: artistID, EffectiveFrom: effectiveFrom}
	candidate.SetWeek(week)

	current, err := s.history.LatestBefore(ctx, artistID, effectiveFrom)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load current availability")
	}
	if current != nil && current.SameWeek(candidate) {
		return &dto.RecordAvailabilityResponse{Recorded: false, Availability: dto.NewAvailabilityResponse(current)}, nil
	}

	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record availability")
	}
	if err := s.history.Invalidate(ctx, artistID); err != nil {
		s.logger.Error("availability cache not invalidated", zap.String("artist_id", artistID), zap.Error(err))
	}

	s.logger.Info("availability recorded",
		zap.String("artist_id", artistID),
		zap.String("availability_id", candidate.ID),
		zap.Time("effective_from", candidate.EffectiveFrom),
	)
	return &dto.RecordAvailabilityResponse{Recorded: true, Availability: dto.NewAvailabilityResponse(candidate)}, nil
}

// Effective returns the snapshot in force at the given instant.
func (s *AvailabilityService) Effective(ctx context.Context, artistID string, at time.Time) (*dto.AvailabilityResponse, error) {
	if _, err := findArtist(ctx, s.artists, artistID); err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = s.now().UTC()
	}
	snapshot, err := s.history.LatestBefore(ctx, artistID, at)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load availability")
	}
	if snapshot == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "artist has no availability in force")
	}
	resp := dto.NewAvailabilityResponse(snapshot)
	return &resp, nil
}

// History returns every recorded snapshot for the artist, oldest first.
func (s *AvailabilityService) History(ctx context.Context, artistID string) ([]dto.AvailabilityResponse, error) {
	if _, err := findArtist(ctx, s.artists, artistID); err != nil {
		return nil, err
	}
	history, err := s.history.History(ctx, artistID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load availability history")
	}
	result := make([]dto.AvailabilityResponse, 0, len(history))
	for i := range history {
		result = append(result, dto.NewAvailabilityResponse(&history[i]))
	}
	return result, nil
}

// validateWeek enforces the slot rules at the point of recording: a day declares both
// bounds or neither, and to must follow from unless either bound is the 00:00 sentinel.
func validateWeek(week [models.DaysPerWeek]models.DaySlot) error {
	var problems []string
	for _, day := range models.Weekdays {
		slot := week[day]
		name := strings.ToLower(day.String())
		switch {
		case (slot.From == nil) != (slot.To == nil):
			problems = append(problems, fmt.Sprintf("%s: from and to must both be set or both be empty", name))
		case slot.From == nil:
		case *slot.From == models.Midnight || *slot.To == models.Midnight:
		case *slot.To <= *slot.From:
			problems = append(problems, fmt.Sprintf("%s: to %s must be after from %s", name, slot.To, slot.From))
		}
	}
	if len(problems) > 0 {
		return appErrors.WithDetails(appErrors.ErrValidation, "invalid availability", problems)
	}
	return nil
}

func findArtist(ctx context.Context, artists artistLookup, id string) (*models.Artist, error) {
	artist, err := artists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "artist not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load artist")
	}
	return artist, nil
}
