package service

import (
	"context"
	"time"

	"github.com/ibuttimer/fyyur/internal/models"
)

type availabilityHistoryRepository interface {
	LatestBefore(ctx context.Context, artistID string, instant time.Time) (*models.AvailabilitySnapshot, error)
	ListByArtist(ctx context.Context, artistID string) ([]models.AvailabilitySnapshot, error)
}

// cachedSnapshot is the cache encoding of a snapshot; the flat day columns are not
// part of the public JSON.
type cachedSnapshot struct {
	ID            string                             `json:"id"`
	ArtistID      string                             `json:"artist_id"`
	EffectiveFrom time.Time                          `json:"effective_from"`
	CreatedAt     time.Time                          `json:"created_at"`
	Week          [models.DaysPerWeek]models.DaySlot `json:"week"`
}

func toCached(snapshot models.AvailabilitySnapshot) cachedSnapshot {
	return cachedSnapshot{
		ID:            snapshot.ID,
		ArtistID:      snapshot.ArtistID,
		EffectiveFrom: snapshot.EffectiveFrom,
		CreatedAt:     snapshot.CreatedAt,
		Week:          snapshot.Week(),
	}
}

func (c cachedSnapshot) snapshot() models.AvailabilitySnapshot {
	snapshot := models.AvailabilitySnapshot{
		ID:            c.ID,
		ArtistID:      c.ArtistID,
		EffectiveFrom: c.EffectiveFrom,
		CreatedAt:     c.CreatedAt,
	}
	snapshot.SetWeek(c.Week)
	return snapshot
}

// CachedAvailabilityStore serves artist availability history through the cache, falling
// back to the repository when caching is disabled or the cache is unreachable.
type CachedAvailabilityStore struct {
	repo  availabilityHistoryRepository
	cache *CacheService
	ttl   time.Duration
}

// NewCachedAvailabilityStore constructs the store. A nil cache disables caching.
func NewCachedAvailabilityStore(repo availabilityHistoryRepository, cache *CacheService, ttl time.Duration) *CachedAvailabilityStore {
	return &CachedAvailabilityStore{repo: repo, cache: cache, ttl: ttl}
}

func availabilityCacheKey(artistID string) string {
	return "availability:artist:" + artistID
}

// LatestBefore returns the snapshot in force at instant, or nil when there is none.
func (s *CachedAvailabilityStore) LatestBefore(ctx context.Context, artistID string, instant time.Time) (*models.AvailabilitySnapshot, error) {
	if !s.cache.Enabled() {
		return s.repo.LatestBefore(ctx, artistID, instant)
	}
	history, err := s.History(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return latestBefore(history, instant), nil
}

// History returns every snapshot for the artist, oldest first.
func (s *CachedAvailabilityStore) History(ctx context.Context, artistID string) ([]models.AvailabilitySnapshot, error) {
	encoded, err := Remember(ctx, s.cache, availabilityCacheKey(artistID), s.ttl, func(ctx context.Context) ([]cachedSnapshot, error) {
		history, err := s.repo.ListByArtist(ctx, artistID)
		if err != nil {
			return nil, err
		}
		out := make([]cachedSnapshot, 0, len(history))
		for _, snapshot := range history {
			out = append(out, toCached(snapshot))
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	history := make([]models.AvailabilitySnapshot, 0, len(encoded))
	for _, item := range encoded {
		history = append(history, item.snapshot())
	}
	return history, nil
}

// Invalidate drops the cached history for the artist.
func (s *CachedAvailabilityStore) Invalidate(ctx context.Context, artistID string) error {
	return s.cache.Invalidate(ctx, availabilityCacheKey(artistID))
}

// latestBefore picks the greatest effective_from strictly before instant; ties go to the
// most recently created snapshot.
func latestBefore(history []models.AvailabilitySnapshot, instant time.Time) *models.AvailabilitySnapshot {
	var best *models.AvailabilitySnapshot
	for i := range history {
		candidate := &history[i]
		if !candidate.EffectiveFrom.Before(instant) {
			continue
		}
		if best == nil ||
			candidate.EffectiveFrom.After(best.EffectiveFrom) ||
			(candidate.EffectiveFrom.Equal(best.EffectiveFrom) && candidate.CreatedAt.After(best.CreatedAt)) {
			best = candidate
		}
	}
	if best == nil {
		return nil
	}
	found := *best
	return &found
}
