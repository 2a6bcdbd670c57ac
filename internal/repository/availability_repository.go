package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ibuttimer/fyyur/internal/models"
)

// AvailabilityRepository stores the append-only history of artist availability.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository constructs the repository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

const availabilityColumns = `id, artist_id, effective_from,
mon_from, mon_to, tue_from, tue_to, wed_from, wed_to, thu_from, thu_to,
fri_from, fri_to, sat_from, sat_to, sun_from, sun_to, created_at`

// LatestBefore returns the snapshot in force at instant, or nil when the artist has
// none effective before it. Ties on effective_from go to the most recently created.
func (r *AvailabilityRepository) LatestBefore(ctx context.Context, artistID string, instant time.Time) (*models.AvailabilitySnapshot, error) {
	query := `SELECT ` + availabilityColumns + `
FROM availability
WHERE artist_id = $1 AND effective_from < $2
ORDER BY effective_from DESC, created_at DESC
LIMIT 1`
	var snapshot models.AvailabilitySnapshot
	if err := r.db.GetContext(ctx, &snapshot, query, artistID, instant); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest availability: %w", err)
	}
	return &snapshot, nil
}

// ListByArtist returns every snapshot for the artist, oldest first.
func (r *AvailabilityRepository) ListByArtist(ctx context.Context, artistID string) ([]models.AvailabilitySnapshot, error) {
	query := `SELECT ` + availabilityColumns + `
FROM availability
WHERE artist_id = $1
ORDER BY effective_from, created_at`
	var snapshots []models.AvailabilitySnapshot
	if err := r.db.SelectContext(ctx, &snapshots, query, artistID); err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	return snapshots, nil
}

// Create appends a snapshot. Existing rows are never updated.
func (r *AvailabilityRepository) Create(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
	if snapshot == nil {
		return fmt.Errorf("availability payload is nil")
	}
	if snapshot.ArtistID == "" {
		return fmt.Errorf("artist_id is required")
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = now
	}
	if snapshot.EffectiveFrom.IsZero() {
		snapshot.EffectiveFrom = now
	}
	const query = `INSERT INTO availability (id, artist_id, effective_from,
mon_from, mon_to, tue_from, tue_to, wed_from, wed_to, thu_from, thu_to,
fri_from, fri_to, sat_from, sat_to, sun_from, sun_to, created_at)
VALUES (:id, :artist_id, :effective_from,
:mon_from, :mon_to, :tue_from, :tue_to, :wed_from, :wed_to, :thu_from, :thu_to,
:fri_from, :fri_to, :sat_from, :sat_to, :sun_from, :sun_to, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, snapshot); err != nil {
		return fmt.Errorf("create availability: %w", err)
	}
	return nil
}
