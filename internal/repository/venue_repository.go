package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ibuttimer/fyyur/internal/models"
)

// VenueRepository reads venue records.
type VenueRepository struct {
	db *sqlx.DB
}

// NewVenueRepository constructs the repository.
func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// FindByID loads a venue by id. Genres are not populated.
func (r *VenueRepository) FindByID(ctx context.Context, id string) (*models.Venue, error) {
	const query = `SELECT id, name, address, city, state, phone, website, facebook_link, image_link, seeking_talent, seeking_description, created_at, updated_at
FROM venues WHERE id = $1`
	var venue models.Venue
	if err := r.db.GetContext(ctx, &venue, query, id); err != nil {
		return nil, err
	}
	return &venue, nil
}
