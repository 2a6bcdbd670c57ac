package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ibuttimer/fyyur/internal/models"
)

// ArtistRepository reads artist records.
type ArtistRepository struct {
	db *sqlx.DB
}

// NewArtistRepository constructs the repository.
func NewArtistRepository(db *sqlx.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// FindByID loads an artist by id. Genres are not populated.
func (r *ArtistRepository) FindByID(ctx context.Context, id string) (*models.Artist, error) {
	const query = `SELECT id, name, city, state, phone, website, facebook_link, image_link, seeking_venue, seeking_description, created_at, updated_at
FROM artists WHERE id = $1`
	var artist models.Artist
	if err := r.db.GetContext(ctx, &artist, query, id); err != nil {
		return nil, err
	}
	return &artist, nil
}
