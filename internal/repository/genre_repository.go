package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ibuttimer/fyyur/internal/models"
	"github.com/ibuttimer/fyyur/pkg/setdiff"
)

type genreLink struct {
	table  string
	column string
}

var genreLinks = map[models.GenreOwner]genreLink{
	models.GenreOwnerArtist: {table: "artist_genres", column: "artist_id"},
	models.GenreOwnerVenue:  {table: "venue_genres", column: "venue_id"},
}

// GenreRepository manages genre tags for artists and venues.
type GenreRepository struct {
	db *sqlx.DB
}

// NewGenreRepository constructs the repository.
func NewGenreRepository(db *sqlx.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func linkFor(owner models.GenreOwner) (genreLink, error) {
	link, ok := genreLinks[owner]
	if !ok {
		return genreLink{}, fmt.Errorf("unknown genre owner %q", owner)
	}
	return link, nil
}

// ListFor returns the genre names linked to the owner, alphabetically.
func (r *GenreRepository) ListFor(ctx context.Context, owner models.GenreOwner, ownerID string) ([]string, error) {
	link, err := linkFor(owner)
	if err != nil {
		return nil, err
	}
	return r.listFor(ctx, r.db, link, ownerID)
}

func (r *GenreRepository) listFor(ctx context.Context, q sqlx.QueryerContext, link genreLink, ownerID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT g.name FROM genres g JOIN %s l ON l.genre_id = g.id WHERE l.%s = $1 ORDER BY g.name`, link.table, link.column)
	var names []string
	if err := sqlx.SelectContext(ctx, q, &names, query, ownerID); err != nil {
		return nil, fmt.Errorf("list %s: %w", link.table, err)
	}
	return names, nil
}

// Replace makes names the owner's genre set, touching only the links that change.
// It returns the names added and removed.
func (r *GenreRepository) Replace(ctx context.Context, owner models.GenreOwner, ownerID string, names []string) (added, removed []string, err error) {
	link, err := linkFor(owner)
	if err != nil {
		return nil, nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin genre tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	current, err := r.listFor(ctx, tx, link, ownerID)
	if err != nil {
		return nil, nil, err
	}
	added, removed = setdiff.Diff(current, names)

	const ensureGenre = `INSERT INTO genres (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
	linkGenre := fmt.Sprintf(`INSERT INTO %s (%s, genre_id) SELECT $1, id FROM genres WHERE name = $2 ON CONFLICT DO NOTHING`, link.table, link.column)
	for _, name := range added {
		if _, err = tx.ExecContext(ctx, ensureGenre, uuid.NewString(), name); err != nil {
			return nil, nil, fmt.Errorf("ensure genre %s: %w", name, err)
		}
		if _, err = tx.ExecContext(ctx, linkGenre, ownerID, name); err != nil {
			return nil, nil, fmt.Errorf("link genre %s: %w", name, err)
		}
	}

	if len(removed) > 0 {
		unlink := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND genre_id IN (SELECT id FROM genres WHERE name = ANY($2))`, link.table, link.column)
		if _, err = tx.ExecContext(ctx, unlink, ownerID, pq.Array(removed)); err != nil {
			return nil, nil, fmt.Errorf("unlink genres: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit genre tx: %w", err)
	}
	return added, removed, nil
}
