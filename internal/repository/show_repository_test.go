package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibuttimer/fyyur/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestShowRepositoryBookingsForVenueOnDate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewShowRepository(db)

	date := time.Date(2024, time.January, 1, 19, 30, 0, 0, time.UTC)
	dayStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "artist_name", "start_time", "duration"}).
		AddRow("show-0", "Late Set", time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC), 180).
		AddRow("show-1", "The Band", time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC), 60).
		AddRow("show-2", "Opener", time.Date(2024, time.January, 1, 21, 0, 0, 0, time.UTC), 90)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.venue_id = $1\n  AND s.start_time < $3\n  AND s.start_time + s.duration * interval '1 minute' > $2")).
		WithArgs("venue-1", dayStart, dayEnd).
		WillReturnRows(rows)

	bookings, err := repo.BookingsForVenueOnDate(context.Background(), "venue-1", date)
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "show-0", bookings[0].ShowID)
	assert.Equal(t, "The Band", bookings[1].ArtistName)
	assert.Equal(t, 90, bookings[2].Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepositoryBookingsError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewShowRepository(db)

	mock.ExpectQuery("SELECT s.id, a.name AS artist_name").WillReturnError(errors.New("connection refused"))

	_, err := repo.BookingsForVenueOnDate(context.Background(), "venue-1", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list venue bookings")
}

func TestShowRepositoryLockAndCreateInTx(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewShowRepository(db)

	start := time.Date(2024, time.January, 1, 19, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("venue-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO shows").
		WithArgs(sqlmock.AnyArg(), "artist-1", "venue-1", start, 30, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.LockVenue(context.Background(), tx, "venue-1"))

	show := &models.Show{ArtistID: "artist-1", VenueID: "venue-1", StartTime: start, Duration: 30}
	require.NoError(t, repo.Create(context.Background(), tx, show))
	require.NoError(t, tx.Commit())

	assert.NotEmpty(t, show.ID)
	assert.False(t, show.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepositoryListUpcoming(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewShowRepository(db)

	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(48 * time.Hour)

	rows := sqlmock.NewRows([]string{"id", "artist_id", "venue_id", "start_time", "duration", "created_at", "venue_name", "artist_name", "artist_image_link"}).
		AddRow("show-1", "artist-1", "venue-1", start, 60, now, "The Musical Hop", "Guns N Petals", nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND s.venue_id = $1 AND s.start_time >= $2 ORDER BY s.start_time ASC, s.id LIMIT 6 OFFSET 6")).
		WithArgs("venue-1", now).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows s WHERE 1=1 AND s.venue_id = $1 AND s.start_time >= $2")).
		WithArgs("venue-1", now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	listings, total, err := repo.List(context.Background(), models.ShowFilter{
		VenueID:  "venue-1",
		When:     models.ShowFilterUpcoming,
		Now:      now,
		Page:     2,
		PageSize: 6,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, listings, 1)
	assert.Equal(t, "The Musical Hop", listings[0].VenueName)
	assert.Equal(t, "show-1", listings[0].ID)
	assert.Nil(t, listings[0].ArtistImageLink)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepositoryListPreviousIsNewestFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewShowRepository(db)

	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE 1=1 AND s.artist_id = $1 AND s.start_time < $2 ORDER BY s.start_time DESC, s.id LIMIT 6 OFFSET 0")).
		WithArgs("artist-1", now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows s")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	listings, total, err := repo.List(context.Background(), models.ShowFilter{ArtistID: "artist-1", When: models.ShowFilterPrevious, Now: now})
	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewShowRepository(db)

	start := time.Date(2024, time.January, 5, 20, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "artist_id", "venue_id", "start_time", "duration", "created_at", "venue_name", "artist_name", "artist_image_link"}).
		AddRow("show-1", "artist-1", "venue-1", start, 90, start, "The Musical Hop", "Guns N Petals", nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.id = $1")).WithArgs("show-1").WillReturnRows(rows)

	listing, err := repo.FindByID(context.Background(), "show-1")
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", listing.ArtistName)
	assert.Equal(t, 90, listing.Duration)
	assert.Nil(t, listing.ArtistImageLink)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.id = $1")).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
