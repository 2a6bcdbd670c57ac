package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ibuttimer/fyyur/internal/models"
)

// ShowRepository persists shows and serves venue bookings.
type ShowRepository struct {
	db *sqlx.DB
}

// NewShowRepository constructs the repository.
func NewShowRepository(db *sqlx.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

func (r *ShowRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

const bookingsQuery = `SELECT s.id, a.name AS artist_name, s.start_time, s.duration
FROM shows s
JOIN artists a ON a.id = s.artist_id
WHERE s.venue_id = $1
  AND s.start_time < $3
  AND s.start_time + s.duration * interval '1 minute' > $2
ORDER BY s.start_time, s.id`

// BookingsForVenueOnDate returns the shows at venueID that occupy any part of date's
// calendar day, evaluated in date's location. A show that starts the previous evening and
// runs past midnight is included.
func (r *ShowRepository) BookingsForVenueOnDate(ctx context.Context, venueID string, date time.Time) ([]models.Booking, error) {
	return r.BookingsForVenueOnDateWith(ctx, nil, venueID, date)
}

// BookingsForVenueOnDateWith is BookingsForVenueOnDate run on exec, typically a transaction.
func (r *ShowRepository) BookingsForVenueOnDateWith(ctx context.Context, exec sqlx.ExtContext, venueID string, date time.Time) ([]models.Booking, error) {
	dayStart, dayEnd := dayBounds(date)
	var bookings []models.Booking
	if err := sqlx.SelectContext(ctx, r.exec(exec), &bookings, bookingsQuery, venueID, dayStart, dayEnd); err != nil {
		return nil, fmt.Errorf("list venue bookings: %w", err)
	}
	return bookings, nil
}

// LockVenue takes a transaction scoped advisory lock on the venue so that concurrent
// verify-then-insert sequences for the same venue run one at a time.
func (r *ShowRepository) LockVenue(ctx context.Context, exec sqlx.ExtContext, venueID string) error {
	const query = `SELECT pg_advisory_xact_lock(hashtext($1))`
	if _, err := r.exec(exec).ExecContext(ctx, query, venueID); err != nil {
		return fmt.Errorf("lock venue %s: %w", venueID, err)
	}
	return nil
}

// Create inserts a show.
func (r *ShowRepository) Create(ctx context.Context, exec sqlx.ExtContext, show *models.Show) error {
	if show == nil {
		return fmt.Errorf("show payload is nil")
	}
	if show.ID == "" {
		show.ID = uuid.NewString()
	}
	if show.CreatedAt.IsZero() {
		show.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO shows (id, artist_id, venue_id, start_time, duration, created_at)
VALUES (:id, :artist_id, :venue_id, :start_time, :duration, :created_at)`
	if _, err := sqlx.NamedExecContext(ctx, r.exec(exec), query, show); err != nil {
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

// FindByID loads a show listing by id.
func (r *ShowRepository) FindByID(ctx context.Context, id string) (*models.ShowListing, error) {
	query := listingSelect + ` WHERE s.id = $1`
	var listing models.ShowListing
	if err := r.db.GetContext(ctx, &listing, query, id); err != nil {
		return nil, err
	}
	return &listing, nil
}

const listingSelect = `SELECT s.id, s.artist_id, s.venue_id, s.start_time, s.duration, s.created_at,
v.name AS venue_name, a.name AS artist_name, a.image_link AS artist_image_link
FROM shows s
JOIN venues v ON v.id = s.venue_id
JOIN artists a ON a.id = s.artist_id`

// List returns show listings matching filter along with the total match count.
func (r *ShowRepository) List(ctx context.Context, filter models.ShowFilter) ([]models.ShowListing, int, error) {
	args := []interface{}{}
	conditions := []string{"1=1"}

	if filter.VenueID != "" {
		conditions = append(conditions, fmt.Sprintf("s.venue_id = $%d", len(args)+1))
		args = append(args, filter.VenueID)
	}
	if filter.ArtistID != "" {
		conditions = append(conditions, fmt.Sprintf("s.artist_id = $%d", len(args)+1))
		args = append(args, filter.ArtistID)
	}

	order := "ASC"
	switch filter.When {
	case models.ShowFilterPrevious:
		conditions = append(conditions, fmt.Sprintf("s.start_time < $%d", len(args)+1))
		args = append(args, nowOr(filter.Now))
		order = "DESC"
	case models.ShowFilterUpcoming:
		conditions = append(conditions, fmt.Sprintf("s.start_time >= $%d", len(args)+1))
		args = append(args, nowOr(filter.Now))
	}

	where := strings.Join(conditions, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 6
	}
	offset := (page - 1) * size

	query := fmt.Sprintf(`%s WHERE %s ORDER BY s.start_time %s, s.id LIMIT %d OFFSET %d`, listingSelect, where, order, size, offset)

	var listings []models.ShowListing
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list shows: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM shows s WHERE %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count shows: %w", err)
	}
	return listings, total, nil
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

func nowOr(now time.Time) time.Time {
	if now.IsZero() {
		return time.Now().UTC()
	}
	return now
}
