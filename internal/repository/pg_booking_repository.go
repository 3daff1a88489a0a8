package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/elchananT/personal-coach-demo-website/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBookingRepository is the PostgreSQL implementation of BookingRepository.
type PgBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPgBookingRepository creates a PgBookingRepository backed by the given pool.
func NewPgBookingRepository(pool *pgxpool.Pool) *PgBookingRepository {
	return &PgBookingRepository{pool: pool}
}

// Ensure PgBookingRepository implements BookingRepository at compile time.
var _ BookingRepository = (*PgBookingRepository)(nil)

const bookingColumns = `id, name, email, goal, timeframe, COALESCE(message, ''), status, created_at, updated_at`

// Save inserts a new bookings row and populates b.ID and timestamps
// from the database RETURNING clause.
func (r *PgBookingRepository) Save(ctx context.Context, b *model.Booking) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bookings (name, email, goal, timeframe, message, status)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		 RETURNING id, created_at, updated_at`,
		b.Name, b.Email, b.Goal, b.Timeframe, b.Message, b.Status,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Get returns a single booking or ErrNotFound.
func (r *PgBookingRepository) Get(ctx context.Context, id string) (*model.Booking, error) {
	if !isUUID(id) {
		return nil, ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns bookings filtered by status and paginated by limit/offset.
// Status "" or "all" returns all bookings.
func (r *PgBookingRepository) List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error) {
	var conditions []string
	var args []any

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, opts.Limit, opts.Offset)
	query := `SELECT ` + bookingColumns + ` FROM bookings ` + where +
		` ORDER BY created_at DESC
		  LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateStatus changes the status of a booking. Returns ErrNotFound when no row matches.
func (r *PgBookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if !isUUID(id) {
		return ErrNotFound
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	if err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Goal, &b.Timeframe, &b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// isUUID keeps malformed IDs from reaching Postgres, which would reject them
// with a syntax error instead of matching no row.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
