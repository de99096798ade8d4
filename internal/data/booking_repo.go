package data

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/monastery360/m360-api/internal/data/pgxutil"
	"github.com/monastery360/m360-api/internal/domain/model"
	apperrors "github.com/monastery360/m360-api/internal/errors"
)

const bookingColumns = `
	id, user_id, monastery_id, event_id, visit_date, visitors, total_amount,
	currency, status, payment_status, special_requests, created_at, updated_at`

// BookingRepo provides database operations for visit bookings.
type BookingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBookingRepo creates a new BookingRepo with real time provider.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBookingRepoWithTimeProvider creates a new BookingRepo with a custom time provider (useful for tests).
func NewBookingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: tp}
}

// Create inserts a fully populated booking. The booking service owns id
// generation and price calculation.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) (*model.Booking, error) {
	if b == nil {
		return nil, errors.New("booking is required")
	}

	visitors := b.Visitors
	if visitors == nil {
		visitors = []model.VisitorInfo{}
	}

	var out model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO bookings (
				id, user_id, monastery_id, event_id, visit_date, visitors,
				total_amount, currency, status, payment_status,
				special_requests, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING `+bookingColumns,
			b.ID,
			b.UserID,
			b.MonasteryID,
			b.EventID,
			b.VisitDate.UTC(),
			visitors,
			b.TotalAmount,
			b.Currency,
			b.Status,
			b.PaymentStatus,
			b.SpecialRequests,
			b.CreatedAt.UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, mapPgError(err, "create booking")
	}
	return &out, nil
}

// GetByID retrieves a booking by ID.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrBookingNotFound, apperrors.ErrCodeNotFound, "booking "+id)
		}
		return nil, mapPgError(err, "get booking by id")
	}
	return &out, nil
}

// List retrieves bookings matching the given filters, newest first.
func (r *BookingRepo) List(ctx context.Context, opts model.BookingsListOptions) ([]*model.Booking, error) {
	var (
		conditions []string
		args       []any
	)
	if opts.UserID != "" {
		args = append(args, opts.UserID)
		conditions = append(conditions, "user_id = $"+strconv.Itoa(len(args)))
	}
	if opts.Status != "" {
		args = append(args, opts.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, opts.Limit)
	query += " ORDER BY created_at DESC, id LIMIT $" + strconv.Itoa(len(args))
	args = append(args, opts.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var rowsOut []model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
		return collectErr
	}); err != nil {
		return nil, mapPgError(err, "list bookings")
	}

	out := make([]*model.Booking, len(rowsOut))
	for i := range rowsOut {
		out[i] = &rowsOut[i]
	}
	return out, nil
}

// UpdateStatus transitions a booking's lifecycle and payment state.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus, payment model.PaymentStatus) (*model.Booking, error) {
	var out model.Booking
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			UPDATE bookings SET status = $2, payment_status = $3, updated_at = $4
			WHERE id = $1 RETURNING `+bookingColumns,
			id, status, payment, r.timeProvider.Now().UTC())
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrBookingNotFound, apperrors.ErrCodeNotFound, "booking "+id)
		}
		return nil, mapPgError(err, "update booking status")
	}
	return &out, nil
}

// Totals returns the visitor count and revenue across confirmed and
// completed bookings.
func (r *BookingRepo) Totals(ctx context.Context) (int, float64, error) {
	var (
		visitors int
		revenue  float64
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT coalesce(sum(jsonb_array_length(visitors)), 0),
			       coalesce(sum(total_amount), 0)
			FROM bookings WHERE status IN ($1, $2)`,
			model.BookingConfirmed, model.BookingCompleted).Scan(&visitors, &revenue)
	}); err != nil {
		return 0, 0, mapPgError(err, "booking totals")
	}
	return visitors, revenue, nil
}

// CountCreatedBetween counts bookings created in [from, to).
func (r *BookingRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT count(*) FROM bookings
			WHERE created_at >= $1 AND created_at < $2`,
			from.UTC(), to.UTC()).Scan(&count)
	}); err != nil {
		return 0, mapPgError(err, "count bookings created between")
	}
	return count, nil
}
