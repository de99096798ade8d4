package data

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/monastery360/m360-api/internal/data/pgxutil"
	"github.com/monastery360/m360-api/internal/domain/model"
	apperrors "github.com/monastery360/m360-api/internal/errors"
)

const eventColumns = `
	id, monastery_id, title, description, start_date, end_date, location,
	type, tickets_required, max_participants, current_participants,
	image_url, created_at, updated_at`

// EventRepo provides database operations for cultural events.
type EventRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewEventRepo creates a new EventRepo with real time provider.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewEventRepoWithTimeProvider creates a new EventRepo with a custom time provider (useful for tests).
func NewEventRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *EventRepo {
	return &EventRepo{DB: db, timeProvider: tp}
}

// Create schedules a new cultural event.
func (r *EventRepo) Create(ctx context.Context, req *model.CreateEventRequest) (*model.CulturalEvent, error) {
	if req == nil {
		return nil, errors.New("create event request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.CulturalEvent
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO cultural_events (
				id, monastery_id, title, description, start_date, end_date,
				location, type, tickets_required, max_participants,
				current_participants, image_url, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 0, $11, $12)
			RETURNING `+eventColumns,
			uuid.NewString(),
			req.MonasteryID,
			strings.TrimSpace(req.Title),
			req.Description,
			req.StartDate.UTC(),
			req.EndDate.UTC(),
			req.Location,
			req.Type,
			req.TicketsRequired,
			req.MaxParticipants,
			req.ImageURL,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CulturalEvent])
		return err
	}); err != nil {
		return nil, mapPgError(err, "create cultural event")
	}
	return &out, nil
}

// GetByID retrieves an event by ID.
func (r *EventRepo) GetByID(ctx context.Context, id string) (*model.CulturalEvent, error) {
	var out model.CulturalEvent
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT `+eventColumns+` FROM cultural_events WHERE id = $1`, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CulturalEvent])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrEventNotFound, apperrors.ErrCodeNotFound, "event "+id)
		}
		return nil, mapPgError(err, "get event by id")
	}
	return &out, nil
}

// List retrieves events matching the given filters, soonest first.
func (r *EventRepo) List(ctx context.Context, opts model.EventsListOptions) ([]*model.CulturalEvent, error) {
	var (
		conditions []string
		args       []any
	)
	if opts.MonasteryID != "" {
		args = append(args, opts.MonasteryID)
		conditions = append(conditions, "monastery_id = $"+strconv.Itoa(len(args)))
	}
	if opts.UpcomingOnly {
		args = append(args, r.timeProvider.Now().UTC())
		conditions = append(conditions, "end_date >= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM cultural_events`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, opts.Limit)
	query += " ORDER BY start_date, id LIMIT $" + strconv.Itoa(len(args))
	args = append(args, opts.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var rowsOut []model.CulturalEvent
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.CulturalEvent])
		return collectErr
	}); err != nil {
		return nil, mapPgError(err, "list cultural events")
	}

	out := make([]*model.CulturalEvent, len(rowsOut))
	for i := range rowsOut {
		out[i] = &rowsOut[i]
	}
	return out, nil
}

// Register increments the participant count for an event, guarded by the
// capacity limit in a single statement so concurrent registrations cannot
// oversell. A zero-row update means either the event is missing or full;
// a follow-up read disambiguates.
func (r *EventRepo) Register(ctx context.Context, id string) (*model.CulturalEvent, error) {
	var out model.CulturalEvent
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			UPDATE cultural_events
			SET current_participants = current_participants + 1, updated_at = $2
			WHERE id = $1
			  AND (max_participants IS NULL OR current_participants < max_participants)
			RETURNING `+eventColumns,
			id, r.timeProvider.Now().UTC())
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.CulturalEvent])
		return collectErr
	})
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, mapPgError(err, "register for event")
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, apperrors.Wrap(ErrEventFull, apperrors.ErrCodeConflict, "event "+id)
}

// CountUpcoming returns the number of events ending on or after now.
func (r *EventRepo) CountUpcoming(ctx context.Context, now time.Time) (int, error) {
	var count int
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT count(*) FROM cultural_events WHERE end_date >= $1`,
			now.UTC()).Scan(&count)
	}); err != nil {
		return 0, mapPgError(err, "count upcoming events")
	}
	return count, nil
}
