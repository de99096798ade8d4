package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/monastery360/m360-api/internal/data/pgxutil"
	"github.com/monastery360/m360-api/internal/domain/model"
	apperrors "github.com/monastery360/m360-api/internal/errors"
)

const monasteryColumns = `
	id, name, description, location, images, virtual_tours, panoramic_views,
	audio_guides, attractions, visiting_hours, ticket_pricing, created_at, updated_at`

// MonasteryRepo provides database operations for the monastery catalog.
type MonasteryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewMonasteryRepo creates a new MonasteryRepo with real time provider.
func NewMonasteryRepo(db *sql.DB) *MonasteryRepo {
	return &MonasteryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewMonasteryRepoWithTimeProvider creates a new MonasteryRepo with a custom time provider (useful for tests).
func NewMonasteryRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *MonasteryRepo {
	return &MonasteryRepo{DB: db, timeProvider: tp}
}

// Create inserts a new monastery.
func (r *MonasteryRepo) Create(ctx context.Context, req *model.CreateMonasteryRequest) (*model.Monastery, error) {
	if req == nil {
		return nil, errors.New("create monastery request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	var out model.Monastery
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO monasteries (
				id, name, description, location, images, virtual_tours, panoramic_views,
				audio_guides, attractions, visiting_hours, ticket_pricing, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
			) RETURNING `+monasteryColumns,
			uuid.NewString(),
			strings.TrimSpace(req.Name),
			req.Description,
			req.Location,
			images,
			emptyIfNilTours(req.VirtualTours),
			emptyIfNilViews(req.PanoramicViews),
			emptyIfNilGuides(req.AudioGuides),
			emptyIfNilAttractions(req.Attractions),
			req.VisitingHours,
			req.TicketPricing,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Monastery])
		return err
	}); err != nil {
		return nil, mapPgError(err, "create monastery")
	}
	return &out, nil
}

// GetByID retrieves a monastery by ID.
func (r *MonasteryRepo) GetByID(ctx context.Context, id string) (*model.Monastery, error) {
	var out model.Monastery
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT `+monasteryColumns+` FROM monasteries WHERE id = $1`, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Monastery])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrMonasteryNotFound, apperrors.ErrCodeNotFound, "monastery "+id)
		}
		return nil, mapPgError(err, "get monastery by id")
	}
	return &out, nil
}

// List retrieves monasteries with pagination, newest first.
func (r *MonasteryRepo) List(ctx context.Context, opts model.MonasteriesListOptions) ([]*model.Monastery, error) {
	return r.collectMany(ctx,
		`SELECT `+monasteryColumns+` FROM monasteries ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
}

// Search matches the query case-insensitively against name and description.
func (r *MonasteryRepo) Search(ctx context.Context, query string, opts model.MonasteriesListOptions) ([]*model.Monastery, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.collectMany(ctx, `
		SELECT `+monasteryColumns+` FROM monasteries
		WHERE lower(name) LIKE $1 OR lower(description) LIKE $1
		ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
		pattern, opts.Limit, opts.Offset)
}

func (r *MonasteryRepo) collectMany(ctx context.Context, query string, args ...any) ([]*model.Monastery, error) {
	var rowsOut []model.Monastery
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Monastery])
		return collectErr
	}); err != nil {
		return nil, mapPgError(err, "list monasteries")
	}

	out := make([]*model.Monastery, len(rowsOut))
	for i := range rowsOut {
		out[i] = &rowsOut[i]
	}
	return out, nil
}

// JSONB columns reject SQL NULL from nil slices; normalize to empty.
func emptyIfNilTours(v []model.VirtualTour) []model.VirtualTour {
	if v == nil {
		return []model.VirtualTour{}
	}
	return v
}

func emptyIfNilViews(v []model.PanoramicView) []model.PanoramicView {
	if v == nil {
		return []model.PanoramicView{}
	}
	return v
}

func emptyIfNilGuides(v []model.AudioGuide) []model.AudioGuide {
	if v == nil {
		return []model.AudioGuide{}
	}
	return v
}

func emptyIfNilAttractions(v []model.Attraction) []model.Attraction {
	if v == nil {
		return []model.Attraction{}
	}
	return v
}
