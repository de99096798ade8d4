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

const manuscriptColumns = `
	id, monastery_id, title, description, period, image_urls, tags,
	digitized_pages, created_at`

// ManuscriptRepo provides database operations for the digitized archive.
type ManuscriptRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewManuscriptRepo creates a new ManuscriptRepo with real time provider.
func NewManuscriptRepo(db *sql.DB) *ManuscriptRepo {
	return &ManuscriptRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewManuscriptRepoWithTimeProvider creates a new ManuscriptRepo with a custom time provider (useful for tests).
func NewManuscriptRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ManuscriptRepo {
	return &ManuscriptRepo{DB: db, timeProvider: tp}
}

// Create archives a new manuscript.
func (r *ManuscriptRepo) Create(ctx context.Context, req *model.CreateManuscriptRequest) (*model.Manuscript, error) {
	if req == nil {
		return nil, errors.New("create manuscript request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	imageURLs := req.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	pages := req.DigitizedPages
	if pages == nil {
		pages = []model.DigitizedPage{}
	}

	var out model.Manuscript
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO manuscripts (
				id, monastery_id, title, description, period, image_urls, tags,
				digitized_pages, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+manuscriptColumns,
			uuid.NewString(),
			req.MonasteryID,
			strings.TrimSpace(req.Title),
			req.Description,
			req.Period,
			imageURLs,
			tags,
			pages,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Manuscript])
		return err
	}); err != nil {
		return nil, mapPgError(err, "create manuscript")
	}
	return &out, nil
}

// GetByID retrieves a manuscript by ID.
func (r *ManuscriptRepo) GetByID(ctx context.Context, id string) (*model.Manuscript, error) {
	var out model.Manuscript
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx,
			`SELECT `+manuscriptColumns+` FROM manuscripts WHERE id = $1`, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Manuscript])
		return collectErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(ErrManuscriptNotFound, apperrors.ErrCodeNotFound, "manuscript "+id)
		}
		return nil, mapPgError(err, "get manuscript by id")
	}
	return &out, nil
}

// ListByMonastery retrieves all manuscripts belonging to a monastery.
func (r *ManuscriptRepo) ListByMonastery(ctx context.Context, monasteryID string) ([]*model.Manuscript, error) {
	var rowsOut []model.Manuscript
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			SELECT `+manuscriptColumns+` FROM manuscripts
			WHERE monastery_id = $1 ORDER BY created_at DESC, id`, monasteryID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.Manuscript])
		return collectErr
	}); err != nil {
		return nil, mapPgError(err, "list manuscripts by monastery")
	}

	out := make([]*model.Manuscript, len(rowsOut))
	for i := range rowsOut {
		out[i] = &rowsOut[i]
	}
	return out, nil
}
