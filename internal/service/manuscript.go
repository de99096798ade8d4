package service

import (
	"context"

	"github.com/monastery360/m360-api/internal/core"
	"github.com/monastery360/m360-api/internal/domain/model"
)

// ManuscriptServiceOptions groups dependencies for ManuscriptService.
type ManuscriptServiceOptions struct {
	Repo core.ManuscriptRepository
}

// ManuscriptService exposes the digitized archive.
type ManuscriptService struct {
	repo core.ManuscriptRepository
}

// NewManuscriptService constructs a new ManuscriptService.
func NewManuscriptService(opts ManuscriptServiceOptions) *ManuscriptService {
	return &ManuscriptService{repo: opts.Repo}
}

// GetByID retrieves a manuscript by ID.
func (s *ManuscriptService) GetByID(ctx context.Context, id string) (*model.Manuscript, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByMonastery returns the manuscripts archived for a monastery.
func (s *ManuscriptService) ListByMonastery(ctx context.Context, monasteryID string) ([]*model.Manuscript, error) {
	return s.repo.ListByMonastery(ctx, monasteryID)
}

// Create archives a new manuscript.
func (s *ManuscriptService) Create(ctx context.Context, req *model.CreateManuscriptRequest) (*model.Manuscript, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, req)
}
