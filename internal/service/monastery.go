package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/monastery360/m360-api/internal/core"
	"github.com/monastery360/m360-api/internal/domain/model"
)

const (
	catalogCacheKey     = "catalog:monasteries"
	defaultCatalogLimit = 50
)

// MonasteryServiceOptions groups dependencies for MonasteryService.
type MonasteryServiceOptions struct {
	Repo core.MonasteryRepository
	// Cache is optional; when set, the unfiltered catalog list is served
	// read-through with CacheTTL.
	Cache    core.CacheRepository
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// MonasteryService orchestrates catalog reads with a read-through cache.
type MonasteryService struct {
	repo     core.MonasteryRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewMonasteryService constructs a new MonasteryService.
func NewMonasteryService(opts MonasteryServiceOptions) *MonasteryService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &MonasteryService{repo: opts.Repo, cache: opts.Cache, cacheTTL: ttl, logger: logger}
}

// List returns a page of the monastery catalog. The first page with
// default pagination is served from cache when available; cache failures
// degrade to a repository read.
func (s *MonasteryService) List(ctx context.Context, opts model.MonasteriesListOptions) ([]*model.Monastery, error) {
	opts = normalizeCatalogOptions(opts)
	// Only the default first page is cached; filtered or paged reads go to
	// the repository.
	cacheable := s.cache != nil && opts.Offset == 0 && opts.Limit == defaultCatalogLimit

	if cacheable {
		if cached, err := s.cache.Get(ctx, catalogCacheKey); err != nil {
			s.logger.Warn("catalog cache read failed", "error", err)
		} else if cached != nil {
			var out []*model.Monastery
			if unmarshalErr := json.Unmarshal(cached, &out); unmarshalErr == nil {
				return out, nil
			}
		}
	}

	out, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, marshalErr := json.Marshal(out); marshalErr == nil {
			if setErr := s.cache.Set(ctx, catalogCacheKey, data, s.cacheTTL); setErr != nil {
				s.logger.Warn("catalog cache write failed", "error", setErr)
			}
		}
	}
	return out, nil
}

// GetByID retrieves a monastery by ID.
func (s *MonasteryService) GetByID(ctx context.Context, id string) (*model.Monastery, error) {
	return s.repo.GetByID(ctx, id)
}

// Search matches monasteries by name or description. Blank queries fall
// back to a plain listing.
func (s *MonasteryService) Search(ctx context.Context, query string, opts model.MonasteriesListOptions) ([]*model.Monastery, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx, opts)
	}
	return s.repo.Search(ctx, query, normalizeCatalogOptions(opts))
}

// NearbyAttractions returns the attractions recorded for a monastery.
func (s *MonasteryService) NearbyAttractions(ctx context.Context, monasteryID string) ([]model.Attraction, error) {
	m, err := s.repo.GetByID(ctx, monasteryID)
	if err != nil {
		return nil, err
	}
	return m.Attractions, nil
}

// Create inserts a new monastery and invalidates the catalog cache.
func (s *MonasteryService) Create(ctx context.Context, req *model.CreateMonasteryRequest) (*model.Monastery, error) {
	m, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if _, delErr := s.cache.Delete(ctx, catalogCacheKey); delErr != nil {
			s.logger.Warn("catalog cache invalidation failed", "error", delErr)
		}
	}
	return m, nil
}

func normalizeCatalogOptions(opts model.MonasteriesListOptions) model.MonasteriesListOptions {
	if opts.Limit <= 0 {
		opts.Limit = defaultCatalogLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
