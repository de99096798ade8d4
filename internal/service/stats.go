package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/monastery360/m360-api/internal/core"
	"github.com/monastery360/m360-api/internal/data"
	"github.com/monastery360/m360-api/internal/domain/model"
)

const popularToursLimit = 3

// StatsServiceOptions groups dependencies for StatsService.
type StatsServiceOptions struct {
	Bookings    core.BookingRepository
	Events      core.EventRepository
	Monasteries core.MonasteryRepository
	Time        data.TimeProvider
}

// StatsService aggregates the admin dashboard snapshot. The independent
// reads fan out concurrently.
type StatsService struct {
	bookings    core.BookingRepository
	events      core.EventRepository
	monasteries core.MonasteryRepository
	time        data.TimeProvider
}

// NewStatsService constructs a new StatsService.
func NewStatsService(opts StatsServiceOptions) *StatsService {
	tp := opts.Time
	if tp == nil {
		tp = &data.RealTimeProvider{}
	}
	return &StatsService{
		bookings:    opts.Bookings,
		events:      opts.Events,
		monasteries: opts.Monasteries,
		time:        tp,
	}
}

// AdminStats computes the dashboard snapshot: booking totals, upcoming
// event count, popular tours and average attraction rating from the
// catalog, and month-over-month booking growth.
func (s *StatsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	now := s.time.Now().UTC()

	var (
		visitors  int
		revenue   float64
		upcoming  int
		catalog   []*model.Monastery
		thisMonth int
		lastMonth int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitors, revenue, err = s.bookings.Totals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		upcoming, err = s.events.CountUpcoming(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.monasteries.List(gctx, model.MonasteriesListOptions{Limit: defaultCatalogLimit})
		return err
	})
	g.Go(func() error {
		monthStart := startOfMonth(now)
		prevStart := startOfMonth(monthStart.AddDate(0, 0, -1))
		var err error
		if thisMonth, err = s.bookings.CountCreatedBetween(gctx, monthStart, now); err != nil {
			return err
		}
		lastMonth, err = s.bookings.CountCreatedBetween(gctx, prevStart, monthStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.AdminStats{
		TotalVisitors:  visitors,
		TotalRevenue:   revenue,
		PopularTours:   popularTours(catalog),
		UpcomingEvents: upcoming,
		AverageRating:  averageAttractionRating(catalog),
		MonthlyGrowth:  monthlyGrowth(thisMonth, lastMonth),
	}, nil
}

// popularTours takes the leading virtual tour titles across the catalog.
func popularTours(catalog []*model.Monastery) []string {
	titles := make([]string, 0, popularToursLimit)
	for _, m := range catalog {
		for _, t := range m.VirtualTours {
			titles = append(titles, t.Title)
			if len(titles) == popularToursLimit {
				return titles
			}
		}
	}
	return titles
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func averageAttractionRating(catalog []*model.Monastery) float64 {
	var sum float64
	var n int
	for _, m := range catalog {
		for _, a := range m.Attractions {
			sum += a.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func monthlyGrowth(thisMonth, lastMonth int) float64 {
	if lastMonth == 0 {
		if thisMonth == 0 {
			return 0
		}
		return 100
	}
	return (float64(thisMonth) - float64(lastMonth)) / float64(lastMonth) * 100
}
