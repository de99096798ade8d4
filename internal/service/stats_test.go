package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/monastery360/m360-api/internal/domain/model"
	"github.com/monastery360/m360-api/internal/mocks"
	"github.com/monastery360/m360-api/internal/testutil"
)

func TestStatsService_AdminStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockBookings := mocks.NewMockBookingRepository(ctrl)
	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockMonasteries := mocks.NewMockMonasteryRepository(ctrl)

	now := testutil.TestTime() // 2024-01-01 12:00 UTC
	monthStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	catalog := []*model.Monastery{
		{
			ID: "m-1",
			VirtualTours: []model.VirtualTour{
				{Title: "Main Church Tour"},
				{Title: "Library Tour"},
			},
			Attractions: []model.Attraction{
				{Rating: 4.0},
				{Rating: 5.0},
			},
		},
		{
			ID:           "m-2",
			VirtualTours: []model.VirtualTour{{Title: "Crypt Tour"}, {Title: "Extra Tour"}},
		},
	}

	mockBookings.EXPECT().Totals(gomock.Any()).Return(120, 1800.0, nil)
	mockBookings.EXPECT().CountCreatedBetween(gomock.Any(), monthStart, now).Return(30, nil)
	mockBookings.EXPECT().CountCreatedBetween(gomock.Any(), prevStart, monthStart).Return(20, nil)
	mockEvents.EXPECT().CountUpcoming(gomock.Any(), now).Return(4, nil)
	mockMonasteries.EXPECT().List(gomock.Any(), model.MonasteriesListOptions{Limit: defaultCatalogLimit}).Return(catalog, nil)

	svc := NewStatsService(StatsServiceOptions{
		Bookings:    mockBookings,
		Events:      mockEvents,
		Monasteries: mockMonasteries,
		Time:        testutil.NewTestTimeProvider(now),
	})

	stats, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TotalVisitors)
	assert.InDelta(t, 1800.0, stats.TotalRevenue, 1e-9)
	assert.Equal(t, 4, stats.UpcomingEvents)
	// Only the first three tour titles make the popular list.
	assert.Equal(t, []string{"Main Church Tour", "Library Tour", "Crypt Tour"}, stats.PopularTours)
	assert.InDelta(t, 4.5, stats.AverageRating, 1e-9)
	assert.InDelta(t, 50.0, stats.MonthlyGrowth, 1e-9)
}

func TestStatsService_AdminStats_PropagatesRepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockBookings := mocks.NewMockBookingRepository(ctrl)
	mockEvents := mocks.NewMockEventRepository(ctrl)
	mockMonasteries := mocks.NewMockMonasteryRepository(ctrl)

	boom := errors.New("db down")
	mockBookings.EXPECT().Totals(gomock.Any()).Return(0, 0.0, boom)
	mockBookings.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	mockEvents.EXPECT().CountUpcoming(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	mockMonasteries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	svc := NewStatsService(StatsServiceOptions{
		Bookings:    mockBookings,
		Events:      mockEvents,
		Monasteries: mockMonasteries,
	})

	_, err := svc.AdminStats(ctx)
	require.ErrorIs(t, err, boom)
}

func TestMonthlyGrowth(t *testing.T) {
	cases := []struct {
		name                 string
		thisMonth, lastMonth int
		want                 float64
	}{
		{"both zero", 0, 0, 0},
		{"no history", 10, 0, 100},
		{"growth", 30, 20, 50},
		{"decline", 10, 20, -50},
	}
	for _, tc := range cases {
		if got := monthlyGrowth(tc.thisMonth, tc.lastMonth); got != tc.want {
			t.Errorf("%s: monthlyGrowth(%d, %d) = %v, want %v", tc.name, tc.thisMonth, tc.lastMonth, got, tc.want)
		}
	}
}
