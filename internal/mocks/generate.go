// Package mocks provides mock implementations for testing the m360 services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockMonasteryRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(monastery, nil)
package mocks

// Generate mock for MonasteryRepository interface from internal/core package.
// This creates MockMonasteryRepository with methods for all MonasteryRepository interface methods:
// Create, GetByID, List, Search
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=monastery_repository_mock.go github.com/monastery360/m360-api/internal/core MonasteryRepository

// Generate mock for ManuscriptRepository interface from internal/core package.
// This creates MockManuscriptRepository with methods for all ManuscriptRepository interface methods:
// Create, GetByID, ListByMonastery
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=manuscript_repository_mock.go github.com/monastery360/m360-api/internal/core ManuscriptRepository

// Generate mock for EventRepository interface from internal/core package.
// This creates MockEventRepository with methods for all EventRepository interface methods:
// Create, GetByID, List, Register, CountUpcoming
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=event_repository_mock.go github.com/monastery360/m360-api/internal/core EventRepository

// Generate mock for BookingRepository interface from internal/core package.
// This creates MockBookingRepository with methods for all BookingRepository interface methods:
// Create, GetByID, List, UpdateStatus, Totals, CountCreatedBetween
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=booking_repository_mock.go github.com/monastery360/m360-api/internal/core BookingRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/monastery360/m360-api/internal/core CacheRepository
