// Package devseed loads a small demo dataset for local development. It is
// idempotent: a non-empty catalog leaves the database untouched.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/monastery360/m360-api/internal/data"
	"github.com/monastery360/m360-api/internal/domain/model"
)

// Services bundles the repositories needed for development seeding.
type Services struct {
	DB          *sql.DB
	monasteries *data.MonasteryRepo
	manuscripts *data.ManuscriptRepo
	events      *data.EventRepo
}

// NewServices constructs the repositories used for seeding against the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:          db,
		monasteries: data.NewMonasteryRepo(db),
		manuscripts: data.NewManuscriptRepo(db),
		events:      data.NewEventRepo(db),
	}
}

// Run executes the development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	existing, err := svcs.monasteries.List(ctx, model.MonasteriesListOptions{Limit: 1})
	if err != nil {
		return fmt.Errorf("check existing catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "catalog already seeded, skipping")
		return nil
	}

	monastery, err := svcs.monasteries.Create(ctx, sacredWisdomMonastery())
	if err != nil {
		return fmt.Errorf("seed monastery: %w", err)
	}
	logger.InfoContext(ctx, "seeded monastery", "id", monastery.ID, "name", monastery.Name)

	if _, err := svcs.manuscripts.Create(ctx, chronicleManuscript(monastery.ID)); err != nil {
		return fmt.Errorf("seed manuscript: %w", err)
	}

	for _, req := range seedEvents(monastery.ID) {
		event, createErr := svcs.events.Create(ctx, req)
		if createErr != nil {
			return fmt.Errorf("seed event %q: %w", req.Title, createErr)
		}
		// The workshop fixture starts partially booked.
		if event.Title == "Manuscript Illumination Workshop" {
			for i := 0; i < 8; i++ {
				if _, regErr := svcs.events.Register(ctx, event.ID); regErr != nil {
					return fmt.Errorf("seed workshop registrations: %w", regErr)
				}
			}
		}
		logger.InfoContext(ctx, "seeded event", "id", event.ID, "title", event.Title)
	}

	return nil
}

func sacredWisdomMonastery() *model.CreateMonasteryRequest {
	return &model.CreateMonasteryRequest{
		Name: "Monastery of Sacred Wisdom",
		Description: "A 12th-century monastery renowned for its magnificent frescoes and " +
			"extensive manuscript collection. This sacred place has been a center of " +
			"learning and spiritual contemplation for over 800 years.",
		Location: model.Location{
			Latitude:  42.6977,
			Longitude: 23.3219,
			Address:   "Sacred Mountain Path 1",
			City:      "Rila",
			Region:    "Sofia Province",
			Country:   "Bulgaria",
		},
		Images: []string{
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1580655653885-65763b2597d0?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1549298916-f52d724204b4?w=800&h=600&fit=crop",
		},
		VirtualTours: []model.VirtualTour{
			{
				ID:           "vt1",
				Title:        "Sacred Architecture Tour",
				Description:  "Explore the stunning Byzantine architecture and intricate stone carvings",
				DurationMins: 25,
				ThumbnailURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
				TourURL:      "/virtual-tours/sacred-architecture",
				Language:     "en",
				Highlights:   []string{"Main Chapel", "Bell Tower", "Cloister Walkways", "Ancient Foundations"},
			},
		},
		PanoramicViews: []model.PanoramicView{
			{
				ID:          "pv1",
				Title:       "Main Chapel Interior",
				Description: "Experience the breathtaking frescoes and sacred atmosphere",
				ImageURL:    "https://images.unsplash.com/photo-1580655653885-65763b2597d0?w=1200&h=600&fit=crop",
				Hotspots: []model.Hotspot{
					{
						ID:          "hs1",
						X:           30,
						Y:           20,
						Title:       "Altar Iconostasis",
						Description: "Hand-carved wooden screen decorated with gold leaf icons",
					},
				},
				Location: "Main Chapel",
			},
		},
		AudioGuides: []model.AudioGuide{
			{
				ID:           "ag1",
				Title:        "Welcome to Sacred Wisdom",
				Description:  "Introduction to the monastery history and significance",
				AudioURL:     "/audio/welcome-guide.mp3",
				DurationSecs: 180,
				Language:     "en",
				Transcript:   "Welcome to the Monastery of Sacred Wisdom...",
			},
		},
		Attractions: []model.Attraction{
			{
				ID:          "na1",
				Name:        "Sacred Mountain Trail",
				Description: "Scenic hiking trail with panoramic views",
				Location: model.Location{
					Latitude:  42.7,
					Longitude: 23.32,
					Address:   "Mountain Trail Head",
					City:      "Rila",
					Region:    "Sofia Province",
					Country:   "Bulgaria",
				},
				DistanceKm: 2.5,
				Type:       model.AttractionNature,
				Rating:     4.7,
				ImageURL:   "https://images.unsplash.com/photo-1464822759844-d150baec65b5?w=400&h=300&fit=crop",
			},
		},
		VisitingHours: model.VisitingHours{
			Monday:    model.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "17:00"},
			Tuesday:   model.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "17:00"},
			Wednesday: model.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "17:00"},
			Thursday:  model.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "17:00"},
			Friday:    model.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "17:00"},
			Saturday:  model.DaySchedule{Open: true, OpenTime: "09:00", CloseTime: "18:00"},
			Sunday: model.DaySchedule{
				Open: true, OpenTime: "10:00", CloseTime: "16:00",
				SpecialNotes: "Limited access during morning service",
			},
		},
		TicketPricing: model.TicketPricing{
			Adult:    15,
			Student:  10,
			Senior:   12,
			Child:    8,
			Family:   40,
			Currency: "EUR",
		},
	}
}

func chronicleManuscript(monasteryID string) *model.CreateManuscriptRequest {
	return &model.CreateManuscriptRequest{
		MonasteryID: monasteryID,
		Title:       "The Chronicle of Sacred Wisdom",
		Description: "13th-century illuminated manuscript detailing the monastery foundation",
		Period:      "1204-1230",
		ImageURLs: []string{
			"https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=600&h=800&fit=crop",
		},
		Tags:           []string{"illuminated", "chronicle", "foundation", "medieval"},
		DigitizedPages: []model.DigitizedPage{},
	}
}

func seedEvents(monasteryID string) []*model.CreateEventRequest {
	workshopCap := 12
	return []*model.CreateEventRequest{
		{
			MonasteryID: monasteryID,
			Title:       "Autumn Harvest Festival",
			Description: "Traditional celebration with local music, blessed harvest, and " +
				"community gathering. Experience centuries-old traditions in an authentic " +
				"monastery setting.",
			StartDate:       time.Date(2024, time.September, 21, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2024, time.September, 23, 0, 0, 0, 0, time.UTC),
			Location:        "Monastery Courtyard",
			Type:            model.EventFestival,
			TicketsRequired: false,
			ImageURL:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
		},
		{
			MonasteryID: monasteryID,
			Title:       "Manuscript Illumination Workshop",
			Description: "Learn the ancient art of manuscript illumination from master " +
				"scribes. Create your own illuminated letter using traditional techniques.",
			StartDate:       time.Date(2024, time.October, 5, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2024, time.October, 5, 0, 0, 0, 0, time.UTC),
			Location:        "Scriptorium",
			Type:            model.EventWorkshop,
			TicketsRequired: true,
			MaxParticipants: &workshopCap,
			ImageURL:        "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400&h=300&fit=crop",
		},
	}
}
