package model

// AdminStats is the aggregated dashboard snapshot for administrators.
type AdminStats struct {
	TotalVisitors  int      `json:"total_visitors"`
	TotalRevenue   float64  `json:"total_revenue"`
	PopularTours   []string `json:"popular_tours"`
	UpcomingEvents int      `json:"upcoming_events"`
	AverageRating  float64  `json:"average_rating"`
	MonthlyGrowth  float64  `json:"monthly_growth"`
}
