package dto

type DashboardResponse struct {
	Total             int64            `json:"total"`
	ByStatus          map[string]int64 `json:"by_status"`
	UpcomingNext7Days int64            `json:"upcoming_next_7_days"`
	Ratings           RatingSummary    `json:"ratings"`
}
