package dto

type JobListing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	SalaryRange string   `json:"salary_range"`
	Tags        []string `json:"tags"`
	PostedDays  int      `json:"posted_days_ago"`
}
