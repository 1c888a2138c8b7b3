package handlers

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	InterviewHandler *InterviewHandler
	RatingHandler    *RatingHandler
	QuestionHandler  *QuestionHandler
	AnalyticsHandler *AnalyticsHandler
	ListingHandler   *ListingHandler
	InternalHandler  *InternalHandler
}
