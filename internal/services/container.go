package services

// ServiceContainer groups all services for wiring in app and tests.
type ServiceContainer struct {
	AuthService      AuthService
	InterviewService InterviewService
	RatingService    RatingService
	ReminderService  ReminderService
	QuestionService  QuestionService
	AnalyticsService AnalyticsService
	ListingService   ListingService
}
