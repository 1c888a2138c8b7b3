package services

import (
	"strings"

	"intervue_backend/internal/services/dto"
)

type ListingService interface {
	// List returns the mock job listings, optionally filtered by a
	// case-insensitive substring over title and company.
	List(query string) []dto.JobListing
}

type listingServiceImpl struct {
	listings []dto.JobListing
}

func NewListingService() ListingService {
	return &listingServiceImpl{listings: mockListings}
}

func (s *listingServiceImpl) List(query string) []dto.JobListing {
	if query == "" {
		return s.listings
	}

	q := strings.ToLower(query)
	matched := make([]dto.JobListing, 0, len(s.listings))
	for _, listing := range s.listings {
		if strings.Contains(strings.ToLower(listing.Title), q) ||
			strings.Contains(strings.ToLower(listing.Company), q) {
			matched = append(matched, listing)
		}
	}
	return matched
}

// Static browse data, no backing table.
var mockListings = []dto.JobListing{
	{
		ID:          "l-001",
		Title:       "Senior Backend Engineer",
		Company:     "Nimbus Labs",
		Location:    "Remote (EU)",
		SalaryRange: "$120k – $150k",
		Tags:        []string{"Go", "PostgreSQL", "Kubernetes"},
		PostedDays:  2,
	},
	{
		ID:          "l-002",
		Title:       "Frontend Developer",
		Company:     "Brightpath",
		Location:    "Berlin, Germany",
		SalaryRange: "€60k – €75k",
		Tags:        []string{"React", "TypeScript"},
		PostedDays:  4,
	},
	{
		ID:          "l-003",
		Title:       "Full Stack Engineer",
		Company:     "Harbor Analytics",
		Location:    "New York, NY",
		SalaryRange: "$130k – $160k",
		Tags:        []string{"Node.js", "React", "AWS"},
		PostedDays:  1,
	},
	{
		ID:          "l-004",
		Title:       "DevOps Engineer",
		Company:     "Cloudrift",
		Location:    "Remote (US)",
		SalaryRange: "$125k – $155k",
		Tags:        []string{"Terraform", "AWS", "CI/CD"},
		PostedDays:  7,
	},
	{
		ID:          "l-005",
		Title:       "Data Engineer",
		Company:     "Quantborough",
		Location:    "London, UK",
		SalaryRange: "£70k – £90k",
		Tags:        []string{"Python", "Spark", "Airflow"},
		PostedDays:  3,
	},
	{
		ID:          "l-006",
		Title:       "Mobile Engineer (iOS)",
		Company:     "Fernweh Travel",
		Location:    "Remote (Global)",
		SalaryRange: "$100k – $130k",
		Tags:        []string{"Swift", "SwiftUI"},
		PostedDays:  5,
	},
	{
		ID:          "l-007",
		Title:       "Engineering Manager",
		Company:     "Nimbus Labs",
		Location:    "Amsterdam, Netherlands",
		SalaryRange: "€95k – €120k",
		Tags:        []string{"Leadership", "Go", "Agile"},
		PostedDays:  6,
	},
	{
		ID:          "l-008",
		Title:       "Machine Learning Engineer",
		Company:     "Veldt AI",
		Location:    "San Francisco, CA",
		SalaryRange: "$150k – $190k",
		Tags:        []string{"Python", "PyTorch", "MLOps"},
		PostedDays:  1,
	},
}
