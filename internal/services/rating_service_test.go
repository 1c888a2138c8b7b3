package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"intervue_backend/internal/models"
)

func allFives() models.InterviewRating {
	return models.InterviewRating{
		Technical:        5,
		Managerial:       5,
		Projects:         5,
		SelfIntroduction: 5,
		HRRound:          5,
		DressUp:          5,
		Communication:    5,
		BodyLanguage:     5,
		Punctuality:      5,
	}
}

func TestComputeOverall(t *testing.T) {
	r := allFives()
	assert.Equal(t, 5.0, ComputeOverall(&r))

	// (5 + 1 + 3*7) / 9 = 3.0
	r.Technical = 5
	r.Managerial = 1
	r.Projects = 3
	r.SelfIntroduction = 3
	r.HRRound = 3
	r.DressUp = 3
	r.Communication = 3
	r.BodyLanguage = 3
	r.Punctuality = 3
	assert.Equal(t, 3.0, ComputeOverall(&r))
}

func TestComputeOverallRoundsToTwoDecimals(t *testing.T) {
	r := allFives()
	r.Technical = 4
	// (4 + 5*8) / 9 = 44/9 = 4.888... -> 4.89
	assert.Equal(t, 4.89, ComputeOverall(&r))
}

func TestAggregateRatingsEmpty(t *testing.T) {
	summary := AggregateRatings(nil)

	assert.Equal(t, int64(0), summary.Count)
	assert.Equal(t, 0.0, summary.Overall)
	assert.Len(t, summary.Categories, len(models.RatingCategories))
	for _, key := range models.RatingCategories {
		assert.Equal(t, 0.0, summary.Categories[key], "category %q", key)
	}
}

func TestAggregateRatings(t *testing.T) {
	first := allFives()
	first.Overall = ComputeOverall(&first) // 5.0

	second := allFives()
	second.Technical = 1
	second.Communication = 3
	second.Overall = ComputeOverall(&second) // (1+3+5*7)/9 = 39/9 = 4.33

	summary := AggregateRatings([]models.InterviewRating{first, second})

	assert.Equal(t, int64(2), summary.Count)
	assert.Equal(t, 4.67, summary.Overall) // (5.0 + 4.33) / 2 = 4.665 -> 4.67
	assert.Equal(t, 3.0, summary.Categories["technical"])
	assert.Equal(t, 4.0, summary.Categories["communication"])
	assert.Equal(t, 5.0, summary.Categories["punctuality"])
}
