package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/db_models"
)

func candidateAt(name string, lat, lng float64, score int) ScoredCandidate {
	return ScoredCandidate{
		Place: db_models.Place{
			BaseModel: db_models.BaseModel{ID: uuid.New()},
			Name:      name,
			Category:  "FORT",
			State:     "Rajasthan",
			Latitude:  lat,
			Longitude: lng,
			EntryFee:  100,
		},
		DistanceKm:    20,
		TravelCost:    300,
		TravelTimeMin: 30,
		Score:         score,
	}
}

func TestAssembleItineraryProducesRequestedDays(t *testing.T) {
	candidates := []ScoredCandidate{
		candidateAt("Amber Fort", 26.98, 75.85, 90),
		candidateAt("City Palace", 26.92, 75.82, 80),
	}

	result := AssembleItinerary(candidates, 3, 30000, 2, time.Time{}, 0)

	// 3 days requested with only 2 candidates: still 3 schedules, at
	// most 2 of them non-empty
	require.Len(t, result.Days, 3)
	nonEmpty := 0
	for _, d := range result.Days {
		if len(d.Places) > 0 {
			nonEmpty++
		}
	}
	assert.LessOrEqual(t, nonEmpty, 2)
	assert.True(t, result.PlanBAvailable)
}

func TestAssembleItineraryDayBounds(t *testing.T) {
	var candidates []ScoredCandidate
	for i := 0; i < 18; i++ {
		// cluster everything within a few km so proximity never blocks
		candidates = append(candidates, candidateAt(
			uuid.NewString(), 26.9+float64(i)*0.01, 75.8, 90-i))
	}

	result := AssembleItinerary(candidates, 3, 60000, 2, time.Time{}, 0)

	require.Len(t, result.Days, 3)
	placed := 0
	for _, d := range result.Days {
		assert.LessOrEqual(t, len(d.Places), maxPlacesPerDay)
		placed += len(d.Places)
	}
	assert.Equal(t, 18, placed)
}

func TestAssembleItineraryFirstPickIsBestScore(t *testing.T) {
	candidates := []ScoredCandidate{
		candidateAt("Second", 26.9, 75.8, 70),
		candidateAt("Best", 27.0, 75.9, 95),
	}

	result := AssembleItinerary(candidates, 1, 10000, 1, time.Time{}, 0)

	require.NotEmpty(t, result.Days[0].Places)
	assert.Equal(t, "Best", result.Days[0].Places[0].Name)
}

func TestAssembleItinerarySkipsFarNeighbors(t *testing.T) {
	// second-best candidate is ~550 km away; it cannot follow the first
	// pick within the same day
	candidates := []ScoredCandidate{
		candidateAt("Jaipur Fort", 26.9, 75.8, 95),
		candidateAt("Jaisalmer Fort", 26.9, 70.9, 90),
		candidateAt("Nearby Lake", 26.95, 75.85, 50),
	}

	result := AssembleItinerary(candidates, 1, 10000, 1, time.Time{}, 0)

	day := result.Days[0]
	names := make([]string, 0, len(day.Places))
	for _, p := range day.Places {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Jaipur Fort")
	assert.Contains(t, names, "Nearby Lake")
	assert.NotContains(t, names, "Jaisalmer Fort")
}

func TestAssembleItineraryTotalMatchesBreakdown(t *testing.T) {
	candidates := []ScoredCandidate{
		candidateAt("A", 26.90, 75.80, 90),
		candidateAt("B", 26.95, 75.82, 85),
		candidateAt("C", 27.00, 75.84, 80),
		candidateAt("D", 27.05, 75.86, 75),
	}

	result := AssembleItinerary(candidates, 2, 40000, 3, time.Time{}, 1200)

	b := result.CostBreakdown
	assert.Equal(t, b.Travel+b.Stay+b.Food+b.Tickets+1200, result.TotalCost)
	assert.Equal(t, float64(1)*stayPerPersonNight*3, b.Stay)
	assert.Equal(t, float64(2)*foodPerPersonPerDay*3, b.Food)
}

func TestAssembleItineraryZeroCandidates(t *testing.T) {
	result := AssembleItinerary(nil, 2, 15000, 2, time.Time{}, 0)

	require.Len(t, result.Days, 2)
	for _, d := range result.Days {
		assert.Empty(t, d.Places)
		assert.Equal(t, "No places found matching criteria", d.Notes)
	}
	assert.Equal(t, 15000.0, result.TotalCost)
	assert.False(t, result.PlanBAvailable)
	assert.Equal(t, 0, result.AverageScore)
}

func TestAssembleItineraryAverageScoreCoversAllCandidates(t *testing.T) {
	// the far candidate never fits a day but still counts in the average
	candidates := []ScoredCandidate{
		candidateAt("Near", 26.9, 75.8, 100),
		candidateAt("Far", 26.9, 70.9, 40),
	}

	result := AssembleItinerary(candidates, 1, 10000, 1, time.Time{}, 0)
	assert.Equal(t, 70, result.AverageScore)
}

func TestAssembleItineraryDates(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	candidates := []ScoredCandidate{candidateAt("A", 26.9, 75.8, 90)}

	result := AssembleItinerary(candidates, 3, 10000, 1, start, 0)

	assert.Equal(t, "2026-03-10", result.Days[0].Date)
	assert.Equal(t, "2026-03-12", result.Days[2].Date)
}

func TestDayNotes(t *testing.T) {
	places := []ScoredCandidate{
		candidateAt("A", 26.9, 75.8, 90),
		candidateAt("B", 26.91, 75.81, 80),
	}
	result := AssembleItinerary(places, 1, 10000, 1, time.Time{}, 0)

	notes := result.Days[0].Notes
	assert.Contains(t, notes, "Visit 2 attractions")
	assert.Contains(t, notes, "FORT")
	assert.Contains(t, notes, "Breakfast & lunch included")
}
