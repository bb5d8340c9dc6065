package services

import (
	"math"
	"strings"
	"time"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

// ScoringWeights blends the five sub-scores. Only relative magnitudes
// matter: the final score normalizes by the weight sum.
type ScoringWeights struct {
	Season      float64
	Budget      float64
	Days        float64
	Personality float64
	Crowd       float64
}

var DefaultWeights = ScoringWeights{
	Season:      30,
	Budget:      25,
	Days:        20,
	Personality: 15,
	Crowd:       10,
}

func (w ScoringWeights) sum() float64 {
	return w.Season + w.Budget + w.Days + w.Personality + w.Crowd
}

// splitSeasons parses a comma-separated month-code column.
func splitSeasons(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsSeason(seasons []string, month string) bool {
	for _, s := range seasons {
		if strings.EqualFold(s, month) {
			return true
		}
	}
	return false
}

// SeasonScore rates the travel month against the place's season data.
// A best-season match wins even when the month also appears in the
// avoid set. Missing or unparseable month maps default to 50.
func SeasonScore(place *db_models.Place, travelMonth string) int {
	if containsSeason(splitSeasons(place.BestSeasons), travelMonth) {
		return 100
	}
	if containsSeason(splitSeasons(place.AvoidSeasons), travelMonth) {
		return 0
	}

	if scores := utils.ParseMonthScores(place.SeasonScores); scores != nil {
		if s, ok := scores[strings.ToUpper(travelMonth)]; ok {
			return clampScore(s)
		}
	}

	return 50
}

// BudgetScore rates the daily budget against the place's cost tier.
func BudgetScore(place *db_models.Place, budget float64, days int) int {
	budgetPerDay := budget / float64(max(days, 1))
	tier := place.BudgetTier
	if tier == "" {
		tier = "MEDIUM"
	}

	if tier == "LOW" && budgetPerDay >= 3000 {
		return 100
	}
	if tier == "MEDIUM" && budgetPerDay >= 5000 && budgetPerDay <= 15000 {
		return 100
	}
	if tier == "HIGH" && budgetPerDay > 15000 {
		return 100
	}

	if tier == "LOW" && budgetPerDay >= 2000 {
		return 80
	}
	if tier == "MEDIUM" && budgetPerDay >= 3000 {
		return 80
	}
	if tier == "HIGH" && budgetPerDay > 10000 {
		return 80
	}

	return clampScore(int(math.Round(math.Max(20, math.Min(100, budgetPerDay/10000*100)))))
}

// DistanceScore rates distance from origin under the trip regime implied
// by budget-per-day and day count. Famous places keep scoring well on
// generous trips regardless of distance.
func DistanceScore(distanceKm float64, budget float64, days int, place *db_models.Place) int {
	budgetPerDay := budget / float64(max(days, 1))

	if budgetPerDay < 2000 || days <= 2 {
		switch {
		case distanceKm < 50:
			return 100
		case distanceKm < 100:
			return 70
		case distanceKm < 150:
			return 40
		default:
			return 10
		}
	}

	if budgetPerDay < 5000 && days <= 4 {
		switch {
		case distanceKm < 100:
			return 100
		case distanceKm < 200:
			return 80
		case distanceKm < 300:
			return 50
		}
		if place.IsFamous {
			return 30
		}
		return 10
	}

	if place.IsFamous {
		return 90
	}
	if distanceKm < 300 {
		return 80
	}
	return 50
}

// PersonalityScore averages the place's affinity for each selected
// preference tag. No selection means a neutral 60.
func PersonalityScore(place *db_models.Place, personalities []string) int {
	if len(personalities) == 0 {
		return 60
	}

	total := 0
	for _, personality := range personalities {
		score := 50
		switch strings.ToUpper(personality) {
		case "ADVENTURE":
			score = orDefault(place.AdventureScore, 50)
		case "SPIRITUAL":
			score = orDefault(place.SpiritualScore, 50)
		case "INSTAGRAM":
			score = orDefault(place.InstagramScore, 50)
		case "FOODIE":
			score = orDefault(place.FoodieScore, 50)
		case "NATURE":
			score = orDefault(place.NatureScore, 50)
		}
		total += score
	}

	return roundHalfAway(float64(total) / float64(len(personalities)))
}

// TripTypeScore selects the suitability field matching the trip type.
func TripTypeScore(place *db_models.Place, tripType string) int {
	switch strings.ToUpper(tripType) {
	case "FAMILY":
		return orDefault(place.FamilyScore, 60)
	case "FRIENDS":
		return orDefault(place.FriendsScore, 60)
	case "COUPLE":
		return orDefault(place.CoupleScore, 60)
	case "SOLO":
		return orDefault(place.SoloScore, 60)
	default:
		return 60
	}
}

// CrowdScore rates the expected crowd level for the travel date's
// weekday/weekend slot. Unparseable calendars default to 70.
func CrowdScore(place *db_models.Place, travelDate time.Time) int {
	cal, ok := utils.ParseCrowdCalendar(place.CrowdCalendar)
	if !ok {
		return 70
	}

	level := cal.Weekday
	if utils.IsWeekend(travelDate) {
		level = cal.Weekend
	}
	if level == "" {
		level = "medium"
	}

	switch strings.ToLower(level) {
	case "low":
		return 100
	case "medium":
		return 70
	case "high":
		return 40
	default:
		return 60
	}
}

// FinalScore blends the sub-scores into a 0..100 suitability score.
// Rounding is half-away-from-zero throughout the engine.
func FinalScore(
	place *db_models.Place,
	distanceKm float64,
	travelMonth string,
	travelDate time.Time,
	budget float64,
	days int,
	tripType string,
	personalities []string,
	weights ScoringWeights,
) int {
	totalWeight := weights.sum()
	if totalWeight <= 0 {
		return 0
	}

	seasonScore := SeasonScore(place, travelMonth)
	budgetScore := BudgetScore(place, budget, days)
	distanceScore := DistanceScore(distanceKm, budget, days, place)
	personalityScore := PersonalityScore(place, personalities)
	tripTypeScore := TripTypeScore(place, tripType)
	crowdScore := CrowdScore(place, travelDate)

	combinedPersonality := (float64(personalityScore) + float64(tripTypeScore)) / 2

	final := (weights.Season*float64(seasonScore) +
		weights.Budget*float64(budgetScore) +
		weights.Days*float64(distanceScore) +
		weights.Personality*combinedPersonality +
		weights.Crowd*float64(crowdScore)) / totalWeight

	return clampScore(roundHalfAway(final))
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func roundHalfAway(f float64) int {
	return int(math.Round(f))
}
