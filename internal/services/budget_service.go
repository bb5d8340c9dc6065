package services

import (
	"fmt"
	"sort"

	"yatra/internal/models/response_models"
)

// Rough per-person-per-day planning estimates used by the budget
// pre-check; the itinerary itself recomputes real costs from places.
const (
	estTravelPerPersonDay  = 500.0
	estTicketsPerPersonDay = 300.0
)

type BudgetServiceInterface interface {
	Validate(budget float64, days, numPeople int, transportCost float64) response_models.BudgetValidation
}

type BudgetService struct{}

func NewBudgetService() BudgetServiceInterface {
	return &BudgetService{}
}

func estimateTotal(days, numPeople int, transportCost float64) (response_models.BudgetEstimateBreakdown, float64) {
	d := float64(days)
	p := float64(numPeople)

	breakdown := response_models.BudgetEstimateBreakdown{
		TravelCost:    d * estTravelPerPersonDay * p,
		StayCost:      (d - 1) * stayPerPersonNight * p,
		FoodCost:      d * foodPerPersonPerDay * p,
		TicketsCost:   d * estTicketsPerPersonDay * p,
		TransportCost: transportCost,
	}
	total := breakdown.TravelCost + breakdown.StayCost + breakdown.FoodCost +
		breakdown.TicketsCost + breakdown.TransportCost
	return breakdown, total
}

func (s *BudgetService) Validate(budget float64, days, numPeople int, transportCost float64) response_models.BudgetValidation {
	if days < 1 {
		days = 1
	}
	if numPeople < 1 {
		numPeople = 1
	}

	breakdown, total := estimateTotal(days, numPeople, transportCost)

	validation := response_models.BudgetValidation{
		BudgetSufficient: budget >= total,
		EstimatedCost:    total,
		Budget:           budget,
		Shortfall:        0,
		Suggestions:      []response_models.BudgetSuggestion{},
		Breakdown:        breakdown,
	}

	if budget >= total {
		return validation
	}
	validation.Shortfall = total - budget

	daysReduced := days - 1
	peopleReduced := numPeople - 1

	if daysReduced >= 1 {
		_, cost := estimateTotal(daysReduced, numPeople, transportCost)
		validation.Suggestions = append(validation.Suggestions, response_models.BudgetSuggestion{
			Action:        "Reduce Days",
			Description:   fmt.Sprintf("Try %d day trip instead of %d", daysReduced, days),
			EstimatedCost: cost,
			Savings:       total - cost,
		})
	}

	if peopleReduced >= 1 {
		scaled := transportCost * float64(peopleReduced) / float64(numPeople)
		_, cost := estimateTotal(days, peopleReduced, scaled)
		validation.Suggestions = append(validation.Suggestions, response_models.BudgetSuggestion{
			Action:        "Reduce Travelers",
			Description:   fmt.Sprintf("Travel with %d instead of %d people", peopleReduced, numPeople),
			EstimatedCost: cost,
			Savings:       total - cost,
		})
	}

	if daysReduced >= 1 && peopleReduced >= 1 {
		scaled := transportCost * float64(peopleReduced) / float64(numPeople)
		_, cost := estimateTotal(daysReduced, peopleReduced, scaled)
		validation.Suggestions = append(validation.Suggestions, response_models.BudgetSuggestion{
			Action:        "Reduce Days & Travelers",
			Description:   fmt.Sprintf("Try %d days with %d people", daysReduced, peopleReduced),
			EstimatedCost: cost,
			Savings:       total - cost,
		})
	}

	if transportCost > 0 {
		_, cost := estimateTotal(days, numPeople, 0)
		validation.Suggestions = append(validation.Suggestions, response_models.BudgetSuggestion{
			Action:        "Local Trip Only",
			Description:   "Skip inter-city transport and explore local areas",
			EstimatedCost: cost,
			Savings:       total - cost,
		})
	}

	sort.SliceStable(validation.Suggestions, func(i, j int) bool {
		return validation.Suggestions[i].Savings > validation.Suggestions[j].Savings
	})

	return validation
}
