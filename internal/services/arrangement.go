package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// ArrangementStrategy turns a candidate selection into a full itinerary.
// Two implementations exist: the deterministic local greedy packer and
// the externally suggested arrangement. The AI path is all-or-nothing —
// any inconsistency discards it entirely.
type ArrangementStrategy interface {
	Arrange(ctx context.Context, selection *CandidateSelection, req request_models.GenerateItineraryRequest, startDate time.Time, transportCost float64) (*response_models.ItineraryResult, error)
}

// ──────────────────────────────────────────────────────────────
// Local greedy strategy: always available, never fails.
// ──────────────────────────────────────────────────────────────

type localArranger struct{}

func NewLocalArranger() ArrangementStrategy {
	return localArranger{}
}

func (localArranger) Arrange(_ context.Context, selection *CandidateSelection, req request_models.GenerateItineraryRequest, startDate time.Time, transportCost float64) (*response_models.ItineraryResult, error) {
	numPeople := req.NumPeople
	if numPeople <= 0 {
		numPeople = 1
	}
	result := AssembleItinerary(selection.Candidates, req.Days, req.Budget, numPeople, startDate, transportCost)
	return &result, nil
}

// ──────────────────────────────────────────────────────────────
// AI-suggested strategy.
// ──────────────────────────────────────────────────────────────

// aiDayPlan is the strict JSON shape the arrangement model must return.
type aiDayPlan struct {
	Day       int      `json:"day"`
	Morning   []string `json:"morning"`
	Afternoon []string `json:"afternoon"`
	Evening   []string `json:"evening"`
	Notes     string   `json:"notes,omitempty"`
}

type aiArrangement struct {
	Days        []aiDayPlan `json:"days"`
	Explanation string      `json:"explanation,omitempty"`
}

type aiArranger struct {
	client  utils.ArrangerClientInterface
	timeout time.Duration
}

func NewAIArranger(client utils.ArrangerClientInterface, timeout time.Duration) ArrangementStrategy {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &aiArranger{client: client, timeout: timeout}
}

func (a *aiArranger) Arrange(ctx context.Context, selection *CandidateSelection, req request_models.GenerateItineraryRequest, startDate time.Time, transportCost float64) (*response_models.ItineraryResult, error) {
	candidates := selection.Candidates
	if len(candidates) == 0 {
		return nil, utils.ErrArrangerBadResponse
	}
	if len(candidates) > arrangerMaxPlaces {
		candidates = candidates[:arrangerMaxPlaces]
	}

	places := make([]request_models.ArrangerPlace, 0, len(candidates))
	for _, c := range candidates {
		places = append(places, request_models.ArrangerPlace{
			Name:       c.Place.Name,
			District:   c.Place.District,
			DistanceKm: c.DistanceKm,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	raw, err := a.client.ArrangeItinerary(callCtx, places, req.TripType, req.Days, req.StartDate, req.Personalities)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArrangerUnavailable, err)
	}

	var plan aiArrangement
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArrangerBadResponse, err)
	}
	if len(plan.Days) == 0 {
		return nil, fmt.Errorf("%w: no days in plan", utils.ErrArrangerBadResponse)
	}

	numPeople := req.NumPeople
	if numPeople <= 0 {
		numPeople = 1
	}
	return mergeArrangement(plan, candidates, req.Days, numPeople, startDate, transportCost)
}

// mergeArrangement reconciles the model's day grouping into the same
// output shape as the local assembler. Any name that fails to resolve
// rejects the whole arrangement.
func mergeArrangement(
	plan aiArrangement,
	candidates []ScoredCandidate,
	days, numPeople int,
	startDate time.Time,
	transportCost float64,
) (*response_models.ItineraryResult, error) {

	if len(plan.Days) > days {
		return nil, fmt.Errorf("%w: %d days planned for a %d-day trip", utils.ErrArrangerBadResponse, len(plan.Days), days)
	}

	byName := make(map[string]ScoredCandidate, len(candidates))
	for _, c := range candidates {
		byName[strings.ToLower(strings.TrimSpace(c.Place.Name))] = c
	}

	schedules := make([]response_models.DaySchedule, 0, days)
	totalDistance := 0.0
	used := make(map[string]bool)
	seenDays := make(map[int]bool, len(plan.Days))

	for i, dayPlan := range plan.Days {
		ordered := make([]string, 0, len(dayPlan.Morning)+len(dayPlan.Afternoon)+len(dayPlan.Evening))
		ordered = append(ordered, dayPlan.Morning...)
		ordered = append(ordered, dayPlan.Afternoon...)
		ordered = append(ordered, dayPlan.Evening...)

		dayNumber := dayPlan.Day
		if dayNumber <= 0 {
			dayNumber = i + 1
		}
		if dayNumber > days {
			return nil, fmt.Errorf("%w: day %d outside the %d-day trip", utils.ErrArrangerBadResponse, dayNumber, days)
		}
		if seenDays[dayNumber] {
			return nil, fmt.Errorf("%w: duplicate day %d", utils.ErrArrangerBadResponse, dayNumber)
		}
		seenDays[dayNumber] = true

		var dayPlaces []response_models.ScoredPlace
		var last ScoredCandidate
		dayDistance := 0.0
		dayCost := 0.0
		dayTravelTime := 0.0

		for _, name := range ordered {
			key := strings.ToLower(strings.TrimSpace(name))
			c, ok := byName[key]
			if !ok {
				return nil, fmt.Errorf("%w: unknown place %q", utils.ErrArrangerBadResponse, name)
			}
			if used[key] {
				continue
			}
			used[key] = true

			if len(dayPlaces) == 0 {
				dayDistance += c.DistanceKm
				dayCost += c.TravelCost + c.Place.EntryFee
				dayTravelTime += c.TravelTimeMin
			} else {
				interDistance := utils.HaversineKm(last.Place.Latitude, last.Place.Longitude,
					c.Place.Latitude, c.Place.Longitude)
				dayDistance += interDistance
				dayCost += c.Place.EntryFee + interDistance*interPlaceCostPerKm
				dayTravelTime += interDistance / assumedSpeedKmh * 60
			}
			dayPlaces = append(dayPlaces, toScoredPlace(c))
			last = c
		}

		if dayNumber < days && len(dayPlaces) > 0 {
			dayCost += averageStayCost(dayPlaces) / float64(numPeople)
		}
		if len(dayPlaces) > 0 {
			dayCost += averageFoodCost(dayPlaces) / float64(numPeople)
		}

		notes := dayNotes(dayPlaces, dayTravelTime)
		if dayPlan.Notes != "" {
			notes = dayPlan.Notes
		}

		schedules = append(schedules, response_models.DaySchedule{
			DayNumber:     dayNumber,
			Date:          utils.FormatDateIST(dateForDay(startDate, dayNumber)),
			Places:        dayPlaces,
			TotalDistance: dayDistance,
			TotalCost:     dayCost,
			TravelTime:    dayTravelTime,
			Notes:         notes,
		})
		totalDistance += dayDistance
	}

	// pad the days the plan skipped so the shape matches the assembler
	for day := 1; day <= days; day++ {
		if seenDays[day] {
			continue
		}
		schedules = append(schedules, response_models.DaySchedule{
			DayNumber: day,
			Date:      utils.FormatDateIST(dateForDay(startDate, day)),
			Places:    []response_models.ScoredPlace{},
			Notes:     flexibleDayNote,
		})
	}
	sort.Slice(schedules, func(i, j int) bool { return schedules[i].DayNumber < schedules[j].DayNumber })

	result := &response_models.ItineraryResult{
		Title:          fmt.Sprintf("%d-Day India Trip", days),
		Days:           schedules,
		TotalDistance:  math.Round(totalDistance),
		AverageScore:   averageScore(candidates),
		PlanBAvailable: true,
		ArrangedByAI:   true,
	}
	result.CostBreakdown, result.TotalCost = tripCostBreakdown(schedules, days, numPeople, transportCost)
	return result, nil
}
