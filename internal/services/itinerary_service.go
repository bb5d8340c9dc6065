package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const (
	maxPlacesPerDay = 6
	minPlacesPerDay = 3

	interPlaceMaxKm      = 100.0
	dayTravelBudgetMin   = 480.0 // 8 hours of travel per day
	lunchBreakAfterMin   = 240.0
	interPlaceCostPerKm  = 10.0
	stayPerPersonNight   = 1500.0
	foodPerPersonPerDay  = 800.0
	defaultStayCostPlace = 1500.0
	defaultFoodCostPlace = 600.0

	emptyDayNote      = "No places found matching criteria"
	flexibleDayNote   = "Flexible day - explore local area or rest"
	arrangerMaxPlaces = 20
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
	GetSavedItinerary(ctx context.Context, id string) (*response_models.GenerateItineraryResponse, error)
}

type ItineraryService struct {
	candidateService CandidateServiceInterface
	transportService TransportServiceInterface
	budgetService    BudgetServiceInterface
	localArranger    ArrangementStrategy
	aiArranger       ArrangementStrategy // nil when no arranger is configured
	itineraryRepo    repositories.ItineraryRepository
	weights          ScoringWeights
}

func NewItineraryService(
	candidateService CandidateServiceInterface,
	transportService TransportServiceInterface,
	budgetService BudgetServiceInterface,
	aiArranger ArrangementStrategy,
	itineraryRepo repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		candidateService: candidateService,
		transportService: transportService,
		budgetService:    budgetService,
		localArranger:    NewLocalArranger(),
		aiArranger:       aiArranger,
		itineraryRepo:    itineraryRepo,
		weights:          DefaultWeights,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	if strings.TrimSpace(req.Origin) == "" || req.Budget <= 0 || req.Days <= 0 || strings.TrimSpace(req.TripType) == "" {
		return nil, utils.ErrInvalidInput
	}
	if req.NumPeople <= 0 {
		req.NumPeople = 1
	}

	startDate := utils.ParseDateIST(req.StartDate)
	travelDate := startDate
	if travelDate.IsZero() {
		travelDate = utils.NowIST()
	}

	selection, err := s.candidateService.SelectCandidates(ctx, req, travelDate, s.weights)
	if err != nil {
		if !errors.Is(err, utils.ErrNoPlacesInState) || selection == nil {
			return nil, err
		}
		// degrade to an empty but structurally valid itinerary
	}

	var transport *response_models.TransportRecommendation
	transportCost := 0.0
	pickup := strings.ToLower(firstNonEmpty(req.PickupCity, req.Origin))
	dropoff := strings.ToLower(firstNonEmpty(req.DropoffCity, req.Origin))
	if pickup != "" && dropoff != "" && pickup != dropoff {
		if rec, terr := s.transportService.Recommend(req.PickupCity, req.DropoffCity, req.NumPeople); terr == nil {
			transport = rec
			transportCost = rec.TotalCost
		} else {
			log.Printf("transport estimate unavailable for %s -> %s: %v", pickup, dropoff, terr)
		}
	}

	// try-then-fallback: the AI arrangement either fully applies or the
	// deterministic local plan is used, never a mix
	strategy := s.localArranger
	if req.UseAIArranger && s.aiArranger != nil && len(selection.Candidates) > 0 {
		strategy = s.aiArranger
	}
	arranged, aerr := strategy.Arrange(ctx, selection, req, startDate, transportCost)
	if aerr != nil {
		log.Printf("AI arrangement discarded, using local plan: %v", aerr)
		arranged, _ = s.localArranger.Arrange(ctx, selection, req, startDate, transportCost)
	}
	itinerary := *arranged

	validation := s.budgetService.Validate(req.Budget, req.Days, req.NumPeople, transportCost)

	metadata := response_models.TripMetadata{
		OriginName:       selection.Origin.Name,
		OriginDistrict:   selection.Origin.District,
		OriginState:      selection.Origin.State,
		OriginResolution: selection.OriginResolution,
		Budget:           req.Budget,
		BudgetSufficient: validation.BudgetSufficient,
		Shortfall:        validation.Shortfall,
		EstimatedCost:    validation.EstimatedCost,
	}
	if selection.OriginResolution == OriginFallback {
		metadata.Warning = "Origin could not be resolved; itinerary starts from an arbitrary place"
	}
	if len(selection.Candidates) == 0 {
		metadata.Warning = firstNonEmpty(metadata.Warning, "No places available near the origin")
	}

	response := &response_models.GenerateItineraryResponse{
		Itinerary: itinerary,
		Metadata:  metadata,
		Transport: transport,
	}

	// best-effort save: failure is logged and the itinerary is still returned
	if id, serr := s.save(ctx, req, selection.Origin, response); serr != nil {
		log.Printf("failed to save itinerary: %v", serr)
	} else {
		response.Metadata.SavedItineraryID = id
	}

	return response, nil
}

func (s *ItineraryService) save(ctx context.Context, req request_models.GenerateItineraryRequest, origin db_models.Place, response *response_models.GenerateItineraryResponse) (string, error) {
	payload, err := json.Marshal(response)
	if err != nil {
		return "", err
	}

	record := &db_models.SavedItinerary{
		Title:     response.Itinerary.Title,
		Origin:    req.Origin,
		State:     origin.State,
		Days:      req.Days,
		Budget:    req.Budget,
		NumPeople: req.NumPeople,
		TripType:  req.TripType,
		Result:    string(payload),
	}

	id, err := s.itineraryRepo.Save(ctx, record)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *ItineraryService) GetSavedItinerary(ctx context.Context, id string) (*response_models.GenerateItineraryResponse, error) {
	record, err := s.itineraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var response response_models.GenerateItineraryResponse
	if err := json.Unmarshal([]byte(record.Result), &response); err != nil {
		return nil, utils.ErrItineraryNotFound
	}
	response.Metadata.SavedItineraryID = record.ID.String()
	return &response, nil
}

// AssembleItinerary packs score-ranked candidates into days with a
// greedy nearest-neighbor walk. Candidates are consumed from a shared
// pool; a day ends early when no unplaced candidate is within 100 km of
// the last pick or the 8-hour travel budget would be exceeded.
func AssembleItinerary(
	candidates []ScoredCandidate,
	days int,
	budget float64,
	numPeople int,
	startDate time.Time,
	transportCost float64,
) response_models.ItineraryResult {

	if numPeople <= 0 {
		numPeople = 1
	}

	sorted := make([]ScoredCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	if len(sorted) == 0 {
		return emptyItinerary(days, budget, startDate)
	}

	remaining := sorted
	schedules := make([]response_models.DaySchedule, 0, days)
	totalDistance := 0.0

	for day := 1; day <= days; day++ {
		dayDate := dateForDay(startDate, day)
		var dayPlaces []response_models.ScoredPlace
		var lastPlaced ScoredCandidate
		dayDistance := 0.0
		dayCost := 0.0
		dayTravelTime := 0.0

		target := (len(remaining) + (days - day)) / (days - day + 1) // ceil division
		if target < minPlacesPerDay {
			target = minPlacesPerDay
		}
		if target > maxPlacesPerDay {
			target = maxPlacesPerDay
		}

		for i := 0; i < target && len(remaining) > 0; i++ {
			if len(dayPlaces) == 0 {
				// first pick of the day is the best-scored candidate left
				place := remaining[0]
				remaining = remaining[1:]
				dayPlaces = append(dayPlaces, toScoredPlace(place))
				lastPlaced = place
				dayDistance += place.DistanceKm
				dayCost += place.TravelCost + place.Place.EntryFee
				dayTravelTime += place.TravelTimeMin
				continue
			}

			nearestIdx, interDistance := findNearest(lastPlaced, remaining)
			if nearestIdx == -1 {
				break
			}

			interTime := interDistance / assumedSpeedKmh * 60
			if dayTravelTime+interTime >= dayTravelBudgetMin {
				// travel budget reached; the day ends early by design
				break
			}

			place := remaining[nearestIdx]
			remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)
			dayPlaces = append(dayPlaces, toScoredPlace(place))
			lastPlaced = place
			dayDistance += interDistance
			dayCost += place.Place.EntryFee + interDistance*interPlaceCostPerKm
			dayTravelTime += interTime
		}

		if day < days && len(dayPlaces) > 0 {
			dayCost += averageStayCost(dayPlaces) / float64(numPeople)
		}
		if len(dayPlaces) > 0 {
			dayCost += averageFoodCost(dayPlaces) / float64(numPeople)
		}

		schedules = append(schedules, response_models.DaySchedule{
			DayNumber:     day,
			Date:          utils.FormatDateIST(dayDate),
			Places:        dayPlaces,
			TotalDistance: dayDistance,
			TotalCost:     dayCost,
			TravelTime:    dayTravelTime,
			Notes:         dayNotes(dayPlaces, dayTravelTime),
		})
		totalDistance += dayDistance
	}

	result := response_models.ItineraryResult{
		Title:          fmt.Sprintf("%d-Day India Trip", days),
		Days:           schedules,
		TotalDistance:  math.Round(totalDistance),
		AverageScore:   averageScore(sorted),
		PlanBAvailable: true,
	}
	result.CostBreakdown, result.TotalCost = tripCostBreakdown(schedules, days, numPeople, transportCost)
	return result
}

// tripCostBreakdown recomputes the trip total from its components so the
// breakdown and the total always agree, instead of trusting the running
// per-day accumulation.
func tripCostBreakdown(schedules []response_models.DaySchedule, days, numPeople int, transportCost float64) (response_models.CostBreakdown, float64) {
	travel := 0.0
	tickets := 0.0
	for _, d := range schedules {
		for _, p := range d.Places {
			travel += p.TravelCost
			tickets += p.EntryFee
		}
	}
	stay := float64(days-1) * stayPerPersonNight * float64(numPeople)
	food := float64(days) * foodPerPersonPerDay * float64(numPeople)

	breakdown := response_models.CostBreakdown{
		Travel:  math.Round(travel),
		Stay:    math.Round(stay),
		Food:    math.Round(food),
		Tickets: math.Round(tickets),
	}
	total := breakdown.Travel + breakdown.Stay + breakdown.Food + breakdown.Tickets + math.Round(transportCost)
	return breakdown, total
}

func emptyItinerary(days int, budget float64, startDate time.Time) response_models.ItineraryResult {
	schedules := make([]response_models.DaySchedule, 0, days)
	for day := 1; day <= days; day++ {
		schedules = append(schedules, response_models.DaySchedule{
			DayNumber: day,
			Date:      utils.FormatDateIST(dateForDay(startDate, day)),
			Places:    []response_models.ScoredPlace{},
			Notes:     emptyDayNote,
		})
	}
	return response_models.ItineraryResult{
		Title:          fmt.Sprintf("%d-Day Trip", days),
		Days:           schedules,
		TotalCost:      budget,
		CostBreakdown:  response_models.CostBreakdown{},
		TotalDistance:  0,
		AverageScore:   0,
		PlanBAvailable: false,
	}
}

// findNearest returns the index and distance of the closest remaining
// candidate within the inter-place cap, or -1 when none qualifies.
func findNearest(current ScoredCandidate, remaining []ScoredCandidate) (int, float64) {
	minDistance := math.Inf(1)
	minIndex := -1

	for i, c := range remaining {
		d := utils.HaversineKm(current.Place.Latitude, current.Place.Longitude,
			c.Place.Latitude, c.Place.Longitude)
		if d <= interPlaceMaxKm && d < minDistance {
			minDistance = d
			minIndex = i
		}
	}
	if minIndex == -1 {
		return -1, 0
	}
	return minIndex, minDistance
}

func dayNotes(places []response_models.ScoredPlace, travelTime float64) string {
	if len(places) == 0 {
		return flexibleDayNote
	}

	seen := make(map[string]bool)
	var categories []string
	for _, p := range places {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	notes := fmt.Sprintf("Visit %d attractions (%s)", len(places), strings.Join(categories, ", "))
	if travelTime > lunchBreakAfterMin {
		notes += " | Plan lunch break | Rest recommended"
	} else {
		notes += " | Breakfast & lunch included"
	}
	return notes
}

func averageStayCost(places []response_models.ScoredPlace) float64 {
	return averagePlaceCost(places, func(p response_models.ScoredPlace) float64 { return p.AvgStayCost }, defaultStayCostPlace)
}

func averageFoodCost(places []response_models.ScoredPlace) float64 {
	return averagePlaceCost(places, func(p response_models.ScoredPlace) float64 { return p.AvgFoodCost }, defaultFoodCostPlace)
}

func averagePlaceCost(places []response_models.ScoredPlace, cost func(response_models.ScoredPlace) float64, def float64) float64 {
	if len(places) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range places {
		c := cost(p)
		if c == 0 {
			c = def
		}
		sum += c
	}
	return sum / float64(len(places))
}

// averageScore is the mean over all ranked candidates, not only those
// that fit into a day.
func averageScore(candidates []ScoredCandidate) int {
	if len(candidates) == 0 {
		return 0
	}
	sum := 0
	for _, c := range candidates {
		sum += c.Score
	}
	return roundHalfAway(float64(sum) / float64(len(candidates)))
}

func toScoredPlace(c ScoredCandidate) response_models.ScoredPlace {
	return response_models.ScoredPlace{
		ID:             c.Place.ID.String(),
		Name:           c.Place.Name,
		Category:       c.Place.Category,
		District:       c.Place.District,
		State:          c.Place.State,
		Description:    c.Place.Description,
		Latitude:       c.Place.Latitude,
		Longitude:      c.Place.Longitude,
		EntryFee:       c.Place.EntryFee,
		AvgStayCost:    c.Place.AvgStayCost,
		AvgFoodCost:    c.Place.AvgFoodCost,
		IsHiddenGem:    c.Place.IsHiddenGem,
		IsFamous:       c.Place.IsFamous,
		MinHoursNeeded: c.Place.MinHoursNeeded,
		DistanceKm:     c.DistanceKm,
		TravelCost:     c.TravelCost,
		TravelTimeMin:  c.TravelTimeMin,
		Score:          c.Score,
	}
}

func dateForDay(startDate time.Time, day int) time.Time {
	if startDate.IsZero() {
		return time.Time{}
	}
	return startDate.AddDate(0, 0, day-1)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
