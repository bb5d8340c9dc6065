package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

const (
	minRadiusKm      = 10
	maxRadiusKm      = 300
	defaultRadiusKm  = 100
	expandedRadiusKm = 150
	nearestFallbackN = 20

	defaultCostPerKm   = 15.0 // rupees, when no curated route exists
	assumedSpeedKmh    = 40.0
	popularityBoostMul = 5
)

// Origin resolution outcomes, reported in trip metadata.
const (
	OriginExact      = "EXACT"
	OriginSubstring  = "SUBSTRING"
	OriginStateAlias = "STATE_ALIAS"
	OriginFallback   = "FALLBACK_FIRST_PLACE"
)

// ScoredCandidate is a place enriched with distance, cost, time and
// score relative to the request origin.
type ScoredCandidate struct {
	Place         db_models.Place
	DistanceKm    float64
	TravelCost    float64
	TravelTimeMin float64
	Score         int
}

// CandidateSelection is the selector output handed to the assembler.
type CandidateSelection struct {
	Origin           db_models.Place
	OriginResolution string
	Candidates       []ScoredCandidate
}

type CandidateServiceInterface interface {
	SelectCandidates(ctx context.Context, req request_models.GenerateItineraryRequest, travelDate time.Time, weights ScoringWeights) (*CandidateSelection, error)
}

type CandidateService struct {
	placeRepo repositories.PlaceRepository
	routeRepo repositories.RouteRepository
	gazetteer map[string]string // city/region alias -> state name
}

// NewCandidateService builds the selector. A nil gazetteer gets the
// packaged default; tests pass fixtures.
func NewCandidateService(
	placeRepo repositories.PlaceRepository,
	routeRepo repositories.RouteRepository,
	gazetteer map[string]string,
) CandidateServiceInterface {
	if gazetteer == nil {
		gazetteer = DefaultCityGazetteer
	}
	return &CandidateService{
		placeRepo: placeRepo,
		routeRepo: routeRepo,
		gazetteer: gazetteer,
	}
}

func (s *CandidateService) SelectCandidates(
	ctx context.Context,
	req request_models.GenerateItineraryRequest,
	travelDate time.Time,
	weights ScoringWeights,
) (*CandidateSelection, error) {

	pool, err := s.placeRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(pool) == 0 {
		return nil, utils.ErrNoPlaceData
	}

	origin, resolution := s.resolveOrigin(req.Origin, pool)

	statePool := make([]db_models.Place, 0, len(pool))
	for _, p := range pool {
		if p.ID == origin.ID {
			continue
		}
		if !strings.EqualFold(p.State, origin.State) {
			continue
		}
		if req.HiddenGemsOnly && !p.IsHiddenGem {
			continue
		}
		statePool = append(statePool, p)
	}
	if len(statePool) == 0 {
		// origin metadata still flows back so the caller can report a
		// structurally valid empty itinerary instead of a bare error
		return &CandidateSelection{Origin: origin, OriginResolution: resolution}, utils.ErrNoPlacesInState
	}

	radius := req.RadiusKm
	if radius == 0 {
		radius = defaultRadiusKm
	}
	if radius < minRadiusKm {
		radius = minRadiusKm
	}
	if radius > maxRadiusKm {
		radius = maxRadiusKm
	}

	type withDistance struct {
		place    db_models.Place
		distance float64
	}
	measured := make([]withDistance, 0, len(statePool))
	for _, p := range statePool {
		d := utils.HaversineKm(origin.Latitude, origin.Longitude, p.Latitude, p.Longitude)
		measured = append(measured, withDistance{place: p, distance: d})
	}

	within := func(limit float64) []withDistance {
		var out []withDistance
		for _, m := range measured {
			if m.distance <= limit {
				out = append(out, m)
			}
		}
		return out
	}

	// graduated fallback: requested radius, then 150 km, then the 20
	// nearest regardless of radius — the assembler always gets a
	// non-empty set when any same-state places exist.
	selected := within(radius)
	if len(selected) == 0 {
		selected = within(expandedRadiusKm)
	}
	if len(selected) == 0 {
		sort.Slice(measured, func(i, j int) bool { return measured[i].distance < measured[j].distance })
		if len(measured) > nearestFallbackN {
			selected = measured[:nearestFallbackN]
		} else {
			selected = measured
		}
	}

	travelMonth := utils.MonthCode(travelDate)
	if req.SeasonOverride != "" && utils.IsValidMonthCode(strings.ToUpper(req.SeasonOverride)) {
		travelMonth = strings.ToUpper(req.SeasonOverride)
	}

	candidates := make([]ScoredCandidate, 0, len(selected))
	for _, m := range selected {
		c := ScoredCandidate{
			Place:         m.place,
			DistanceKm:    m.distance,
			TravelCost:    m.distance * defaultCostPerKm,
			TravelTimeMin: m.distance / assumedSpeedKmh * 60,
		}

		if route, err := s.routeRepo.FindBetween(ctx, origin.ID, m.place.ID); err == nil && route != nil {
			if route.DistanceKm > 0 {
				c.DistanceKm = route.DistanceKm
			}
			if route.Cost > 0 {
				c.TravelCost = route.Cost
			}
			if route.DurationMinutes > 0 {
				c.TravelTimeMin = route.DurationMinutes
			}
		}

		score := FinalScore(&m.place, c.DistanceKm, travelMonth, travelDate,
			req.Budget, req.Days, req.TripType, req.Personalities, weights)
		score += m.place.Popularity * popularityBoostMul
		c.Score = clampScore(score)

		candidates = append(candidates, c)
	}

	// Ranking, not filtering: every candidate in the radius set stays.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].DistanceKm < candidates[j].DistanceKm
	})

	return &CandidateSelection{
		Origin:           origin,
		OriginResolution: resolution,
		Candidates:       candidates,
	}, nil
}

// resolveOrigin maps the free-text origin onto a concrete place:
// exact district/name match, then substring, then a place in the state
// inferred from the gazetteer, then the first place in the pool.
func (s *CandidateService) resolveOrigin(origin string, pool []db_models.Place) (db_models.Place, string) {
	needle := strings.ToLower(strings.TrimSpace(origin))

	for _, p := range pool {
		if strings.EqualFold(p.District, origin) || strings.EqualFold(p.Name, origin) {
			return p, OriginExact
		}
	}

	if needle != "" {
		for _, p := range pool {
			if strings.Contains(strings.ToLower(p.District), needle) ||
				strings.Contains(strings.ToLower(p.Name), needle) {
				return p, OriginSubstring
			}
		}
	}

	if state, ok := s.gazetteer[needle]; ok {
		for _, p := range pool {
			if strings.EqualFold(p.State, state) {
				return p, OriginStateAlias
			}
		}
	}

	log.Printf("origin %q did not resolve; falling back to first place %q", origin, pool[0].Name)
	return pool[0], OriginFallback
}
