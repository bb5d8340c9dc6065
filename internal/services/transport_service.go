package services

import (
	"math"
	"strings"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// CityCoordinates is one entry of the major-city table used for
// inter-city transport costing.
type CityCoordinates struct {
	Lat   float64
	Lng   float64
	State string
}

// DefaultMajorCities covers the metros and common trip endpoints.
// Injected so tests can substitute fixtures.
var DefaultMajorCities = map[string]CityCoordinates{
	"delhi":      {Lat: 28.7041, Lng: 77.1025, State: "Delhi"},
	"mumbai":     {Lat: 19.0760, Lng: 72.8776, State: "Maharashtra"},
	"bangalore":  {Lat: 12.9716, Lng: 77.5946, State: "Karnataka"},
	"hyderabad":  {Lat: 17.3645, Lng: 78.4711, State: "Telangana"},
	"chennai":    {Lat: 13.0827, Lng: 80.2707, State: "Tamil Nadu"},
	"kolkata":    {Lat: 22.5726, Lng: 88.3639, State: "West Bengal"},
	"pune":       {Lat: 18.5204, Lng: 73.8567, State: "Maharashtra"},
	"jaipur":     {Lat: 26.9124, Lng: 75.7873, State: "Rajasthan"},
	"lucknow":    {Lat: 26.8467, Lng: 80.9460, State: "Uttar Pradesh"},
	"chandigarh": {Lat: 30.7333, Lng: 76.7794, State: "Chandigarh"},
	"ahmedabad":  {Lat: 23.0225, Lng: 72.5714, State: "Gujarat"},
	"surat":      {Lat: 21.1702, Lng: 72.8311, State: "Gujarat"},
	"indore":     {Lat: 22.7196, Lng: 75.8577, State: "Madhya Pradesh"},
	"kochi":      {Lat: 9.9312, Lng: 76.2673, State: "Kerala"},
	"goa":        {Lat: 15.8497, Lng: 73.8278, State: "Goa"},
	"amritsar":   {Lat: 31.6340, Lng: 74.8722, State: "Punjab"},
}

type TransportServiceInterface interface {
	// Recommend estimates inter-city transport between two cities and
	// returns the best-value option plus alternatives.
	Recommend(from, to string, numPeople int) (*response_models.TransportRecommendation, error)
}

type TransportService struct {
	cities map[string]CityCoordinates
}

func NewTransportService(cities map[string]CityCoordinates) TransportServiceInterface {
	if cities == nil {
		cities = DefaultMajorCities
	}
	return &TransportService{cities: cities}
}

func (s *TransportService) Recommend(from, to string, numPeople int) (*response_models.TransportRecommendation, error) {
	if numPeople <= 0 {
		numPeople = 1
	}

	fromCoords, ok := s.cities[strings.ToLower(strings.TrimSpace(from))]
	if !ok {
		return nil, utils.ErrUnknownTransportCity
	}
	toCoords, ok := s.cities[strings.ToLower(strings.TrimSpace(to))]
	if !ok {
		return nil, utils.ErrUnknownTransportCity
	}

	distance := utils.HaversineKm(fromCoords.Lat, fromCoords.Lng, toCoords.Lat, toCoords.Lng)
	options := transportOptions(distance)
	recommended := options[0]

	return &response_models.TransportRecommendation{
		From:         from,
		To:           to,
		DistanceKm:   math.Round(distance),
		Recommended:  recommended,
		Alternatives: options[1:],
		TotalCost:    math.Round(recommended.CostPerPerson * float64(numPeople)),
	}, nil
}

// transportOptions picks mode candidates by distance band; the first
// entry is the best value-for-money recommendation.
func transportOptions(distance float64) []response_models.TransportOption {
	switch {
	case distance <= 100:
		return []response_models.TransportOption{
			{Type: "BUS", CostPerPerson: 300, DurationHours: distance / 40, Comfort: "BASIC", Description: "AC Bus - Budget friendly"},
			{Type: "DRIVE", CostPerPerson: 500, DurationHours: distance / 60, Comfort: "STANDARD", Description: "Rental Car"},
		}
	case distance <= 500:
		return []response_models.TransportOption{
			{Type: "TRAIN", CostPerPerson: 800, DurationHours: distance / 50, Comfort: "STANDARD", Description: "Train 2AC/3AC"},
			{Type: "BUS", CostPerPerson: 600, DurationHours: distance / 50, Comfort: "STANDARD", Description: "Volvo Bus"},
			{Type: "FLIGHT", CostPerPerson: 3000, DurationHours: 2, Comfort: "PREMIUM", Description: "Flight"},
		}
	case distance <= 1000:
		return []response_models.TransportOption{
			{Type: "FLIGHT", CostPerPerson: 4000, DurationHours: 2.5, Comfort: "PREMIUM", Description: "Economy Flight"},
			{Type: "TRAIN", CostPerPerson: 1500, DurationHours: distance / 60, Comfort: "STANDARD", Description: "Train 1AC/2AC"},
		}
	default:
		return []response_models.TransportOption{
			{Type: "FLIGHT", CostPerPerson: 5000, DurationHours: 3, Comfort: "PREMIUM", Description: "Flight"},
			{Type: "TRAIN", CostPerPerson: 2000, DurationHours: 24, Comfort: "STANDARD", Description: "Train - Long journey"},
		}
	}
}
