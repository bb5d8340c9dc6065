package services

import (
	"context"
	"log"

	"yatra/internal/models/db_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type PlaceServiceInterface interface {
	GetPlaceByID(ctx context.Context, id string) (response_models.PlaceResponse, error)
	ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error)
	SearchPlaces(ctx context.Context, query string, limit int) ([]response_models.PlaceResponse, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{placeRepo: placeRepo}
}

func (s *PlaceService) GetPlaceByID(ctx context.Context, id string) (response_models.PlaceResponse, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return response_models.PlaceResponse{}, utils.ErrDatabaseError
	}
	if place == nil {
		return response_models.PlaceResponse{}, utils.ErrPlaceNotFound
	}
	return toPlaceResponse(*place), nil
}

func (s *PlaceService) ListPlaces(ctx context.Context, page, pageSize int) ([]response_models.PlaceResponse, error) {
	places, err := s.placeRepo.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceResponses(places), nil
}

func (s *PlaceService) SearchPlaces(ctx context.Context, query string, limit int) ([]response_models.PlaceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	places, err := s.placeRepo.SearchByNameOrDistrict(ctx, query, limit)
	if err != nil {
		log.Printf("Error searching places: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceResponses(places), nil
}

func toPlaceResponse(place db_models.Place) response_models.PlaceResponse {
	return response_models.PlaceResponse{
		ID:          place.ID.String(),
		Name:        place.Name,
		Category:    place.Category,
		District:    place.District,
		State:       place.State,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		Description: place.Description,
		BudgetTier:  place.BudgetTier,
		EntryFee:    place.EntryFee,
		IsHiddenGem: place.IsHiddenGem,
		IsFamous:    place.IsFamous,
	}
}

func toPlaceResponses(places []db_models.Place) []response_models.PlaceResponse {
	out := make([]response_models.PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceResponse(p))
	}
	return out
}
