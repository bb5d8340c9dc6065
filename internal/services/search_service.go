package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

// SearchServiceInterface answers free-text place queries. With an
// embedding client configured it searches by description similarity;
// otherwise it degrades to a plain name/district search.
type SearchServiceInterface interface {
	SearchByText(ctx context.Context, query string, limit int) ([]response_models.PlaceResponse, error)
}

type SearchService struct {
	placeRepo     repositories.PlaceRepository
	embeddingRepo repositories.PlaceEmbeddingRepository
	embedClient   utils.EmbeddingClientInterface // nil disables the vector path
}

func NewSearchService(
	placeRepo repositories.PlaceRepository,
	embeddingRepo repositories.PlaceEmbeddingRepository,
	embedClient utils.EmbeddingClientInterface,
) SearchServiceInterface {
	return &SearchService{
		placeRepo:     placeRepo,
		embeddingRepo: embeddingRepo,
		embedClient:   embedClient,
	}
}

func (s *SearchService) SearchByText(ctx context.Context, query string, limit int) ([]response_models.PlaceResponse, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 15
	}

	if s.embedClient != nil {
		results, err := s.searchByVector(ctx, query, limit)
		if err == nil {
			return results, nil
		}
		log.Printf("vector search failed, falling back to text search: %v", err)
	}

	places, err := s.placeRepo.SearchByNameOrDistrict(ctx, query, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPlaceResponses(places), nil
}

func (s *SearchService) searchByVector(ctx context.Context, query string, limit int) ([]response_models.PlaceResponse, error) {
	vector, err := s.embedClient.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	embeddings, err := s.embeddingRepo.SearchByVector(vector, limit)
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return []response_models.PlaceResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(embeddings))
	for _, e := range embeddings {
		ids = append(ids, e.PlaceID)
	}

	places, err := s.placeRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toPlaceResponses(places), nil
}
